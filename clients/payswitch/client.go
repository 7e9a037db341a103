// Package payswitch provides the merchant web service client for the
// gateway: token issuance plus the transaction status and cancel calls.
package payswitch

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/google/go-querystring/query"
	"github.com/payswitch-intl/payswitch-go/clients"
	"github.com/payswitch-intl/payswitch-go/codes"
	errorutils "github.com/payswitch-intl/payswitch-go/errors"
	"github.com/payswitch-intl/payswitch-go/payment"
)

// TokenResult wraps the opaque token issued by a successful GetTxnToken call
type TokenResult struct {
	Token string
}

// tokenResponse is the raw web service reply, the result value is either a
// numeric error code from the documented table or the opaque token
type tokenResponse struct {
	Result string `json:"result"`
}

// StatusQuery - inputs to the transaction status web service call
type StatusQuery struct {
	MerchantID string `url:"merchantid"`
	Password   string `url:"merchantpwd"`
	TxnID      string `url:"txnid"`
}

// GenerateQueryString - implement the QueryStringBody interface
func (q *StatusQuery) GenerateQueryString() (url.Values, error) {
	return query.Values(q)
}

// TxnStatus is the reply of the transaction status call. Status carries the
// gateway's single letter transaction state.
type TxnStatus struct {
	Status      string `json:"status"`
	RefNo       string `json:"refno"`
	Description string `json:"description"`
}

// Settled reports whether the transaction reached the success state
func (s *TxnStatus) Settled() bool {
	return s.Status == "S"
}

// CancelQuery - inputs to the transaction cancel web service call
type CancelQuery struct {
	MerchantID string `url:"merchantid"`
	Password   string `url:"merchantpwd"`
	TxnID      string `url:"txnid"`
}

// GenerateQueryString - implement the QueryStringBody interface
func (q *CancelQuery) GenerateQueryString() (url.Values, error) {
	return query.Values(q)
}

// CancelResult is the reply of the cancel call, status zero means cancelled
type CancelResult struct {
	Status int `json:"status"`
}

// Client is what a gateway web service client should support
type Client interface {
	// GetTxnToken canonicalizes params into a token request and returns the issued token
	GetTxnToken(ctx context.Context, params payment.TokenParams) (*TokenResult, error)
	// GetTxnStatus queries the current state of a merchant transaction
	GetTxnStatus(ctx context.Context, q *StatusQuery) (*TxnStatus, error)
	// CancelTxn voids a pending merchant transaction
	CancelTxn(ctx context.Context, q *CancelQuery) (*CancelResult, error)
}

// HTTPClient wraps http.Client for interacting with the gateway web service
type HTTPClient struct {
	client *clients.SimpleHTTPClient
}

// New returns a new instrumented HTTPClient for the given web service url
func New(serverURL string) (Client, error) {
	proxy := os.Getenv("HTTP_PROXY")
	client, err := clients.NewWithProxy("payswitch", serverURL, "", proxy)
	if err != nil {
		return nil, err
	}
	return NewClientWithPrometheus(&HTTPClient{client}, "payswitch_client"), nil
}

// NewWithHTTPClient returns a new HTTPClient over the provided http.Client,
// without the prometheus wrapper, for tests
func NewWithHTTPClient(serverURL string, client *http.Client) (*HTTPClient, error) {
	simple, err := clients.NewWithHTTPClient(serverURL, "", client)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{simple}, nil
}

// GetTxnToken posts the canonical parameter structure, including the digest,
// and inspects the result: a value in the documented code table is a typed
// gateway error, anything else is the opaque token.
func (c *HTTPClient) GetTxnToken(ctx context.Context, params payment.TokenParams) (*TokenResult, error) {
	req, err := c.client.NewRequest(ctx, "POST", "/GetTxnToken", params, nil)
	if err != nil {
		return nil, codes.Transport(err)
	}

	var body tokenResponse
	if _, err := c.client.Do(ctx, req, &body); err != nil {
		return nil, codes.Transport(err)
	}

	if ge, ok := codes.FromResult(body.Result); ok {
		return nil, ge
	}
	if body.Result == "" {
		return nil, codes.Transport(errorutils.ErrFailedBodyUnmarshal)
	}
	return &TokenResult{Token: body.Result}, nil
}

// GetTxnStatus queries the state of a transaction by merchant reference. The
// merchant web service credentials ride in the query string, analogous codes
// 201/202 come back for bad credentials.
func (c *HTTPClient) GetTxnStatus(ctx context.Context, q *StatusQuery) (*TxnStatus, error) {
	req, err := c.client.NewRequest(ctx, "GET", "/GetTxnStatus", nil, q)
	if err != nil {
		return nil, codes.Transport(err)
	}

	var body TxnStatus
	if _, err := c.client.Do(ctx, req, &body); err != nil {
		return nil, codes.Transport(err)
	}

	if ge, ok := codes.FromResult(body.Status); ok {
		return nil, ge
	}
	return &body, nil
}

// CancelTxn voids a pending transaction by merchant reference.
func (c *HTTPClient) CancelTxn(ctx context.Context, q *CancelQuery) (*CancelResult, error) {
	req, err := c.client.NewRequest(ctx, "GET", "/CancelTxn", nil, q)
	if err != nil {
		return nil, codes.Transport(err)
	}

	var body CancelResult
	if _, err := c.client.Do(ctx, req, &body); err != nil {
		return nil, codes.Transport(err)
	}

	if body.Status != 0 {
		if ge, ok := codes.FromResult(strconv.Itoa(body.Status)); ok {
			return nil, ge
		}
		return nil, codes.Errorf(codes.ErrorInOperation, "cancel failed with gateway status %d", body.Status)
	}
	return &body, nil
}
