// Package gateway orchestrates the three transaction initiation protocols
// against the hosted payment gateway: browser redirect, token web service and
// credit card billing verification.
//
// A Gateway instance carries per-transaction state and is not safe for
// concurrent reuse, use one instance per transaction.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/payswitch-intl/payswitch-go/channel"
	"github.com/payswitch-intl/payswitch-go/clients/payswitch"
	"github.com/payswitch-intl/payswitch-go/codes"
	"github.com/payswitch-intl/payswitch-go/digest"
	"github.com/payswitch-intl/payswitch-go/endpoints"
	"github.com/payswitch-intl/payswitch-go/logging"
	"github.com/payswitch-intl/payswitch-go/payment"
)

// Config is the long-lived merchant configuration, separate from the
// per-transaction state the Gateway accumulates.
type Config struct {
	// MerchantID - the gateway issued merchant id
	MerchantID string
	// SecretKey - the merchant secret used for digest signing
	SecretKey string
	// Environment - sandbox or production
	Environment endpoints.Environment
}

// Signer returns the keyed digest signer for this configuration, using the
// gateway mandated algorithm
func (c Config) Signer() (*digest.KeyedSigner, error) {
	return digest.NewKeyedSigner(digest.SHA1, c.SecretKey)
}

// Gateway sequences one transaction through an initiation protocol. All
// collaborators are required at construction, there are no implicit
// defaults.
type Gateway struct {
	cfg      Config
	signer   *digest.KeyedSigner
	resolver *endpoints.Resolver
	ws       payswitch.Client
	verifier Verifier

	status     Status
	channel    channel.Channel
	hasChannel bool
	token      string
	lastErr    *codes.GatewayError
}

// New constructs a Gateway for a single transaction. The resolver, web
// service client and billing verifier must all be supplied.
func New(cfg Config, resolver *endpoints.Resolver, ws payswitch.Client, verifier Verifier) (*Gateway, error) {
	if _, err := endpoints.ParseEnvironment(cfg.Environment.String()); err != nil {
		return nil, err
	}
	if resolver == nil {
		return nil, errors.New("an endpoint resolver is required")
	}
	if ws == nil {
		return nil, errors.New("a web service client is required")
	}
	if verifier == nil {
		return nil, errors.New("a billing info verifier is required")
	}
	signer, err := cfg.Signer()
	if err != nil {
		return nil, err
	}
	return &Gateway{
		cfg:      cfg,
		signer:   signer,
		resolver: resolver,
		ws:       ws,
		verifier: verifier,
		status:   StatusConfigured,
	}, nil
}

// Status returns where the transaction sits in the initiation protocol
func (g *Gateway) Status() Status {
	return g.status
}

// advance moves the protocol state machine, rejecting transitions outside
// the documented table.
func (g *Gateway) advance(to Status) error {
	if !g.status.NextStateValid(to) {
		return fmt.Errorf("invalid protocol transition %s -> %s", g.status, to)
	}
	g.status = to
	return nil
}

// Token returns the issued web service token when one exists
func (g *Gateway) Token() (string, bool) {
	return g.token, g.token != ""
}

// SetChannel restricts the transaction to the given payment channel mask,
// failing with an InvalidChannel-kinded error for undefined bits.
func (g *Gateway) SetChannel(c channel.Channel) error {
	filtered, err := channel.Filter(c)
	if err != nil {
		return err
	}
	g.channel = filtered
	g.hasChannel = true
	return nil
}

// Channel returns the active payment channel mask when one has been set
func (g *Gateway) Channel() (channel.Channel, bool) {
	return g.channel, g.hasChannel
}

// ResolveURL returns the endpoint the transaction should be taken to in the
// configured environment. Resolution flips from the redirect endpoint to the
// web service endpoint once a token has been obtained, for the lifetime of
// this instance.
func (g *Gateway) ResolveURL() (string, error) {
	proto := endpoints.Redirect
	if _, ok := g.Token(); ok {
		proto = endpoints.WebService
	}
	return g.resolver.URL(g.cfg.Environment, proto)
}

// BillingInfoURL returns the billing-info endpoint for the configured
// environment
func (g *Gateway) BillingInfoURL() (string, error) {
	return g.resolver.BillingURL(g.cfg.Environment)
}

// LastError returns the canonical message of the last gateway rejection,
// empty when the transaction has not failed.
func (g *Gateway) LastError() string {
	if g.lastErr == nil {
		return ""
	}
	return g.lastErr.Message
}

// Checkout builds the fully qualified redirect URL, all parameters in
// canonical order with a digest reflecting the final set. No response is
// awaited, the flow terminates outside this client's control.
func (g *Gateway) Checkout(ctx context.Context, req payment.Request) (string, error) {
	logger := logging.Logger(ctx, "gateway.Checkout")

	if err := g.advance(StatusSigned); err != nil {
		return "", err
	}
	qs, err := req.QueryString(g.signer)
	if err != nil {
		return "", err
	}
	base, err := g.ResolveURL()
	if err != nil {
		return "", err
	}
	if err := g.advance(StatusRedirected); err != nil {
		return "", err
	}

	logger.Info().
		Str("txnID", req.TxnID()).
		Str("environment", g.cfg.Environment.String()).
		Msg("built checkout redirect")
	return base + "?" + qs, nil
}

// Redirect issues the HTTP 302 taking the payer's browser to the checkout
// URL.
func (g *Gateway) Redirect(w http.ResponseWriter, r *http.Request, req payment.Request) error {
	target, err := g.Checkout(r.Context(), req)
	if err != nil {
		return err
	}
	http.Redirect(w, r, target, http.StatusFound)
	return nil
}

// RequestToken canonicalizes the parameters, invokes the token web service
// call and classifies the result. A result in the documented code table
// fails the transaction with a typed error, anything else is the opaque
// token that flips endpoint resolution to the web service protocol.
func (g *Gateway) RequestToken(ctx context.Context, req payment.Request) (string, error) {
	logger := logging.Logger(ctx, "gateway.RequestToken")

	if err := g.advance(StatusSigned); err != nil {
		return "", err
	}
	params, err := req.TokenParams(g.signer)
	if err != nil {
		return "", err
	}
	if err := g.advance(StatusTokenPending); err != nil {
		return "", err
	}

	res, err := g.ws.GetTxnToken(ctx, params)
	if err != nil {
		var ge *codes.GatewayError
		if errors.As(err, &ge) {
			g.lastErr = ge
		}
		_ = g.advance(StatusFailed)
		logger.Warn().
			Str("txnID", req.TxnID()).
			Str("kind", string(codes.KindOf(err))).
			Msg("token request rejected")
		return "", err
	}

	g.token = res.Token
	if err := g.advance(StatusTokenized); err != nil {
		return "", err
	}
	logger.Info().Str("txnID", req.TxnID()).Msg("token issued")
	return g.token, nil
}

// VerifyCard forces the channel to credit card, validates the billing
// address and delegates to the injected billing info verifier carrying the
// parameter set and the resolved billing-info endpoint.
func (g *Gateway) VerifyCard(ctx context.Context, req payment.Request, addr Address) error {
	logger := logging.Logger(ctx, "gateway.VerifyCard")

	if err := g.SetChannel(channel.CreditCard); err != nil {
		return err
	}
	if err := addr.Validate(ctx); err != nil {
		return err
	}
	endpoint, err := g.BillingInfoURL()
	if err != nil {
		return err
	}
	if err := g.advance(StatusBillingVerifying); err != nil {
		return err
	}

	logger.Info().
		Str("txnID", req.TxnID()).
		Str("endpoint", endpoint).
		Msg("delegating billing verification")
	return g.verifier.VerifyBillingInfo(ctx, endpoint, req, addr)
}
