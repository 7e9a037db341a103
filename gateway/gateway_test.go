package gateway

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/payswitch-intl/payswitch-go/channel"
	"github.com/payswitch-intl/payswitch-go/clients/payswitch"
	"github.com/payswitch-intl/payswitch-go/codes"
	"github.com/payswitch-intl/payswitch-go/endpoints"
	"github.com/payswitch-intl/payswitch-go/payment"
)

// capturingVerifier records the arguments of the last VerifyBillingInfo call
type capturingVerifier struct {
	endpoint string
	addr     Address
	called   bool
	err      error
}

func (v *capturingVerifier) VerifyBillingInfo(ctx context.Context, endpoint string, req payment.Request, addr Address) error {
	v.called = true
	v.endpoint = endpoint
	v.addr = addr
	return v.err
}

type GatewayTestSuite struct {
	suite.Suite
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func (suite *GatewayTestSuite) config() Config {
	return Config{
		MerchantID:  "MERCH123",
		SecretKey:   "secret",
		Environment: endpoints.Sandbox,
	}
}

func (suite *GatewayTestSuite) request() payment.Request {
	req, err := payment.NewBuilder().
		MerchantID("MERCH123").
		TxnID("TXN-1").
		Amount(decimal.RequireFromString("100")).
		Currency("PHP").
		Description("Widget order").
		Email("payer@example.com").
		Build()
	suite.Require().NoError(err)
	return req
}

func (suite *GatewayTestSuite) gateway(ws payswitch.Client, verifier Verifier) *Gateway {
	gw, err := New(suite.config(), endpoints.NewResolver(), ws, verifier)
	suite.Require().NoError(err)
	return gw
}

func (suite *GatewayTestSuite) TestNewRejectsMissingCollaborators() {
	cfg := suite.config()

	_, err := New(cfg, nil, &payswitch.MockClient{}, &capturingVerifier{})
	suite.Require().Error(err)

	_, err = New(cfg, endpoints.NewResolver(), nil, &capturingVerifier{})
	suite.Require().Error(err)

	_, err = New(cfg, endpoints.NewResolver(), &payswitch.MockClient{}, nil)
	suite.Require().Error(err)

	cfg.SecretKey = ""
	_, err = New(cfg, endpoints.NewResolver(), &payswitch.MockClient{}, &capturingVerifier{})
	suite.Require().Error(err)

	cfg = suite.config()
	cfg.Environment = "staging"
	_, err = New(cfg, endpoints.NewResolver(), &payswitch.MockClient{}, &capturingVerifier{})
	suite.Require().Error(err)
	suite.Assert().Equal(codes.InvalidMode, codes.KindOf(err))
}

func (suite *GatewayTestSuite) TestResolveURLDefaultsToRedirect() {
	gw := suite.gateway(&payswitch.MockClient{}, &capturingVerifier{})

	resolved, err := gw.ResolveURL()
	suite.Require().NoError(err)
	suite.Assert().Equal("https://test.payswitch.ph/Pay.aspx", resolved)
}

func (suite *GatewayTestSuite) TestResolveURLFlipsToWebServiceAfterToken() {
	ws := &payswitch.MockClient{
		FnGetTxnToken: func(ctx context.Context, params payment.TokenParams) (*payswitch.TokenResult, error) {
			return &payswitch.TokenResult{Token: "abc123TOKEN"}, nil
		},
	}
	gw := suite.gateway(ws, &capturingVerifier{})

	token, err := gw.RequestToken(context.Background(), suite.request())
	suite.Require().NoError(err)
	suite.Assert().Equal("abc123TOKEN", token)
	suite.Assert().Equal(StatusTokenized, gw.Status())

	stored, ok := gw.Token()
	suite.Assert().True(ok)
	suite.Assert().Equal("abc123TOKEN", stored)

	resolved, err := gw.ResolveURL()
	suite.Require().NoError(err)
	suite.Assert().Equal("https://test.payswitch.ph/api/collect/v1", resolved)
}

func (suite *GatewayTestSuite) TestRequestTokenIncorrectSecretKey() {
	ws := &payswitch.MockClient{
		FnGetTxnToken: func(ctx context.Context, params payment.TokenParams) (*payswitch.TokenResult, error) {
			return nil, codes.New(102)
		},
	}
	gw := suite.gateway(ws, &capturingVerifier{})

	_, err := gw.RequestToken(context.Background(), suite.request())
	suite.Require().Error(err)
	suite.Assert().Equal(codes.IncorrectSecretKey, codes.KindOf(err))
	suite.Assert().Equal("Incorrect secret key", gw.LastError())
	suite.Assert().Equal(StatusFailed, gw.Status())

	// the failed transaction stays failed
	_, err = gw.RequestToken(context.Background(), suite.request())
	suite.Require().Error(err)
}

func (suite *GatewayTestSuite) TestCheckoutBuildsRedirectURL() {
	gw := suite.gateway(&payswitch.MockClient{}, &capturingVerifier{})

	target, err := gw.Checkout(context.Background(), suite.request())
	suite.Require().NoError(err)
	suite.Assert().True(strings.HasPrefix(target, "https://test.payswitch.ph/Pay.aspx?"))
	suite.Assert().Contains(target, "merchantid=MERCH123")
	suite.Assert().Contains(target, "digest=3997b9fe2b2fa1cec56a3970af1228fb53e1749c")
	suite.Assert().Equal(StatusRedirected, gw.Status())

	// the redirected transaction is terminal, no token request afterwards
	_, err = gw.RequestToken(context.Background(), suite.request())
	suite.Require().Error(err)
}

func (suite *GatewayTestSuite) TestRedirectIssues302() {
	gw := suite.gateway(&payswitch.MockClient{}, &capturingVerifier{})

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/checkout", nil)
	err := gw.Redirect(w, r, suite.request())
	suite.Require().NoError(err)
	suite.Assert().Equal(302, w.Code)
	suite.Assert().True(strings.HasPrefix(w.Header().Get("Location"), "https://test.payswitch.ph/Pay.aspx?"))
}

func (suite *GatewayTestSuite) TestVerifyCardForcesCreditCardChannel() {
	verifier := &capturingVerifier{}
	gw := suite.gateway(&payswitch.MockClient{}, verifier)

	addr := Address{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Address1:  "123 Rizal Ave",
		City:      "Manila",
		State:     "NCR",
		Country:   "PH",
		ZipCode:   "1000",
		Telephone: "+6325550100",
	}
	err := gw.VerifyCard(context.Background(), suite.request(), addr)
	suite.Require().NoError(err)

	c, ok := gw.Channel()
	suite.Assert().True(ok)
	suite.Assert().Equal(channel.CreditCard, c)
	suite.Assert().Equal(channel.Channel(64), c)

	suite.Assert().True(verifier.called)
	suite.Assert().Equal("https://test.payswitch.ph/api/billing/v1", verifier.endpoint)
	suite.Assert().Equal(addr, verifier.addr)
	suite.Assert().Equal(StatusBillingVerifying, gw.Status())
}

func (suite *GatewayTestSuite) TestVerifyCardRejectsBadAddress() {
	verifier := &capturingVerifier{}
	gw := suite.gateway(&payswitch.MockClient{}, verifier)

	addr := Address{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Address1:  "123 Rizal Ave",
		City:      "Manila",
		State:     "NCR",
		Country:   "Philippines", // not an alpha-2 country code
		ZipCode:   "1000",
		Telephone: "+6325550100",
	}
	err := gw.VerifyCard(context.Background(), suite.request(), addr)
	suite.Require().Error(err)
	suite.Assert().False(verifier.called)
	suite.Assert().Equal(StatusConfigured, gw.Status())
}

func TestSetChannelRejectsUndefinedBits(t *testing.T) {
	gw, err := New(Config{
		MerchantID:  "MERCH123",
		SecretKey:   "secret",
		Environment: endpoints.Sandbox,
	}, endpoints.NewResolver(), &payswitch.MockClient{}, &capturingVerifier{})
	require.NoError(t, err)

	err = gw.SetChannel(channel.Channel(8))
	require.Error(t, err)
	assert.Equal(t, codes.InvalidChannel, codes.KindOf(err))

	_, ok := gw.Channel()
	assert.False(t, ok)

	require.NoError(t, gw.SetChannel(channel.OnlineBank|channel.GCash))
	c, ok := gw.Channel()
	assert.True(t, ok)
	assert.Equal(t, channel.OnlineBank|channel.GCash, c)
}

func TestLastErrorEmptyBeforeFailure(t *testing.T) {
	gw, err := New(Config{
		MerchantID:  "MERCH123",
		SecretKey:   "secret",
		Environment: endpoints.Sandbox,
	}, endpoints.NewResolver(), &payswitch.MockClient{}, &capturingVerifier{})
	require.NoError(t, err)
	assert.Empty(t, gw.LastError())
}
