package endpoints_test

import (
	"testing"

	"github.com/payswitch-intl/payswitch-go/codes"
	"github.com/payswitch-intl/payswitch-go/endpoints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	env, err := endpoints.ParseEnvironment("sandbox")
	require.NoError(t, err)
	assert.Equal(t, endpoints.Sandbox, env)
	assert.Equal(t, "sandbox", env.String())

	env, err = endpoints.ParseEnvironment("production")
	require.NoError(t, err)
	assert.Equal(t, endpoints.Production, env)

	_, err = endpoints.ParseEnvironment("staging")
	require.Error(t, err)
	assert.Equal(t, codes.InvalidMode, codes.KindOf(err))
}

func TestResolver_BuiltInURLs(t *testing.T) {
	r := endpoints.NewResolver()

	u, err := r.URL(endpoints.Sandbox, endpoints.Redirect)
	require.NoError(t, err)
	assert.Equal(t, "https://test.payswitch.ph/Pay.aspx", u)

	u, err = r.URL(endpoints.Production, endpoints.Redirect)
	require.NoError(t, err)
	assert.Equal(t, "https://gw.payswitch.ph/Pay.aspx", u)

	u, err = r.URL(endpoints.Sandbox, endpoints.WebService)
	require.NoError(t, err)
	assert.Equal(t, "https://test.payswitch.ph/api/collect/v1", u)

	u, err = r.BillingURL(endpoints.Production)
	require.NoError(t, err)
	assert.Equal(t, "https://gw.payswitch.ph/api/billing/v1", u)
}

func TestResolver_SetURL(t *testing.T) {
	r := endpoints.NewResolver()

	// overriding one (environment, protocol) pair leaves the others alone
	require.NoError(t, r.SetURL("https://localhost:8080/pay", endpoints.Sandbox, endpoints.Redirect))
	u, err := r.URL(endpoints.Sandbox, endpoints.Redirect)
	require.NoError(t, err)
	assert.Equal(t, "https://localhost:8080/pay", u)

	u, err = r.URL(endpoints.Production, endpoints.Redirect)
	require.NoError(t, err)
	assert.Equal(t, "https://gw.payswitch.ph/Pay.aspx", u)

	u, err = r.URL(endpoints.Sandbox, endpoints.WebService)
	require.NoError(t, err)
	assert.Equal(t, "https://test.payswitch.ph/api/collect/v1", u)
}

func TestResolver_SetURL_InvalidMode(t *testing.T) {
	r := endpoints.NewResolver()

	err := r.SetURL("https://localhost:8080/pay", "staging", endpoints.Redirect)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidMode, codes.KindOf(err))

	err = r.SetBillingURL("https://localhost:8080/billing", "staging")
	assert.Equal(t, codes.InvalidMode, codes.KindOf(err))
}

func TestResolver_SetURL_InvalidURL(t *testing.T) {
	r := endpoints.NewResolver()
	assert.Error(t, r.SetURL("not a url", endpoints.Sandbox, endpoints.Redirect))
	assert.Error(t, r.SetURL("", endpoints.Sandbox, endpoints.Redirect))
}

func TestResolver_SetBillingURL(t *testing.T) {
	r := endpoints.NewResolver()
	require.NoError(t, r.SetBillingURL("https://localhost:8080/billing", endpoints.Sandbox))

	u, err := r.BillingURL(endpoints.Sandbox)
	require.NoError(t, err)
	assert.Equal(t, "https://localhost:8080/billing", u)
}
