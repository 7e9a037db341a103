package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/payswitch-intl/payswitch-go/errors"
	testutils "github.com/payswitch-intl/payswitch-go/test"
	"github.com/stretchr/testify/assert"
)

func TestDo_ErrorWithResponse(t *testing.T) {
	errorMsg := testutils.RandomString()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(errorMsg))
		assert.NoError(t, err)
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	assert.NoError(t, err)

	client, err := New(ts.URL, "")
	assert.NoError(t, err)

	// pass data as invalid result type to cause error
	var data *string
	response, err := client.Do(context.Background(), req, data)

	assert.IsType(t, &errors.ErrorBundle{}, err)
	assert.NotNil(t, response)

	actual := err.(*errors.ErrorBundle)
	assert.Equal(t, "response", actual.Error())
	assert.NotNil(t, actual.Cause(), ErrUnableToDecode)

	httpState := actual.Data().(HTTPState)
	assert.Equal(t, httpState.Status, http.StatusOK)
	assert.Equal(t, ts.URL, httpState.Path)
	assert.Contains(t, fmt.Sprintf("+%v", httpState.Body), errorMsg)
}

func TestRedactSensitiveHeaders(t *testing.T) {
	dump := []byte("POST /GetTxnToken HTTP/1.1\n" +
		"Authorization: Bearer sekrit\n" +
		`{"merchantid":"MERCH123","digest": "3997b9fe2b2fa1cec56a3970af1228fb53e1749c"}`)
	redacted := string(RedactSensitiveHeaders(dump))
	assert.NotContains(t, redacted, "sekrit")
	assert.NotContains(t, redacted, "3997b9fe2b2fa1cec56a3970af1228fb53e1749c")
	assert.Contains(t, redacted, `"digest":"<digest>"`)

	qs := []byte("GET /GetTxnStatus?merchantid=MERCH123&merchantpwd=hunter2&txnid=TXN-1&digest=deadbeef HTTP/1.1\n")
	redacted = string(RedactSensitiveHeaders(qs))
	assert.NotContains(t, redacted, "hunter2")
	assert.NotContains(t, redacted, "deadbeef")
	assert.Contains(t, redacted, "merchantpwd=<pwd>")
	assert.Contains(t, redacted, "digest=<digest>")
	assert.Contains(t, redacted, "merchantid=MERCH123")
}
