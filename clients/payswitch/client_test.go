package payswitch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payswitch-intl/payswitch-go/codes"
	"github.com/payswitch-intl/payswitch-go/payment"
)

func testTokenParams() payment.TokenParams {
	return payment.TokenParams{
		MerchantID:  "MERCH123",
		TxnID:       "TXN-1",
		Amount:      "100.00",
		Currency:    "PHP",
		Description: "Widget order",
		Email:       "payer@example.com",
		Digest:      "3997b9fe2b2fa1cec56a3970af1228fb53e1749c",
	}
}

func TestGetTxnToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/GetTxnToken", r.URL.Path)

		var params payment.TokenParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "MERCH123", params.MerchantID)
		assert.Equal(t, "3997b9fe2b2fa1cec56a3970af1228fb53e1749c", params.Digest)

		w.Header().Set("content-type", "application/json")
		_, err := w.Write([]byte(`{"result": "abc123TOKEN"}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client, err := NewWithHTTPClient(server.URL, http.DefaultClient)
	require.NoError(t, err)

	res, err := client.GetTxnToken(context.Background(), testTokenParams())
	require.NoError(t, err)
	assert.Equal(t, "abc123TOKEN", res.Token)
}

func TestGetTxnToken_GatewayErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		_, err := w.Write([]byte(`{"result": "102"}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client, err := NewWithHTTPClient(server.URL, http.DefaultClient)
	require.NoError(t, err)

	_, err = client.GetTxnToken(context.Background(), testTokenParams())
	require.Error(t, err)

	var ge *codes.GatewayError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, codes.IncorrectSecretKey, ge.Kind)
	assert.Equal(t, "Incorrect secret key", ge.Message)
}

func TestGetTxnToken_NumericLookingToken(t *testing.T) {
	// a result outside the documented code table is a token, even when numeric
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		_, err := w.Write([]byte(`{"result": "987654"}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client, err := NewWithHTTPClient(server.URL, http.DefaultClient)
	require.NoError(t, err)

	res, err := client.GetTxnToken(context.Background(), testTokenParams())
	require.NoError(t, err)
	assert.Equal(t, "987654", res.Token)
}

func TestGetTxnToken_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		_, err := w.Write([]byte(`{}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client, err := NewWithHTTPClient(server.URL, http.DefaultClient)
	require.NoError(t, err)

	_, err = client.GetTxnToken(context.Background(), testTokenParams())
	require.Error(t, err)
	assert.Equal(t, codes.TransportFailure, codes.KindOf(err))
}

func TestGetTxnStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/GetTxnStatus", r.URL.Path)
		assert.Equal(t, "MERCH123", r.URL.Query().Get("merchantid"))
		assert.Equal(t, "hunter2", r.URL.Query().Get("merchantpwd"))
		assert.Equal(t, "TXN-1", r.URL.Query().Get("txnid"))

		w.Header().Set("content-type", "application/json")
		_, err := w.Write([]byte(`{"status": "S", "refno": "GW-0001", "description": "settled"}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client, err := NewWithHTTPClient(server.URL, http.DefaultClient)
	require.NoError(t, err)

	status, err := client.GetTxnStatus(context.Background(), &StatusQuery{
		MerchantID: "MERCH123",
		Password:   "hunter2",
		TxnID:      "TXN-1",
	})
	require.NoError(t, err)
	assert.True(t, status.Settled())
	assert.Equal(t, "GW-0001", status.RefNo)
}

func TestGetTxnStatus_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		_, err := w.Write([]byte(`{"status": "202"}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client, err := NewWithHTTPClient(server.URL, http.DefaultClient)
	require.NoError(t, err)

	_, err = client.GetTxnStatus(context.Background(), &StatusQuery{
		MerchantID: "MERCH123",
		Password:   "wrong",
		TxnID:      "TXN-1",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidMerchantPassword, codes.KindOf(err))
}

func TestCancelTxn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/CancelTxn", r.URL.Path)
		assert.Equal(t, "TXN-1", r.URL.Query().Get("txnid"))

		w.Header().Set("content-type", "application/json")
		_, err := w.Write([]byte(`{"status": 0}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client, err := NewWithHTTPClient(server.URL, http.DefaultClient)
	require.NoError(t, err)

	res, err := client.CancelTxn(context.Background(), &CancelQuery{
		MerchantID: "MERCH123",
		Password:   "hunter2",
		TxnID:      "TXN-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Status)
}

func TestCancelTxn_CatalogStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		_, err := w.Write([]byte(`{"status": 103}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client, err := NewWithHTTPClient(server.URL, http.DefaultClient)
	require.NoError(t, err)

	_, err = client.CancelTxn(context.Background(), &CancelQuery{
		MerchantID: "MERCH123",
		Password:   "hunter2",
		TxnID:      "TXN-404",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidReferenceNumber, codes.KindOf(err))
}

func TestCancelTxn_UncataloguedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		_, err := w.Write([]byte(`{"status": 7}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	client, err := NewWithHTTPClient(server.URL, http.DefaultClient)
	require.NoError(t, err)

	_, err = client.CancelTxn(context.Background(), &CancelQuery{
		MerchantID: "MERCH123",
		Password:   "hunter2",
		TxnID:      "TXN-1",
	})
	require.Error(t, err)
	assert.Equal(t, codes.ErrorInOperation, codes.KindOf(err))
}

func TestTransportFailureKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client, err := NewWithHTTPClient(server.URL, http.DefaultClient)
	require.NoError(t, err)

	_, err = client.GetTxnToken(context.Background(), testTokenParams())
	require.Error(t, err)
	assert.Equal(t, codes.TransportFailure, codes.KindOf(err))
}
