package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(ts *httptest.Server) *Client {
	c := NewClient(Config{APIKey: "sk_test_123"})
	c.baseURL = ts.URL
	c.httpClient = ts.Client()
	return c
}

func TestCreateIntent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "12500", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "collector@example.com", r.PostForm.Get("receipt_email"))
		assert.Equal(t, "ord_1", r.PostForm.Get("metadata[order_id]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "pi_123",
			"client_secret": "pi_123_secret_abc",
			"amount": 12500,
			"currency": "usd",
			"status": "requires_payment_method"
		}`))
	}))
	defer ts.Close()

	intent, err := newTestClient(ts).CreateIntent(context.Background(), CreateIntentParams{
		AmountCents:  12500,
		Currency:     "usd",
		ReceiptEmail: "collector@example.com",
		OrderID:      "ord_1",
	})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, "requires_payment_method", intent.Status)
}

func TestCreateIntent_CardError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{
			"error": {
				"type": "card_error",
				"code": "card_declined",
				"decline_code": "insufficient_funds",
				"message": "Your card has insufficient funds."
			}
		}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).CreateIntent(context.Background(), CreateIntentParams{
		AmountCents: 100, Currency: "usd",
	})

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ErrTypeCard, provErr.Type)
	assert.Equal(t, "card_declined", provErr.Code)
	assert.Equal(t, "insufficient_funds", provErr.DeclineCode)
	assert.Equal(t, 402, provErr.StatusCode)
}

func TestGetIntent_UnparseableErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream proxy error`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).GetIntent(context.Background(), "pi_123")

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ErrTypeAPI, provErr.Type)
	assert.Equal(t, 502, provErr.StatusCode)
}

func TestDo_TransportFailureIsConnectionError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse all connections

	_, err := newTestClient(ts).GetIntent(context.Background(), "pi_123")

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, ErrTypeConnection, provErr.Type)
}

func TestErrTypeFromWire(t *testing.T) {
	assert.Equal(t, ErrTypeCard, errTypeFromWire("card_error"))
	assert.Equal(t, ErrTypeRateLimit, errTypeFromWire("rate_limit_error"))
	assert.Equal(t, ErrTypeInvalidRequest, errTypeFromWire("invalid_request_error"))
	assert.Equal(t, ErrTypeAuthentication, errTypeFromWire("authentication_error"))
	assert.Equal(t, ErrTypeAPI, errTypeFromWire("api_error"))
	assert.Equal(t, ErrTypeAPI, errTypeFromWire("something_new"))
}

func TestError_ErrorString(t *testing.T) {
	err := &Error{Type: ErrTypeCard, Code: "card_declined", Message: "declined"}
	assert.Equal(t, "StripeCardError (card_declined): declined", err.Error())
}
