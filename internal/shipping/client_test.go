package shipping

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOrigin = Address{
	Name: "Atelier Gallery", Street1: "215 Grand St",
	City: "Brooklyn", State: "NY", Zip: "11211", Country: "US",
}

var testDestination = Address{
	Name: "A Collector", Street1: "600 Congress Ave",
	City: "Austin", State: "TX", Zip: "78701", Country: "US",
}

func newTestClient(ts *httptest.Server) *Client {
	c := NewClient(Config{APIToken: "shippo_test_token"})
	c.baseURL = ts.URL
	c.httpClient = ts.Client()
	return c
}

func TestGetRates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "ShippoToken shippo_test_token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object_id": "shp_1",
			"status": "SUCCESS",
			"rates": [
				{
					"object_id": "rate_1",
					"provider": "USPS",
					"amount": "8.99",
					"currency": "USD",
					"estimated_days": 5,
					"servicelevel": {"name": "Priority Mail"}
				},
				{
					"object_id": "rate_2",
					"provider": "UPS",
					"amount": "24.50",
					"currency": "USD",
					"estimated_days": 2,
					"servicelevel": {"name": "2nd Day Air"}
				},
				{
					"object_id": "rate_bad",
					"provider": "FedEx",
					"amount": "not-a-number",
					"currency": "USD",
					"estimated_days": 1
				}
			]
		}`))
	}))
	defer ts.Close()

	rates, err := newTestClient(ts).GetRates(context.Background(), testOrigin, testDestination, Parcel{
		Length: 30, Width: 24, Height: 4, Weight: 8,
	})

	require.NoError(t, err)
	// the unparseable rate is dropped, not fatal
	require.Len(t, rates, 2)
	assert.Equal(t, int64(899), rates[0].AmountCents)
	assert.Equal(t, "Priority Mail", rates[0].Service)
	assert.Equal(t, int64(2450), rates[1].AmountCents)
}

func TestGetRates_ValidationError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"zip": ["Invalid postal code."]}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).GetRates(context.Background(), testOrigin, testDestination, Parcel{})

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, 422, provErr.Status)
	assert.Equal(t, "zip: Invalid postal code.", provErr.Message)
}

func TestGetRates_NoRatesWithProviderMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object_id": "shp_2",
			"status": "ERROR",
			"rates": [],
			"messages": [{"source": "UPS", "text": "Destination address could not be verified."}]
		}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).GetRates(context.Background(), testOrigin, testDestination, Parcel{})

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, 422, provErr.Status)
	assert.Equal(t, "Destination address could not be verified.", provErr.Message)
}

func TestGetRates_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse all connections

	_, err := newTestClient(ts).GetRates(context.Background(), testOrigin, testDestination, Parcel{})

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Zero(t, provErr.Status)
}

func TestAmountToCents(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"8.99", 899},
		{"24.50", 2450},
		{"0.10", 10},
		{"1234.00", 123400},
	}

	for _, tt := range tests {
		got, err := amountToCents(tt.amount)
		require.NoError(t, err, tt.amount)
		assert.Equal(t, tt.want, got)
	}

	_, err := amountToCents("free")
	assert.Error(t, err)
}
