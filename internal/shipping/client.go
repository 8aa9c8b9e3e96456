package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const shippoShipmentsURL = "https://api.goshippo.com/shipments/"

// shared HTTP client for Shippo API calls
var shippoHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Shippo API calls (10 requests/second with burst capacity of 5)
var shippoRateLimiter = rate.NewLimiter(10, 5)

// Client talks to the Shippo shipments API.
type Client struct {
	config     Config
	baseURL    string
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		config:     config,
		baseURL:    shippoShipmentsURL,
		httpClient: shippoHTTPClient,
	}
}

type shipmentRequest struct {
	AddressFrom Address  `json:"address_from"`
	AddressTo   Address  `json:"address_to"`
	Parcels     []Parcel `json:"parcels"`
	Async       bool     `json:"async"`
}

type shipmentResponse struct {
	ObjectID string     `json:"object_id"`
	Status   string     `json:"status"`
	Rates    []wireRate `json:"rates"`
	Messages []struct {
		Source string `json:"source"`
		Text   string `json:"text"`
	} `json:"messages"`
}

type wireRate struct {
	ObjectID      string `json:"object_id"`
	Provider      string `json:"provider"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	EstimatedDays int    `json:"estimated_days"`
	DurationTerms string `json:"duration_terms"`
	ServiceLevel  struct {
		Name string `json:"name"`
	} `json:"servicelevel"`
}

// GetRates creates a synchronous shipment and returns all carrier rates.
func (c *Client) GetRates(ctx context.Context, from, to Address, parcel Parcel) ([]Rate, error) {
	reqBody := shipmentRequest{
		AddressFrom: from,
		AddressTo:   to,
		Parcels:     []Parcel{parcel},
		Async:       false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shipment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ShippoToken "+c.config.APIToken)

	// rate limiting
	if err := shippoRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("request to shipping provider failed: %v", err)}
	}

	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: fmt.Sprintf("failed to read shipping provider response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseError(resp.StatusCode, respBody)
	}

	var shipment shipmentResponse
	if err := json.Unmarshal(respBody, &shipment); err != nil {
		return nil, fmt.Errorf("failed to decode shipping provider response: %w", err)
	}

	rates := make([]Rate, 0, len(shipment.Rates))

	for _, wr := range shipment.Rates {
		cents, err := amountToCents(wr.Amount)
		if err != nil {
			continue // skip rates with unparseable amounts
		}

		rates = append(rates, Rate{
			ObjectID:      wr.ObjectID,
			Provider:      wr.Provider,
			Service:       wr.ServiceLevel.Name,
			AmountCents:   cents,
			Currency:      wr.Currency,
			EstimatedDays: wr.EstimatedDays,
			DurationTerms: wr.DurationTerms,
		})
	}

	if len(rates) == 0 && len(shipment.Messages) > 0 {
		return nil, &Error{
			Status:  http.StatusUnprocessableEntity,
			Message: shipment.Messages[0].Text,
		}
	}

	return rates, nil
}

// converts the provider's decimal string amount to integer cents
func amountToCents(amount string) (int64, error) {
	f, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, err
	}

	return int64(math.Round(f * 100)), nil
}

// decodes a provider error payload into *Error
func parseError(status int, body []byte) *Error {
	// validation errors come back as {"field": ["message", ...]}
	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err == nil {
		for field, messages := range fields {
			if len(messages) > 0 {
				return &Error{Status: status, Message: field + ": " + messages[0]}
			}
		}
	}

	var generic struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &generic); err == nil && generic.Detail != "" {
		return &Error{Status: status, Message: generic.Detail}
	}

	return &Error{Status: status, Message: fmt.Sprintf("shipping provider returned status %d", status)}
}
