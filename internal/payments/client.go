package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.stripe.com/v1"

// shared HTTP client for Stripe API calls
var stripeHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Stripe API calls (25 requests/second with burst capacity of 5)
var stripeRateLimiter = rate.NewLimiter(25, 5)

// Client talks to the Stripe PaymentIntents API.
type Client struct {
	config     Config
	baseURL    string
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		config:     config,
		baseURL:    defaultBaseURL,
		httpClient: stripeHTTPClient,
	}
}

// wire shape of a provider error response
type errorResponse struct {
	Error struct {
		Type        string `json:"type"`
		Code        string `json:"code"`
		Param       string `json:"param"`
		DeclineCode string `json:"decline_code"`
		Message     string `json:"message"`
	} `json:"error"`
}

// CreateIntent creates a payment intent for the given amount.
func (c *Client) CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.AmountCents, 10))
	form.Set("currency", params.Currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	if params.ReceiptEmail != "" {
		form.Set("receipt_email", params.ReceiptEmail)
	}

	if params.OrderID != "" {
		form.Set("metadata[order_id]", params.OrderID)
	}

	if params.Description != "" {
		form.Set("description", params.Description)
	}

	var intent Intent
	if err := c.do(ctx, http.MethodPost, "/payment_intents", form, &intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

// GetIntent fetches a payment intent by id.
func (c *Client) GetIntent(ctx context.Context, intentID string) (*Intent, error) {
	var intent Intent
	if err := c.do(ctx, http.MethodGet, "/payment_intents/"+intentID, nil, &intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

// CancelIntent cancels a payment intent.
func (c *Client) CancelIntent(ctx context.Context, intentID string) (*Intent, error) {
	var intent Intent
	if err := c.do(ctx, http.MethodPost, "/payment_intents/"+intentID+"/cancel", nil, &intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

// sends one form-encoded request and decodes the response, converting
// non-2xx responses and transport failures into *Error
func (c *Client) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// rate limiting
	if err := stripeRateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{
			Type:    ErrTypeConnection,
			Message: fmt.Sprintf("request to payment provider failed: %v", err),
		}
	}

	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{
			Type:       ErrTypeConnection,
			Message:    fmt.Sprintf("failed to read payment provider response: %v", err),
			StatusCode: resp.StatusCode,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode payment provider response: %w", err)
		}
	}

	return nil
}

// decodes a provider error payload into *Error
func parseError(status int, body []byte) *Error {
	var wire errorResponse
	if err := json.Unmarshal(body, &wire); err != nil || wire.Error.Type == "" {
		return &Error{
			Type:       ErrTypeAPI,
			Message:    fmt.Sprintf("payment provider returned status %d", status),
			StatusCode: status,
		}
	}

	return &Error{
		Type:        errTypeFromWire(wire.Error.Type),
		Code:        wire.Error.Code,
		Param:       wire.Error.Param,
		DeclineCode: wire.Error.DeclineCode,
		Message:     wire.Error.Message,
		StatusCode:  status,
	}
}
