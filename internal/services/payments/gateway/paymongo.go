package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CheckoutLineItem is the provider's line-item representation: integer
// minor-unit amounts in a fixed currency.
type CheckoutLineItem struct {
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type CheckoutSessionRequest struct {
	LineItems  []CheckoutLineItem
	SuccessURL string
	CancelURL  string
}

// Error carries the provider's raw response body so callers can surface it.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("checkout provider returned %d: %s", e.StatusCode, e.Body)
}

// Client calls the PayMongo checkout-session API.
type Client struct {
	httpClient *http.Client
	url        string
	secretKey  string
}

func NewClient(url, secretKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		url:        url,
		secretKey:  secretKey,
	}
}

type sessionAttributes struct {
	SendEmailReceipt   bool               `json:"send_email_receipt"`
	ShowLineItems      bool               `json:"show_line_items"`
	LineItems          []CheckoutLineItem `json:"line_items"`
	PaymentMethodTypes []string           `json:"payment_method_types"`
	SuccessURL         string             `json:"success_url"`
	CancelURL          string             `json:"cancel_url"`
	CheckoutURL        string             `json:"checkout_url,omitempty"`
}

type sessionEnvelope struct {
	Data struct {
		Attributes sessionAttributes `json:"attributes"`
	} `json:"data"`
}

// CreateCheckoutSession creates a provider-hosted checkout page and returns
// its URL. Non-2xx responses surface the provider's body via *Error.
func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (string, error) {
	payload := sessionEnvelope{}
	payload.Data.Attributes = sessionAttributes{
		SendEmailReceipt:   false,
		ShowLineItems:      true,
		LineItems:          req.LineItems,
		PaymentMethodTypes: []string{"gcash"},
		SuccessURL:         req.SuccessURL,
		CancelURL:          req.CancelURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal checkout request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build checkout request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization",
		"Basic "+base64.StdEncoding.EncodeToString([]byte(c.secretKey)))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call checkout provider: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read provider response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var out sessionEnvelope
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decode provider response: %w", err)
	}
	if out.Data.Attributes.CheckoutURL == "" {
		return "", fmt.Errorf("checkout URL not found in response")
	}
	return out.Data.Attributes.CheckoutURL, nil
}
