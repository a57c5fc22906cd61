package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func sessionRequest() CheckoutSessionRequest {
	return CheckoutSessionRequest{
		LineItems: []CheckoutLineItem{
			{Currency: "PHP", Amount: 19950, Name: "Sisig", Quantity: 2},
		},
		SuccessURL: "https://shop.example.com/successpage?session_id=tok",
		CancelURL:  "https://shop.example.com",
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	var got sessionEnvelope
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		var out sessionEnvelope
		out.Data.Attributes.CheckoutURL = "https://pay.example.com/cs_abc"
		json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test_key")
	url, err := c.CreateCheckoutSession(context.Background(), sessionRequest())
	if err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if url != "https://pay.example.com/cs_abc" {
		t.Errorf("url = %q", url)
	}

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("sk_test_key"))
	if auth != wantAuth {
		t.Errorf("authorization = %q, want %q", auth, wantAuth)
	}

	attrs := got.Data.Attributes
	if attrs.SendEmailReceipt {
		t.Error("send_email_receipt = true, want false")
	}
	if !attrs.ShowLineItems {
		t.Error("show_line_items = false, want true")
	}
	if len(attrs.PaymentMethodTypes) != 1 || attrs.PaymentMethodTypes[0] != "gcash" {
		t.Errorf("payment_method_types = %v", attrs.PaymentMethodTypes)
	}
	if len(attrs.LineItems) != 1 || attrs.LineItems[0].Amount != 19950 {
		t.Errorf("line_items = %+v", attrs.LineItems)
	}
	if attrs.SuccessURL != "https://shop.example.com/successpage?session_id=tok" {
		t.Errorf("success_url = %q", attrs.SuccessURL)
	}
}

func TestCreateCheckoutSessionMissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"attributes":{}}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk")
	if _, err := c.CreateCheckoutSession(context.Background(), sessionRequest()); err == nil {
		t.Fatal("expected error for response without checkout_url")
	}
}

func TestCreateCheckoutSessionProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"errors":[{"detail":"insufficient funds"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk")
	_, err := c.CreateCheckoutSession(context.Background(), sessionRequest())

	var provErr *Error
	if !errors.As(err, &provErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if provErr.StatusCode != http.StatusPaymentRequired {
		t.Errorf("status = %d, want 402", provErr.StatusCode)
	}
	if provErr.Body != `{"errors":[{"detail":"insufficient funds"}]}` {
		t.Errorf("body = %q", provErr.Body)
	}
}
