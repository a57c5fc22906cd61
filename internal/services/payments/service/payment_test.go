package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/EleazarRosete/lolos-place-backend/internal/config"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/domain/dao"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/domain/dto"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/gateway"
)

type fakePaymentsRepo struct {
	upsertErr     error
	upsertedUser  int
	upsertedToken string
	upsertCalls   int

	payment dao.Payment
	exists  bool
	getErr  error
}

func (f *fakePaymentsRepo) UpsertPending(_ context.Context, userID int, sessionID string) error {
	f.upsertCalls++
	f.upsertedUser = userID
	f.upsertedToken = sessionID
	return f.upsertErr
}

func (f *fakePaymentsRepo) GetStatus(_ context.Context, _ int) (dao.Payment, bool, error) {
	return f.payment, f.exists, f.getErr
}

type fakeGateway struct {
	url  string
	err  error
	last gateway.CheckoutSessionRequest
}

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, req gateway.CheckoutSessionRequest) (string, error) {
	f.last = req
	return f.url, f.err
}

func testConfig() config.PaymentConfig {
	return config.PaymentConfig{
		AdminBaseURL: "https://admin.example.com/admin",
		LandingURL:   "https://shop.example.com",
		AdminUserID:  14,
	}
}

func newTestService(repo *fakePaymentsRepo, gw *fakeGateway) *PaymentsService {
	return NewPaymentsService(repo, gw, testConfig(), zap.NewNop())
}

func checkoutReq(userID int) dto.CreateCheckoutSessionRequest {
	return dto.CreateCheckoutSessionRequest{
		UserID: userID,
		LineItems: []dto.LineItem{
			{Name: "Sisig", Price: 199.50, Quantity: 2},
		},
	}
}

func TestNewSessionToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token := newSessionToken()
		if len(token) != tokenLength {
			t.Fatalf("token length = %d, want %d", len(token), tokenLength)
		}
		for _, c := range token {
			if !strings.ContainsRune(tokenAlphabet, c) {
				t.Fatalf("token %q contains %q outside alphabet", token, c)
			}
		}
		if seen[token] {
			t.Fatalf("duplicate token %q", token)
		}
		seen[token] = true
	}
}

func TestCreateCheckoutSessionValidation(t *testing.T) {
	svc := newTestService(&fakePaymentsRepo{}, &fakeGateway{})

	cases := []struct {
		name string
		req  dto.CreateCheckoutSessionRequest
	}{
		{"missing user", dto.CreateCheckoutSessionRequest{LineItems: []dto.LineItem{{Name: "x", Price: 1, Quantity: 1}}}},
		{"empty cart", dto.CreateCheckoutSessionRequest{UserID: 3}},
		{"negative price", dto.CreateCheckoutSessionRequest{UserID: 3, LineItems: []dto.LineItem{{Name: "x", Price: -1, Quantity: 1}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateCheckoutSession(context.Background(), tc.req)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("err = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestCreateCheckoutSessionSuccess(t *testing.T) {
	repo := &fakePaymentsRepo{}
	gw := &fakeGateway{url: "https://pay.example.com/cs_123"}
	svc := newTestService(repo, gw)

	resp, err := svc.CreateCheckoutSession(context.Background(), checkoutReq(3))
	if err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if resp.URL != gw.url {
		t.Errorf("url = %q, want %q", resp.URL, gw.url)
	}
	if repo.upsertCalls != 1 || repo.upsertedUser != 3 {
		t.Errorf("upsert calls = %d user = %d, want 1 call for user 3", repo.upsertCalls, repo.upsertedUser)
	}
	if len(repo.upsertedToken) != tokenLength {
		t.Errorf("stored token length = %d, want %d", len(repo.upsertedToken), tokenLength)
	}

	if len(gw.last.LineItems) != 1 {
		t.Fatalf("gateway line items = %d, want 1", len(gw.last.LineItems))
	}
	li := gw.last.LineItems[0]
	if li.Amount != 19950 {
		t.Errorf("amount = %d, want 19950 centavos", li.Amount)
	}
	if li.Currency != "PHP" {
		t.Errorf("currency = %q, want PHP", li.Currency)
	}
	wantSuccess := "https://shop.example.com/successpage?session_id=" + repo.upsertedToken
	if gw.last.SuccessURL != wantSuccess {
		t.Errorf("success url = %q, want %q", gw.last.SuccessURL, wantSuccess)
	}
	if gw.last.CancelURL != "https://shop.example.com" {
		t.Errorf("cancel url = %q", gw.last.CancelURL)
	}
}

func TestCreateCheckoutSessionGatewayFailureSkipsUpsert(t *testing.T) {
	repo := &fakePaymentsRepo{}
	gw := &fakeGateway{err: errors.New("provider down")}
	svc := newTestService(repo, gw)

	if _, err := svc.CreateCheckoutSession(context.Background(), checkoutReq(3)); err == nil {
		t.Fatal("expected error from gateway")
	}
	if repo.upsertCalls != 0 {
		t.Errorf("upsert called %d times after gateway failure, want 0", repo.upsertCalls)
	}
}

func TestCreateCheckoutSessionUpsertFailureSurfaced(t *testing.T) {
	repo := &fakePaymentsRepo{upsertErr: errors.New("db down")}
	gw := &fakeGateway{url: "https://pay.example.com/cs_123"}
	svc := newTestService(repo, gw)

	if _, err := svc.CreateCheckoutSession(context.Background(), checkoutReq(3)); err == nil {
		t.Fatal("expected upsert error to be surfaced")
	}
}

func TestAdminRedirectURLs(t *testing.T) {
	repo := &fakePaymentsRepo{}
	gw := &fakeGateway{url: "https://pay.example.com/cs_123"}
	svc := newTestService(repo, gw)

	req := checkoutReq(14)
	req.From = "pos"
	if _, err := svc.CreateCheckoutSession(context.Background(), req); err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if gw.last.SuccessURL != "https://admin.example.com/admin/pos/successful" {
		t.Errorf("pos success url = %q", gw.last.SuccessURL)
	}
	if gw.last.CancelURL != "https://admin.example.com/admin/pos/failed" {
		t.Errorf("pos cancel url = %q", gw.last.CancelURL)
	}

	req.From = ""
	if _, err := svc.CreateCheckoutSession(context.Background(), req); err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if gw.last.SuccessURL != "https://admin.example.com/admin/orders/successful" {
		t.Errorf("admin success url = %q", gw.last.SuccessURL)
	}
	if gw.last.CancelURL != "https://admin.example.com/admin/orders/failed" {
		t.Errorf("admin cancel url = %q", gw.last.CancelURL)
	}
}

func TestCreateDownpaymentSessionRenamesItems(t *testing.T) {
	repo := &fakePaymentsRepo{}
	gw := &fakeGateway{url: "https://pay.example.com/cs_dp"}
	svc := newTestService(repo, gw)

	req := dto.CreateCheckoutSessionRequest{
		UserID: 5,
		LineItems: []dto.LineItem{
			{Name: "Table for 4", Price: 500, Quantity: 4},
		},
	}
	if _, err := svc.CreateDownpaymentSession(context.Background(), req); err != nil {
		t.Fatalf("CreateDownpaymentSession: %v", err)
	}
	li := gw.last.LineItems[0]
	if li.Name != "Downpayment" {
		t.Errorf("name = %q, want Downpayment", li.Name)
	}
	if li.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", li.Quantity)
	}
	if li.Amount != 50000 {
		t.Errorf("amount = %d, want 50000", li.Amount)
	}
}

func TestCheckPaymentStatus(t *testing.T) {
	t.Run("missing record", func(t *testing.T) {
		svc := newTestService(&fakePaymentsRepo{}, &fakeGateway{})
		resp, err := svc.CheckPaymentStatus(context.Background(), 99)
		if err != nil {
			t.Fatalf("CheckPaymentStatus: %v", err)
		}
		if resp.Exists {
			t.Error("exists = true for missing record")
		}
	})

	t.Run("existing record", func(t *testing.T) {
		repo := &fakePaymentsRepo{
			payment: dao.Payment{UserID: 3, SessionID: "tok", Status: dao.StatusPaid},
			exists:  true,
		}
		svc := newTestService(repo, &fakeGateway{})
		resp, err := svc.CheckPaymentStatus(context.Background(), 3)
		if err != nil {
			t.Fatalf("CheckPaymentStatus: %v", err)
		}
		if !resp.Exists || resp.SessionID != "tok" || resp.Status != dao.StatusPaid {
			t.Errorf("resp = %+v", resp)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		svc := newTestService(&fakePaymentsRepo{getErr: errors.New("db down")}, &fakeGateway{})
		if _, err := svc.CheckPaymentStatus(context.Background(), 3); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{1, 100},
		{199.50, 19950},
		{0.1, 10},
		{123.456, 12346},
	}
	for _, tc := range cases {
		if got := toMinorUnits(tc.price); got != tc.want {
			t.Errorf("toMinorUnits(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}
