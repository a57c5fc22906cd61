package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/domain/dto"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/gateway"
)

const currency = "PHP"

// CreateCheckoutSession creates a provider checkout page for the cart and,
// only after the provider returns a URL, upserts the user's payment record
// with a freshly generated session token and status pending. A gateway
// failure therefore leaves no local state behind; an upsert failure after a
// successful gateway call is surfaced without cancelling the provider
// session (no compensating action exists).
func (s *PaymentsService) CreateCheckoutSession(ctx context.Context, req dto.CreateCheckoutSessionRequest) (dto.CreateCheckoutSessionResponse, error) {
	if err := validateCheckout(req); err != nil {
		return dto.CreateCheckoutSessionResponse{}, err
	}

	items := make([]gateway.CheckoutLineItem, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		items = append(items, gateway.CheckoutLineItem{
			Currency: currency,
			Amount:   toMinorUnits(li.Price),
			Name:     li.Name,
			Quantity: li.Quantity,
		})
	}
	return s.createSession(ctx, req, items)
}

// CreateDownpaymentSession is the reservation down-payment variant: same
// flow, fixed line-item name.
func (s *PaymentsService) CreateDownpaymentSession(ctx context.Context, req dto.CreateCheckoutSessionRequest) (dto.CreateCheckoutSessionResponse, error) {
	if err := validateCheckout(req); err != nil {
		return dto.CreateCheckoutSessionResponse{}, err
	}

	items := make([]gateway.CheckoutLineItem, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		items = append(items, gateway.CheckoutLineItem{
			Currency: currency,
			Amount:   toMinorUnits(li.Price),
			Name:     "Downpayment",
			Quantity: 1,
		})
	}
	return s.createSession(ctx, req, items)
}

func (s *PaymentsService) createSession(ctx context.Context, req dto.CreateCheckoutSessionRequest, items []gateway.CheckoutLineItem) (dto.CreateCheckoutSessionResponse, error) {
	token := newSessionToken()
	successURL, cancelURL := s.redirectURLs(req.UserID, req.From, token)

	checkoutURL, err := s.gw.CreateCheckoutSession(ctx, gateway.CheckoutSessionRequest{
		LineItems:  items,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	})
	if err != nil {
		return dto.CreateCheckoutSessionResponse{}, err
	}

	if err := s.repo.UpsertPending(ctx, req.UserID, token); err != nil {
		s.lg.Error("payment_upsert_failed",
			zap.Int("user_id", req.UserID),
			zap.Error(err),
		)
		return dto.CreateCheckoutSessionResponse{}, err
	}

	s.lg.Info("checkout_session_created",
		zap.Int("user_id", req.UserID),
		zap.String("from", req.From),
	)
	return dto.CreateCheckoutSessionResponse{URL: checkoutURL}, nil
}

// CheckPaymentStatus is a pure read; a missing record yields the exists:false
// sentinel, never an error.
func (s *PaymentsService) CheckPaymentStatus(ctx context.Context, userID int) (dto.PaymentStatusResponse, error) {
	payment, ok, err := s.repo.GetStatus(ctx, userID)
	if err != nil {
		return dto.PaymentStatusResponse{}, err
	}
	if !ok {
		return dto.PaymentStatusResponse{Exists: false}, nil
	}
	return dto.PaymentStatusResponse{
		Exists:    true,
		SessionID: payment.SessionID,
		Status:    payment.Status,
	}, nil
}

// redirectURLs picks the post-checkout destinations. The admin account goes
// back to the point-of-sale or the admin order screen; everyone else lands
// on the public success page carrying the session token.
func (s *PaymentsService) redirectURLs(userID int, from, token string) (successURL, cancelURL string) {
	if userID == s.cfg.AdminUserID {
		if from == "pos" {
			return s.cfg.AdminBaseURL + "/pos/successful", s.cfg.AdminBaseURL + "/pos/failed"
		}
		return s.cfg.AdminBaseURL + "/orders/successful", s.cfg.AdminBaseURL + "/orders/failed"
	}
	return fmt.Sprintf("%s/successpage?session_id=%s", s.cfg.LandingURL, token), s.cfg.LandingURL
}

func validateCheckout(req dto.CreateCheckoutSessionRequest) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id is required", ErrInvalidRequest)
	}
	if len(req.LineItems) == 0 {
		return fmt.Errorf("%w: lineItems must not be empty", ErrInvalidRequest)
	}
	for _, li := range req.LineItems {
		if li.Price < 0 {
			return fmt.Errorf("%w: negative price for %q", ErrInvalidRequest, li.Name)
		}
	}
	return nil
}

func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
