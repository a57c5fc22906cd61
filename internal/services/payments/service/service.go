package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/EleazarRosete/lolos-place-backend/internal/config"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/domain/dto"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/gateway"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/repository"
)

var ErrInvalidRequest = errors.New("invalid request")

type PaymentsServiceInterface interface {
	CreateCheckoutSession(ctx context.Context, req dto.CreateCheckoutSessionRequest) (dto.CreateCheckoutSessionResponse, error)
	CreateDownpaymentSession(ctx context.Context, req dto.CreateCheckoutSessionRequest) (dto.CreateCheckoutSessionResponse, error)
	CheckPaymentStatus(ctx context.Context, userID int) (dto.PaymentStatusResponse, error)
}

// Gateway is the checkout-provider contract consumed by the service.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req gateway.CheckoutSessionRequest) (string, error)
}

type PaymentsService struct {
	repo repository.PaymentsRepositoryInterface
	gw   Gateway
	cfg  config.PaymentConfig
	lg   *zap.Logger
}

func NewPaymentsService(repo repository.PaymentsRepositoryInterface, gw Gateway, cfg config.PaymentConfig, lg *zap.Logger) *PaymentsService {
	return &PaymentsService{repo: repo, gw: gw, cfg: cfg, lg: lg}
}
