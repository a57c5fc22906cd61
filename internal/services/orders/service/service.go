package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/EleazarRosete/lolos-place-backend/internal/events"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/domain/dao"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/domain/dto"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/repository"
)

// ErrInvalidRequest marks business-rule rejections that map to HTTP 400.
var ErrInvalidRequest = errors.New("invalid request")

type OrdersServiceInterface interface {
	PlaceDeliveryOrder(ctx context.Context, req dto.PlaceDeliveryOrderRequest) (dto.PlaceDeliveryOrderResponse, error)
	PlaceReservationOrder(ctx context.Context, req dto.PlaceReservationOrderRequest) (dto.PlaceReservationOrderResponse, error)
	OrderHistory(ctx context.Context, userID *int) ([]dao.HistoryOrder, error)
	SetOrderPaid(ctx context.Context, orderID int, paid bool) error
	SetOrderServed(ctx context.Context, orderID int) error
	UpdateDeliveryStatus(ctx context.Context, deliveryID int, status string) error
	SetReservationStatus(ctx context.Context, reservationID int, status string) error
	ListReservations(ctx context.Context) ([]dao.Reservation, error)
	CancelReservation(ctx context.Context, reservationID int) error
}

// EventPublisher decouples the service from the broker so tests can observe
// published events.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, evt events.OrderPlaced) error
}

type OrdersService struct {
	repo      repository.OrdersRepositoryInterface
	publisher EventPublisher
	lg        *zap.Logger
}

func NewOrdersService(repo repository.OrdersRepositoryInterface, publisher EventPublisher, lg *zap.Logger) *OrdersService {
	return &OrdersService{repo: repo, publisher: publisher, lg: lg}
}
