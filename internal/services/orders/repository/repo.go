package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/domain/dao"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/domain/dto"
)

// ErrNoPayment is returned when an order is placed for a user that has no
// payment record. The workflow treats this as a business-rule rejection, not
// a persistence failure.
var ErrNoPayment = errors.New("no payment found for the customer")

type OrdersRepositoryInterface interface {
	PlaceDeliveryOrder(ctx context.Context, order dao.Order, cart []dto.CartItem, delivery dao.Delivery) (dao.Order, dao.Delivery, error)
	PlaceReservationOrder(ctx context.Context, reservation dao.Reservation, order dao.Order, cart []dto.CartItem) (dao.Reservation, dao.Order, error)
	OrderHistory(ctx context.Context, userID *int) ([]dao.HistoryOrder, error)
	SetOrderPaid(ctx context.Context, orderID int, paid bool) error
	SetOrderServed(ctx context.Context, orderID int) error
	UpdateDeliveryStatus(ctx context.Context, deliveryID int, status string) error
	SetReservationStatus(ctx context.Context, reservationID int, status string) error
	ListReservations(ctx context.Context) ([]dao.Reservation, error)
	CancelReservation(ctx context.Context, reservationID int) error
}

type OrdersRepository struct {
	pool *pgxpool.Pool
}

func NewOrdersRepository(pool *pgxpool.Pool) *OrdersRepository {
	return &OrdersRepository{pool: pool}
}
