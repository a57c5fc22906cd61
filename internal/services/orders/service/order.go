package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/EleazarRosete/lolos-place-backend/internal/events"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/domain/dao"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/domain/dto"
)

const orderTypeDelivery = "Delivery"

func validateCart(cart []dto.CartItem) error {
	if len(cart) == 0 {
		return fmt.Errorf("%w: cart must not be empty", ErrInvalidRequest)
	}
	for _, item := range cart {
		if item.MenuID <= 0 {
			return fmt.Errorf("%w: invalid menu id %d", ErrInvalidRequest, item.MenuID)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: invalid quantity for menu item %d", ErrInvalidRequest, item.MenuID)
		}
	}
	return nil
}

// PlaceDeliveryOrder validates the request, persists the order chain in one
// transaction and publishes the order-placed event after commit. The payment
// confirmation itself is assumed to have happened upstream via the checkout
// session.
func (s *OrdersService) PlaceDeliveryOrder(ctx context.Context, req dto.PlaceDeliveryOrderRequest) (dto.PlaceDeliveryOrderResponse, error) {
	if err := validateCart(req.Cart); err != nil {
		return dto.PlaceDeliveryOrderResponse{}, err
	}
	if req.UserID <= 0 {
		return dto.PlaceDeliveryOrderResponse{}, fmt.Errorf("%w: userId is required", ErrInvalidRequest)
	}
	if req.TotalAmount < 0 {
		return dto.PlaceDeliveryOrderResponse{}, fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidRequest)
	}
	if req.DeliveryLocation == "" {
		return dto.PlaceDeliveryOrderResponse{}, fmt.Errorf("%w: deliveryLocation is required", ErrInvalidRequest)
	}

	now := time.Now()
	order := dao.Order{
		UserID:      req.UserID,
		MOP:         req.MOP,
		TotalAmount: req.TotalAmount,
		OrderType:   orderTypeDelivery,
		Date:        now.Format("2006-01-02"),
		Time:        now.Format("15:04:05"),
		Delivery:    true,
		IsPaid:      true,
	}
	delivery := dao.Delivery{
		Location: req.DeliveryLocation,
		Status:   req.DeliveryStatus,
	}

	order, delivery, err := s.repo.PlaceDeliveryOrder(ctx, order, req.Cart, delivery)
	if err != nil {
		return dto.PlaceDeliveryOrderResponse{}, err
	}

	s.publishPlaced(ctx, order)
	return dto.PlaceDeliveryOrderResponse{Order: order, Delivery: delivery}, nil
}

func (s *OrdersService) PlaceReservationOrder(ctx context.Context, req dto.PlaceReservationOrderRequest) (dto.PlaceReservationOrderResponse, error) {
	if err := validateCart(req.Cart); err != nil {
		return dto.PlaceReservationOrderResponse{}, err
	}
	if req.UserID <= 0 {
		return dto.PlaceReservationOrderResponse{}, fmt.Errorf("%w: userId is required", ErrInvalidRequest)
	}
	if req.GuestNumber <= 0 {
		return dto.PlaceReservationOrderResponse{}, fmt.Errorf("%w: guestNumber must be positive", ErrInvalidRequest)
	}
	if req.ReservationDate == "" || req.ReservationTime == "" {
		return dto.PlaceReservationOrderResponse{}, fmt.Errorf("%w: reservation date and time are required", ErrInvalidRequest)
	}

	now := time.Now()
	reservation := dao.Reservation{
		UserID:          req.UserID,
		GuestNumber:     req.GuestNumber,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		AdvanceOrder:    req.AdvanceOrder,
	}
	order := dao.Order{
		UserID:      req.UserID,
		MOP:         "GCash",
		TotalAmount: req.TotalAmount,
		Date:        now.Format("2006-01-02"),
		Time:        now.Format("15:04:05"),
		Delivery:    false,
	}

	reservation, order, err := s.repo.PlaceReservationOrder(ctx, reservation, order, req.Cart)
	if err != nil {
		return dto.PlaceReservationOrderResponse{}, err
	}

	s.publishPlaced(ctx, order)
	return dto.PlaceReservationOrderResponse{Reservation: reservation, Order: order}, nil
}

// publishPlaced emits the order-placed event. The order is already committed
// at this point, so a broker failure is logged and swallowed.
func (s *OrdersService) publishPlaced(ctx context.Context, order dao.Order) {
	orderType := order.OrderType
	if orderType == "" {
		orderType = "Reservation"
	}
	evt := events.OrderPlaced{
		OrderID:       order.OrderID,
		UserID:        order.UserID,
		OrderType:     orderType,
		TotalAmount:   order.TotalAmount,
		ReservationID: order.ReservationID,
		PlacedAt:      time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderPlaced(ctx, evt); err != nil {
		s.lg.Warn("order_event_publish_failed",
			zap.Int("order_id", order.OrderID),
			zap.Error(err),
		)
	}
}

func (s *OrdersService) OrderHistory(ctx context.Context, userID *int) ([]dao.HistoryOrder, error) {
	return s.repo.OrderHistory(ctx, userID)
}

func (s *OrdersService) SetOrderPaid(ctx context.Context, orderID int, paid bool) error {
	if orderID <= 0 {
		return fmt.Errorf("%w: invalid order id", ErrInvalidRequest)
	}
	return s.repo.SetOrderPaid(ctx, orderID, paid)
}

func (s *OrdersService) SetOrderServed(ctx context.Context, orderID int) error {
	if orderID <= 0 {
		return fmt.Errorf("%w: invalid order id", ErrInvalidRequest)
	}
	return s.repo.SetOrderServed(ctx, orderID)
}

func (s *OrdersService) UpdateDeliveryStatus(ctx context.Context, deliveryID int, status string) error {
	if deliveryID <= 0 {
		return fmt.Errorf("%w: invalid delivery id", ErrInvalidRequest)
	}
	if status == "" {
		return fmt.Errorf("%w: delivery status is required", ErrInvalidRequest)
	}
	return s.repo.UpdateDeliveryStatus(ctx, deliveryID, status)
}

func (s *OrdersService) SetReservationStatus(ctx context.Context, reservationID int, status string) error {
	if reservationID <= 0 {
		return fmt.Errorf("%w: invalid reservation id", ErrInvalidRequest)
	}
	if status != "accepted" && status != "cancelled" {
		return fmt.Errorf("%w: unsupported reservation status %q", ErrInvalidRequest, status)
	}
	return s.repo.SetReservationStatus(ctx, reservationID, status)
}

func (s *OrdersService) ListReservations(ctx context.Context) ([]dao.Reservation, error) {
	return s.repo.ListReservations(ctx)
}

func (s *OrdersService) CancelReservation(ctx context.Context, reservationID int) error {
	if reservationID <= 0 {
		return fmt.Errorf("%w: invalid reservation id", ErrInvalidRequest)
	}
	return s.repo.CancelReservation(ctx, reservationID)
}
