package service

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/EleazarRosete/lolos-place-backend/internal/connections/rabbitmq"
	"github.com/EleazarRosete/lolos-place-backend/internal/events"
	usersrepo "github.com/EleazarRosete/lolos-place-backend/internal/services/users/repository"
)

// Mailer is the subset of the SMTP mailer the notifier needs.
type Mailer interface {
	SendOrderConfirmation(to string) error
	SendReservationCancellation(to, customerName, details string) error
}

// NotifierService consumes order-placed events and emails the customer.
type NotifierService struct {
	broker *rabbitmq.Client
	users  usersrepo.UsersRepositoryInterface
	mailer Mailer
	lg     *zap.Logger
}

func NewNotifierService(broker *rabbitmq.Client, users usersrepo.UsersRepositoryInterface, mailer Mailer, lg *zap.Logger) *NotifierService {
	return &NotifierService{broker: broker, users: users, mailer: mailer, lg: lg}
}

// Run consumes the notifications queue until ctx is cancelled.
func (s *NotifierService) Run(ctx context.Context) error {
	deliveries, err := s.broker.Consume(rabbitmq.NotificationsQueue, "notifier", 1)
	if err != nil {
		return err
	}
	s.lg.Info("notifier started", zap.String("queue", rabbitmq.NotificationsQueue))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				s.lg.Warn("notifications channel closed")
				return nil
			}
			s.handle(ctx, d)
		}
	}
}

func (s *NotifierService) handle(ctx context.Context, d amqp.Delivery) {
	var ev events.OrderPlaced
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		s.lg.Error("bad event payload", zap.Error(err))
		_ = d.Nack(false, false)
		return
	}
	user, err := s.users.GetByID(ctx, ev.UserID)
	if err != nil {
		s.lg.Error("lookup user for notification",
			zap.Int("user_id", ev.UserID), zap.Int("order_id", ev.OrderID), zap.Error(err))
		_ = d.Nack(false, false)
		return
	}
	if err := s.mailer.SendOrderConfirmation(user.Email); err != nil {
		s.lg.Error("send order confirmation",
			zap.String("email", user.Email), zap.Int("order_id", ev.OrderID), zap.Error(err))
		_ = d.Nack(false, true)
		return
	}
	s.lg.Info("order confirmation sent",
		zap.Int("order_id", ev.OrderID), zap.String("order_type", ev.OrderType))
	_ = d.Ack(false)
}
