package repository

import (
	"context"
	"fmt"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/domain/dao"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/domain/dto"
)

// PlaceDeliveryOrder persists the order, its line items and the delivery row
// in a single transaction. The caller's payment record is flipped to "paid"
// as the first statement of the same transaction, so a failure at any later
// step rolls the mark back together with the order chain.
func (r *OrdersRepository) PlaceDeliveryOrder(ctx context.Context, order dao.Order, cart []dto.CartItem, delivery dao.Delivery) (dao.Order, dao.Delivery, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return dao.Order{}, dao.Delivery{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return dao.Order{}, dao.Delivery{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE payment SET payment_status = $1 WHERE user_id = $2`,
		"paid", order.UserID)
	if err != nil {
		return dao.Order{}, dao.Delivery{}, fmt.Errorf("mark payment paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dao.Order{}, dao.Delivery{}, ErrNoPayment
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, mop, total_amount, date, time, delivery, order_type, ispaid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING order_id`,
		order.UserID, order.MOP, order.TotalAmount, order.Date, order.Time,
		order.Delivery, order.OrderType, order.IsPaid,
	).Scan(&order.OrderID)
	if err != nil {
		return dao.Order{}, dao.Delivery{}, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range cart {
		if _, err = tx.Exec(ctx,
			`INSERT INTO order_quantities (order_id, menu_id, order_quantity) VALUES ($1, $2, $3)`,
			order.OrderID, item.MenuID, item.Quantity); err != nil {
			return dao.Order{}, dao.Delivery{}, fmt.Errorf("insert order item %d: %w", item.MenuID, err)
		}
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO deliveries (order_id, delivery_location, delivery_status)
		VALUES ($1, $2, $3)
		RETURNING delivery_id`,
		order.OrderID, delivery.Location, delivery.Status,
	).Scan(&delivery.DeliveryID)
	if err != nil {
		return dao.Order{}, dao.Delivery{}, fmt.Errorf("insert delivery: %w", err)
	}
	delivery.OrderID = order.OrderID

	if err = tx.Commit(ctx); err != nil {
		return dao.Order{}, dao.Delivery{}, fmt.Errorf("commit transaction: %w", err)
	}
	return order, delivery, nil
}

// PlaceReservationOrder inserts the reservation before the order because the
// order row stores the reservation back-reference, and the order before its
// line items for the same reason.
func (r *OrdersRepository) PlaceReservationOrder(ctx context.Context, reservation dao.Reservation, order dao.Order, cart []dto.CartItem) (dao.Reservation, dao.Order, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return dao.Reservation{}, dao.Order{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return dao.Reservation{}, dao.Order{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE payment SET payment_status = $1 WHERE user_id = $2`,
		"paid", order.UserID)
	if err != nil {
		return dao.Reservation{}, dao.Order{}, fmt.Errorf("mark payment paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return dao.Reservation{}, dao.Order{}, ErrNoPayment
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO reservations (user_id, guest_number, reservation_date, reservation_time, advance_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING reservation_id`,
		reservation.UserID, reservation.GuestNumber, reservation.ReservationDate,
		reservation.ReservationTime, reservation.AdvanceOrder,
	).Scan(&reservation.ReservationID)
	if err != nil {
		return dao.Reservation{}, dao.Order{}, fmt.Errorf("insert reservation: %w", err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, mop, total_amount, date, time, delivery, reservation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING order_id`,
		order.UserID, order.MOP, order.TotalAmount, order.Date, order.Time,
		order.Delivery, reservation.ReservationID,
	).Scan(&order.OrderID)
	if err != nil {
		return dao.Reservation{}, dao.Order{}, fmt.Errorf("insert order: %w", err)
	}
	order.ReservationID = &reservation.ReservationID

	for _, item := range cart {
		if _, err = tx.Exec(ctx,
			`INSERT INTO order_quantities (order_id, menu_id, order_quantity) VALUES ($1, $2, $3)`,
			order.OrderID, item.MenuID, item.Quantity); err != nil {
			return dao.Reservation{}, dao.Order{}, fmt.Errorf("insert order item %d: %w", item.MenuID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return dao.Reservation{}, dao.Order{}, fmt.Errorf("commit transaction: %w", err)
	}
	return reservation, order, nil
}

func (r *OrdersRepository) OrderHistory(ctx context.Context, userID *int) ([]dao.HistoryOrder, error) {
	query := `
		SELECT o.order_id, o.user_id, o.mop, o.total_amount,
		       COALESCE(o.order_type, ''), o.date::text, o.time::text, o.delivery,
		       o.reservation_id, COALESCE(o.status, ''), COALESCE(o.ispaid, false),
		       u.first_name, u.last_name, u.email, u.phone, u.address
		FROM orders o
		JOIN users u ON o.user_id = u.user_id`
	args := []any{}
	if userID != nil {
		query += ` WHERE o.user_id = $1`
		args = append(args, *userID)
	}
	query += ` ORDER BY o.date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query order history: %w", err)
	}
	defer rows.Close()

	var orders []dao.HistoryOrder
	var orderIDs []int
	var reservationIDs []int
	for rows.Next() {
		var o dao.HistoryOrder
		if err := rows.Scan(&o.OrderID, &o.UserID, &o.MOP, &o.TotalAmount,
			&o.OrderType, &o.Date, &o.Time, &o.Delivery,
			&o.ReservationID, &o.Status, &o.IsPaid,
			&o.FirstName, &o.LastName, &o.Email, &o.Phone, &o.Address); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Items = []dao.HistoryItem{}
		orders = append(orders, o)
		orderIDs = append(orderIDs, o.OrderID)
		if o.ReservationID != nil {
			reservationIDs = append(reservationIDs, *o.ReservationID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []dao.HistoryOrder{}, nil
	}

	items, err := r.historyItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	reservations, err := r.historyReservations(ctx, reservationIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = items[orders[i].OrderID]
		if orders[i].Items == nil {
			orders[i].Items = []dao.HistoryItem{}
		}
		if orders[i].ReservationID != nil {
			if res, ok := reservations[*orders[i].ReservationID]; ok {
				orders[i].ReservationDate = &res.ReservationDate
				orders[i].ReservationTime = &res.ReservationTime
			}
		}
	}
	return orders, nil
}

func (r *OrdersRepository) historyItems(ctx context.Context, orderIDs []int) (map[int][]dao.HistoryItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT oq.order_id, oq.menu_id, oq.order_quantity, mi.name AS menu_name
		FROM order_quantities oq
		JOIN menu_items mi ON oq.menu_id = mi.menu_id
		WHERE oq.order_id = ANY($1)`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()

	out := make(map[int][]dao.HistoryItem)
	for rows.Next() {
		var it dao.HistoryItem
		if err := rows.Scan(&it.OrderID, &it.MenuID, &it.Quantity, &it.MenuName); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

func (r *OrdersRepository) historyReservations(ctx context.Context, ids []int) (map[int]dao.Reservation, error) {
	out := make(map[int]dao.Reservation)
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT reservation_id, reservation_date::text, reservation_time::text
		FROM reservations
		WHERE reservation_id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var res dao.Reservation
		if err := rows.Scan(&res.ReservationID, &res.ReservationDate, &res.ReservationTime); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out[res.ReservationID] = res
	}
	return out, rows.Err()
}

func (r *OrdersRepository) SetOrderPaid(ctx context.Context, orderID int, paid bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET ispaid = $1 WHERE order_id = $2`, paid, orderID)
	if err != nil {
		return fmt.Errorf("update ispaid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", orderID)
	}
	return nil
}

func (r *OrdersRepository) SetOrderServed(ctx context.Context, orderID int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = 'served' WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", orderID)
	}
	return nil
}

func (r *OrdersRepository) UpdateDeliveryStatus(ctx context.Context, deliveryID int, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE deliveries SET delivery_status = $1 WHERE delivery_id = $2`, status, deliveryID)
	if err != nil {
		return fmt.Errorf("update delivery status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delivery %d not found", deliveryID)
	}
	return nil
}

// SetReservationStatus marks the order linked to a reservation as accepted
// or cancelled.
func (r *OrdersRepository) SetReservationStatus(ctx context.Context, reservationID int, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $1 WHERE reservation_id = $2`, status, reservationID)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reservation %d not found", reservationID)
	}
	return nil
}

func (r *OrdersRepository) ListReservations(ctx context.Context) ([]dao.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT reservation_id, user_id, guest_number,
		       reservation_date::text, reservation_time::text, advance_order
		FROM reservations
		ORDER BY reservation_date, reservation_time`)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	out := []dao.Reservation{}
	for rows.Next() {
		var res dao.Reservation
		if err := rows.Scan(&res.ReservationID, &res.UserID, &res.GuestNumber,
			&res.ReservationDate, &res.ReservationTime, &res.AdvanceOrder); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *OrdersRepository) CancelReservation(ctx context.Context, reservationID int) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM reservations WHERE reservation_id = $1`, reservationID)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reservation %d not found", reservationID)
	}
	return nil
}
