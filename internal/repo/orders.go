package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var orderColumns = []string{
	"order_id", "order_no", "shop_id", "status",
	"buyer_name", "buyer_phone", "buyer_address", "buyer_lat", "buyer_lng", "note",
	"subtotal", "delivery_fee", "cod_fee", "total",
	"scheduled_at", "scheduled_label",
	"created_at", "confirmed_at", "dispatched_at", "picked_up_at",
	"delivered_at", "cancelled_at", "failed_at", "fail_reason",
}

// statusTimestamps — какая колонка штампуется при входе в статус.
var statusTimestamps = map[entities.OrderStatus]string{
	entities.OrderStatusConfirmed:  "confirmed_at",
	entities.OrderStatusDispatched: "dispatched_at",
	entities.OrderStatusPickedUp:   "picked_up_at",
	entities.OrderStatusDelivered:  "delivered_at",
	entities.OrderStatusCancelled:  "cancelled_at",
	entities.OrderStatusFailed:     "failed_at",
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_id", "order_no", "shop_id", "status",
			"buyer_name", "buyer_phone", "buyer_address", "buyer_lat", "buyer_lng", "note",
			"subtotal", "delivery_fee", "cod_fee", "total",
			"scheduled_at", "scheduled_label", "created_at",
		).
		Values(
			o.OrderID, o.OrderNo, o.ShopID, string(o.Status),
			o.BuyerName, o.BuyerPhone, o.BuyerAddress, o.BuyerLat, o.BuyerLng, nullString(o.Note),
			o.Subtotal, o.DeliveryFee, o.CODFee, o.Total,
			o.ScheduledAt, o.ScheduledLabel, o.CreatedAt,
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "product_id", "name", "price", "quantity")

	for _, it := range items {
		q = q.Values(orderID, it.ProductID, it.Name, it.Price, it.Quantity)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_id": orderID})
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNo string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_no": orderNo})
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.getItems(ctx, order.OrderID)
	if err != nil {
		return entities.Order{}, err
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) GetOrderItems(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	items, err := r.getItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	result := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		result = append(result, ItemToEntity(it))
	}
	return result, nil
}

func (r *postgresRepo) getItems(ctx context.Context, orderID string) ([]OrderItem, error) {
	query, args := r.qb.Select("order_id", "product_id", "name", "price", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	return items, nil
}

// ListBySellerAndIDs возвращает заказы из ids, принадлежащие продавцу.
// Чужие и несуществующие просто не попадают в результат.
func (r *postgresRepo) ListBySellerAndIDs(ctx context.Context, sellerID string, orderIDs []string) ([]entities.Order, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Join("shops ON shops.shop_id = orders.shop_id").
		Where(sq.Eq{"orders.order_id": orderIDs, "shops.seller_id": sellerID}).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, nil))
	}
	return result, nil
}

// UpdateStatus — условный переход: строка меняется только если заказ
// всё ещё в статусе from. Возвращает false, если переход проиграл гонку.
// Для failed дополнительно пишется причина.
func (r *postgresRepo) UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, at time.Time, reason string) (bool, error) {
	q := r.qb.Update("orders").
		Set("status", string(to)).
		Where(sq.Eq{"order_id": orderID, "status": string(from)})

	if col, ok := statusTimestamps[to]; ok {
		q = q.Set(col, at)
	}
	if to == entities.OrderStatusFailed {
		q = q.Set("fail_reason", nullString(reason))
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected > 0, nil
}

// SetDeliveryFee фиксирует фактическую комиссию провайдера и
// пересчитывает total, чтобы инвариант total = subtotal + delivery_fee + cod_fee
// не нарушался.
func (r *postgresRepo) SetDeliveryFee(ctx context.Context, orderID string, fee int) error {
	query, args := r.qb.Update("orders").
		Set("delivery_fee", fee).
		Set("total", sq.Expr("subtotal + ? + cod_fee", fee)).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set delivery fee: %w", err)
	}
	return nil
}
