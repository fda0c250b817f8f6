package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var deliveryColumns = []string{
	"delivery_id", "order_id", "provider_order_id", "provider_status", "status",
	"provider_fee", "cod_amount",
	"driver_name", "driver_phone", "driver_plate", "share_link",
	"created_at", "picked_up_at", "delivered_at",
}

func (r *postgresRepo) CreateDelivery(ctx context.Context, d entities.Delivery) error {
	query, args := r.qb.Insert("deliveries").
		Columns(deliveryColumns...).
		Values(
			d.DeliveryID, d.OrderID, d.ProviderOrderID, d.ProviderStatus, string(d.Status),
			d.ProviderFee, d.CODAmount,
			nullString(d.DriverName), nullString(d.DriverPhone), nullString(d.DriverPlate), nullString(d.ShareLink),
			d.CreatedAt, nullTime(d.PickedUpAt), nullTime(d.DeliveredAt),
		).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create delivery: %w", err)
	}

	// Вторая доставка на заказ — ошибка вызывающего кода, а не тихий no-op.
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delivery for order %s already exists", d.OrderID)
	}
	return nil
}

func (r *postgresRepo) GetDeliveryByProviderOrderID(ctx context.Context, providerOrderID string) (entities.Delivery, error) {
	query, args := r.qb.Select(deliveryColumns...).
		From("deliveries").
		Where(sq.Eq{"provider_order_id": providerOrderID}).
		MustSql()

	var delivery Delivery
	err := r.getContext(ctx, &delivery, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Delivery{}, entities.ErrDeliveryNotFound
	}
	if err != nil {
		return entities.Delivery{}, fmt.Errorf("failed to get delivery: %w", err)
	}
	return DeliveryToEntity(delivery), nil
}

func (r *postgresRepo) GetDeliveryByOrderID(ctx context.Context, orderID string) (entities.Delivery, error) {
	query, args := r.qb.Select(deliveryColumns...).
		From("deliveries").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var delivery Delivery
	err := r.getContext(ctx, &delivery, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Delivery{}, entities.ErrDeliveryNotFound
	}
	if err != nil {
		return entities.Delivery{}, fmt.Errorf("failed to get delivery: %w", err)
	}
	return DeliveryToEntity(delivery), nil
}

// ApplyUpdate перезаписывает поля доставки значениями из вебхука.
// Перезапись (а не инкремент) делает повторную доставку того же
// события естественно идемпотентной.
func (r *postgresRepo) ApplyUpdate(ctx context.Context, d entities.Delivery) error {
	query, args := r.qb.Update("deliveries").
		Set("provider_status", d.ProviderStatus).
		Set("status", string(d.Status)).
		Set("driver_name", nullString(d.DriverName)).
		Set("driver_phone", nullString(d.DriverPhone)).
		Set("driver_plate", nullString(d.DriverPlate)).
		Set("picked_up_at", nullTime(d.PickedUpAt)).
		Set("delivered_at", nullTime(d.DeliveredAt)).
		Where(sq.Eq{"delivery_id": d.DeliveryID}).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to apply delivery update: %w", err)
	}
	return nil
}
