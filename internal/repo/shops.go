package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var shopColumns = []string{
	"shop_id", "seller_id", "name", "phone", "pickup_lat", "pickup_lng", "open_weekdays", "ship_time",
}

func (r *postgresRepo) GetShopByID(ctx context.Context, shopID string) (entities.Shop, error) {
	return r.getShop(ctx, sq.Eq{"shop_id": shopID})
}

func (r *postgresRepo) GetShopBySeller(ctx context.Context, sellerID string) (entities.Shop, error) {
	return r.getShop(ctx, sq.Eq{"seller_id": sellerID})
}

func (r *postgresRepo) getShop(ctx context.Context, where sq.Eq) (entities.Shop, error) {
	query, args := r.qb.Select(shopColumns...).
		From("shops").
		Where(where).
		MustSql()

	var shop Shop
	err := r.getContext(ctx, &shop, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Shop{}, entities.ErrShopNotFound
	}
	if err != nil {
		return entities.Shop{}, fmt.Errorf("failed to get shop: %w", err)
	}
	return ShopToEntity(shop), nil
}

func (r *postgresRepo) ListProducts(ctx context.Context, shopID string, productIDs []string) ([]entities.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	query, args := r.qb.Select("product_id", "shop_id", "name", "price", "stock", "active").
		From("products").
		Where(sq.Eq{"shop_id": shopID, "product_id": productIDs}).
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

// DecrementStock — атомарный decrement-if-available: условие stock >= qty
// входит в сам UPDATE, поэтому конкурентные оформления заказа не могут
// продать больше, чем есть.
func (r *postgresRepo) DecrementStock(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", qty)).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.GtOrEq{"stock": qty}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrInsufficientStock
	}
	return nil
}

// RestoreStock — возврат резерва при отмене. Аддитивен, строгое
// условие ему не нужно.
func (r *postgresRepo) RestoreStock(ctx context.Context, productID string, qty int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", qty)).
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	return nil
}
