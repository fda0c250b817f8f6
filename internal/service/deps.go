package service

import (
	"context"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/courier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNo string) (entities.Order, error)
	GetOrderItems(ctx context.Context, orderID string) ([]entities.OrderItem, error)
	ListBySellerAndIDs(ctx context.Context, sellerID string, orderIDs []string) ([]entities.Order, error)

	// UpdateStatus — условный переход from -> to; false, если заказ уже
	// не в from (переход проиграл гонку).
	UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, at time.Time, reason string) (bool, error)
	SetDeliveryFee(ctx context.Context, orderID string, fee int) error
}

type ProductRepo interface {
	ListProducts(ctx context.Context, shopID string, productIDs []string) ([]entities.Product, error)
	DecrementStock(ctx context.Context, productID string, qty int) error
	RestoreStock(ctx context.Context, productID string, qty int) error
}

type ShopRepo interface {
	GetShopByID(ctx context.Context, shopID string) (entities.Shop, error)
	GetShopBySeller(ctx context.Context, sellerID string) (entities.Shop, error)
}

type DeliveryRepo interface {
	CreateDelivery(ctx context.Context, d entities.Delivery) error
	GetDeliveryByProviderOrderID(ctx context.Context, providerOrderID string) (entities.Delivery, error)
	GetDeliveryByOrderID(ctx context.Context, orderID string) (entities.Delivery, error)
	ApplyUpdate(ctx context.Context, d entities.Delivery) error
}

// CourierAPI — операции логистического провайдера (internal/courier.Client).
type CourierAPI interface {
	Quote(ctx context.Context, req courier.QuoteRequest) (courier.QuoteResponse, error)
	CreateOrder(ctx context.Context, req courier.CreateOrderRequest) (courier.CreateOrderResponse, error)
	GetStatus(ctx context.Context, providerOrderID string) (courier.StatusResponse, error)
	CancelOrder(ctx context.Context, providerOrderID string) error
}

// Notifier — fire-and-forget доставка событий. Ошибки нотификаций
// никогда не всплывают в бизнес-операции.
type Notifier interface {
	Notify(ctx context.Context, event string, payload any)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}
