package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/courier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/15augustjon-tech/tapshop-delivery/pkg/trm"
	"github.com/15augustjon-tech/tapshop-delivery/pkg/utils"

	"github.com/google/uuid"
)

type CreateOrderItem struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	ShopID string

	BuyerName    string
	BuyerPhone   string
	BuyerAddress string
	BuyerLat     float64
	BuyerLng     float64
	Note         string

	Items []CreateOrderItem
}

type OrderService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	orders     OrderRepo
	products   ProductRepo
	shops      ShopRepo
	deliveries DeliveryRepo
	quotes     *QuoteService
	notifier   Notifier
	cache      Cache

	now   func() time.Time
	newID func() string
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	products ProductRepo,
	shops ShopRepo,
	deliveries DeliveryRepo,
	quotes *QuoteService,
	notifier Notifier,
	cache Cache,
) *OrderService {
	return &OrderService{
		logger:     logger.With(slog.String("service", "order")),
		txManager:  txManager,
		orders:     orders,
		products:   products,
		shops:      shops,
		deliveries: deliveries,
		quotes:     quotes,
		notifier:   notifier,
		cache:      cache,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// CreateOrder валидирует заказ целиком до первой записи: телефон,
// координаты, существование/активность/остатки товаров, радиус доставки.
// Запись идёт одной транзакцией (списание остатков, заказ, позиции),
// так что частичного состояния при сбое не остаётся.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	phone, err := courier.NormalizePhone(in.BuyerPhone)
	if err != nil {
		return entities.Order{}, fmt.Errorf("buyer phone: %w", err)
	}

	shop, err := s.shops.GetShopByID(ctx, in.ShopID)
	if err != nil {
		return entities.Order{}, err
	}

	productIDs := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		productIDs = append(productIDs, it.ProductID)
	}

	products, err := s.products.ListProducts(ctx, in.ShopID, productIDs)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load products: %w", err)
	}
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	subtotal := 0
	items := make([]entities.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			return entities.Order{}, fmt.Errorf("product %s: %w", it.ProductID, entities.ErrProductNotFound)
		}
		if !p.Active {
			return entities.Order{}, fmt.Errorf("product %s: %w", it.ProductID, entities.ErrProductUnavailable)
		}
		if p.Stock < it.Quantity {
			return entities.Order{}, fmt.Errorf("product %s: %w", it.ProductID, entities.ErrInsufficientStock)
		}

		// Снапшот имени и цены: изменения каталога не трогают прошлые заказы.
		items = append(items, entities.OrderItem{
			ProductID: p.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  it.Quantity,
		})
		subtotal += p.Price * it.Quantity
	}

	quote, err := s.quotes.QuoteForShop(ctx, shop, in.BuyerLat, in.BuyerLng, in.BuyerAddress)
	if err != nil {
		return entities.Order{}, err
	}

	now := s.now()
	order := entities.Order{
		OrderID: s.newID(),
		OrderNo: newOrderNo(now),
		ShopID:  in.ShopID,
		Status:  entities.OrderStatusPending,

		BuyerName:    in.BuyerName,
		BuyerPhone:   phone,
		BuyerAddress: in.BuyerAddress,
		BuyerLat:     in.BuyerLat,
		BuyerLng:     in.BuyerLng,
		Note:         in.Note,

		Subtotal:    subtotal,
		DeliveryFee: quote.DeliveryFee,
		CODFee:      quote.CODFee,
		Total:       subtotal + quote.DeliveryFee + quote.CODFee,

		ScheduledAt:    quote.ScheduledAt,
		ScheduledLabel: quote.ScheduledLabel,

		CreatedAt: now,
		Items:     items,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// Атомарный decrement-if-available; проигравший гонку за остаток
		// откатывает всю транзакцию.
		for _, it := range order.Items {
			if err := s.products.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				return fmt.Errorf("product %s: %w", it.ProductID, err)
			}
		}
		if err := s.orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := s.orders.SaveItems(ctx, order.OrderID, order.Items); err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	ordersCreated.Inc()
	s.logger.Info("order created",
		slog.String("order_id", order.OrderID),
		slog.String("order_no", order.OrderNo),
		slog.Int("total", order.Total),
	)
	return order, nil
}

// Transition переводит заказ в target по таблице переходов и выполняет
// побочные эффекты перехода. Условный UPDATE гарантирует, что два
// конкурентных перехода из одного статуса не применятся оба.
func (s *OrderService) Transition(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	if !order.Status.CanTransitionTo(target) {
		transitionsTotal.WithLabelValues(string(target), "rejected").Inc()
		return entities.Order{}, &entities.InvalidTransitionError{From: order.Status, To: target}
	}

	now := s.now()
	ok, err := s.orders.UpdateStatus(ctx, orderID, order.Status, target, now, "")
	if err != nil {
		return entities.Order{}, err
	}
	if !ok {
		// Кто-то успел раньше; перечитываем и отвечаем актуальной парой.
		fresh, err := s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		transitionsTotal.WithLabelValues(string(target), "rejected").Inc()
		return entities.Order{}, &entities.InvalidTransitionError{From: fresh.Status, To: target}
	}

	from := order.Status
	order.Status = target
	s.applySideEffects(ctx, &order, from, now)

	transitionsTotal.WithLabelValues(string(target), "ok").Inc()
	return order, nil
}

func (s *OrderService) applySideEffects(ctx context.Context, order *entities.Order, from entities.OrderStatus, at time.Time) {
	switch order.Status {
	case entities.OrderStatusConfirmed:
		order.ConfirmedAt = &at
	case entities.OrderStatusDispatched:
		order.DispatchedAt = &at
	case entities.OrderStatusPickedUp:
		order.PickedUpAt = &at
	case entities.OrderStatusDelivered:
		order.DeliveredAt = &at
	case entities.OrderStatusCancelled:
		order.CancelledAt = &at
		s.restoreStock(ctx, *order)
	case entities.OrderStatusFailed:
		order.FailedAt = &at
	}

	switch order.Status {
	case entities.OrderStatusDispatched, entities.OrderStatusDelivered,
		entities.OrderStatusFailed, entities.OrderStatusCancelled:
		s.notifier.Notify(ctx, "order."+string(order.Status), map[string]any{
			"order_id": order.OrderID,
			"order_no": order.OrderNo,
			"shop_id":  order.ShopID,
			"from":     string(from),
			"status":   string(order.Status),
		})
	}
}

// restoreStock возвращает резерв по всем позициям. Best-effort:
// неудача логируется и не блокирует отмену.
func (s *OrderService) restoreStock(ctx context.Context, order entities.Order) {
	items := order.Items
	if len(items) == 0 {
		var err error
		items, err = s.orders.GetOrderItems(ctx, order.OrderID)
		if err != nil {
			s.logger.Error("failed to load items for stock restore",
				slog.String("order_id", order.OrderID), slog.Any("error", err))
			return
		}
	}

	for _, it := range items {
		if err := s.products.RestoreStock(ctx, it.ProductID, it.Quantity); err != nil {
			s.logger.Error("failed to restore stock",
				slog.String("order_id", order.OrderID),
				slog.String("product_id", it.ProductID),
				slog.Any("error", err))
		}
	}
}

// GetOrderByNumber — публичный трекинг заказа, читается часто и кешируется.
func (s *OrderService) GetOrderByNumber(ctx context.Context, orderNo string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderNo); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("order_no", orderNo), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByNumber(ctx, orderNo)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	// Терминальные заказы больше не меняются, их можно кешировать смело;
	// остальные — тоже, TTL кеша короткий.
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_no", orderNo), slog.Any("error", err))
		return order, nil
	}
	s.cache.Set(orderNo, data)
	return order, nil
}

// TrackOrder — заказ плюс информация о доставке для публичной страницы
// трекинга. Доставки может ещё не быть, это не ошибка.
func (s *OrderService) TrackOrder(ctx context.Context, orderNo string) (entities.Order, *entities.Delivery, error) {
	order, err := s.GetOrderByNumber(ctx, orderNo)
	if err != nil {
		return entities.Order{}, nil, err
	}

	switch order.Status {
	case entities.OrderStatusDispatched, entities.OrderStatusPickedUp,
		entities.OrderStatusDelivered, entities.OrderStatusFailed:
	default:
		return order, nil, nil
	}

	delivery, err := s.deliveries.GetDeliveryByOrderID(ctx, order.OrderID)
	if err != nil {
		if errors.Is(err, entities.ErrDeliveryNotFound) {
			return order, nil, nil
		}
		return entities.Order{}, nil, err
	}
	return order, &delivery, nil
}

func newOrderNo(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("TS-%s-%s", at.Format("20060102"), suffix)
}
