package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/config"
	"github.com/15augustjon-tech/tapshop-delivery/internal/courier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/15augustjon-tech/tapshop-delivery/pkg/trm"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type DispatchResult struct {
	OrderID   string `json:"order_id"`
	OrderNo   string `json:"order_no,omitempty"`
	Ok        bool   `json:"ok"`
	Reason    string `json:"reason,omitempty"`
	ShareLink string `json:"share_link,omitempty"`
}

type DispatchSummary struct {
	Dispatched int              `json:"dispatched"`
	Failed     int              `json:"failed"`
	Results    []DispatchResult `json:"results"`
}

// DispatchService бронирует курьеров на пачку подтверждённых заказов.
// Заказы независимы: сбой одного не трогает остальные.
type DispatchService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	orders     OrderRepo
	shops      ShopRepo
	deliveries DeliveryRepo
	courier    CourierAPI
	notifier   Notifier
	cfg        config.Delivery

	now   func() time.Time
	newID func() string
}

func NewDispatchService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	shops ShopRepo,
	deliveries DeliveryRepo,
	courierAPI CourierAPI,
	notifier Notifier,
	cfg config.Delivery,
) *DispatchService {
	return &DispatchService{
		logger:     logger.With(slog.String("service", "dispatch")),
		txManager:  txManager,
		orders:     orders,
		shops:      shops,
		deliveries: deliveries,
		courier:    courierAPI,
		notifier:   notifier,
		cfg:        cfg,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// DispatchBatch обрабатывает заказы продавца ограниченным пулом воркеров.
// Возвращает пер-заказный результат; ошибкой метода считаются только
// проблемы уровня всей пачки (магазин, провайдер не настроен).
func (s *DispatchService) DispatchBatch(ctx context.Context, sellerID string, orderIDs []string) (DispatchSummary, error) {
	if s.courier == nil {
		return DispatchSummary{}, entities.ErrProviderNotConfigured
	}

	shop, err := s.shops.GetShopBySeller(ctx, sellerID)
	if err != nil {
		return DispatchSummary{}, err
	}
	if !shop.PickupConfigured {
		return DispatchSummary{}, entities.ErrPickupNotConfigured
	}

	// Выборка сразу отфильтрована по продавцу: чужой order_id в запросе
	// неотличим от несуществующего.
	orders, err := s.orders.ListBySellerAndIDs(ctx, sellerID, orderIDs)
	if err != nil {
		return DispatchSummary{}, fmt.Errorf("failed to load orders: %w", err)
	}
	byID := make(map[string]entities.Order, len(orders))
	for _, o := range orders {
		byID[o.OrderID] = o
	}

	var (
		mu      sync.Mutex
		results = make([]DispatchResult, 0, len(orderIDs))
	)
	add := func(r DispatchResult) {
		mu.Lock()
		results = append(results, r)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.DispatchConcurrency)
	for _, orderID := range orderIDs {
		order, ok := byID[orderID]
		if !ok {
			add(DispatchResult{OrderID: orderID, Reason: "order not found"})
			continue
		}
		if order.Status != entities.OrderStatusConfirmed {
			add(DispatchResult{
				OrderID: order.OrderID,
				OrderNo: order.OrderNo,
				Reason:  fmt.Sprintf("order is %s, expected %s", order.Status, entities.OrderStatusConfirmed),
			})
			continue
		}

		g.Go(func() error {
			add(s.dispatchOne(gctx, shop, order))
			return nil
		})
	}
	// Воркеры всегда возвращают nil: ошибки заказа остаются в его результате.
	_ = g.Wait()

	summary := DispatchSummary{Results: results}
	for _, r := range results {
		if r.Ok {
			summary.Dispatched++
		} else {
			summary.Failed++
		}
	}
	s.logger.Info("dispatch batch done",
		slog.String("seller_id", sellerID),
		slog.Int("dispatched", summary.Dispatched),
		slog.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (s *DispatchService) dispatchOne(ctx context.Context, shop entities.Shop, order entities.Order) DispatchResult {
	fail := func(reason string, markFailed bool) DispatchResult {
		dispatchTotal.WithLabelValues("failed").Inc()
		if markFailed {
			s.markFailed(ctx, order, reason)
		}
		return DispatchResult{OrderID: order.OrderID, OrderNo: order.OrderNo, Reason: reason}
	}

	// Котировки от оформления заказа к этому моменту обычно протухли,
	// поэтому котируем заново прямо перед бронированием.
	quote, err := s.courier.Quote(ctx, courier.QuoteRequest{
		Pickup:  courier.Stop{Lat: shop.PickupLat, Lng: shop.PickupLng, Address: shop.Name},
		Dropoff: courier.Stop{Lat: order.BuyerLat, Lng: order.BuyerLng, Address: order.BuyerAddress},
	})
	if err != nil {
		s.logger.Error("provider quote failed", slog.String("order_id", order.OrderID), slog.Any("error", err))
		return fail(providerReason(err), true)
	}

	created, err := s.courier.CreateOrder(ctx, courier.CreateOrderRequest{
		QuotationID: quote.QuotationID,
		Sender:      courier.Contact{Name: shop.Name, Phone: shop.Phone},
		Recipient:   courier.Contact{Name: order.BuyerName, Phone: order.BuyerPhone},
		Remarks:     order.Note,
		CODAmount:   order.Total,
	})
	if err != nil {
		s.logger.Error("provider booking failed", slog.String("order_id", order.OrderID), slog.Any("error", err))
		return fail(providerReason(err), true)
	}

	delivery := entities.Delivery{
		DeliveryID:      s.newID(),
		OrderID:         order.OrderID,
		ProviderOrderID: created.OrderID,
		ProviderStatus:  created.Status,
		Status:          entities.DeliveryStatusPending,
		ProviderFee:     created.Fee,
		CODAmount:       order.Total,
		ShareLink:       created.ShareLink,
		CreatedAt:       s.now(),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.deliveries.CreateDelivery(ctx, delivery); err != nil {
			return err
		}
		ok, err := s.orders.UpdateStatus(ctx, order.OrderID, entities.OrderStatusConfirmed, entities.OrderStatusDispatched, s.now(), "")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("order %s: %w", order.OrderID, errConcurrentDispatch)
		}
		if created.Fee != order.DeliveryFee {
			// Финальная цена провайдера перекрывает расчётную.
			if err := s.orders.SetDeliveryFee(ctx, order.OrderID, created.Fee); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Бронь у провайдера уже есть, а заказ ушёл из confirmed —
		// отменяем бронь, чтобы не приехал лишний курьер.
		if cancelErr := s.courier.CancelOrder(ctx, created.OrderID); cancelErr != nil {
			s.logger.Error("failed to cancel orphan booking",
				slog.String("provider_order_id", created.OrderID), slog.Any("error", cancelErr))
		}
		s.logger.Error("dispatch commit failed", slog.String("order_id", order.OrderID), slog.Any("error", err))
		return fail(err.Error(), false)
	}

	dispatchTotal.WithLabelValues("ok").Inc()
	s.notifier.Notify(ctx, "order.dispatched", map[string]any{
		"order_id":   order.OrderID,
		"order_no":   order.OrderNo,
		"shop_id":    order.ShopID,
		"status":     string(entities.OrderStatusDispatched),
		"share_link": created.ShareLink,
	})
	return DispatchResult{OrderID: order.OrderID, OrderNo: order.OrderNo, Ok: true, ShareLink: created.ShareLink}
}

var errConcurrentDispatch = errors.New("already dispatched concurrently")

// markFailed — confirmed -> failed с причиной. Условный UPDATE: если
// заказ уже ушёл из confirmed, ничего не перетираем.
func (s *DispatchService) markFailed(ctx context.Context, order entities.Order, reason string) {
	ok, err := s.orders.UpdateStatus(ctx, order.OrderID, entities.OrderStatusConfirmed, entities.OrderStatusFailed, s.now(), reason)
	if err != nil {
		s.logger.Error("failed to mark order failed", slog.String("order_id", order.OrderID), slog.Any("error", err))
		return
	}
	if !ok {
		return
	}
	s.notifier.Notify(ctx, "order.failed", map[string]any{
		"order_id": order.OrderID,
		"order_no": order.OrderNo,
		"shop_id":  order.ShopID,
		"status":   string(entities.OrderStatusFailed),
		"reason":   reason,
	})
}

// providerReason — человекочитаемая причина для fail_reason.
func providerReason(err error) string {
	var clientErr *courier.ClientError
	if errors.As(err, &clientErr) {
		return fmt.Sprintf("provider rejected: %s", clientErr.ProviderCode)
	}
	return "provider unavailable"
}
