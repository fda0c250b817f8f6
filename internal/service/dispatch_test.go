package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/15augustjon-tech/tapshop-delivery/internal/courier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/15augustjon-tech/tapshop-delivery/internal/service"
	mocks "github.com/15augustjon-tech/tapshop-delivery/internal/service/mocks"
	txMocks "github.com/15augustjon-tech/tapshop-delivery/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchMocks struct {
	orders     *mocks.MockOrderRepo
	shops      *mocks.MockShopRepo
	deliveries *mocks.MockDeliveryRepo
	api        *mocks.MockCourierAPI
	notifier   *mocks.MockNotifier
	tx         *txMocks.MockManager
}

func newDispatchService(t *testing.T) (*service.DispatchService, dispatchMocks) {
	m := dispatchMocks{
		orders:     mocks.NewMockOrderRepo(t),
		shops:      mocks.NewMockShopRepo(t),
		deliveries: mocks.NewMockDeliveryRepo(t),
		api:        mocks.NewMockCourierAPI(t),
		notifier:   mocks.NewMockNotifier(t),
		tx:         txMocks.NewMockManager(t),
	}
	cfg := testDeliveryConfig()
	// Один воркер: детерминированный порядок вызовов в тестах.
	cfg.DispatchConcurrency = 1
	svc := service.NewDispatchService(discardLogger(), m.tx, m.orders, m.shops, m.deliveries, m.api, m.notifier, cfg)
	return svc, m
}

func confirmedOrder(id string) entities.Order {
	return entities.Order{
		OrderID:      id,
		OrderNo:      "TS-20260830-" + id,
		ShopID:       "shop-1",
		Status:       entities.OrderStatusConfirmed,
		BuyerName:    "Somchai",
		BuyerPhone:   "+66812345678",
		BuyerAddress: "Sukhumvit 1",
		BuyerLat:     13.78,
		BuyerLng:     100.50,
		Subtotal:     380,
		DeliveryFee:  72,
		CODFee:       20,
		Total:        472,
	}
}

func resultFor(t *testing.T, summary service.DispatchSummary, orderID string) service.DispatchResult {
	t.Helper()
	for _, r := range summary.Results {
		if r.OrderID == orderID {
			return r
		}
	}
	t.Fatalf("no result for order %s", orderID)
	return service.DispatchResult{}
}

func TestDispatchService_DispatchBatch(t *testing.T) {
	shop := testShop()
	providerErr := errors.New("provider down")

	t.Run("partial failure keeps other orders going", func(t *testing.T) {
		svc, m := newDispatchService(t)
		o1, o2 := confirmedOrder("o1"), confirmedOrder("o2")

		m.shops.EXPECT().GetShopBySeller(mock.Anything, "seller-1").Return(shop, nil)
		m.orders.EXPECT().ListBySellerAndIDs(mock.Anything, "seller-1", []string{"o1", "o2"}).
			Return([]entities.Order{o1, o2}, nil)

		// o1 бронируется, у o2 провайдер падает на котировке.
		m.api.EXPECT().Quote(mock.Anything, mock.Anything).
			Once().Return(courier.QuoteResponse{QuotationID: "q-1", Fee: 72}, nil)
		m.api.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Once().Return(courier.CreateOrderResponse{OrderID: "prov-1", Status: courier.ProviderStatusAssigningDriver, Fee: 72, ShareLink: "https://track/1"}, nil)
		m.api.EXPECT().Quote(mock.Anything, mock.Anything).
			Once().Return(courier.QuoteResponse{}, providerErr)

		txPassthrough(m.tx)
		m.deliveries.EXPECT().CreateDelivery(mock.Anything, mock.Anything).Return(nil)
		m.orders.EXPECT().
			UpdateStatus(mock.Anything, "o1", entities.OrderStatusConfirmed, entities.OrderStatusDispatched, mock.Anything, "").
			Return(true, nil)

		m.orders.EXPECT().
			UpdateStatus(mock.Anything, "o2", entities.OrderStatusConfirmed, entities.OrderStatusFailed, mock.Anything, "provider unavailable").
			Return(true, nil)

		m.notifier.EXPECT().Notify(mock.Anything, "order.dispatched", mock.Anything).Return()
		m.notifier.EXPECT().Notify(mock.Anything, "order.failed", mock.Anything).Return()

		summary, err := svc.DispatchBatch(context.Background(), "seller-1", []string{"o1", "o2"})
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Dispatched)
		assert.Equal(t, 1, summary.Failed)
		ok := resultFor(t, summary, "o1")
		assert.True(t, ok.Ok)
		assert.Equal(t, "https://track/1", ok.ShareLink)
		failed := resultFor(t, summary, "o2")
		assert.False(t, failed.Ok)
		assert.Equal(t, "provider unavailable", failed.Reason)
	})

	t.Run("provider final fee overrides order fee", func(t *testing.T) {
		svc, m := newDispatchService(t)
		o1 := confirmedOrder("o1")

		m.shops.EXPECT().GetShopBySeller(mock.Anything, "seller-1").Return(shop, nil)
		m.orders.EXPECT().ListBySellerAndIDs(mock.Anything, "seller-1", mock.Anything).
			Return([]entities.Order{o1}, nil)
		m.api.EXPECT().Quote(mock.Anything, mock.Anything).Return(courier.QuoteResponse{QuotationID: "q-1", Fee: 95}, nil)
		m.api.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Return(courier.CreateOrderResponse{OrderID: "prov-1", Fee: 95}, nil)
		txPassthrough(m.tx)
		m.deliveries.EXPECT().CreateDelivery(mock.Anything, mock.Anything).Return(nil)
		m.orders.EXPECT().
			UpdateStatus(mock.Anything, "o1", entities.OrderStatusConfirmed, entities.OrderStatusDispatched, mock.Anything, "").
			Return(true, nil)
		m.orders.EXPECT().SetDeliveryFee(mock.Anything, "o1", 95).Return(nil)
		m.notifier.EXPECT().Notify(mock.Anything, "order.dispatched", mock.Anything).Return()

		summary, err := svc.DispatchBatch(context.Background(), "seller-1", []string{"o1"})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Dispatched)
	})

	t.Run("booking is cancelled when order leaves confirmed concurrently", func(t *testing.T) {
		svc, m := newDispatchService(t)
		o1 := confirmedOrder("o1")

		m.shops.EXPECT().GetShopBySeller(mock.Anything, "seller-1").Return(shop, nil)
		m.orders.EXPECT().ListBySellerAndIDs(mock.Anything, "seller-1", mock.Anything).
			Return([]entities.Order{o1}, nil)
		m.api.EXPECT().Quote(mock.Anything, mock.Anything).Return(courier.QuoteResponse{QuotationID: "q-1", Fee: 72}, nil)
		m.api.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Return(courier.CreateOrderResponse{OrderID: "prov-1", Fee: 72}, nil)
		txPassthrough(m.tx)
		m.deliveries.EXPECT().CreateDelivery(mock.Anything, mock.Anything).Return(nil)
		m.orders.EXPECT().
			UpdateStatus(mock.Anything, "o1", entities.OrderStatusConfirmed, entities.OrderStatusDispatched, mock.Anything, "").
			Return(false, nil)
		// Бронь без заказа отменяется.
		m.api.EXPECT().CancelOrder(mock.Anything, "prov-1").Return(nil)

		summary, err := svc.DispatchBatch(context.Background(), "seller-1", []string{"o1"})
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Dispatched)
		assert.Equal(t, 1, summary.Failed)
	})

	t.Run("non confirmed and missing orders are reported, provider untouched", func(t *testing.T) {
		svc, m := newDispatchService(t)
		pendingOrder := confirmedOrder("o1")
		pendingOrder.Status = entities.OrderStatusPending

		m.shops.EXPECT().GetShopBySeller(mock.Anything, "seller-1").Return(shop, nil)
		m.orders.EXPECT().ListBySellerAndIDs(mock.Anything, "seller-1", []string{"o1", "ghost"}).
			Return([]entities.Order{pendingOrder}, nil)

		summary, err := svc.DispatchBatch(context.Background(), "seller-1", []string{"o1", "ghost"})
		require.NoError(t, err)

		assert.Equal(t, 0, summary.Dispatched)
		assert.Equal(t, 2, summary.Failed)
		assert.Contains(t, resultFor(t, summary, "o1").Reason, "expected confirmed")
		assert.Equal(t, "order not found", resultFor(t, summary, "ghost").Reason)
	})

	t.Run("pickup not configured fails whole batch", func(t *testing.T) {
		svc, m := newDispatchService(t)
		noPickup := shop
		noPickup.PickupConfigured = false
		m.shops.EXPECT().GetShopBySeller(mock.Anything, "seller-1").Return(noPickup, nil)

		_, err := svc.DispatchBatch(context.Background(), "seller-1", []string{"o1"})
		assert.ErrorIs(t, err, entities.ErrPickupNotConfigured)
	})

	t.Run("provider not configured", func(t *testing.T) {
		m := dispatchMocks{
			orders:     mocks.NewMockOrderRepo(t),
			shops:      mocks.NewMockShopRepo(t),
			deliveries: mocks.NewMockDeliveryRepo(t),
			notifier:   mocks.NewMockNotifier(t),
			tx:         txMocks.NewMockManager(t),
		}
		svc := service.NewDispatchService(discardLogger(), m.tx, m.orders, m.shops, m.deliveries, nil, m.notifier, testDeliveryConfig())

		_, err := svc.DispatchBatch(context.Background(), "seller-1", []string{"o1"})
		assert.ErrorIs(t, err, entities.ErrProviderNotConfigured)
	})

	t.Run("4xx rejection recorded with provider code", func(t *testing.T) {
		svc, m := newDispatchService(t)
		o1 := confirmedOrder("o1")

		m.shops.EXPECT().GetShopBySeller(mock.Anything, "seller-1").Return(shop, nil)
		m.orders.EXPECT().ListBySellerAndIDs(mock.Anything, "seller-1", mock.Anything).
			Return([]entities.Order{o1}, nil)
		m.api.EXPECT().Quote(mock.Anything, mock.Anything).Return(courier.QuoteResponse{QuotationID: "q-1"}, nil)
		m.api.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Return(courier.CreateOrderResponse{}, &courier.ClientError{StatusCode: 422, ProviderCode: "ERR_OUT_OF_SERVICE_AREA"})
		m.orders.EXPECT().
			UpdateStatus(mock.Anything, "o1", entities.OrderStatusConfirmed, entities.OrderStatusFailed, mock.Anything, "provider rejected: ERR_OUT_OF_SERVICE_AREA").
			Return(true, nil)
		m.notifier.EXPECT().Notify(mock.Anything, "order.failed", mock.Anything).Return()

		summary, err := svc.DispatchBatch(context.Background(), "seller-1", []string{"o1"})
		require.NoError(t, err)
		assert.Equal(t, "provider rejected: ERR_OUT_OF_SERVICE_AREA", resultFor(t, summary, "o1").Reason)
	})
}
