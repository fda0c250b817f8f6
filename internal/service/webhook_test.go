package service_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/courier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/15augustjon-tech/tapshop-delivery/internal/service"
	mocks "github.com/15augustjon-tech/tapshop-delivery/internal/service/mocks"
	txMocks "github.com/15augustjon-tech/tapshop-delivery/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "test-secret"

type webhookMocks struct {
	orders     *mocks.MockOrderRepo
	deliveries *mocks.MockDeliveryRepo
	courier    *mocks.MockCourierAPI
	notifier   *mocks.MockNotifier
	tx         *txMocks.MockManager
}

func newWebhookService(t *testing.T) (*service.WebhookService, webhookMocks) {
	m := webhookMocks{
		orders:     mocks.NewMockOrderRepo(t),
		deliveries: mocks.NewMockDeliveryRepo(t),
		courier:    mocks.NewMockCourierAPI(t),
		notifier:   mocks.NewMockNotifier(t),
		tx:         txMocks.NewMockManager(t),
	}
	svc := service.NewWebhookService(discardLogger(), m.tx, m.orders, m.deliveries, m.courier, m.notifier, webhookSecret)
	return svc, m
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookBody(providerOrderID, status string, at time.Time) []byte {
	return fmt.Appendf(nil,
		`{"event_id":"ev-1","order_id":%q,"status":%q,"driver":{"name":"Anan","phone":"+66899999999","plate_number":"1กข234"},"timestamp":%q}`,
		providerOrderID, status, at.Format(time.RFC3339))
}

func pendingDelivery() entities.Delivery {
	return entities.Delivery{
		DeliveryID:      "d-1",
		OrderID:         "o-1",
		ProviderOrderID: "prov-1",
		ProviderStatus:  "ASSIGNING_DRIVER",
		Status:          entities.DeliveryStatusPending,
		CODAmount:       472,
	}
}

func TestWebhookService_VerifySignature(t *testing.T) {
	svc, _ := newWebhookService(t)
	body := []byte(`{"order_id":"prov-1"}`)

	assert.NoError(t, svc.VerifySignature(body, sign(webhookSecret, body)))
	assert.ErrorIs(t, svc.VerifySignature(body, sign("wrong-secret", body)), entities.ErrInvalidSignature)
	assert.ErrorIs(t, svc.VerifySignature(body, ""), entities.ErrInvalidSignature)

	// Без секрета вебхуки не принимаются вовсе.
	noSecret := service.NewWebhookService(discardLogger(), nil, nil, nil, nil, nil, "")
	assert.ErrorIs(t, noSecret.VerifySignature(body, sign("", body)), entities.ErrInvalidSignature)
}

func TestWebhookService_Process(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	dispatchedOrder := entities.Order{OrderID: "o-1", Status: entities.OrderStatusDispatched}

	t.Run("picked up advances delivery and order", func(t *testing.T) {
		svc, m := newWebhookService(t)
		m.deliveries.EXPECT().GetDeliveryByProviderOrderID(mock.Anything, "prov-1").Return(pendingDelivery(), nil)
		txPassthrough(m.tx)

		var applied entities.Delivery
		m.deliveries.EXPECT().ApplyUpdate(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, d entities.Delivery) { applied = d }).Return(nil)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "o-1").
			Once().Return(dispatchedOrder, nil)
		m.orders.EXPECT().
			UpdateStatus(mock.Anything, "o-1", entities.OrderStatusDispatched, entities.OrderStatusPickedUp, at, "").
			Return(true, nil)
		pickedUp := dispatchedOrder
		pickedUp.Status = entities.OrderStatusPickedUp
		m.orders.EXPECT().GetOrderByID(mock.Anything, "o-1").
			Once().Return(pickedUp, nil)

		err := svc.Process(context.Background(), webhookBody("prov-1", "PICKED_UP", at))
		require.NoError(t, err)

		assert.Equal(t, entities.DeliveryStatusPickedUp, applied.Status)
		assert.Equal(t, "PICKED_UP", applied.ProviderStatus)
		assert.Equal(t, "Anan", applied.DriverName)
		require.NotNil(t, applied.PickedUpAt)
		assert.Equal(t, at, *applied.PickedUpAt)
	})

	t.Run("completed arriving early walks through picked_up", func(t *testing.T) {
		svc, m := newWebhookService(t)
		m.deliveries.EXPECT().GetDeliveryByProviderOrderID(mock.Anything, "prov-1").Return(pendingDelivery(), nil)
		txPassthrough(m.tx)

		var applied entities.Delivery
		m.deliveries.EXPECT().ApplyUpdate(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, d entities.Delivery) { applied = d }).Return(nil)

		pickedUp := dispatchedOrder
		pickedUp.Status = entities.OrderStatusPickedUp
		delivered := dispatchedOrder
		delivered.Status = entities.OrderStatusDelivered

		m.orders.EXPECT().GetOrderByID(mock.Anything, "o-1").Once().Return(dispatchedOrder, nil)
		m.orders.EXPECT().
			UpdateStatus(mock.Anything, "o-1", entities.OrderStatusDispatched, entities.OrderStatusPickedUp, at, "").
			Return(true, nil)
		m.orders.EXPECT().GetOrderByID(mock.Anything, "o-1").Once().Return(pickedUp, nil)
		m.orders.EXPECT().
			UpdateStatus(mock.Anything, "o-1", entities.OrderStatusPickedUp, entities.OrderStatusDelivered, at, "").
			Return(true, nil)
		m.orders.EXPECT().GetOrderByID(mock.Anything, "o-1").Once().Return(delivered, nil)

		m.notifier.EXPECT().Notify(mock.Anything, "order.delivered", mock.Anything).Return()

		err := svc.Process(context.Background(), webhookBody("prov-1", "COMPLETED", at))
		require.NoError(t, err)

		assert.Equal(t, entities.DeliveryStatusCompleted, applied.Status)
		require.NotNil(t, applied.PickedUpAt)
		require.NotNil(t, applied.DeliveredAt)
	})

	t.Run("cancellation fails the order with reason", func(t *testing.T) {
		svc, m := newWebhookService(t)
		m.deliveries.EXPECT().GetDeliveryByProviderOrderID(mock.Anything, "prov-1").Return(pendingDelivery(), nil)
		txPassthrough(m.tx)

		var applied entities.Delivery
		m.deliveries.EXPECT().ApplyUpdate(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, d entities.Delivery) { applied = d }).Return(nil)

		failed := dispatchedOrder
		failed.Status = entities.OrderStatusFailed
		m.orders.EXPECT().GetOrderByID(mock.Anything, "o-1").Once().Return(dispatchedOrder, nil)
		m.orders.EXPECT().
			UpdateStatus(mock.Anything, "o-1", entities.OrderStatusDispatched, entities.OrderStatusFailed, at, "courier CANCELED").
			Return(true, nil)
		m.orders.EXPECT().GetOrderByID(mock.Anything, "o-1").Once().Return(failed, nil)

		m.notifier.EXPECT().Notify(mock.Anything, "order.failed", mock.Anything).Return()

		err := svc.Process(context.Background(), webhookBody("prov-1", "CANCELED", at))
		require.NoError(t, err)
		assert.Equal(t, entities.DeliveryStatusCanceled, applied.Status)
	})

	t.Run("replay of completed is a no-op for the order", func(t *testing.T) {
		svc, m := newWebhookService(t)
		earlier := at.Add(-time.Hour)
		done := pendingDelivery()
		done.Status = entities.DeliveryStatusCompleted
		done.ProviderStatus = "COMPLETED"
		done.PickedUpAt = &earlier
		done.DeliveredAt = &earlier

		m.deliveries.EXPECT().GetDeliveryByProviderOrderID(mock.Anything, "prov-1").Return(done, nil)
		txPassthrough(m.tx)

		var applied entities.Delivery
		m.deliveries.EXPECT().ApplyUpdate(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, d entities.Delivery) { applied = d }).Return(nil)

		delivered := dispatchedOrder
		delivered.Status = entities.OrderStatusDelivered
		m.orders.EXPECT().GetOrderByID(mock.Anything, "o-1").Return(delivered, nil)

		m.notifier.EXPECT().Notify(mock.Anything, "order.delivered", mock.Anything).Return()

		err := svc.Process(context.Background(), webhookBody("prov-1", "COMPLETED", at))
		require.NoError(t, err)

		// Таймстемпы первого события не сдвигаются повтором.
		require.NotNil(t, applied.DeliveredAt)
		assert.Equal(t, earlier, *applied.DeliveredAt)
	})

	t.Run("unknown provider order", func(t *testing.T) {
		svc, m := newWebhookService(t)
		m.deliveries.EXPECT().GetDeliveryByProviderOrderID(mock.Anything, "ghost").
			Return(entities.Delivery{}, entities.ErrDeliveryNotFound)

		err := svc.Process(context.Background(), webhookBody("ghost", "PICKED_UP", at))
		assert.ErrorIs(t, err, entities.ErrDeliveryNotFound)
	})

	t.Run("unknown status stores raw value only", func(t *testing.T) {
		svc, m := newWebhookService(t)
		m.deliveries.EXPECT().GetDeliveryByProviderOrderID(mock.Anything, "prov-1").Return(pendingDelivery(), nil)

		var applied entities.Delivery
		m.deliveries.EXPECT().ApplyUpdate(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, d entities.Delivery) { applied = d }).Return(nil)

		err := svc.Process(context.Background(), webhookBody("prov-1", "DRIVER_ON_BREAK", at))
		require.NoError(t, err)

		assert.Equal(t, "DRIVER_ON_BREAK", applied.ProviderStatus)
		// Локальный статус не тронут.
		assert.Equal(t, entities.DeliveryStatusPending, applied.Status)
	})

	t.Run("malformed payload", func(t *testing.T) {
		svc, _ := newWebhookService(t)

		err := svc.Process(context.Background(), []byte(`{"order_id":`))
		assert.ErrorIs(t, err, entities.ErrInvalidPayload)

		err = svc.Process(context.Background(), []byte(`{"order_id":"prov-1"}`))
		assert.ErrorIs(t, err, entities.ErrInvalidPayload)
	})
}

func TestWebhookService_Resync(t *testing.T) {
	order := entities.Order{OrderID: "o-1", OrderNo: "TS-20260830-ABCD1234", Status: entities.OrderStatusDispatched}

	t.Run("applies provider state missed by webhooks", func(t *testing.T) {
		svc, m := newWebhookService(t)
		m.orders.EXPECT().GetOrderByNumber(mock.Anything, order.OrderNo).Return(order, nil)
		m.deliveries.EXPECT().GetDeliveryByOrderID(mock.Anything, "o-1").Return(pendingDelivery(), nil)
		m.courier.EXPECT().GetStatus(mock.Anything, "prov-1").Return(courier.StatusResponse{
			OrderID: "prov-1",
			Status:  "PICKED_UP",
			Driver:  courier.Driver{Name: "Anan", Phone: "+66899999999"},
		}, nil)
		txPassthrough(m.tx)

		var applied entities.Delivery
		m.deliveries.EXPECT().ApplyUpdate(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, d entities.Delivery) { applied = d }).Return(nil)

		m.orders.EXPECT().GetOrderByID(mock.Anything, "o-1").Once().Return(order, nil)
		m.orders.EXPECT().
			UpdateStatus(mock.Anything, "o-1", entities.OrderStatusDispatched, entities.OrderStatusPickedUp, mock.Anything, "").
			Return(true, nil)
		pickedUp := order
		pickedUp.Status = entities.OrderStatusPickedUp
		m.orders.EXPECT().GetOrderByID(mock.Anything, "o-1").Once().Return(pickedUp, nil)

		require.NoError(t, svc.Resync(context.Background(), order.OrderNo))

		assert.Equal(t, entities.DeliveryStatusPickedUp, applied.Status)
		assert.Equal(t, "Anan", applied.DriverName)
		require.NotNil(t, applied.PickedUpAt)
	})

	t.Run("provider unavailable", func(t *testing.T) {
		svc, m := newWebhookService(t)
		m.orders.EXPECT().GetOrderByNumber(mock.Anything, order.OrderNo).Return(order, nil)
		m.deliveries.EXPECT().GetDeliveryByOrderID(mock.Anything, "o-1").Return(pendingDelivery(), nil)
		m.courier.EXPECT().GetStatus(mock.Anything, "prov-1").
			Return(courier.StatusResponse{}, &courier.TransientError{Attempts: 3, Err: errors.New("connection refused")})

		var transient *courier.TransientError
		assert.ErrorAs(t, svc.Resync(context.Background(), order.OrderNo), &transient)
	})

	t.Run("order without delivery", func(t *testing.T) {
		svc, m := newWebhookService(t)
		m.orders.EXPECT().GetOrderByNumber(mock.Anything, order.OrderNo).Return(order, nil)
		m.deliveries.EXPECT().GetDeliveryByOrderID(mock.Anything, "o-1").
			Return(entities.Delivery{}, entities.ErrDeliveryNotFound)

		assert.ErrorIs(t, svc.Resync(context.Background(), order.OrderNo), entities.ErrDeliveryNotFound)
	})

	t.Run("provider not configured", func(t *testing.T) {
		svc := service.NewWebhookService(discardLogger(), nil, nil, nil, nil, nil, webhookSecret)

		assert.ErrorIs(t, svc.Resync(context.Background(), order.OrderNo), entities.ErrProviderNotConfigured)
	})
}
