package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/courier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/15augustjon-tech/tapshop-delivery/pkg/trm"
)

// webhookPayload — событие провайдера. order_id здесь — идентификатор
// заказа у провайдера, не наш.
type webhookPayload struct {
	EventID   string         `json:"event_id"`
	OrderID   string         `json:"order_id"`
	Status    string         `json:"status"`
	Driver    courier.Driver `json:"driver"`
	Timestamp time.Time      `json:"timestamp"`
}

// WebhookService сверяет наше состояние доставки с событиями провайдера.
// Вебхуки приходят с повторами и не по порядку, поэтому обработка
// идемпотентна, а заказ догоняется через промежуточные переходы.
type WebhookService struct {
	logger     *slog.Logger
	txManager  trm.Manager
	orders     OrderRepo
	deliveries DeliveryRepo
	courier    CourierAPI
	notifier   Notifier
	secret     []byte

	now func() time.Time
}

func NewWebhookService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	deliveries DeliveryRepo,
	courierAPI CourierAPI,
	notifier Notifier,
	secret string,
) *WebhookService {
	return &WebhookService{
		logger:     logger.With(slog.String("service", "webhook")),
		txManager:  txManager,
		orders:     orders,
		deliveries: deliveries,
		courier:    courierAPI,
		notifier:   notifier,
		secret:     []byte(secret),
		now:        time.Now,
	}
}

// VerifySignature проверяет hex(HMAC-SHA256(secret, body)).
// Пустой секрет означает, что вебхуки не настроены: не принимаем ничего.
func (s *WebhookService) VerifySignature(body []byte, signature string) error {
	if len(s.secret) == 0 || signature == "" {
		return entities.ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return entities.ErrInvalidSignature
	}
	return nil
}

func (s *WebhookService) Process(ctx context.Context, body []byte) error {
	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		webhooksTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: %s", entities.ErrInvalidPayload, err)
	}
	if payload.OrderID == "" || payload.Status == "" {
		webhooksTotal.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: order_id and status are required", entities.ErrInvalidPayload)
	}

	delivery, err := s.deliveries.GetDeliveryByProviderOrderID(ctx, payload.OrderID)
	if err != nil {
		webhooksTotal.WithLabelValues("unknown_order").Inc()
		return err
	}

	logger := s.logger.With(
		slog.String("event_id", payload.EventID),
		slog.String("provider_order_id", payload.OrderID),
		slog.String("provider_status", payload.Status),
	)

	at := payload.Timestamp
	if at.IsZero() {
		at = s.now()
	}

	applied, err := s.apply(ctx, logger, delivery, payload.Status, payload.Driver, at)
	switch {
	case err != nil:
		webhooksTotal.WithLabelValues("error").Inc()
		return err
	case !applied:
		webhooksTotal.WithLabelValues("unknown_status").Inc()
		return nil
	}

	webhooksTotal.WithLabelValues("ok").Inc()
	logger.Info("webhook applied")
	return nil
}

// Resync сверяет доставку с провайдером напрямую: опрашивает текущий
// статус заказа и применяет его тем же путём, что и вебхук. Нужен, когда
// колбэк потерялся или провайдер долго молчит.
func (s *WebhookService) Resync(ctx context.Context, orderNo string) error {
	if s.courier == nil {
		return entities.ErrProviderNotConfigured
	}

	order, err := s.orders.GetOrderByNumber(ctx, orderNo)
	if err != nil {
		return err
	}
	delivery, err := s.deliveries.GetDeliveryByOrderID(ctx, order.OrderID)
	if err != nil {
		return err
	}

	res, err := s.courier.GetStatus(ctx, delivery.ProviderOrderID)
	if err != nil {
		resyncsTotal.WithLabelValues("provider_error").Inc()
		return err
	}

	logger := s.logger.With(
		slog.String("order_no", orderNo),
		slog.String("provider_order_id", delivery.ProviderOrderID),
		slog.String("provider_status", res.Status),
	)

	applied, err := s.apply(ctx, logger, delivery, res.Status, res.Driver, s.now())
	switch {
	case err != nil:
		resyncsTotal.WithLabelValues("error").Inc()
		return err
	case !applied:
		resyncsTotal.WithLabelValues("unknown_status").Inc()
		return nil
	}

	resyncsTotal.WithLabelValues("ok").Inc()
	logger.Info("delivery resynced")
	return nil
}

// apply складывает статус провайдера в доставку и заказ. Общий путь для
// вебхука и ручной сверки. Возвращает false, если статус нам неизвестен:
// тогда сохраняется только сырое значение, локальное состояние не трогаем.
func (s *WebhookService) apply(
	ctx context.Context,
	logger *slog.Logger,
	delivery entities.Delivery,
	providerStatus string,
	driver courier.Driver,
	at time.Time,
) (bool, error) {
	status, orderTarget, known := mapProviderStatus(providerStatus)
	if !known {
		// Новый статус в словаре провайдера.
		logger.Warn("unknown provider status")
		delivery.ProviderStatus = providerStatus
		if err := s.deliveries.ApplyUpdate(ctx, delivery); err != nil {
			return false, err
		}
		return false, nil
	}

	delivery.ProviderStatus = providerStatus
	delivery.Status = status
	mergeDriver(&delivery, driver)

	// Таймстемпы по принципу first-write-wins: повтор события не
	// сдвигает зафиксированное время.
	switch status {
	case entities.DeliveryStatusPickedUp:
		if delivery.PickedUpAt == nil {
			delivery.PickedUpAt = &at
		}
	case entities.DeliveryStatusCompleted:
		if delivery.PickedUpAt == nil {
			delivery.PickedUpAt = &at
		}
		if delivery.DeliveredAt == nil {
			delivery.DeliveredAt = &at
		}
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.deliveries.ApplyUpdate(ctx, delivery); err != nil {
			return err
		}
		if orderTarget == "" {
			return nil
		}
		reason := ""
		if orderTarget == entities.OrderStatusFailed {
			reason = fmt.Sprintf("courier %s", providerStatus)
		}
		return s.advanceOrder(ctx, delivery.OrderID, orderTarget, at, reason)
	})
	if err != nil {
		return false, err
	}

	s.notifyEvent(ctx, delivery, providerStatus)
	return true, nil
}

// advanceOrder догоняет заказ до target, проходя пропущенные промежуточные
// статусы (COMPLETED мог прийти раньше PICKED_UP). Повтор события — no-op:
// заказ уже в target или дальше.
func (s *WebhookService) advanceOrder(ctx context.Context, orderID string, target entities.OrderStatus, at time.Time, reason string) error {
	for i := 0; i < 4; i++ {
		order, err := s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status == target || order.Status.Terminal() {
			return nil
		}

		next := target
		if !order.Status.CanTransitionTo(target) {
			if order.Status == entities.OrderStatusDispatched && target == entities.OrderStatusDelivered {
				next = entities.OrderStatusPickedUp
			} else {
				s.logger.Warn("order cannot reach webhook status",
					slog.String("order_id", orderID),
					slog.String("from", string(order.Status)),
					slog.String("to", string(target)))
				return nil
			}
		}

		stepReason := ""
		if next == entities.OrderStatusFailed {
			stepReason = reason
		}
		// !ok — проиграли гонку другому событию; перечитываем и пробуем снова.
		if _, err := s.orders.UpdateStatus(ctx, orderID, order.Status, next, at, stepReason); err != nil {
			return err
		}
	}
	return fmt.Errorf("order %s: transition chain to %s did not converge", orderID, target)
}

func (s *WebhookService) notifyEvent(ctx context.Context, d entities.Delivery, providerStatus string) {
	var event string
	switch providerStatus {
	case courier.ProviderStatusOnGoing:
		event = "delivery.driver_assigned"
	case courier.ProviderStatusCompleted:
		event = "order.delivered"
	case courier.ProviderStatusCanceled, courier.ProviderStatusRejected, courier.ProviderStatusExpired:
		event = "order.failed"
	default:
		return
	}
	s.notifier.Notify(ctx, event, map[string]any{
		"order_id":        d.OrderID,
		"delivery_id":     d.DeliveryID,
		"delivery_status": string(d.Status),
		"driver_name":     d.DriverName,
	})
}

// mapProviderStatus — единственное место перевода словаря провайдера в
// локальный. Возвращает статус доставки, целевой статус заказа (пустой,
// если заказ не трогаем) и признак известности статуса.
func mapProviderStatus(providerStatus string) (entities.DeliveryStatus, entities.OrderStatus, bool) {
	switch providerStatus {
	case courier.ProviderStatusAssigningDriver:
		return entities.DeliveryStatusPending, "", true
	case courier.ProviderStatusOnGoing:
		return entities.DeliveryStatusDriverAssigned, "", true
	case courier.ProviderStatusPickedUp:
		return entities.DeliveryStatusPickedUp, entities.OrderStatusPickedUp, true
	case courier.ProviderStatusCompleted:
		return entities.DeliveryStatusCompleted, entities.OrderStatusDelivered, true
	case courier.ProviderStatusCanceled, courier.ProviderStatusRejected, courier.ProviderStatusExpired:
		return entities.DeliveryStatusCanceled, entities.OrderStatusFailed, true
	default:
		return "", "", false
	}
}

// mergeDriver не затирает известные данные водителя пустыми полями
// последующих событий.
func mergeDriver(d *entities.Delivery, driver courier.Driver) {
	if driver.Name != "" {
		d.DriverName = driver.Name
	}
	if driver.Phone != "" {
		d.DriverPhone = driver.Phone
	}
	if driver.PlateNumber != "" {
		d.DriverPlate = driver.PlateNumber
	}
}
