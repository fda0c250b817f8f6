package entities

import "time"

// Quote — расчёт доставки перед оформлением заказа. Не персистится:
// живёт от запроса котировки до создания заказа.
type Quote struct {
	DistanceKm  float64
	DeliveryFee int
	CODFee      int

	ScheduledAt    time.Time
	ScheduledLabel string

	// Заполнены только если котировку дал провайдер.
	QuotationID        string
	QuotationExpiresAt time.Time
}
