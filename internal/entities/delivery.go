package entities

import "time"

// DeliveryStatus — локальный словарь статусов доставки.
// Статусы провайдера переводятся в него в одном месте (webhook reconciler).
type DeliveryStatus string

const (
	DeliveryStatusPending        DeliveryStatus = "pending"
	DeliveryStatusDriverAssigned DeliveryStatus = "driver_assigned"
	DeliveryStatusPickedUp       DeliveryStatus = "picked_up"
	DeliveryStatusCompleted      DeliveryStatus = "completed"
	DeliveryStatusCanceled       DeliveryStatus = "canceled"
)

// Delivery — бронирование курьера у провайдера, 0..1 на заказ.
type Delivery struct {
	DeliveryID      string
	OrderID         string
	ProviderOrderID string
	ProviderStatus  string
	Status          DeliveryStatus

	// Комиссия провайдера и сумма наложенного платежа (COD).
	ProviderFee int
	CODAmount   int

	DriverName  string
	DriverPhone string
	DriverPlate string
	ShareLink   string

	CreatedAt   time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}
