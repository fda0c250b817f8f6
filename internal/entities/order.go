package entities

import (
	"fmt"
	"time"
)

// OrderStatus — состояние заказа в жизненном цикле доставки.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusPickedUp   OrderStatus = "picked_up"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusFailed     OrderStatus = "failed"
)

// orderTransitions — единственный источник правды о допустимых переходах.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusDispatched, OrderStatusCancelled},
	OrderStatusDispatched: {OrderStatusPickedUp, OrderStatusFailed},
	OrderStatusPickedUp:   {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
	OrderStatusFailed:     {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the transition s -> target is allowed.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// InvalidTransitionError names the rejected source -> target pair.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid_transition: %s -> %s is not allowed", e.From, e.To)
}

type Order struct {
	OrderID string
	OrderNo string
	ShopID  string
	Status  OrderStatus

	// Снапшот контакта покупателя, неизменен после создания.
	BuyerName    string
	BuyerPhone   string
	BuyerAddress string
	BuyerLat     float64
	BuyerLng     float64
	Note         string

	Subtotal    int
	DeliveryFee int
	CODFee      int
	Total       int

	ScheduledAt    time.Time
	ScheduledLabel string

	CreatedAt    time.Time
	ConfirmedAt  *time.Time
	DispatchedAt *time.Time
	PickedUpAt   *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time
	FailedAt     *time.Time
	FailReason   string

	Items []OrderItem
}

// OrderItem — снапшот товара на момент заказа.
type OrderItem struct {
	OrderID   string
	ProductID string
	Name      string
	Price     int
	Quantity  int
}
