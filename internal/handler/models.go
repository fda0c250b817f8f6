package handler

import (
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/15augustjon-tech/tapshop-delivery/internal/service"
)

type QuoteRequest struct {
	ShopID  string  `json:"shop_id" validate:"required"`
	Lat     float64 `json:"lat" validate:"latitude"`
	Lng     float64 `json:"lng" validate:"longitude"`
	Address string  `json:"address" validate:"required"`
}

type Quote struct {
	DistanceKm         float64    `json:"distance_km"`
	DeliveryFee        int        `json:"delivery_fee"`
	CODFee             int        `json:"cod_fee"`
	ScheduledAt        time.Time  `json:"scheduled_at"`
	ScheduledLabel     string     `json:"scheduled_label"`
	QuotationID        string     `json:"quotation_id,omitempty"`
	QuotationExpiresAt *time.Time `json:"quotation_expires_at,omitempty"`
}

func QuoteEntityToJSON(q entities.Quote) Quote {
	out := Quote{
		DistanceKm:     q.DistanceKm,
		DeliveryFee:    q.DeliveryFee,
		CODFee:         q.CODFee,
		ScheduledAt:    q.ScheduledAt,
		ScheduledLabel: q.ScheduledLabel,
		QuotationID:    q.QuotationID,
	}
	if !q.QuotationExpiresAt.IsZero() {
		t := q.QuotationExpiresAt
		out.QuotationExpiresAt = &t
	}
	return out
}

type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

type CreateOrderRequest struct {
	ShopID       string             `json:"shop_id" validate:"required"`
	BuyerName    string             `json:"buyer_name" validate:"required"`
	BuyerPhone   string             `json:"buyer_phone" validate:"required"`
	BuyerAddress string             `json:"buyer_address" validate:"required"`
	BuyerLat     float64            `json:"buyer_lat" validate:"latitude"`
	BuyerLng     float64            `json:"buyer_lng" validate:"longitude"`
	Note         string             `json:"note"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r CreateOrderRequest) ToInput() service.CreateOrderInput {
	items := make([]service.CreateOrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.CreateOrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return service.CreateOrderInput{
		ShopID:       r.ShopID,
		BuyerName:    r.BuyerName,
		BuyerPhone:   r.BuyerPhone,
		BuyerAddress: r.BuyerAddress,
		BuyerLat:     r.BuyerLat,
		BuyerLng:     r.BuyerLng,
		Note:         r.Note,
		Items:        items,
	}
}

type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	OrderID string `json:"order_id"`
	OrderNo string `json:"order_no"`
	ShopID  string `json:"shop_id"`
	Status  string `json:"status"`

	BuyerName    string `json:"buyer_name"`
	BuyerPhone   string `json:"buyer_phone"`
	BuyerAddress string `json:"buyer_address"`
	Note         string `json:"note,omitempty"`

	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"delivery_fee"`
	CODFee      int `json:"cod_fee"`
	Total       int `json:"total"`

	ScheduledAt    time.Time `json:"scheduled_at"`
	ScheduledLabel string    `json:"scheduled_label"`

	CreatedAt    time.Time  `json:"created_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	DispatchedAt *time.Time `json:"dispatched_at,omitempty"`
	PickedUpAt   *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	FailedAt     *time.Time `json:"failed_at,omitempty"`
	FailReason   string     `json:"fail_reason,omitempty"`

	Items []OrderItem `json:"items"`

	Delivery *DeliveryInfo `json:"delivery,omitempty"`
}

// DeliveryInfo — публичная часть данных о доставке для трекинга.
type DeliveryInfo struct {
	Status      string     `json:"status"`
	DriverName  string     `json:"driver_name,omitempty"`
	DriverPhone string     `json:"driver_phone,omitempty"`
	DriverPlate string     `json:"driver_plate,omitempty"`
	ShareLink   string     `json:"share_link,omitempty"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

func DeliveryEntityToJSON(d entities.Delivery) DeliveryInfo {
	return DeliveryInfo{
		Status:      string(d.Status),
		DriverName:  d.DriverName,
		DriverPhone: d.DriverPhone,
		DriverPlate: d.DriverPlate,
		ShareLink:   d.ShareLink,
		PickedUpAt:  d.PickedUpAt,
		DeliveredAt: d.DeliveredAt,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return Order{
		OrderID: o.OrderID,
		OrderNo: o.OrderNo,
		ShopID:  o.ShopID,
		Status:  string(o.Status),

		BuyerName:    o.BuyerName,
		BuyerPhone:   o.BuyerPhone,
		BuyerAddress: o.BuyerAddress,
		Note:         o.Note,

		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		CODFee:      o.CODFee,
		Total:       o.Total,

		ScheduledAt:    o.ScheduledAt,
		ScheduledLabel: o.ScheduledLabel,

		CreatedAt:    o.CreatedAt,
		ConfirmedAt:  o.ConfirmedAt,
		DispatchedAt: o.DispatchedAt,
		PickedUpAt:   o.PickedUpAt,
		DeliveredAt:  o.DeliveredAt,
		CancelledAt:  o.CancelledAt,
		FailedAt:     o.FailedAt,
		FailReason:   o.FailReason,

		Items: items,
	}
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}

type DispatchRequest struct {
	SellerID string   `json:"seller_id" validate:"required"`
	OrderIDs []string `json:"order_ids" validate:"required,min=1"`
}
