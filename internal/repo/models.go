package repo

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
)

type Order struct {
	OrderID      string         `db:"order_id"`
	OrderNo      string         `db:"order_no"`
	ShopID       string         `db:"shop_id"`
	Status       string         `db:"status"`
	BuyerName    string         `db:"buyer_name"`
	BuyerPhone   string         `db:"buyer_phone"`
	BuyerAddress string         `db:"buyer_address"`
	BuyerLat     float64        `db:"buyer_lat"`
	BuyerLng     float64        `db:"buyer_lng"`
	Note         sql.NullString `db:"note"`

	Subtotal    int `db:"subtotal"`
	DeliveryFee int `db:"delivery_fee"`
	CODFee      int `db:"cod_fee"`
	Total       int `db:"total"`

	ScheduledAt    time.Time `db:"scheduled_at"`
	ScheduledLabel string    `db:"scheduled_label"`

	CreatedAt    time.Time      `db:"created_at"`
	ConfirmedAt  sql.NullTime   `db:"confirmed_at"`
	DispatchedAt sql.NullTime   `db:"dispatched_at"`
	PickedUpAt   sql.NullTime   `db:"picked_up_at"`
	DeliveredAt  sql.NullTime   `db:"delivered_at"`
	CancelledAt  sql.NullTime   `db:"cancelled_at"`
	FailedAt     sql.NullTime   `db:"failed_at"`
	FailReason   sql.NullString `db:"fail_reason"`
}

type OrderItem struct {
	OrderID   string `db:"order_id"`
	ProductID string `db:"product_id"`
	Name      string `db:"name"`
	Price     int    `db:"price"`
	Quantity  int    `db:"quantity"`
}

type Delivery struct {
	DeliveryID      string `db:"delivery_id"`
	OrderID         string `db:"order_id"`
	ProviderOrderID string `db:"provider_order_id"`
	ProviderStatus  string `db:"provider_status"`
	Status          string `db:"status"`
	ProviderFee     int    `db:"provider_fee"`
	CODAmount       int    `db:"cod_amount"`

	DriverName  sql.NullString `db:"driver_name"`
	DriverPhone sql.NullString `db:"driver_phone"`
	DriverPlate sql.NullString `db:"driver_plate"`
	ShareLink   sql.NullString `db:"share_link"`

	CreatedAt   time.Time    `db:"created_at"`
	PickedUpAt  sql.NullTime `db:"picked_up_at"`
	DeliveredAt sql.NullTime `db:"delivered_at"`
}

type Shop struct {
	ShopID       string          `db:"shop_id"`
	SellerID     string          `db:"seller_id"`
	Name         string          `db:"name"`
	Phone        string          `db:"phone"`
	PickupLat    sql.NullFloat64 `db:"pickup_lat"`
	PickupLng    sql.NullFloat64 `db:"pickup_lng"`
	OpenWeekdays string          `db:"open_weekdays"`
	ShipTime     string          `db:"ship_time"`
}

type Product struct {
	ProductID string `db:"product_id"`
	ShopID    string `db:"shop_id"`
	Name      string `db:"name"`
	Price     int    `db:"price"`
	Stock     int    `db:"stock"`
	Active    bool   `db:"active"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		OrderID:      o.OrderID,
		OrderNo:      o.OrderNo,
		ShopID:       o.ShopID,
		Status:       entities.OrderStatus(o.Status),
		BuyerName:    o.BuyerName,
		BuyerPhone:   o.BuyerPhone,
		BuyerAddress: o.BuyerAddress,
		BuyerLat:     o.BuyerLat,
		BuyerLng:     o.BuyerLng,
		Note:         nullStringToString(o.Note),

		Subtotal:    o.Subtotal,
		DeliveryFee: o.DeliveryFee,
		CODFee:      o.CODFee,
		Total:       o.Total,

		ScheduledAt:    o.ScheduledAt,
		ScheduledLabel: o.ScheduledLabel,

		CreatedAt:    o.CreatedAt,
		ConfirmedAt:  nullTimeToPtr(o.ConfirmedAt),
		DispatchedAt: nullTimeToPtr(o.DispatchedAt),
		PickedUpAt:   nullTimeToPtr(o.PickedUpAt),
		DeliveredAt:  nullTimeToPtr(o.DeliveredAt),
		CancelledAt:  nullTimeToPtr(o.CancelledAt),
		FailedAt:     nullTimeToPtr(o.FailedAt),
		FailReason:   nullStringToString(o.FailReason),
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Name:      i.Name,
		Price:     i.Price,
		Quantity:  i.Quantity,
	}
}

func DeliveryToEntity(d Delivery) entities.Delivery {
	return entities.Delivery{
		DeliveryID:      d.DeliveryID,
		OrderID:         d.OrderID,
		ProviderOrderID: d.ProviderOrderID,
		ProviderStatus:  d.ProviderStatus,
		Status:          entities.DeliveryStatus(d.Status),
		ProviderFee:     d.ProviderFee,
		CODAmount:       d.CODAmount,
		DriverName:      nullStringToString(d.DriverName),
		DriverPhone:     nullStringToString(d.DriverPhone),
		DriverPlate:     nullStringToString(d.DriverPlate),
		ShareLink:       nullStringToString(d.ShareLink),
		CreatedAt:       d.CreatedAt,
		PickedUpAt:      nullTimeToPtr(d.PickedUpAt),
		DeliveredAt:     nullTimeToPtr(d.DeliveredAt),
	}
}

func ShopToEntity(s Shop) entities.Shop {
	return entities.Shop{
		ShopID:           s.ShopID,
		SellerID:         s.SellerID,
		Name:             s.Name,
		Phone:            s.Phone,
		PickupLat:        s.PickupLat.Float64,
		PickupLng:        s.PickupLng.Float64,
		PickupConfigured: s.PickupLat.Valid && s.PickupLng.Valid,
		OpenWeekdays:     parseWeekdays(s.OpenWeekdays),
		ShipTime:         s.ShipTime,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ProductID: p.ProductID,
		ShopID:    p.ShopID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		Active:    p.Active,
	}
}

// parseWeekdays разбирает csv вида "1,3,5" (0 = воскресенье, как в time.Weekday).
func parseWeekdays(csv string) []time.Weekday {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 6 {
			continue
		}
		days = append(days, time.Weekday(n))
	}
	return days
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}
