package entities

import "time"

// Shop — профиль продавца в объёме, который нужен доставке:
// точка забора и недельное расписание отгрузки. Меняется только
// через настройки продавца, здесь read-only.
type Shop struct {
	ShopID   string
	SellerID string
	Name     string
	Phone    string

	PickupLat        float64
	PickupLng        float64
	PickupConfigured bool

	OpenWeekdays []time.Weekday
	ShipTime     string // "15:04"
}

type Product struct {
	ProductID string
	ShopID    string
	Name      string
	Price     int
	Stock     int
	Active    bool
}
