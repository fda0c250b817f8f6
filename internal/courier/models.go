package courier

import "time"

// Статусы из словаря провайдера, приходят в ответах и вебхуках.
const (
	ProviderStatusAssigningDriver = "ASSIGNING_DRIVER"
	ProviderStatusOnGoing         = "ON_GOING"
	ProviderStatusPickedUp        = "PICKED_UP"
	ProviderStatusCompleted       = "COMPLETED"
	ProviderStatusCanceled        = "CANCELED"
	ProviderStatusRejected        = "REJECTED"
	ProviderStatusExpired         = "EXPIRED"
)

type Stop struct {
	Lat     float64 `json:"lat,string"`
	Lng     float64 `json:"lng,string"`
	Address string  `json:"address"`
}

type QuoteRequest struct {
	Pickup  Stop
	Dropoff Stop
}

type QuoteResponse struct {
	QuotationID string    `json:"quotation_id"`
	Fee         int       `json:"fee"`
	Currency    string    `json:"currency"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type CreateOrderRequest struct {
	QuotationID string
	Sender      Contact
	Recipient   Contact
	Remarks     string
	// CODAmount — сумма наложенного платежа, которую водитель
	// забирает у получателя. 0 — без COD.
	CODAmount int
}

type CreateOrderResponse struct {
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Fee       int    `json:"fee"`
	ShareLink string `json:"share_link"`
}

type Driver struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	PlateNumber string `json:"plate_number"`
}

type StatusResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Driver  Driver `json:"driver"`
}

// providerErrorBody — тело ошибки 4xx у провайдера.
type providerErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type quoteBody struct {
	Pickup  Stop `json:"pickup"`
	Dropoff Stop `json:"dropoff"`
}

type createOrderBody struct {
	QuotationID string  `json:"quotation_id"`
	Sender      Contact `json:"sender"`
	Recipient   Contact `json:"recipient"`
	Remarks     string  `json:"remarks,omitempty"`
	CODAmount   int     `json:"cod_amount,omitempty"`
}
