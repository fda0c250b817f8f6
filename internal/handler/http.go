package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/15augustjon-tech/tapshop-delivery/internal/courier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/15augustjon-tech/tapshop-delivery/internal/service"
	"github.com/15augustjon-tech/tapshop-delivery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type QuoteProvider interface {
	GetQuote(ctx context.Context, shopID string, lat, lng float64, address string) (entities.Quote, error)
}

type OrderManager interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	Transition(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error)
	TrackOrder(ctx context.Context, orderNo string) (entities.Order, *entities.Delivery, error)
}

type Dispatcher interface {
	DispatchBatch(ctx context.Context, sellerID string, orderIDs []string) (service.DispatchSummary, error)
}

type HTTPHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	quotes     QuoteProvider
	orders     OrderManager
	dispatcher Dispatcher
}

func NewHTTPHandler(logger *slog.Logger, quotes QuoteProvider, orders OrderManager, dispatcher Dispatcher) *HTTPHandler {
	return &HTTPHandler{
		logger:     logger.With(slog.String("handler", "http")),
		validate:   validator.New(),
		quotes:     quotes,
		orders:     orders,
		dispatcher: dispatcher,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/api/quote", h.GetQuote)
	r.Post("/api/orders", h.CreateOrder)
	r.Get("/api/orders/{order_no}", h.GetOrderByNumber)
	r.Post("/api/orders/{order_id}/status", h.TransitionOrder)
	r.Post("/api/dispatch", h.Dispatch)
}

func (h *HTTPHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req QuoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	quote, err := h.quotes.GetQuote(ctx, req.ShopID, req.Lat, req.Lng, req.Address)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get quote")
		return
	}

	utils.WriteJSON(w, QuoteEntityToJSON(quote), http.StatusOK)
}

func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(ctx, req.ToInput())
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to create order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *HTTPHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNo := chi.URLParam(r, "order_no")

	if err := h.validate.Var(orderNo, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, delivery, err := h.orders.TrackOrder(ctx, orderNo)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to get order")
		return
	}

	resp := OrderEntityToJSON(order)
	if delivery != nil {
		info := DeliveryEntityToJSON(*delivery)
		resp.Delivery = &info
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *HTTPHandler) TransitionOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req TransitionRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	target := entities.OrderStatus(req.Status)
	if !target.Valid() {
		utils.WriteError(w, "unknown status", http.StatusBadRequest)
		return
	}

	order, err := h.orders.Transition(ctx, orderID, target)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to transition order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DispatchRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	summary, err := h.dispatcher.DispatchBatch(ctx, req.SellerID, req.OrderIDs)
	if err != nil {
		h.writeDomainError(ctx, w, err, "failed to dispatch orders")
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

// writeDomainError переводит доменные ошибки в HTTP-коды.
func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error, logMsg string) {
	var invalidErr *entities.InvalidTransitionError
	if errors.As(err, &invalidErr) {
		utils.WriteError(w, invalidErr.Error(), http.StatusConflict)
		return
	}

	switch {
	case errors.Is(err, courier.ErrInvalidPhone):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrShopNotFound),
		errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrDistanceExceeded),
		errors.Is(err, entities.ErrPickupNotConfigured),
		errors.Is(err, entities.ErrProductUnavailable),
		errors.Is(err, entities.ErrInsufficientStock),
		errors.Is(err, entities.ErrProviderNotConfigured):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(ctx, logMsg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
