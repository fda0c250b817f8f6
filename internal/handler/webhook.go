package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/15augustjon-tech/tapshop-delivery/internal/courier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/15augustjon-tech/tapshop-delivery/pkg/utils"

	"github.com/go-chi/chi/v5"
)

const signatureHeader = "X-Courier-Signature"

type WebhookProcessor interface {
	VerifySignature(body []byte, signature string) error
	Process(ctx context.Context, body []byte) error
	Resync(ctx context.Context, orderNo string) error
}

// WebhookHandler принимает колбэки провайдера. Подпись проверяется по
// сырому телу до любого парсинга.
type WebhookHandler struct {
	logger *slog.Logger
	svc    WebhookProcessor
}

func NewWebhookHandler(logger *slog.Logger, svc WebhookProcessor) *WebhookHandler {
	return &WebhookHandler{
		logger: logger.With(slog.String("handler", "webhook")),
		svc:    svc,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/api/webhooks/courier", h.HandleCourierEvent)
	r.Post("/api/orders/{order_no}/resync", h.ResyncDelivery)
}

func (h *WebhookHandler) HandleCourierEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := h.svc.VerifySignature(body, r.Header.Get(signatureHeader)); err != nil {
		h.logger.WarnContext(ctx, "webhook signature rejected", slog.String("remote", r.RemoteAddr))
		utils.WriteError(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	err = h.svc.Process(ctx, body)
	switch {
	case errors.Is(err, entities.ErrInvalidPayload):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrDeliveryNotFound):
		// Провайдер прислал событие по неизвестной нам брони.
		utils.WriteError(w, "unknown delivery", http.StatusNotFound)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to process webhook", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}

// ResyncDelivery принудительно сверяет доставку с провайдером, когда
// вебхук потерялся.
func (h *WebhookHandler) ResyncDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNo := chi.URLParam(r, "order_no")

	err := h.svc.Resync(ctx, orderNo)

	var providerErr courier.ProviderError
	switch {
	case errors.Is(err, entities.ErrOrderNotFound), errors.Is(err, entities.ErrDeliveryNotFound):
		utils.WriteError(w, "order has no delivery to resync", http.StatusNotFound)
	case errors.Is(err, entities.ErrProviderNotConfigured):
		utils.WriteError(w, "courier provider is not configured", http.StatusUnprocessableEntity)
	case errors.As(err, &providerErr):
		h.logger.WarnContext(ctx, "resync rejected by provider", slog.Any("error", err))
		utils.WriteError(w, "courier provider is unavailable", http.StatusBadGateway)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to resync delivery", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}
