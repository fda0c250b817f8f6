package courier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/pkg/utils"
	"github.com/google/uuid"
)

type Config struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Market    string

	// Timeout ограничивает одну HTTP-попытку. Общий бюджет вызова —
	// ответственность контекста вызывающего кода.
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client — типизированная обёртка над API логистического провайдера.
// Каждый запрос подписывается HMAC-SHA256, транзиентные сбои (сеть, 5xx)
// повторяются с экспоненциальным backoff, 4xx отдаются сразу как ClientError.
type Client struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger

	// Подменяются в тестах.
	now          func() time.Time
	newRequestID func() string
}

func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 200 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 2 * time.Second
	}

	return &Client{
		cfg:          cfg,
		client:       &http.Client{Timeout: cfg.Timeout},
		logger:       logger.With(slog.String("client", "courier")),
		now:          time.Now,
		newRequestID: uuid.NewString,
	}
}

func (c *Client) Quote(ctx context.Context, req QuoteRequest) (QuoteResponse, error) {
	var res QuoteResponse
	body := quoteBody{Pickup: req.Pickup, Dropoff: req.Dropoff}
	if err := c.call(ctx, "quote", http.MethodPost, "/v1/quotations", body, &res); err != nil {
		return QuoteResponse{}, err
	}
	return res, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (CreateOrderResponse, error) {
	senderPhone, err := NormalizePhone(req.Sender.Phone)
	if err != nil {
		return CreateOrderResponse{}, fmt.Errorf("sender phone: %w", err)
	}
	recipientPhone, err := NormalizePhone(req.Recipient.Phone)
	if err != nil {
		return CreateOrderResponse{}, fmt.Errorf("recipient phone: %w", err)
	}

	body := createOrderBody{
		QuotationID: req.QuotationID,
		Sender:      Contact{Name: req.Sender.Name, Phone: senderPhone},
		Recipient:   Contact{Name: req.Recipient.Name, Phone: recipientPhone},
		Remarks:     req.Remarks,
		CODAmount:   req.CODAmount,
	}

	var res CreateOrderResponse
	if err := c.call(ctx, "create_order", http.MethodPost, "/v1/orders", body, &res); err != nil {
		return CreateOrderResponse{}, err
	}
	return res, nil
}

func (c *Client) GetStatus(ctx context.Context, providerOrderID string) (StatusResponse, error) {
	var res StatusResponse
	if err := c.call(ctx, "get_status", http.MethodGet, "/v1/orders/"+providerOrderID, nil, &res); err != nil {
		return StatusResponse{}, err
	}
	return res, nil
}

func (c *Client) CancelOrder(ctx context.Context, providerOrderID string) error {
	return c.call(ctx, "cancel_order", http.MethodDelete, "/v1/orders/"+providerOrderID, nil, nil)
}

func (c *Client) call(ctx context.Context, operation, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	attempt := func() error {
		return c.doAttempt(ctx, method, path, payload, out)
	}

	cfg := utils.RetryConfig{
		MaxAttempts:  c.cfg.MaxAttempts,
		InitialDelay: c.cfg.InitialBackoff,
		MaxDelay:     c.cfg.MaxBackoff,
		Multiplier:   2,
		RetryIf: func(err error) bool {
			var clientErr *ClientError
			return !errors.As(err, &clientErr) && !errors.Is(err, context.Canceled)
		},
	}

	err := utils.Retry(cfg, attempt)
	if err == nil {
		requestsTotal.WithLabelValues(operation, "ok").Inc()
		return nil
	}

	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		requestsTotal.WithLabelValues(operation, "client_error").Inc()
		return clientErr
	}

	requestsTotal.WithLabelValues(operation, "transient_error").Inc()
	c.logger.Warn("provider call failed",
		slog.String("operation", operation),
		slog.Int("attempts", c.cfg.MaxAttempts),
		slog.Any("error", err),
	)
	return &TransientError{Attempts: c.cfg.MaxAttempts, Err: err}
}

// doAttempt — одна попытка. Свежие timestamp и request id на каждую
// попытку: replay-защита провайдера не пропустит повтор той же подписи.
func (c *Client) doAttempt(ctx context.Context, method, path string, payload []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	timestamp := strconv.FormatInt(c.now().UnixMilli(), 10)
	signature := c.sign(timestamp, method, path, payload)

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("hmac %s:%s:%s", c.cfg.APIKey, timestamp, signature))
	req.Header.Set("Market", c.cfg.Market)
	req.Header.Set("X-Request-ID", c.newRequestID())

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case res.StatusCode >= 500:
		return fmt.Errorf("provider returned %d", res.StatusCode)
	case res.StatusCode >= 400:
		var body providerErrorBody
		// Тело ошибки может быть не JSON, тогда оставляем только статус.
		_ = json.Unmarshal(data, &body)
		return &ClientError{StatusCode: res.StatusCode, ProviderCode: body.Code, Message: body.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// sign считает HMAC-SHA256 над timestamp + метод + путь + тело.
func (c *Client) sign(timestamp, method, path string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(c.cfg.APISecret))
	fmt.Fprintf(mac, "%s\r\n%s\r\n%s\r\n\r\n%s", timestamp, method, path, payload)
	return hex.EncodeToString(mac.Sum(nil))
}
