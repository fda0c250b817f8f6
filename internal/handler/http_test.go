package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/15augustjon-tech/tapshop-delivery/internal/handler"
	mocks "github.com/15augustjon-tech/tapshop-delivery/internal/handler/mocks"
	"github.com/15augustjon-tech/tapshop-delivery/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	quotes     *mocks.MockQuoteProvider
	orders     *mocks.MockOrderManager
	dispatcher *mocks.MockDispatcher
}

func newTestRouter(t *testing.T) (chi.Router, handlerMocks) {
	m := handlerMocks{
		quotes:     mocks.NewMockQuoteProvider(t),
		orders:     mocks.NewMockOrderManager(t),
		dispatcher: mocks.NewMockDispatcher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.quotes, m.orders, m.dispatcher)

	r := chi.NewRouter()
	h.Init(r)
	return r, m
}

func doRequest(t *testing.T, r chi.Router, method, path, body string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

func TestHTTPHandler_GetQuote(t *testing.T) {
	validQuote := entities.Quote{
		DistanceKm:     3.3,
		DeliveryFee:    72,
		CODFee:         20,
		ScheduledAt:    time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC),
		ScheduledLabel: "Mon 31 Aug 2026 14:00",
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"shop_id":"shop-1","lat":13.78,"lng":100.50,"address":"Sukhumvit 1"}`,
			mockBehavior: func(m handlerMocks) {
				m.quotes.EXPECT().
					GetQuote(mock.Anything, "shop-1", 13.78, 100.50, "Sukhumvit 1").
					Return(validQuote, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"delivery_fee":72`,
		},
		{
			name:         "missing address",
			body:         `{"shop_id":"shop-1","lat":13.78,"lng":100.50}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Address"`,
		},
		{
			name:         "latitude out of range",
			body:         `{"shop_id":"shop-1","lat":120,"lng":100.50,"address":"x"}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "outside service radius",
			body: `{"shop_id":"shop-1","lat":14.5,"lng":100.50,"address":"far away"}`,
			mockBehavior: func(m handlerMocks) {
				m.quotes.EXPECT().
					GetQuote(mock.Anything, "shop-1", 14.5, 100.50, "far away").
					Return(entities.Quote{}, entities.ErrDistanceExceeded).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "distance_exceeded",
		},
		{
			name: "shop not found",
			body: `{"shop_id":"ghost","lat":13.78,"lng":100.50,"address":"x"}`,
			mockBehavior: func(m handlerMocks) {
				m.quotes.EXPECT().
					GetQuote(mock.Anything, "ghost", 13.78, 100.50, "x").
					Return(entities.Quote{}, entities.ErrShopNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, body := doRequest(t, r, http.MethodPost, "/api/quote", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, body, tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"shop_id":"shop-1","buyer_name":"Somchai","buyer_phone":"0812345678",
		"buyer_address":"Sukhumvit 1","buyer_lat":13.78,"buyer_lng":100.50,
		"items":[{"product_id":"p1","quantity":2}]
	}`

	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, in service.CreateOrderInput) {
				assert.Equal(t, "shop-1", in.ShopID)
				assert.Len(t, in.Items, 1)
			}).
			Return(entities.Order{OrderID: "o-1", OrderNo: "TS-20260830-ABCD1234", Status: entities.OrderStatusPending, Total: 472}, nil).Once()

		res, body := doRequest(t, r, http.MethodPost, "/api/orders", validBody)

		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Contains(t, body, `"order_no":"TS-20260830-ABCD1234"`)
		assert.Contains(t, body, `"total":472`)
	})

	t.Run("empty items rejected", func(t *testing.T) {
		r, _ := newTestRouter(t)
		res, _ := doRequest(t, r, http.MethodPost, "/api/orders",
			`{"shop_id":"shop-1","buyer_name":"a","buyer_phone":"0812345678","buyer_address":"x","buyer_lat":13.7,"buyer_lng":100.5,"items":[]}`)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Return(entities.Order{}, entities.ErrInsufficientStock).Once()

		res, _ := doRequest(t, r, http.MethodPost, "/api/orders", validBody)
		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	})

	t.Run("malformed json", func(t *testing.T) {
		r, _ := newTestRouter(t)
		res, _ := doRequest(t, r, http.MethodPost, "/api/orders", `{"shop_id":`)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTPHandler_TransitionOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().
			Transition(mock.Anything, "o-1", entities.OrderStatusConfirmed).
			Return(entities.Order{OrderID: "o-1", Status: entities.OrderStatusConfirmed}, nil).Once()

		res, body := doRequest(t, r, http.MethodPost, "/api/orders/o-1/status", `{"status":"confirmed"}`)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"status":"confirmed"`)
	})

	t.Run("unknown status", func(t *testing.T) {
		r, _ := newTestRouter(t)
		res, _ := doRequest(t, r, http.MethodPost, "/api/orders/o-1/status", `{"status":"teleported"}`)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("illegal transition", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().
			Transition(mock.Anything, "o-1", entities.OrderStatusCancelled).
			Return(entities.Order{}, &entities.InvalidTransitionError{
				From: entities.OrderStatusDelivered,
				To:   entities.OrderStatusCancelled,
			}).Once()

		res, body := doRequest(t, r, http.MethodPost, "/api/orders/o-1/status", `{"status":"cancelled"}`)
		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Contains(t, body, "invalid_transition")
	})
}

func TestHTTPHandler_Dispatch(t *testing.T) {
	t.Run("success with partial failure", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.dispatcher.EXPECT().
			DispatchBatch(mock.Anything, "seller-1", []string{"o1", "o2"}).
			Return(service.DispatchSummary{
				Dispatched: 1,
				Failed:     1,
				Results: []service.DispatchResult{
					{OrderID: "o1", Ok: true, ShareLink: "https://track/1"},
					{OrderID: "o2", Reason: "provider unavailable"},
				},
			}, nil).Once()

		res, body := doRequest(t, r, http.MethodPost, "/api/dispatch", `{"seller_id":"seller-1","order_ids":["o1","o2"]}`)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"dispatched":1`)
		assert.Contains(t, body, `"provider unavailable"`)
	})

	t.Run("pickup not configured", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.dispatcher.EXPECT().
			DispatchBatch(mock.Anything, "seller-1", []string{"o1"}).
			Return(service.DispatchSummary{}, entities.ErrPickupNotConfigured).Once()

		res, _ := doRequest(t, r, http.MethodPost, "/api/dispatch", `{"seller_id":"seller-1","order_ids":["o1"]}`)
		assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	})

	t.Run("empty order list rejected", func(t *testing.T) {
		r, _ := newTestRouter(t)
		res, _ := doRequest(t, r, http.MethodPost, "/api/dispatch", `{"seller_id":"seller-1","order_ids":[]}`)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTPHandler_GetOrderByNumber(t *testing.T) {
	t.Run("success with delivery block", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().
			TrackOrder(mock.Anything, "TS-20260830-ABCD1234").
			Return(
				entities.Order{OrderNo: "TS-20260830-ABCD1234", Status: entities.OrderStatusDispatched},
				&entities.Delivery{Status: entities.DeliveryStatusDriverAssigned, DriverName: "Anan", ShareLink: "https://track/1"},
				nil,
			).Once()

		res, body := doRequest(t, r, http.MethodGet, "/api/orders/TS-20260830-ABCD1234", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"status":"dispatched"`)
		assert.Contains(t, body, `"driver_name":"Anan"`)
	})

	t.Run("pending order has no delivery block", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().
			TrackOrder(mock.Anything, "TS-20260830-ABCD1234").
			Return(entities.Order{OrderNo: "TS-20260830-ABCD1234", Status: entities.OrderStatusPending}, nil, nil).Once()

		res, body := doRequest(t, r, http.MethodGet, "/api/orders/TS-20260830-ABCD1234", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.NotContains(t, body, `"delivery"`)
	})

	t.Run("not found", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().
			TrackOrder(mock.Anything, "ghost").
			Return(entities.Order{}, nil, entities.ErrOrderNotFound).Once()

		res, _ := doRequest(t, r, http.MethodGet, "/api/orders/ghost", "")
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}
