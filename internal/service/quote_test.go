package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/config"
	"github.com/15augustjon-tech/tapshop-delivery/internal/courier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/15augustjon-tech/tapshop-delivery/internal/service"
	mocks "github.com/15augustjon-tech/tapshop-delivery/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDeliveryConfig() config.Delivery {
	return config.Delivery{
		ServiceRadiusKm:     30,
		BaseFee:             40,
		PerKmFee:            8,
		MaxFee:              300,
		CODFee:              20,
		CutoffBuffer:        3 * time.Hour,
		HorizonDays:         14,
		DispatchConcurrency: 4,
	}
}

func testShop() entities.Shop {
	return entities.Shop{
		ShopID:           "shop-1",
		SellerID:         "seller-1",
		Name:             "Test Shop",
		Phone:            "+66811111111",
		PickupLat:        13.7563,
		PickupLng:        100.5018,
		PickupConfigured: true,
		OpenWeekdays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday, time.Sunday,
		},
		ShipTime: "14:00",
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQuoteService_GetQuote(t *testing.T) {
	shop := testShop()

	// ~3.34 км от точки самовывоза.
	nearLat, nearLng := shop.PickupLat+0.03, shop.PickupLng
	// ~55 км, за пределами радиуса.
	farLat, farLng := shop.PickupLat+0.5, shop.PickupLng

	providerErr := errors.New("provider down")

	testCases := []struct {
		name         string
		lat, lng     float64
		mockBehavior func(shops *mocks.MockShopRepo, api *mocks.MockCourierAPI)
		check        func(t *testing.T, q entities.Quote)
		wantErr      error
	}{
		{
			name: "provider quote used",
			lat:  nearLat, lng: nearLng,
			mockBehavior: func(shops *mocks.MockShopRepo, api *mocks.MockCourierAPI) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil)
				api.EXPECT().Quote(mock.Anything, mock.Anything).Return(courier.QuoteResponse{
					QuotationID: "q-1",
					Fee:         95,
					ExpiresAt:   time.Now().Add(5 * time.Minute),
				}, nil)
			},
			check: func(t *testing.T, q entities.Quote) {
				assert.Equal(t, 95, q.DeliveryFee)
				assert.Equal(t, "q-1", q.QuotationID)
				assert.Equal(t, 20, q.CODFee)
				assert.InDelta(t, 3.3, q.DistanceKm, 0.1)
				assert.False(t, q.ScheduledAt.IsZero())
				assert.NotEmpty(t, q.ScheduledLabel)
			},
		},
		{
			name: "provider failure falls back to formula",
			lat:  nearLat, lng: nearLng,
			mockBehavior: func(shops *mocks.MockShopRepo, api *mocks.MockCourierAPI) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil)
				api.EXPECT().Quote(mock.Anything, mock.Anything).Return(courier.QuoteResponse{}, providerErr)
			},
			check: func(t *testing.T, q entities.Quote) {
				// 40 + 8 * ceil(3.34) = 72
				assert.Equal(t, 72, q.DeliveryFee)
				assert.Empty(t, q.QuotationID)
			},
		},
		{
			name: "outside service radius, provider never called",
			lat:  farLat, lng: farLng,
			mockBehavior: func(shops *mocks.MockShopRepo, api *mocks.MockCourierAPI) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil)
				// никаких ожиданий на api: вызов провалит тест
			},
			wantErr: entities.ErrDistanceExceeded,
		},
		{
			name: "pickup not configured",
			lat:  nearLat, lng: nearLng,
			mockBehavior: func(shops *mocks.MockShopRepo, api *mocks.MockCourierAPI) {
				noPickup := shop
				noPickup.PickupConfigured = false
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(noPickup, nil)
			},
			wantErr: entities.ErrPickupNotConfigured,
		},
		{
			name: "shop not found",
			lat:  nearLat, lng: nearLng,
			mockBehavior: func(shops *mocks.MockShopRepo, api *mocks.MockCourierAPI) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(entities.Shop{}, entities.ErrShopNotFound)
			},
			wantErr: entities.ErrShopNotFound,
		},
		{
			name: "invalid dropoff coordinates",
			lat:  120, lng: 0,
			mockBehavior: func(shops *mocks.MockShopRepo, api *mocks.MockCourierAPI) {
				shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil)
			},
			wantErr: nil, // проверяем только факт ошибки
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			shops := mocks.NewMockShopRepo(t)
			api := mocks.NewMockCourierAPI(t)
			tc.mockBehavior(shops, api)

			svc := service.NewQuoteService(discardLogger(), shops, api, testDeliveryConfig())

			quote, err := svc.GetQuote(context.Background(), "shop-1", tc.lat, tc.lng, "Sukhumvit 1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			if tc.check == nil {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, quote)
		})
	}
}

func TestQuoteService_FallbackWithoutProvider(t *testing.T) {
	shop := testShop()
	shops := mocks.NewMockShopRepo(t)
	shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil)

	// Провайдер не настроен: курьерского клиента нет вообще.
	svc := service.NewQuoteService(discardLogger(), shops, nil, testDeliveryConfig())

	quote, err := svc.GetQuote(context.Background(), "shop-1", shop.PickupLat+0.03, shop.PickupLng, "addr")
	require.NoError(t, err)
	assert.Equal(t, 72, quote.DeliveryFee)
	assert.Equal(t, 20, quote.CODFee)
}

func TestQuoteService_FallbackFeeCap(t *testing.T) {
	shop := testShop()
	shops := mocks.NewMockShopRepo(t)
	shops.EXPECT().GetShopByID(mock.Anything, "shop-1").Return(shop, nil)

	cfg := testDeliveryConfig()
	cfg.MaxFee = 60

	svc := service.NewQuoteService(discardLogger(), shops, nil, cfg)

	quote, err := svc.GetQuote(context.Background(), "shop-1", shop.PickupLat+0.03, shop.PickupLng, "addr")
	require.NoError(t, err)
	assert.Equal(t, 60, quote.DeliveryFee)
}
