package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/15augustjon-tech/tapshop-delivery/internal/config"
	"github.com/15augustjon-tech/tapshop-delivery/internal/courier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/entities"
	"github.com/15augustjon-tech/tapshop-delivery/internal/geo"
	"github.com/15augustjon-tech/tapshop-delivery/internal/schedule"
)

// QuoteService считает условия доставки до оформления заказа:
// расстояние, слот и стоимость. Стоимость берётся у провайдера, а при
// любом его сбое — по детерминированной формуле: на этом этапе деньги
// ещё не двигались, деградация безопасна.
type QuoteService struct {
	logger  *slog.Logger
	shops   ShopRepo
	courier CourierAPI // nil, если провайдер не настроен
	cfg     config.Delivery
	now     func() time.Time
}

func NewQuoteService(logger *slog.Logger, shops ShopRepo, courierAPI CourierAPI, cfg config.Delivery) *QuoteService {
	return &QuoteService{
		logger:  logger.With(slog.String("service", "quote")),
		shops:   shops,
		courier: courierAPI,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (s *QuoteService) GetQuote(ctx context.Context, shopID string, buyerLat, buyerLng float64, address string) (entities.Quote, error) {
	shop, err := s.shops.GetShopByID(ctx, shopID)
	if err != nil {
		return entities.Quote{}, err
	}
	return s.QuoteForShop(ctx, shop, buyerLat, buyerLng, address)
}

// QuoteForShop — тот же расчёт для уже загруженного магазина
// (оформление заказа и диспетчеризация грузят магазин сами).
func (s *QuoteService) QuoteForShop(ctx context.Context, shop entities.Shop, buyerLat, buyerLng float64, address string) (entities.Quote, error) {
	if !shop.PickupConfigured {
		return entities.Quote{}, entities.ErrPickupNotConfigured
	}

	pickup, err := geo.NewPoint(shop.PickupLat, shop.PickupLng)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("pickup coordinates: %w", err)
	}
	dropoff, err := geo.NewPoint(buyerLat, buyerLng)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("dropoff coordinates: %w", err)
	}

	distance := geo.Distance(pickup, dropoff)

	// Проверка радиуса строго до похода к провайдеру: запрос за
	// пределы зоны обслуживания — это не повод тратить вызов API.
	if distance > s.cfg.ServiceRadiusKm {
		return entities.Quote{}, entities.ErrDistanceExceeded
	}

	slot := schedule.NextSlot(schedule.WeeklySchedule{
		Weekdays: shop.OpenWeekdays,
		ShipTime: shop.ShipTime,
	}, s.now(), s.cfg.CutoffBuffer, s.cfg.HorizonDays)

	quote := entities.Quote{
		DistanceKm:     geo.Round1(distance),
		CODFee:         s.cfg.CODFee,
		ScheduledAt:    slot.At,
		ScheduledLabel: slot.Label,
	}

	if s.courier != nil {
		res, err := s.courier.Quote(ctx, courier.QuoteRequest{
			Pickup:  courier.Stop{Lat: shop.PickupLat, Lng: shop.PickupLng, Address: shop.Name},
			Dropoff: courier.Stop{Lat: buyerLat, Lng: buyerLng, Address: address},
		})
		if err == nil {
			quote.DeliveryFee = res.Fee
			quote.QuotationID = res.QuotationID
			quote.QuotationExpiresAt = res.ExpiresAt
			quotesTotal.WithLabelValues("provider").Inc()
			return quote, nil
		}
		s.logger.Warn("provider quote failed, using fallback formula",
			slog.String("shop_id", shop.ShopID), slog.Any("error", err))
	}

	quote.DeliveryFee = s.fallbackFee(distance)
	quotesTotal.WithLabelValues("fallback").Inc()
	return quote, nil
}

// fallbackFee: min(cap, base + perKm * ceil(distance)).
func (s *QuoteService) fallbackFee(distanceKm float64) int {
	fee := s.cfg.BaseFee + s.cfg.PerKmFee*int(math.Ceil(distanceKm))
	if fee > s.cfg.MaxFee {
		return s.cfg.MaxFee
	}
	return fee
}
