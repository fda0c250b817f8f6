package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/15augustjon-tech/tapshop-delivery/internal/app"
	"github.com/15augustjon-tech/tapshop-delivery/internal/config"
	"github.com/15augustjon-tech/tapshop-delivery/internal/courier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/handler"
	"github.com/15augustjon-tech/tapshop-delivery/internal/notifier"
	"github.com/15augustjon-tech/tapshop-delivery/internal/postgres"
	"github.com/15augustjon-tech/tapshop-delivery/internal/repo"
	"github.com/15augustjon-tech/tapshop-delivery/internal/service"
	"github.com/15augustjon-tech/tapshop-delivery/pkg/cache"
	"github.com/15augustjon-tech/tapshop-delivery/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	deliveryRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	trackingCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	// Без API-ключа провайдер считается не настроенным: котировки по
	// формуле, диспетчеризация отвечает ошибкой.
	var courierAPI service.CourierAPI
	if conf.Courier.APIKey != "" {
		courierAPI = courier.New(courier.Config{
			BaseURL:   conf.Courier.BaseURL,
			APIKey:    conf.Courier.APIKey,
			APISecret: conf.Courier.APISecret,
			Market:    conf.Courier.Market,

			Timeout:        conf.Courier.Timeout,
			MaxAttempts:    conf.Courier.MaxAttempts,
			InitialBackoff: conf.Courier.InitialBackoff,
			MaxBackoff:     conf.Courier.MaxBackoff,
		}, logger)
	} else {
		logger.Warn("courier provider is not configured")
	}

	events := notifier.NewKafka(logger, conf.Kafka)

	quoteService := service.NewQuoteService(logger, deliveryRepo, courierAPI, conf.Delivery)
	orderService := service.NewOrderService(logger, txManager, deliveryRepo, deliveryRepo, deliveryRepo, deliveryRepo, quoteService, events, trackingCache)
	dispatchService := service.NewDispatchService(logger, txManager, deliveryRepo, deliveryRepo, deliveryRepo, courierAPI, events, conf.Delivery)
	webhookService := service.NewWebhookService(logger, txManager, deliveryRepo, deliveryRepo, courierAPI, events, conf.Courier.WebhookSecret)

	httpHandler := handler.NewHTTPHandler(logger, quoteService, orderService, dispatchService)
	webhookHandler := handler.NewWebhookHandler(logger, webhookService)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler, webhookHandler)
	app.SetClosers(events)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	trackingCache.StartJanitor(ctx)

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
