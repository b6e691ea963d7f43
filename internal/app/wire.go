//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	mapsGateway "service/internal/gateway/maps"
	deliveries_get "service/internal/handlers/rest/deliveries_get"
	delivery_assign_post "service/internal/handlers/rest/delivery_assign_post"
	delivery_cancel_post "service/internal/handlers/rest/delivery_cancel_post"
	delivery_get "service/internal/handlers/rest/delivery_get"
	delivery_post "service/internal/handlers/rest/delivery_post"
	delivery_status_patch "service/internal/handlers/rest/delivery_status_patch"
	stats_get "service/internal/handlers/rest/stats_get"
	"service/internal/handlers/kafka-consumer/delivery_events"
	"service/internal/handlers/tasks/notifier_flush"
	"service/internal/notifier"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/status_message"
	"service/internal/pkg/kafka"
	"service/internal/pkg/push"

	deliveryRepo "service/internal/repository/delivery"
	deliveryService "service/internal/service/delivery"
	statsService "service/internal/service/stats"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	FlushInterval time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceStats      ServiceStats
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_get.Service
	deliveries_get.Service
	delivery_status_patch.Service
	delivery_assign_post.Service
	delivery_cancel_post.Service
}

type ServiceStats interface {
	stats_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideFlushInterval,

		provideDeliveryRepository,
		provideMapsGateway,
		provideDispatcher,
		status_message.New,

		provideServiceDelivery,
		provideServiceStats,

		provideNotifierFlushTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceStats), new(*statsService.Stats)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(statsService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.RouteGateway), new(*mapsGateway.MapsGateway)),
		wire.Bind(new(deliveryService.Notifier), new(*notifier.Dispatcher)),
		wire.Bind(new(deliveryService.MessageFactory), new(*status_message.MessageFactory)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notifier.Publisher), new(*kafka.Producer)),
		wire.Bind(new(notifier_flush.Service), new(*notifier.Dispatcher)),
	)
	return &Application{}, nil
}

type NotificationsWorkerApp struct {
	Handler *delivery_events.Handler
}

// InitializeNotificationsWorkerApp для Kafka воркера (cmd/worker-notifications)
func InitializeNotificationsWorkerApp(
	log logger.Logger,
	cfg *config.Config,
) (*NotificationsWorkerApp, error) {
	wire.Build(
		providePushSender,
		provideDeliveryEventsHandler,

		wire.Struct(new(NotificationsWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideMapsGateway(cfg *config.Config) *mapsGateway.MapsGateway {
	client := &http.Client{Timeout: cfg.Maps.RequestTimeout}
	return mapsGateway.New(client, cfg.Maps.BaseURL, cfg.Maps.APIKey)
}

func provideDispatcher(log logger.Logger, publisher notifier.Publisher, cfg *config.Config) *notifier.Dispatcher {
	return notifier.New(log, publisher, cfg.Notifier.QueueSize)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	routes deliveryService.RouteGateway,
	eventNotifier deliveryService.Notifier,
	messages deliveryService.MessageFactory,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		routes,
		eventNotifier,
		messages,
		txManager,
	)
}

func provideServiceStats(repository statsService.Repository) *statsService.Stats {
	return statsService.New(repository)
}

func provideFlushInterval(cfg *config.Config) FlushInterval {
	return FlushInterval(cfg.Tasks.NotifierFlushInterval)
}

func provideNotifierFlushTask(
	log logger.Logger,
	dispatcher notifier_flush.Service,
	interval FlushInterval,
) *notifier_flush.NotifierFlush {
	return notifier_flush.NewNotifierFlush(log, dispatcher, time.Duration(interval))
}

func provideTaskList(
	notifierFlushTask *notifier_flush.NotifierFlush,
) []background.Task {
	return []background.Task{
		notifierFlushTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func providePushSender(cfg *config.Config) *push.Sender {
	return push.NewSender(cfg.Push.WebhookURL, cfg.Push.RequestTimeout)
}

func provideDeliveryEventsHandler(log logger.Logger, sender *push.Sender, cfg *config.Config) *delivery_events.Handler {
	return delivery_events.New(log, sender, cfg.Kafka.Handlers.DeliveryEvents.ProcessTimeout)
}
