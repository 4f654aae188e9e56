package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	pickupEventsGateway "pickup-service/internal/gateway/kafka/pickup_events"
	"pickup-service/internal/handlers/tasks/event_relay"
	"pickup-service/internal/handlers/tasks/presence_sweep"
	"pickup-service/internal/pkg/config"
	"pickup-service/internal/pkg/factory/intake_handle"
	"pickup-service/internal/pkg/metrics"
	cursorRepo "pickup-service/internal/repository/cursor"
	driverRepo "pickup-service/internal/repository/driver"
	pickupRepo "pickup-service/internal/repository/pickup"
	tenantRepo "pickup-service/internal/repository/tenant"
	assignmentService "pickup-service/internal/service/assignment"
	driverService "pickup-service/internal/service/driver"
	intakeService "pickup-service/internal/service/intake"
	notificationService "pickup-service/internal/service/notification"
	tenantService "pickup-service/internal/service/tenant"
	"pickup-service/pkg/background"
	"pickup-service/pkg/logger"
	"pickup-service/pkg/querier"
	"pickup-service/pkg/tx"
)

type EventsTopic string

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideEventsTopic(cfg *config.Config) EventsTopic {
	return EventsTopic(cfg.Kafka.EventsTopic)
}

func providePickupRepository(querier *querier.Querier) *pickupRepo.Repository {
	return pickupRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideTenantRepository(querier *querier.Querier) *tenantRepo.Repository {
	return tenantRepo.New(querier)
}

func provideCursorRepository(redisClient *redis.Client) *cursorRepo.Repository {
	return cursorRepo.New(redisClient)
}

func providePickupEventsGateway(producer sarama.SyncProducer, topic EventsTopic) *pickupEventsGateway.Gateway {
	return pickupEventsGateway.New(producer, string(topic))
}

func provideServiceAssignment(
	repository assignmentService.Repository,
	txManager assignmentService.TxManager,
) *assignmentService.Assignment {
	return assignmentService.New(repository, txManager)
}

func provideServiceDriver(
	repository driverService.Repository,
	txManager driverService.TxManager,
) *driverService.Driver {
	return driverService.New(repository, txManager)
}

func provideServiceTenant(repository tenantService.Repository) *tenantService.Tenant {
	return tenantService.New(repository)
}

func provideServiceNotification(
	source notificationService.EventSource,
	cursors notificationService.CursorStore,
	publisher notificationService.Publisher,
	cfg *config.Config,
) (*notificationService.Service, error) {
	return notificationService.New(
		source,
		cursors,
		publisher,
		cfg.Tasks.EventRelayBatchSize,
		cfg.Tasks.EventRelaySettleDelay,
	)
}

func provideStatusHandlerFactory(pickupService intakeService.PickupService) *intake_handle.StatusHandlerFactory {
	return intake_handle.NewStatusHandlerFactory(pickupService)
}

func provideIntakeService(handlerFactory intakeService.HandlerFactory) *intakeService.Service {
	return intakeService.New(handlerFactory)
}

func providePresenceSweepTask(
	log logger.Logger,
	driverService presence_sweep.Service,
	cfg *config.Config,
) *presence_sweep.PresenceSweep {
	return presence_sweep.NewPresenceSweep(log, driverService, cfg.Tasks.PresenceSweepInterval, cfg.Tasks.PresenceStaleThreshold)
}

func provideEventRelayTask(
	log logger.Logger,
	notificationService event_relay.Service,
	cfg *config.Config,
) *event_relay.EventRelay {
	return event_relay.NewEventRelay(log, notificationService, cfg.Tasks.EventRelayInterval)
}

func provideSystemCollectorTask() *metrics.SystemCollector {
	return metrics.NewSystemCollector(systemMetricsInterval)
}

func provideTaskList(
	presenceSweepTask *presence_sweep.PresenceSweep,
	eventRelayTask *event_relay.EventRelay,
	systemCollectorTask *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		presenceSweepTask,
		eventRelayTask,
		systemCollectorTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

const systemMetricsInterval = 15 * time.Second
