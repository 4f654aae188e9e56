//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	pickupEventsGateway "pickup-service/internal/gateway/kafka/pickup_events"
	"pickup-service/internal/handlers/tasks/event_relay"
	"pickup-service/internal/handlers/tasks/presence_sweep"
	"pickup-service/internal/pkg/config"
	"pickup-service/internal/pkg/factory/intake_handle"
	cursorRepo "pickup-service/internal/repository/cursor"
	driverRepo "pickup-service/internal/repository/driver"
	pickupRepo "pickup-service/internal/repository/pickup"
	tenantRepo "pickup-service/internal/repository/tenant"
	assignmentService "pickup-service/internal/service/assignment"
	driverService "pickup-service/internal/service/driver"
	intakeService "pickup-service/internal/service/intake"
	notificationService "pickup-service/internal/service/notification"
	tenantService "pickup-service/internal/service/tenant"
	"pickup-service/pkg/logger"
	"pickup-service/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideEventsTopic,

		providePickupRepository,
		provideDriverRepository,
		provideTenantRepository,
		provideCursorRepository,
		providePickupEventsGateway,

		provideServiceAssignment,
		provideServiceDriver,
		provideServiceTenant,
		provideServiceNotification,

		providePresenceSweepTask,
		provideEventRelayTask,
		provideSystemCollectorTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceTenant), new(*tenantService.Tenant)),

		wire.Bind(new(assignmentService.Repository), new(*pickupRepo.Repository)),
		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(tenantService.Repository), new(*tenantRepo.Repository)),
		wire.Bind(new(notificationService.EventSource), new(*pickupRepo.Repository)),
		wire.Bind(new(notificationService.CursorStore), new(*cursorRepo.Repository)),
		wire.Bind(new(notificationService.Publisher), new(*pickupEventsGateway.Gateway)),

		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverService.TxManager), new(*tx.Manager)),

		wire.Bind(new(presence_sweep.Service), new(*driverService.Driver)),
		wire.Bind(new(event_relay.Service), new(*notificationService.Service)),
	)
	return &Application{}, nil
}

// InitializeIntakeWorkerApp для Kafka воркера (cmd/worker-pickup-request-changed)
func InitializeIntakeWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*IntakeWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		providePickupRepository,
		provideServiceAssignment,
		provideStatusHandlerFactory,
		provideIntakeService,

		wire.Bind(new(assignmentService.Repository), new(*pickupRepo.Repository)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(intakeService.PickupService), new(*assignmentService.Assignment)),
		wire.Bind(new(intakeService.HandlerFactory), new(*intake_handle.StatusHandlerFactory)),

		wire.Struct(new(IntakeWorkerApp), "*"),
	)
	return nil, nil
}
