package app

import (
	"pickup-service/internal/handlers/rest/driver_get"
	"pickup-service/internal/handlers/rest/driver_heartbeat_post"
	"pickup-service/internal/handlers/rest/driver_post"
	"pickup-service/internal/handlers/rest/driver_put"
	"pickup-service/internal/handlers/rest/driver_status_put"
	"pickup-service/internal/handlers/rest/drivers_get"
	"pickup-service/internal/handlers/rest/pickup_assign_post"
	"pickup-service/internal/handlers/rest/pickup_cancel_post"
	"pickup-service/internal/handlers/rest/pickup_events_get"
	"pickup-service/internal/handlers/rest/pickup_post"
	"pickup-service/internal/handlers/rest/pickup_reject_post"
	"pickup-service/internal/handlers/rest/pickup_status_post"
	"pickup-service/internal/handlers/rest/pickups_assigned_get"
	"pickup-service/internal/handlers/rest/pickups_available_get"
	"pickup-service/internal/handlers/rest/tenant_post"
	"pickup-service/internal/handlers/rest/tenants_get"
	intakeService "pickup-service/internal/service/intake"
	"pickup-service/pkg/background"
)

type Application struct {
	ServiceAssignment ServiceAssignment
	ServiceDriver     ServiceDriver
	ServiceTenant     ServiceTenant
	BackgroundWorkers *background.Worker
}

type ServiceAssignment interface {
	pickups_available_get.Service
	pickups_assigned_get.Service
	pickup_assign_post.Service
	pickup_reject_post.Service
	pickup_status_post.Service
	pickup_events_get.Service
	pickup_post.Service
	pickup_cancel_post.Service
}

type ServiceDriver interface {
	driver_post.Service
	driver_put.Service
	drivers_get.Service
	driver_get.Service
	driver_status_put.Service
	driver_heartbeat_post.Service
}

type ServiceTenant interface {
	tenant_post.Service
	tenants_get.Service
}

type IntakeWorkerApp struct {
	IntakeService *intakeService.Service
}
