package grpcserver

import (
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"pickup-service/pkg/logger"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second
	MinPingInterval  = 30 * time.Second

	// ServicePickup имя сервиса для точечной проверки, пустое имя означает сервис целиком.
	ServicePickup = "pickup.v1.PickupService"
)

// HealthServer grpc.health.v1 для оркестратора. Пока идет остановка отвечает NOT_SERVING.
type HealthServer struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func NewHealthServer(log logger.Logger) *HealthServer {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             MinPingInterval,
			PermitWithoutStream: true,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServicePickup, healthpb.HealthCheckResponse_NOT_SERVING)

	return &HealthServer{
		log:    log.With(logger.NewField("component", "grpc-health")),
		server: server,
		health: healthServer,
	}
}

// SetServing переключает статус сервиса целиком и ServicePickup.
func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServicePickup, status)

	s.log.With(
		logger.NewField("status", status.String()),
	).Info("health status changed")
}

func (s *HealthServer) ListenAndServe(port string) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}
	return s.Serve(lis)
}

// Serve блокируется до Shutdown.
func (s *HealthServer) Serve(lis net.Listener) error {
	s.log.With(
		logger.NewField("address", lis.Addr().String()),
	).Info("grpc health server started")

	err := s.server.Serve(lis)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health serve: %w", err)
	}
	return nil
}

// Shutdown все подписчики Watch получают NOT_SERVING, затем сервер дожидается активных вызовов.
func (s *HealthServer) Shutdown() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
