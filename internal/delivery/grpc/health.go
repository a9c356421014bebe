package grpc

import (
	"net"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name health checks can query besides the empty
// "whole server" name.
const ServiceName = "warehouse.WarehouseAPI"

// HealthServer exposes grpc.health.v1 reflecting whether the store is
// reachable.
type HealthServer struct {
	server *grpc.Server
	health *health.Server
	log    *logrus.Logger
}

func NewHealthServer(logger *logrus.Logger) *HealthServer {
	server := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(server, hs)

	return &HealthServer{
		server: server,
		health: hs,
		log:    logger,
	}
}

func (s *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
	s.log.Infof("gRPC health status set to %s", status)
}

func (s *HealthServer) Serve(lis net.Listener) error {
	s.log.Infof("gRPC health server listening on %s", lis.Addr())
	return s.server.Serve(lis)
}

func (s *HealthServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
