// Package grpc exposes the membership and profile services to internal
// callers: billing and the token pipeline.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/idgateway/internal/logging"
	pb "github.com/dmitrijs2005/idgateway/internal/proto"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type MembershipUpdater interface {
	UpdateMembership(ctx context.Context, userID string, success bool) models.MembershipResult
}

type ProfileProvider interface {
	ClaimsFor(ctx context.Context, subjectID string) ([]models.Claim, error)
	IsActive(ctx context.Context, subjectID string) (bool, error)
}

type GRPCServer struct {
	address       string
	membership    MembershipUpdater
	profile       ProfileProvider
	logger        logging.Logger
	serviceSecret []byte
	health        *health.Server
}

// NewGRPCServer builds the server. An empty serviceSecret leaves the
// membership RPC unauthenticated.
func NewGRPCServer(a string, l logging.Logger, ms MembershipUpdater, ps ProfileProvider, serviceSecret string) *GRPCServer {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		membership:    ms,
		profile:       ps,
		serviceSecret: []byte(serviceSecret),
		health:        health.NewServer(),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.serviceTokenInterceptor),
	)

	pb.RegisterMembershipServiceServer(srv, &membershipHandler{s: s})
	pb.RegisterProfileServiceServer(srv, &profileHandler{s: s})
	healthpb.RegisterHealthServer(srv, s.health)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.MembershipService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.ProfileService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
