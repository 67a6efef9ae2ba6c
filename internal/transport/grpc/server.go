package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	plannerv1 "planner/backend/internal/gen/proto/planner/v1"
)

// ServiceName is the health-checked name of the time blocks service.
var ServiceName = plannerv1.TimeBlocksService_ServiceDesc.ServiceName

const DefaultRequestTimeout = 10 * time.Second

type ServerOptions struct {
	RequestTimeout time.Duration
	Log            *slog.Logger
}

// NewServer builds a gRPC server exposing the time blocks service and the
// standard health service. The returned health server starts out SERVING.
func NewServer(svc timeBlocksService, opts ServerOptions) (*grpc.Server, *health.Server) {
	s := grpc.NewServer(
		grpc.UnaryInterceptor(DefaultRequestTimeoutInterceptor(opts.RequestTimeout)),
	)
	plannerv1.RegisterTimeBlocksServiceServer(s, NewTimeBlocksServer(svc, opts.Log))

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	return s, hs
}

// DefaultRequestTimeoutInterceptor bounds calls that arrive without a deadline.
func DefaultRequestTimeoutInterceptor(timeout time.Duration) grpc.UnaryServerInterceptor {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := ctx.Deadline(); ok {
			return handler(ctx, req)
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return handler(ctx, req)
	}
}
