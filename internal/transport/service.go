package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"chaindb/internal/configuration/properties"
	"chaindb/internal/metrics"
	replicationpb "chaindb/internal/transport/gen/replicationpb"
	"chaindb/internal/transport/handler"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

type Service struct {
	network              string
	address              string
	port                 string
	timeout              uint64
	maxConcurrentStreams uint32
	numStreamWorkers     uint32
	coordinator          handler.Coordinator
	Server               *grpc.Server
}

func NewTransportService(transportConfig *properties.TransportConfigProperties, coordinator handler.Coordinator) *Service {
	s := &Service{
		network:              transportConfig.Network,
		address:              transportConfig.Address,
		port:                 transportConfig.Port,
		timeout:              transportConfig.Timeout,
		maxConcurrentStreams: transportConfig.MaxConcurrentStreams,
		numStreamWorkers:     transportConfig.NumStreamWorkers,
		coordinator:          coordinator,
	}
	s.Server = s.newServer()
	return s
}

func (ts *Service) newServer() *grpc.Server {
	timeout := time.Duration(ts.timeout) * time.Second
	if ts.timeout == 0 {
		slog.Warn("Timeout can't be less than 1 second. Setting transport timeout to 1 second.")
		timeout = time.Second
	}
	slog.Info(fmt.Sprintf("Setting transport timeout to %s", timeout))

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			metrics.UnaryServerInterceptor(),
			timeoutInterceptor(timeout),
		),
		// peers ping every chain.keepalive-time, also between writes
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             5 * time.Second,
			PermitWithoutStream: true,
		}),
	}
	if ts.maxConcurrentStreams > 0 {
		opts = append(opts, grpc.MaxConcurrentStreams(ts.maxConcurrentStreams))
	}
	if ts.numStreamWorkers > 0 {
		opts = append(opts, grpc.NumStreamWorkers(ts.numStreamWorkers))
	}

	server := grpc.NewServer(opts...)

	replicationpb.RegisterReplicatorServer(server, handler.NewReplicationHandler(ts.coordinator))
	replicationpb.RegisterQuerierServer(server, handler.NewQueryHandler(ts.coordinator))
	reflection.Register(server)

	return server
}

func (ts *Service) Listen() (net.Listener, error) {
	lis, err := net.Listen(ts.network, net.JoinHostPort(ts.address, ts.port))
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", net.JoinHostPort(ts.address, ts.port), err)
	}
	return lis, nil
}

// Serve blocks until the server stops. A graceful stop is not an error.
func (ts *Service) Serve(lis net.Listener) error {
	slog.Info(fmt.Sprintf("transport listening at %s", lis.Addr().String()))
	if err := ts.Server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}

// Stop drains in-flight RPCs and forces the stop once ctx is done.
func (ts *Service) Stop(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		ts.Server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn("graceful stop timed out, closing connections")
		ts.Server.Stop()
		<-done
	}
}

func timeoutInterceptor(d time.Duration) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {

		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
