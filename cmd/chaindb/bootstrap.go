package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"chaindb/internal/chain"
	"chaindb/internal/configuration/properties"
	"chaindb/internal/metrics"
	"chaindb/internal/storage"
	"chaindb/internal/transport"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type Services struct {
	Storage     *storage.Service
	Coordinator *chain.Coordinator
	Transport   *transport.Service
	Metrics     *metrics.Server
}

func NewServices(cfg properties.ConfigProvider) (*Services, error) {
	storageConfig := cfg.GetStorage()
	storageSvc, err := storage.NewService(storageConfig.Dir, storage.Options{
		NoSync:           storageConfig.NoSync,
		CompactThreshold: storageConfig.CompactThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	chainConfig := cfg.GetChain()
	coordinator := chain.New(
		storageSvc,
		transport.NewGRPCDialer(transport.ClientOptionsFrom(chainConfig)),
		chain.Config{
			Position: chain.Position{
				NextAddr: chainConfig.NextAddr,
				PrevAddr: chainConfig.PrevAddr,
			},
			CallTimeout: chainConfig.CallTimeoutDuration(),
			DialTimeout: chainConfig.DialTimeoutDuration(),
		},
	)

	svcs := &Services{
		Storage:     storageSvc,
		Coordinator: coordinator,
		Transport:   transport.NewTransportService(cfg.GetTransport(), coordinator),
	}
	if addr := cfg.GetMetrics().Address; addr != "" {
		svcs.Metrics = metrics.NewServer(addr)
	}

	return svcs, nil
}

// Run serves until ctx is cancelled or a server fails, then shuts down in
// dependency order: RPC servers first, then the coordinator, then storage.
func (s *Services) Run(ctx context.Context) error {
	grpcLis, err := s.Transport.Listen()
	if err != nil {
		return err
	}

	var metricsLis net.Listener
	if s.Metrics != nil {
		metricsLis, err = net.Listen("tcp", s.Metrics.Addr())
		if err != nil {
			_ = grpcLis.Close()
			return fmt.Errorf("listen metrics: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.Transport.Serve(grpcLis)
	})
	if metricsLis != nil {
		g.Go(func() error {
			return s.Metrics.Serve(metricsLis)
		})
	}

	pos := s.Coordinator.Position()
	slog.Info("Database Ready",
		"role", pos.Role(),
		"addr", grpcLis.Addr().String(),
		"next", pos.NextAddr,
		"prev", pos.PrevAddr,
	)

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down database...")

		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.Transport.Stop(stopCtx)
		if s.Metrics != nil {
			s.Metrics.Stop()
		}
		return nil
	})

	runErr := g.Wait()
	return errors.Join(runErr, s.Close())
}

func (s *Services) Close() error {
	var errs []error
	if err := s.Coordinator.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close coordinator: %w", err))
	}
	if err := s.Storage.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	return errors.Join(errs...)
}
