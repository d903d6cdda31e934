package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"shegamart/internal/jobs"
	"shegamart/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// MustRun starts the HTTP service using the provided DI container.
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

type runIn struct {
	dig.In

	Ctx         context.Context
	Server      *http.Server
	DebugServer *http.Server `name:"debug_server"`
	Pool        *pgxpool.Pool
	Logger      logx.Logger
	Jobs        *jobs.Manager
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		return serve(in)
	})
}

func serve(in runIn) error {
	defer closeResources(in.Pool, in.Logger)

	if err := ensureSchema(in.Ctx, in.Pool); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	errCh := make(chan error, 2)
	servers := []*http.Server{in.Server}
	if in.DebugServer != nil {
		servers = append(servers, in.DebugServer)
	}
	for _, srv := range servers {
		startServer(srv, in.Logger, errCh)
	}

	if err := in.Jobs.StartAll(); err != nil {
		shutdownServers(servers, in.Logger)
		return fmt.Errorf("start jobs: %w", err)
	}

	var runErr error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down service-delivery")
	case runErr = <-errCh:
		in.Logger.Error("server failed", logx.Any("err", runErr))
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	in.Jobs.StopAll(stopCtx)
	shutdownServers(servers, in.Logger)
	return runErr
}

func startServer(srv *http.Server, logger logx.Logger, errCh chan<- error) {
	go func() {
		logger.Info("listening", logx.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
	}()
}

func shutdownServers(servers []*http.Server, logger logx.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown error", logx.String("addr", srv.Addr), logx.Any("err", err))
		}
	}
}

func closeResources(pool *pgxpool.Pool, logger logx.Logger) {
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}
