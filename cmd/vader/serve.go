package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drankou/vader-sentiment/internal/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// runServe serves srv on ln until ctx is cancelled, then drains in-flight
// requests.
func runServe(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scoring API over HTTP",
		Long: `Serve POST /api/v1/score and POST /api/v1/score/batch until
interrupted. GET /healthz reports liveness.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sia, err := newAnalyzer(a.cfg)
			if err != nil {
				return err
			}

			handler := server.New(sia, server.Options{
				Workers:      a.cfg.Workers,
				MaxBodyBytes: a.cfg.Server.MaxBodyBytes,
				Logger:       logger,
			}).Handler()

			ln, err := net.Listen("tcp", a.cfg.Server.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", a.cfg.Server.Addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("listening", "addr", ln.Addr().String())
			return runServe(ctx, &http.Server{
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}, ln)
		},
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	// static flag name
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
