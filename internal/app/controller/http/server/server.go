package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avGenie/go-order-tracker/internal/app/config"
	"github.com/avGenie/go-order-tracker/internal/app/controller/http/auth"
	"github.com/avGenie/go-order-tracker/internal/app/controller/http/orders"
	"github.com/avGenie/go-order-tracker/internal/app/controller/http/router"
	"github.com/avGenie/go-order-tracker/internal/app/usecase/token"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type HTTPServer struct {
	server *http.Server

	config config.Config
}

func New(config config.Config, service orders.OrderService) *HTTPServer {
	tokens := token.NewManager(config.TokenSecret, config.TokenTTL)

	mux := router.CreateRouter(auth.New(tokens), orders.New(service), tokens)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	return &HTTPServer{
		server: server,
		config: config,
	}
}

// StartHTTPServer serves until SIGINT or SIGTERM arrives, then drains in-flight
// requests for at most the configured shutdown timeout.
func (s *HTTPServer) StartHTTPServer() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	return s.Run(ctx)
}

func (s *HTTPServer) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		zap.L().Info("starting HTTP server", zap.String("address", s.config.NetAddr))

		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error while serving HTTP: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		zap.L().Info("shutting down HTTP server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		err := s.server.Shutdown(shutdownCtx)
		if err != nil {
			return fmt.Errorf("error while shutting down HTTP server: %w", err)
		}

		return nil
	})

	return group.Wait()
}
