package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"edet/internal/adapters/httpapi"
	"edet/internal/bootstrap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	addrFlag := flag.String("addr", "", "listen address (overrides http.addr)")
	flag.Parse()

	if err := run(*configFlag, *addrFlag); err != nil {
		log.Fatalf("edet-server: %v", err)
	}
}

func run(configPath, addrOverride string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Open(ctx, configPath)
	if err != nil {
		return err
	}
	defer app.Close()

	addr := app.Config.HTTP.Addr
	if addrOverride != "" {
		addr = addrOverride
	}

	gin.SetMode(gin.ReleaseMode)
	router := httpapi.SetupRouter(httpapi.NewHandler(app.Facade), app.Logger)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(ctx, srv, app.Logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
// A listen failure is returned instead of exiting the process.
func serve(ctx context.Context, srv *http.Server, log logrus.FieldLogger) error {
	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve HTTP: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}
