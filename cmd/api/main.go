package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"oficina_nova_brasil/internal/adapter/http/routes"
	"oficina_nova_brasil/internal/adapter/persistence/collection"
	"oficina_nova_brasil/internal/config"
	"oficina_nova_brasil/internal/infrastructure/logger"
	"oficina_nova_brasil/internal/infrastructure/storage"
	"oficina_nova_brasil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title           Oficina Service API
// @version         1.0
// @description     Repair shop records: clients, cars, employees, service catalog and service orders.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	os.Exit(finish(logg, run(cfg, logg)))
}

// finish logs err and flushes the logger before the process exits; it returns
// the exit status.
func finish(logg *zap.Logger, err error) int {
	if err != nil {
		logg.Error("application terminated with error", zap.Error(err))
	}
	_ = logg.Sync()
	if err != nil {
		return 1
	}
	return 0
}

func run(cfg *config.Config, logg *zap.Logger) error {
	// Money travels as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, cfg, logg.Named("storage"))
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeStore()

	if err := collection.Seed(ctx, store, interfaces.AllSlots...); err != nil {
		return fmt.Errorf("seed storage: %w", err)
	}

	router := routes.NewRouter(logg.Named("http"), routes.NewHandlers(store, logg))
	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.Info("starting http server", zap.String("addr", server.Addr), zap.String("storage", cfg.Storage.Driver))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logg.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
