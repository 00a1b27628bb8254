package main

import (
	"SkyCherry/impl/core"
	"SkyCherry/internal/config"
	"SkyCherry/internal/database"
	"SkyCherry/internal/http-server/api"
	"SkyCherry/internal/lib/logger"
	"SkyCherry/internal/lib/sl"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	// environment overrides may live in a local .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("load .env", sl.Err(err))
	}

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting skycherry", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, conf, lg)
	stop()
	if err != nil {
		lg.Error("service failed", sl.Err(err))
		os.Exit(1)
	}
	lg.Info("service stopped")
}

// run blocks until ctx is cancelled. Startup stops at the first failure,
// including an unreachable mongo.
func run(ctx context.Context, conf *config.Config, lg *slog.Logger) error {
	handler := core.New(lg)
	handler.SetAuthKey(conf.Listen.ApiKey)

	db, err := repository.NewMongoClient(ctx, conf, lg)
	if err != nil {
		return fmt.Errorf("mongo client: %w", err)
	}
	if db == nil {
		lg.Warn("mongo disabled, question routes will fail")
	} else {
		handler.SetRepository(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("user", conf.Mongo.User),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")

		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := db.Close(closeCtx); err != nil {
				lg.Error("mongo client close", sl.Err(err))
			}
		}()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server, err := api.New(conf, lg, handler, reg)
	if err != nil {
		return fmt.Errorf("api server: %w", err)
	}

	// *** blocking start with http server ***
	return server.Run(ctx)
}
