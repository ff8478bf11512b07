// Command apiserver runs the AMR resolution HTTP service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	appresolve "github.com/openamr/amr/internal/application/resolve"
	"github.com/openamr/amr/internal/config"
	domresolve "github.com/openamr/amr/internal/domain/resolve"
	"github.com/openamr/amr/internal/domain/sir"
	"github.com/openamr/amr/internal/domain/taxonomy"
	"github.com/openamr/amr/internal/infrastructure/database/postgres"
	redisinfra "github.com/openamr/amr/internal/infrastructure/database/redis"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
	"github.com/openamr/amr/internal/infrastructure/monitoring/prometheus"
	httpiface "github.com/openamr/amr/internal/interfaces/http"
	"github.com/openamr/amr/internal/interfaces/http/handlers"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: env AMR_* only)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: cfg.Log.OutputPaths,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	healthChecks := make(map[string]handlers.HealthCheck)

	table := taxonomy.SeedTable()
	codes := taxonomy.DefaultSiteCodes()
	if cfg.Resolver.Source == "postgres" {
		conn, err := postgres.NewConnection(ctx, cfg.Database, logger)
		if err != nil {
			return err
		}
		defer conn.Close()
		healthChecks["postgres"] = conn.Ping

		repo := postgres.NewTaxonomyRepository(conn, logger)
		if table, err = repo.LoadTable(ctx); err != nil {
			return err
		}
		if codes, err = repo.LoadSiteCodes(ctx); err != nil {
			return err
		}
	}

	resolver, err := domresolve.NewResolver(table, codes, logger)
	if err != nil {
		return err
	}

	var metrics *prometheus.Metrics
	if cfg.Metrics.Enabled {
		metrics = prometheus.NewMetrics(cfg.Metrics.Namespace)
	}

	var cache appresolve.Cache
	if cfg.Redis.Enabled {
		client, err := redisinfra.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			return err
		}
		defer client.Close()
		healthChecks["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
		cache = redisinfra.NewResolutionCache(client, cfg.Redis.KeyPrefix, cfg.Redis.DefaultTTL, logger)
	}

	service := appresolve.NewService(resolver, table, cache, metrics, logger)

	server := httpiface.NewServer(cfg.Server, httpiface.RouterDeps{
		Resolve:      service,
		Interpreter:  sir.NewInterpreter(logger),
		Metrics:      metrics,
		MetricsPath:  cfg.Metrics.Path,
		Logger:       logger,
		HealthChecks: healthChecks,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	return server.Stop(context.Background())
}
