package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/mzafar/marriage-bureau/internal/config"
	"github.com/mzafar/marriage-bureau/internal/infra/database"
	"github.com/mzafar/marriage-bureau/internal/infra/repository"
	"github.com/mzafar/marriage-bureau/internal/present/rest"
	"github.com/mzafar/marriage-bureau/internal/service"
	"github.com/mzafar/marriage-bureau/internal/usecase"
)

func main() {
	configPath := os.Getenv("BUREAU_CONFIG")
	if configPath == "" {
		configPath = "/etc/bureau/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config",
			slog.String("path", configPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	ctx := context.Background()

	if cfg.Server.EnableTrace {
		shutdown, err := setupTraceProvider(ctx, cfg.Server.TraceEndpoint)
		if err != nil {
			slog.Error("failed to set up tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdown()
	}

	db, err := database.NewPostgres(cfg.Server.PostgresDsn)
	if err != nil {
		panic("failed to connect database")
	}

	err = database.MigratePostgres(db)
	if err != nil {
		panic("failed to migrate database")
	}

	rdb := database.NewRedis(cfg.Server.RedisAddr, "", cfg.Server.RedisDB)
	mc := database.NewMemcached(cfg.Server.MemcachedAddr)

	personRepo := repository.NewPersonRepository(db)
	letterRepo := repository.NewLetterRepository(db)

	sequence := service.NewSequenceService(rdb, cfg.Bureau.ReferencePrefix)
	dedup := service.NewDedupService(mc, cfg.Bureau.DedupTTLSeconds)
	signal := service.NewSignalService(rdb)

	personUC := usecase.NewPersonUsecase(personRepo)
	letterUC := usecase.NewLetterUsecase(letterRepo, sequence, dedup, signal)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if cfg.Server.EnableTrace {
		e.Use(otelecho.Middleware("bureaud"))
	}

	handler := rest.NewHandler(personUC, letterUC, signal, func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(cfg.Server.Listen))
}

func setupTraceProvider(ctx context.Context, endpoint string) (func(), error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", "bureaud"),
		)),
	)
	otel.SetTracerProvider(tp)

	return func() {
		_ = tp.Shutdown(context.Background())
	}, nil
}
