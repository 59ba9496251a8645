package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bsm/redislock"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/config"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/estimate"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/handler"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/logging"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/metrics"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/repository"
	"github.com/kyrhyl/cost-estimate-application-sub000/internal/service"
	"github.com/kyrhyl/cost-estimate-application-sub000/migrations"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = openRedis(ctx, cfg.RedisURL)
		if err != nil {
			logging.Fatal("failed to connect to redis", "error", err)
		}
		defer rdb.Close()
	}

	if cfg.AutoMigrate {
		if err := migrateUp(ctx, pool, rdb); err != nil {
			logging.Fatal("auto-migrate failed", "error", err)
		}
	}

	var templateRepo repository.DUPATemplateRepository = repository.NewPgDUPATemplateRepository(pool)
	if rdb != nil {
		templateRepo = repository.NewCachedDUPATemplateRepository(templateRepo, rdb, cfg.TemplateCacheTTL)
		slog.Info("template cache enabled", "ttl", cfg.TemplateCacheTTL)
	}
	laborRepo := repository.NewPgLaborRateRepository(pool)
	equipmentRepo := repository.NewPgEquipmentRepository(pool)
	materialRepo := repository.NewPgMaterialRepository(pool)
	priceRepo := repository.NewPgMaterialPriceRepository(pool)
	payItemRepo := repository.NewPgPayItemRepository(pool)
	projectRepo := repository.NewPgProjectRepository(pool)
	entryRepo := repository.NewPgBOQEntryRepository(pool)

	m := metrics.New()
	store := service.NewEstimateStore(laborRepo, equipmentRepo, priceRepo, templateRepo)
	var instantiator service.Instantiator = estimate.NewInstantiator(store, store)
	instantiator = service.NewTracedInstantiator(instantiator, otel.Tracer("cost-estimate-api"))
	instantiator = service.NewObservedInstantiator(instantiator, m)

	laborRateService := service.NewLaborRateService(laborRepo)
	equipmentService := service.NewEquipmentService(equipmentRepo)
	materialService := service.NewMaterialService(materialRepo, priceRepo)
	payItemService := service.NewPayItemService(payItemRepo)
	templateService := service.NewDUPATemplateService(templateRepo, instantiator)
	projectService := service.NewProjectService(projectRepo, entryRepo, instantiator, cfg.BracketTable())

	h := handler.New(pool, cfg.FrontendURL)
	laborRateHandler := handler.NewLaborRateHandler(laborRateService)
	equipmentHandler := handler.NewEquipmentHandler(equipmentService)
	materialHandler := handler.NewMaterialHandler(materialService)
	payItemHandler := handler.NewPayItemHandler(payItemService)
	templateHandler := handler.NewDUPATemplateHandler(templateService)
	projectHandler := handler.NewProjectHandler(projectService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	if cfg.MetricsEnabled {
		mux.Handle("GET /metrics", m.Handler())
	}

	mux.HandleFunc("GET /api/labor-rates", laborRateHandler.List)
	mux.HandleFunc("POST /api/labor-rates", laborRateHandler.Create)
	mux.HandleFunc("PUT /api/labor-rates", laborRateHandler.Upsert)
	mux.HandleFunc("GET /api/labor-rates/{id}", laborRateHandler.Get)
	mux.HandleFunc("PUT /api/labor-rates/{id}", laborRateHandler.Update)
	mux.HandleFunc("DELETE /api/labor-rates/{id}", laborRateHandler.Delete)

	mux.HandleFunc("GET /api/equipment", equipmentHandler.List)
	mux.HandleFunc("POST /api/equipment", equipmentHandler.Create)
	mux.HandleFunc("GET /api/equipment/{id}", equipmentHandler.Get)
	mux.HandleFunc("PUT /api/equipment/{id}", equipmentHandler.Update)
	mux.HandleFunc("DELETE /api/equipment/{id}", equipmentHandler.Delete)

	mux.HandleFunc("GET /api/materials", materialHandler.List)
	mux.HandleFunc("POST /api/materials", materialHandler.Create)
	mux.HandleFunc("GET /api/materials/{id}", materialHandler.Get)
	mux.HandleFunc("PUT /api/materials/{id}", materialHandler.Update)
	mux.HandleFunc("DELETE /api/materials/{id}", materialHandler.Delete)

	mux.HandleFunc("GET /api/material-prices", materialHandler.ListPrices)
	mux.HandleFunc("POST /api/material-prices", materialHandler.CreatePrice)
	mux.HandleFunc("GET /api/material-prices/{id}", materialHandler.GetPrice)
	mux.HandleFunc("PUT /api/material-prices/{id}", materialHandler.UpdatePrice)
	mux.HandleFunc("DELETE /api/material-prices/{id}", materialHandler.DeletePrice)

	mux.HandleFunc("GET /api/pay-items", payItemHandler.List)
	mux.HandleFunc("POST /api/pay-items", payItemHandler.Create)
	mux.HandleFunc("GET /api/pay-items/{id}", payItemHandler.Get)
	mux.HandleFunc("PUT /api/pay-items/{id}", payItemHandler.Update)
	mux.HandleFunc("DELETE /api/pay-items/{id}", payItemHandler.Delete)

	mux.HandleFunc("GET /api/dupa-templates", templateHandler.List)
	mux.HandleFunc("POST /api/dupa-templates", templateHandler.Create)
	mux.HandleFunc("GET /api/dupa-templates/{id}", templateHandler.Get)
	mux.HandleFunc("PUT /api/dupa-templates/{id}", templateHandler.Update)
	mux.HandleFunc("DELETE /api/dupa-templates/{id}", templateHandler.Delete)
	mux.HandleFunc("POST /api/dupa-templates/{id}/instantiate", templateHandler.Instantiate)

	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("POST /api/projects", projectHandler.Create)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.Get)
	mux.HandleFunc("PUT /api/projects/{id}", projectHandler.Update)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.Delete)
	mux.HandleFunc("GET /api/projects/{id}/boq", projectHandler.ListBOQ)
	mux.HandleFunc("POST /api/projects/{id}/boq", projectHandler.AddBOQEntry)
	mux.HandleFunc("DELETE /api/projects/{id}/boq/{entryId}", projectHandler.DeleteBOQEntry)
	mux.HandleFunc("GET /api/projects/{id}/summary", projectHandler.Summary)

	// Outermost first. The metrics middleware reads the pattern ServeMux sets on the request.
	limiter := handler.NewRateLimiter(ctx, cfg.RateLimitPerMinute, cfg.TrustedProxyCount)
	var root http.Handler = limiter.Middleware(mux)
	root = h.CORS(root)
	root = handler.SecurityHeaders(root)
	root = handler.RequestLogger(root)
	if cfg.MetricsEnabled {
		root = m.Middleware(root)
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           root,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

const migrateLockKey = "lock:estimate:migrate"

// migrateUp applies pending migrations. With Redis configured, replicas take
// turns through a lock so only one of them runs goose at a time.
func migrateUp(ctx context.Context, pool *pgxpool.Pool, rdb *redis.Client) error {
	if rdb != nil {
		lockCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
		lock, err := redislock.New(rdb).Obtain(lockCtx, migrateLockKey, time.Minute, &redislock.Options{
			RetryStrategy: redislock.LinearBackoff(500 * time.Millisecond),
		})
		if err != nil {
			return fmt.Errorf("obtain migration lock: %w", err)
		}
		defer func() {
			if err := lock.Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
				slog.Warn("release migration lock", "error", err)
			}
		}()
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return migrations.Run(ctx, db, migrations.CommandUp)
}

func openRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}
