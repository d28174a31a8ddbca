package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/prizepanda/internal/config"
	"github.com/GlebRadaev/prizepanda/internal/handlers"
	"github.com/GlebRadaev/prizepanda/internal/handlers/meta"
	"github.com/GlebRadaev/prizepanda/internal/pg"
	"github.com/GlebRadaev/prizepanda/internal/repo"
	"github.com/GlebRadaev/prizepanda/internal/service"
	"github.com/GlebRadaev/prizepanda/pkg/auth"
	"github.com/GlebRadaev/prizepanda/pkg/logger"
)

const redisPingTimeout = 2 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	pool  *pgxpool.Pool
	redis *redis.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if cfg.AdminPassword == "" {
		zap.L().Warn("ADMIN_PASSWORD is not set, admin login is disabled")
	}
	if cfg.InsecureJWTSecret() {
		zap.L().Warn("JWT_SECRET is not set, tokens are signed with the built-in default secret")
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.redis = newRedisClient(cfg)
	revoker := newRevoker(ctx, a.redis)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg, jwtService, revoker)
	a.api = handlers.New(a.srv, auth.NewMiddleware(jwtService, revoker, a.srv.AdminChecker), meta.Options{
		SubscribeURL: cfg.SubscribeURL,
		DonateUPIID:  cfg.DonateUPIID,
		DonatePayee:  cfg.DonatePayee,
	})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func newRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddress == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// newRevoker falls back to a no-op revoker when redis is not configured or
// unreachable at startup. Logout then only ends the session client-side.
func newRevoker(ctx context.Context, client *redis.Client) auth.Revoker {
	if client == nil {
		zap.L().Warn("redis is not configured, token revocation is disabled")
		return auth.NoopRevoker{}
	}
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		zap.L().Warn("redis is unreachable, token revocation is disabled", zap.Error(err))
		return auth.NoopRevoker{}
	}
	return auth.NewRedisRevoker(client)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.release()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// release closes the redis client and the database pool after the http
// server has drained.
func (a *Application) release() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Error("can't close redis client", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
