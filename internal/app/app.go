package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fuzumoe/shoplist-api/configs"
	"github.com/fuzumoe/shoplist-api/internal/handler"
	"github.com/fuzumoe/shoplist-api/internal/logger"
	"github.com/fuzumoe/shoplist-api/internal/repository"
	"github.com/fuzumoe/shoplist-api/internal/server"
	"github.com/fuzumoe/shoplist-api/internal/service"
)

// hookable functions for dependency injection
var (
	LoadConfig = configs.Load
	NewDB      = repository.NewDB
	MigrateDB  = repository.Migrate
	ServeHTTP  = serveHTTP
)

// Run loads config, opens the DB, runs migrations, wires all layers
// together and serves HTTP until interrupted.
func Run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config load error: %w", err)
	}

	logger.Init(cfg.LogLevel)
	logger.Log.Info("configuration loaded")

	db, err := NewDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}

	if err := MigrateDB(db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepo(db)
	blacklistRepo := repository.NewBlacklistRepo(db)
	listRepo := repository.NewShoppingListRepo(db)
	itemRepo := repository.NewShoppingItemRepo(db)

	// Services
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenLifetime)
	authService := service.NewAuthService(userRepo, blacklistRepo, tokenService, cfg.RevokeTokenOnPasswordReset)
	userService := service.NewUserService(userRepo)
	listService := service.NewShoppingListService(listRepo)
	itemService := service.NewShoppingItemService(itemRepo, listRepo)
	healthService := service.NewHealthService(db, "shoplist-api")

	// Handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	listHandler := handler.NewShoppingListHandler(listService, cfg.ListsPerPage)
	itemHandler := handler.NewShoppingItemHandler(itemService, cfg.ItemsPerPage)
	healthHandler := handler.NewHealthHandler(healthService)

	// Prune ledger entries whose tokens have expired anyway. Expiry alone
	// invalidates them, so a missed tick costs nothing but table size.
	go func() {
		ticker := time.NewTicker(cfg.TokenLifetime)
		defer ticker.Stop()
		for range ticker.C {
			if err := authService.CleanupExpired(); err != nil {
				logger.Log.WithError(err).Warn("blacklist cleanup failed")
			}
		}
	}()

	gin.SetMode(cfg.ServerMode)
	engine := gin.New()
	server.RegisterRoutes(
		engine,
		authService,
		[]server.RouteRegistrar{
			server.RegistrarFunc(healthHandler.RegisterRoutes),
			server.RegistrarFunc(authHandler.RegisterPublicRoutes),
		},
		[]server.RouteRegistrar{
			server.RegistrarFunc(authHandler.RegisterProtectedRoutes),
			server.RegistrarFunc(userHandler.RegisterProtectedRoutes),
			server.RegistrarFunc(listHandler.RegisterProtectedRoutes),
			server.RegistrarFunc(itemHandler.RegisterProtectedRoutes),
		},
	)

	addr := cfg.ServerHost + ":" + cfg.ServerPort
	return ServeHTTP(addr, engine)
}

// serveHTTP runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func serveHTTP(addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: h,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Log.Infof("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
