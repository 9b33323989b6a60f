package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tgechev/gonotes/auth"
	"github.com/tgechev/gonotes/cache"
	"github.com/tgechev/gonotes/config"
	"github.com/tgechev/gonotes/controller"
	"github.com/tgechev/gonotes/dao"
	"github.com/tgechev/gonotes/db"
	logger "github.com/tgechev/gonotes/logging"
	"github.com/tgechev/gonotes/router"
	"github.com/tgechev/gonotes/service"
	"github.com/tgechev/gonotes/token"
	"github.com/tgechev/gonotes/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize Postgres
	if err := db.InitPostgres(); err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer db.ClosePostgres()

	// Redis is needed when it backs the cache or the rate limiter.
	needsRedis := config.GetString("cache.backend") == "redis" || config.GetBool("ratelimit.enabled")
	if needsRedis {
		if err := db.InitRedis(); err != nil {
			logger.Fatal("Failed to initialize Redis", zap.Error(err))
		}
		defer db.CloseRedis()
	}

	// One shared cache backs both token revocation and response caching.
	var store cache.Cache
	if config.GetString("cache.backend") == "redis" {
		store = cache.NewRedis(db.RedisClient)
	} else {
		memory := cache.NewMemory()
		defer memory.Close()
		store = memory
	}

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)
	subscribeChangeLog(eventBus)

	// Initialize services and utilities
	validationUtil := util.NewValidationUtil()
	hasher := auth.NewPasswordHasher()
	revoked := auth.NewRevocationList(store)

	tokens, err := token.NewService(config.GetString("auth.jwtSecret"), config.GetDuration("auth.tokenTTL"))
	if err != nil {
		logger.Fatal("Failed to initialize token service", zap.Error(err))
	}

	cacheTTL := service.CacheTTL{
		Notes: config.GetDuration("cache.notesTTL"),
		Users: config.GetDuration("cache.usersTTL"),
	}

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db.DB)
	noteDAO := dao.NewNoteDAO(db.DB)

	// Initialize services
	services := &service.Services{
		User: service.NewUserService(userDAO, validationUtil, store, hasher, tokens, eventBus, cacheTTL),
		Note: service.NewNoteService(noteDAO, validationUtil, store, eventBus, cacheTTL),
	}

	// Initialize controllers and routes
	controllers := controller.NewControllers(services, revoked)
	engine := router.SetupRouter(controllers, tokens, revoked)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}

// subscribeChangeLog records every entity change on the audit log.
func subscribeChangeLog(eventBus *util.EventBus) {
	events := []string{
		"user.created", "user.updated", "user.deleted",
		"note.created", "note.updated", "note.deleted",
	}
	for _, eventType := range events {
		eventBus.Subscribe(eventType, func(ctx context.Context, event util.Event) error {
			logger.Info("Entity change",
				zap.String("event", event.Type),
				zap.Any("payload", event.Payload))
			return nil
		})
	}
}
