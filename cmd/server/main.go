package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "token-presale-backend/docs"
	"token-presale-backend/internal/common/config"
	"token-presale-backend/internal/common/logger"
	"token-presale-backend/internal/common/middleware"
	"token-presale-backend/internal/common/validation"
	presalehttp "token-presale-backend/internal/features/presale/delivery/http"
	presalerepo "token-presale-backend/internal/features/presale/repository/redis"
	presaleservice "token-presale-backend/internal/features/presale/service"
	redisplatform "token-presale-backend/internal/platform/redis"
	"token-presale-backend/internal/platform/ton"
	"token-presale-backend/internal/workers"
)

// @title           Token Presale API
// @version         1.0
// @description     Token presale with linear-vesting release. Mutating endpoints return the outbound instructions (fund transfers, mint calls) the hosting environment must execute after the call commits.

// @host      localhost:8080
// @BasePath  /api/v1

// @tag.name presale
// @tag.description Presale ledger - initialization, purchases, admin operations and queries

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Init("token-presale-backend", cfg.Debug)

	rdb, err := redisplatform.Open(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Str("host", cfg.Redis.Host).Msg("Redis connection established")

	var validator presaleservice.AddressValidator
	if cfg.Presale.TONAddresses {
		validator = ton.NewAddressValidator()
	} else {
		validator = validation.NewIdentityValidator()
	}

	repo := presalerepo.NewRepository(rdb)
	svc := presaleservice.NewPresaleService(repo, validator, cfg.Presale.ContractAddress)
	publisher := workers.NewInstructionPublisher(rdb, log.Logger)
	handler := presalehttp.NewPresaleHandler(svc, publisher, log.Logger)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log.Logger))
	router.Use(middleware.ErrorHandler(log.Logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "X-Caller-Address", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "token-presale-backend",
		})
	})
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/ready", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := rdb.Ping(pingCtx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "redis unavailable",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
