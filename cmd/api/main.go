package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bookwise/booking-calendar/internal/config"
	dbpkg "github.com/bookwise/booking-calendar/internal/db"
	"github.com/bookwise/booking-calendar/internal/logger"
	"github.com/bookwise/booking-calendar/internal/routes"
)

func main() {

	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(cfg.IsProduction())
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// the cache is best-effort, a dead Redis only costs performance
		log.Warn("redis unavailable, caching disabled",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
