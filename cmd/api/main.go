package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/LotusWellness01/spa-scheduler/internal/config"
	dbpkg "github.com/LotusWellness01/spa-scheduler/internal/db"
	"github.com/LotusWellness01/spa-scheduler/internal/logging"
	"github.com/LotusWellness01/spa-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	logger := logging.Init(cfg.Env)
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	zap.L().Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}
