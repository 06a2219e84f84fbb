package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"vrms/internal/config"
	"vrms/internal/handlers"
	"vrms/internal/middleware"
	"vrms/internal/repositories/mongodb"
	"vrms/internal/services"
	"vrms/internal/utils"
	"vrms/pkg/cache"
	"vrms/pkg/database"
	"vrms/pkg/logger"
	"vrms/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	// Redis is optional; the repositories work without a cache.
	var cacheService mongodb.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			log.WithError(err).Warn("redis unavailable, continuing without cache")
		} else {
			cacheService = redisCache
			defer redisCache.Close()
		}
	}

	// Repositories
	driverRepo := mongodb.NewDriverRepository(db.Database, cacheService)
	vehicleRepo := mongodb.NewVehicleRepository(db.Database, cacheService)

	// Services
	cascadeService := services.NewCascadeService(vehicleRepo, log)
	driverService := services.NewDriverService(driverRepo, cascadeService, log)
	vehicleService := services.NewVehicleService(vehicleRepo, driverRepo, log)
	dashboardService := services.NewDashboardService(driverRepo, vehicleRepo, cfg.App.RenewalHorizonDays)

	// Handlers
	driverHandler := handlers.NewDriverHandler(driverService, log)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, log)
	exportHandler := handlers.NewExportHandler(driverService, vehicleService, log)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.App.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())

	api := router.Group("/api")
	{
		routes.SetupDriverRoutes(api, driverHandler)
		routes.SetupVehicleRoutes(api, vehicleHandler)
		routes.SetupDashboardRoutes(api, dashboardHandler, exportHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": utils.AppVersion,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.WithField("addr", addr).Info("starting server")
	if err := http.ListenAndServe(addr, router); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
