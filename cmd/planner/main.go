package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"flightplanner/cfg"
	"flightplanner/internal/airport"
	"flightplanner/internal/planner"
	"flightplanner/internal/prefs"
	"flightplanner/internal/traffic"
	"flightplanner/pkg/cache"
	"flightplanner/pkg/directions"
	"flightplanner/pkg/idgen"
	"flightplanner/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Cache
	// ============
	redisAddr := config.RedisConfig.Host + ":" + config.RedisConfig.Port
	redis := cache.NewRedisCache(redisAddr, config.RedisConfig.Password)

	// ============
	// ID generator
	// ============
	idGenerator, err := idgen.NewSnowflakeGenerator(1)
	if err != nil {
		log.Fatalf("Failed to create id generator: %v", err)
	}

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}
	directionsClient := directions.NewGoogleClient(httpClient,
		config.DirectionsConfig.BaseURL, config.DirectionsConfig.APIKey, zlogger)

	// ============
	// Internal Service
	// ============
	estimator := traffic.NewEstimator(directionsClient, zlogger)
	directory := airport.NewDirectory()
	prefsSvc := prefs.NewService(redis)

	bufferConfig := planner.DefaultBufferConfig().Merge(planner.BufferConfig{
		CheckIn:               config.BufferOverrides.CheckIn,
		Boarding:              config.BufferOverrides.Boarding,
		SecurityDomestic:      config.BufferOverrides.SecurityDomestic,
		SecurityInternational: config.BufferOverrides.SecurityInternational,
		Parking:               config.BufferOverrides.Parking,
	})
	defaults := planner.Defaults{
		RiskTolerance: planner.RiskTolerance(config.PlannerDefaults.RiskTolerance),
		ParkingNeeded: config.PlannerDefaults.ParkingNeeded,
	}

	plannerSvc := planner.NewService(estimator, directory, prefsSvc, bufferConfig, defaults, idGenerator, zlogger)

	plannerHandler := planner.NewHandler(plannerSvc)
	airportHandler := airport.NewHandler(directory)
	prefsHandler := prefs.NewHandler(prefsSvc)

	// ============
	// HTTP
	// ============
	r := gin.Default()

	plannerHandler.RegisterRoutes(r)
	airportHandler.RegisterRoutes(r)
	prefsHandler.RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", config.AppPort)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
