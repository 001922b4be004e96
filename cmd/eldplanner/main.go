package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/libemurg1/ELDTripPlanner/internal/core/cache"
	"github.com/libemurg1/ELDTripPlanner/internal/core/config"
	"github.com/libemurg1/ELDTripPlanner/internal/core/logger"
	adapter "github.com/libemurg1/ELDTripPlanner/internal/features/planning/adapters"
	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/domain"
	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/ports"
	"github.com/libemurg1/ELDTripPlanner/internal/features/planning/service"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	var (
		currentLocation = pflag.String("from", "", "current driver location")
		pickupLocation  = pflag.String("pickup", "", "cargo pickup location")
		dropoffLocation = pflag.String("dropoff", "", "cargo dropoff location")
		cycleHours      = pflag.Float64("cycle-hours", 0, "cycle hours already used (0-70)")
		startAt         = pflag.String("start", "", "trip start time, RFC 3339 (default: now)")
		withReport      = pflag.Bool("report", false, "include a compliance report in the output")
	)
	pflag.Parse()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Planning trip",
		zap.String("environment", cfg.Environment),
		zap.String("route_source", cfg.RouteSource),
	)

	if *currentLocation == "" || *pickupLocation == "" || *dropoffLocation == "" {
		pflag.Usage()
		l.Fatal("--from, --pickup and --dropoff are required")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		l.Fatal("Invalid timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	var start time.Time
	if *startAt != "" {
		start, err = time.Parse(time.RFC3339, *startAt)
		if err != nil {
			l.Fatal("Invalid --start value", zap.String("start", *startAt), zap.Error(err))
		}
	}

	ctx := context.Background()
	source := buildSegmentSource(ctx, cfg, l)
	planner := service.NewPlanningService(source, loc)

	result, err := planner.PlanTrip(ctx, service.TripRequest{
		Query: domain.TripQuery{
			CurrentLocation: *currentLocation,
			PickupLocation:  *pickupLocation,
			DropoffLocation: *dropoffLocation,
		},
		CycleHoursUsed: *cycleHours,
		Start:          start,
	})
	if err != nil {
		l.Fatal("Trip planning failed", zap.Error(err))
	}

	if !result.Feasible {
		l.Warn("Trip is not feasible within hours-of-service limits",
			zap.Int("violations", len(result.Violations)),
		)
	}

	var output any = result
	if *withReport {
		output = struct {
			Plan   *domain.TripPlanResult  `json:"plan"`
			Report domain.ComplianceReport `json:"report"`
		}{result, service.BuildComplianceReport(result)}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		l.Fatal("Failed to encode result", zap.Error(err))
	}
}

// buildSegmentSource wires the configured route source, optionally behind
// a Redis-backed cache. A misconfigured or unreachable cache logs a
// warning and falls back to the bare source.
func buildSegmentSource(ctx context.Context, cfg *config.AppConfig, l *zap.Logger) ports.SegmentSource {
	var source ports.SegmentSource
	switch cfg.RouteSource {
	case "ors":
		source = adapter.NewORSSource(
			cfg.OpenRouteService.URL,
			cfg.OpenRouteService.APIKey,
			time.Duration(cfg.HTTPTimeoutSeconds)*time.Second,
		)
	default:
		source = adapter.NewHaversineSource(cfg.AverageSpeedMPH)
	}

	if cfg.Redis.URL == "" {
		return source
	}

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Warn("Route cache misconfigured, continuing without it", zap.Error(err))
		return source
	}
	if err := redisCache.Ping(ctx); err != nil {
		l.Warn("Route cache unreachable, continuing without it", zap.Error(err))
		return source
	}

	l.Info("Route cache enabled", zap.Int("ttl_minutes", cfg.RouteCacheTTLMinutes))
	return adapter.NewCachedSource(source, redisCache, time.Duration(cfg.RouteCacheTTLMinutes)*time.Minute)
}
