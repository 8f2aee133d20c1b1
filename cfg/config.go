package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type DirectionsConfig struct {
	BaseURL string
	APIKey  string
}

// BufferOverrides carries optional per-deployment buffer constants in
// minutes. Zero means "use the built-in default".
type BufferOverrides struct {
	CheckIn               int
	Boarding              int
	SecurityDomestic      int
	SecurityInternational int
	Parking               int
}

type PlannerDefaults struct {
	RiskTolerance string
	ParkingNeeded bool
}

type Config struct {
	AppEnv           string
	AppPort          string
	RedisConfig      RedisConfig
	DirectionsConfig DirectionsConfig
	BufferOverrides  BufferOverrides
	PlannerDefaults  PlannerDefaults
}

func Load() (*Config, error) {
	var errs []error

	err := godotenv.Load()
	if err != nil {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)

	// A key that is missing entirely is an operator error and must stop
	// startup; a key without the directions product enabled degrades at
	// request time instead.
	directionsAPIKey := mustEnv("GOOGLE_MAPS_API_KEY", &errs)

	directionsBaseURL := optionalEnv("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com")
	redisPassword := optionalEnv("REDIS_PASSWORD", "")

	buffers := BufferOverrides{
		CheckIn:               optionalIntEnv("BUFFER_CHECKIN_MINUTES", 0, &errs),
		Boarding:              optionalIntEnv("BUFFER_BOARDING_MINUTES", 0, &errs),
		SecurityDomestic:      optionalIntEnv("BUFFER_SECURITY_DOMESTIC_MINUTES", 0, &errs),
		SecurityInternational: optionalIntEnv("BUFFER_SECURITY_INTERNATIONAL_MINUTES", 0, &errs),
		Parking:               optionalIntEnv("BUFFER_PARKING_MINUTES", 0, &errs),
	}

	defaults := PlannerDefaults{
		RiskTolerance: optionalEnv("DEFAULT_RISK_TOLERANCE", "Moderate"),
		ParkingNeeded: optionalEnv("DEFAULT_PARKING_NEEDED", "false") == "true",
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		DirectionsConfig: DirectionsConfig{
			BaseURL: directionsBaseURL,
			APIKey:  directionsAPIKey,
		},
		BufferOverrides: buffers,
		PlannerDefaults: defaults,
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func optionalEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}

func optionalIntEnv(key string, fallback int, errs *[]error) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return parsed
}
