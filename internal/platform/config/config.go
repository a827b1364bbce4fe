package config

import (
	"os"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName  string
	HTTPPort     string
	PostgresDSN  string
	KafkaBrokers []string

	ContentAPIBaseURL string
	ContentAPIKey     string

	EligibilitySweepInterval time.Duration

	EnableEligibilitySweep  bool
	EnableOutboxRelay       bool
	EnablePromotionConsumer bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "payline"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	var brokers []string
	for _, value := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			brokers = append(brokers, value)
		}
	}
	if len(brokers) == 0 {
		brokers = []string{"localhost:9092"}
	}

	return Config{
		ServiceName:  service,
		HTTPPort:     port,
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		KafkaBrokers: brokers,

		ContentAPIBaseURL: os.Getenv("CONTENT_API_BASE_URL"),
		ContentAPIKey:     os.Getenv("CONTENT_API_KEY"),

		EligibilitySweepInterval: envDuration("ELIGIBILITY_SWEEP_INTERVAL", 30*time.Minute),

		EnableEligibilitySweep:  envBool("ENABLE_ELIGIBILITY_SWEEP", true),
		EnableOutboxRelay:       envBool("ENABLE_OUTBOX_RELAY", true),
		EnablePromotionConsumer: envBool("ENABLE_PROMOTION_CONSUMER", true),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
