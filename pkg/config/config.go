package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// RiotConfiguration holds the API key and the regional routing values.
type RiotConfiguration struct {
	ApiKey string `env:"RIOT_API_KEY,required"`

	// Match data lives on the continental routing, league entries on the platform routing.
	MainRegion string `env:"RIOT_MAIN_REGION" envDefault:"europe"`
	SubRegion  string `env:"RIOT_SUB_REGION" envDefault:"euw1"`

	// Development key limits: 20 requests each 1s, 100 requests each 2min.
	BurstLimit        int           `env:"RIOT_BURST_LIMIT" envDefault:"20"`
	BurstInterval     time.Duration `env:"RIOT_BURST_INTERVAL" envDefault:"1s"`
	SustainedLimit    int           `env:"RIOT_SUSTAINED_LIMIT" envDefault:"100"`
	SustainedInterval time.Duration `env:"RIOT_SUSTAINED_INTERVAL" envDefault:"2m"`
}

// DatabaseConfiguration holds the postgres connection values.
type DatabaseConfiguration struct {
	DSN      string `env:"DATABASE_DSN,required"`
	Database string `env:"DATABASE_NAME" envDefault:"soloq"`
}

// RedisConfiguration holds the Redis connection values.
type RedisConfiguration struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
}

// BucketConfiguration holds the S3 compatible bucket used for log uploads.
type BucketConfiguration struct {
	Region       string `env:"BUCKET_REGION"`
	Endpoint     string `env:"BUCKET_ENDPOINT"`
	AccessKey    string `env:"BUCKET_ACCESS_KEY"`
	AccessSecret string `env:"BUCKET_ACCESS_SECRET"`
	LogBucket    string `env:"BUCKET_LOG_BUCKET"`
}

// Config is the full configuration value object.
// It's built once at startup and passed explicitly to the constructors that need it.
type Config struct {
	Riot     RiotConfiguration
	Database DatabaseConfiguration
	Redis    RedisConfiguration
	Bucket   BucketConfiguration

	// Timeout applied to each external request and to a full match processing pass.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ProcessTimeout time.Duration `env:"PROCESS_TIMEOUT" envDefault:"2m"`

	// How many matches can be processed in flight.
	Workers int `env:"PIPELINE_WORKERS" envDefault:"2"`
}

// Load reads the environment and returns the parsed configuration.
// Outside docker the variables come from a .env file.
func Load() (*Config, error) {
	if os.Getenv("ENVIRONMENT") != "docker" {
		// A missing .env is fine as long as the variables are set.
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("couldn't parse the environment: %w", err)
	}

	return cfg, nil
}
