package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	dotEnvFile = ".env"
)

type Config struct {
	NetAddr         string        `env:"RUN_ADDRESS"`
	LogLevel        string        `env:"LOG_LEVEL"`
	LogFormat       string        `env:"LOG_FORMAT"`
	TokenSecret     string        `env:"TOKEN_SECRET"`
	TokenTTL        time.Duration `env:"TOKEN_TTL"`
	KafkaBrokers    string        `env:"KAFKA_BROKERS"`
	KafkaTopic      string        `env:"KAFKA_TOPIC"`
	JaegerEndpoint  string        `env:"JAEGER_ENDPOINT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

func InitConfig() (config Config) {
	flag.StringVar(&config.NetAddr, "a", "localhost:3000", "net address host:port")
	flag.StringVar(&config.LogLevel, "l", "info", "log level")
	flag.StringVar(&config.LogFormat, "lf", "json", "log encoding: json or console")
	flag.StringVar(&config.TokenSecret, "s", "your-secret-key-change-in-production", "secret used to sign bearer tokens")
	flag.DurationVar(&config.TokenTTL, "t", time.Hour, "bearer token lifetime")
	flag.StringVar(&config.KafkaBrokers, "k", "", "comma separated kafka brokers for order events, empty disables publishing")
	flag.StringVar(&config.KafkaTopic, "kt", "order-events", "kafka topic for order events")
	flag.StringVar(&config.JaegerEndpoint, "j", "", "jaeger collector endpoint, empty disables trace export")
	flag.DurationVar(&config.ShutdownTimeout, "st", 10*time.Second, "graceful shutdown timeout")
	flag.Parse()

	if err := loadDotEnv(dotEnvFile); err != nil {
		panic(fmt.Errorf("error while loading %s file: %w", dotEnvFile, err))
	}

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return
}

func (c Config) Brokers() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) != 0 {
			brokers = append(brokers, part)
		}
	}

	return brokers
}

// loadDotEnv never overrides variables that are already set in the environment.
func loadDotEnv(filename string) error {
	err := godotenv.Load(filename)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
