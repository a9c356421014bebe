package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port          string        `envconfig:"PORT"           default:"5000"`
	MongoURI      string        `envconfig:"MONGO_URI"      default:"mongodb://localhost:27017"`
	MongoDatabase string        `envconfig:"MONGO_DATABASE" default:"warehouse"`
	GrpcPort      string        `envconfig:"GRPC_PORT"` // empty disables the gRPC health server
	LogLevel      string        `envconfig:"LOG_LEVEL"      default:"info"`
	DBTimeout     time.Duration `envconfig:"DB_TIMEOUT"     default:"10s"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	logger.Infof("Configuration loaded: Port=%s, Database=%s, GRPC Port=%q, LogLevel=%s",
		cfg.Port, cfg.MongoDatabase, cfg.GrpcPort, cfg.LogLevel)
	return &cfg, nil
}

// Addr is the HTTP listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}
