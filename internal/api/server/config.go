package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/letter-rdp/pkg/config/env"
	"github.com/DjordjeVuckovic/letter-rdp/pkg/utils"
)

const (
	DefaultPort           = "8080"
	DefaultMaxSourceBytes = 64 * 1024
)

type Config struct {
	Port           string
	UseHttp2       bool
	CorsOrigins    []string
	MaxSourceBytes int
	LogLevel       slog.Level
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/rdp_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2Str := os.Getenv("USE_HTTP2")
	useHttp2 := useHttp2Str == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitList(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxSource, err := env.Int("MAX_SOURCE_BYTES", DefaultMaxSourceBytes)
	if err != nil {
		return nil, err
	}
	if maxSource <= 0 {
		return nil, errors.New("MAX_SOURCE_BYTES must be positive")
	}

	return &Config{
		Port:           port,
		UseHttp2:       useHttp2,
		CorsOrigins:    origins,
		MaxSourceBytes: maxSource,
		LogLevel:       env.LogLevel(),
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
