// Package main letter-rdp API
// @title letter-rdp API
// @version 1.0
// @description Tokenizes and parses programs of a small expression/statement language
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/letter-rdp/internal/api/docs"
	"github.com/DjordjeVuckovic/letter-rdp/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/letter-rdp/internal/api/server"
	"github.com/DjordjeVuckovic/letter-rdp/internal/parser"
	pkgserver "github.com/DjordjeVuckovic/letter-rdp/pkg/server"
	"github.com/labstack/echo/v4"
)

const probeSource = "let x = (1 + 2) * 3;"

func main() {
	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(sCfg.LogLevel)

	healthChecker := pkgserver.NewProbeHealthChecker("parser", func(ctx context.Context) error {
		_, err := parser.New().Parse(probeSource)
		return err
	})

	s := apiserver.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "letter-rdp API is running")
	})

	router.NewParseRouter(s.Echo, sCfg.MaxSourceBytes).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
