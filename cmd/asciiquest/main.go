// Package main is the entry point for asciiquest.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/samdwyer/asciiquest/internal/assets"
	"github.com/samdwyer/asciiquest/internal/config"
	"github.com/samdwyer/asciiquest/internal/game"
	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/telemetry"
	"github.com/samdwyer/asciiquest/internal/ui"
	"github.com/samdwyer/asciiquest/internal/world"
)

func main() {
	// Local development keeps the Honeycomb key in .env
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cmd := &cli.Command{
		Name:  "asciiquest",
		Usage: "walk the overworld, stumble into fights",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file",
				Sources: cli.EnvVars(config.EnvPrefix + "CONFIG"),
			},
			&cli.StringFlag{
				Name:  "map",
				Usage: "map file to load instead of the built-in overworld",
			},
			&cli.StringFlag{
				Name:  "variant",
				Usage: "movement variant: explore or platformer",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "file the log is written to",
			},
			&cli.BoolFlag{
				Name:  "telemetry",
				Usage: "export traces over OTLP",
			},
		},
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatalf("asciiquest: %v", err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger.Init(cfg.LogLevel, cfg.LogFormat, logFile)
	mainLog := logger.Component("main")

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			mainLog.WithError(err).Warn("telemetry setup failed, running without traces")
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					mainLog.WithError(err).Error("telemetry shutdown failed")
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	var grid *world.Grid
	if cfg.MapPath != "" {
		grid, err = world.LoadFile(ctx, cfg.MapPath, cfg.TileSize)
	} else {
		grid, err = world.LoadDefault(cfg.TileSize)
	}
	if err != nil {
		return err
	}

	sheet, err := assets.LoadSheet()
	if err != nil {
		return fmt.Errorf("failed to load sprites: %w", err)
	}

	opts, err := game.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	sim, err := game.NewSimulation(ctx, grid, sheet, opts)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	mainLog.WithField("variant", cfg.Variant).
		WithField("map_width", grid.Width).
		WithField("map_height", grid.Height).
		WithField("enemies", enemyCount(sheet)).
		Info("starting")
	return game.New(screen, sim, cfg.FrameDuration(), cfg.KeyHold).Run(ctx)
}

// loadConfig layers defaults, the config file, ASCIIQUEST_* variables and
// command-line flags, in that order.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.LoadFile(cfg, path); err != nil {
			return cfg, err
		}
	}

	cfg, err := config.ApplyEnv(cfg, os.LookupEnv)
	if err != nil {
		return cfg, err
	}

	if cmd.IsSet("map") {
		cfg.MapPath = cmd.String("map")
	}
	if cmd.IsSet("variant") {
		cfg.Variant = cmd.String("variant")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-file") {
		cfg.LogFile = cmd.String("log-file")
	}
	if cmd.IsSet("telemetry") {
		cfg.Telemetry = cmd.Bool("telemetry")
	}

	return cfg, cfg.Validate()
}

func enemyCount(sheet *assets.Sheet) int {
	if sheet.Enemies == nil {
		return 0
	}
	return sheet.Enemies.Count()
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
func setupOTelEnv() {
	apiKey := os.Getenv("ASCIIQUEST_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("ASCIIQUEST_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "asciiquest"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
