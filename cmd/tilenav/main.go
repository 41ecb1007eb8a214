// Package main is the entry point for the tilenav terminal demo.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/tilenav/internal/game"
	"github.com/samdwyer/tilenav/internal/telemetry"
)

var version = "dev"

func main() {
	// Env vars may be set directly, so a missing .env is not fatal.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, version)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv maps the Honeycomb variables onto the OTLP exporter's
// environment. An explicit OTEL_EXPORTER_OTLP_ENDPOINT wins.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_TILENAV_API_KEY")
	dataset := os.Getenv("HONEYCOMB_TILENAV_DATASET")
	if dataset == "" {
		dataset = "tilenav"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
