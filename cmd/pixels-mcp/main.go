package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/pixels-mcp/internal/config"
	"github.com/ironsheep/pixels-mcp/internal/logger"
	"github.com/ironsheep/pixels-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pixels-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("pixels-mcp - MCP server for image abstraction and negation")
			fmt.Println()
			fmt.Println("Usage: pixels-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PIXELS_LOG_LEVEL=debug       Log level (debug, info, warn, error)")
			fmt.Println("  PIXELS_LOG_FORMAT=console    Log format (json, console)")
			fmt.Println("  PIXELS_THRESHOLD=100         Default color distance for image_abstract")
			fmt.Println("  PIXELS_TIMEOUT=30s           Abort image_abstract runs after this long")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// stdout is reserved for the protocol.
	log := logger.New(os.Stderr, cfg)
	log.Debug().
		Str("version", Version).
		Str("built", BuildTime).
		Str("commit", GitCommit).
		Int("threshold", cfg.Threshold).
		Dur("timeout", cfg.Timeout).
		Msg("starting pixels-mcp")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run returns on cancellation even while stdin is idle.
	srv := server.New(cfg, log)
	if err := srv.Run(ctx); err != nil {
		if ctx.Err() != nil {
			log.Info().Msg("shutting down")
			return
		}
		log.Fatal().Err(err).Msg("server error")
	}
}
