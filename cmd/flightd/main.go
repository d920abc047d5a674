// cmd/flightd/main.go
//
// Flight server entry point.
//
// Startup order
// -------------
//
//  1. Parse CLI flags (repeatable --config, later files win).
//
//  2. Load optional .env so GOODDATA_FLIGHT_* overrides are in place
//     before resolution.
//
//  3. Resolve → validate → materialize the server configuration; any
//     source or validation error prints and exits non-zero.
//
//  4. Start the daily rotating logger (tees to console in a TTY),
//     shaped by log_event_key_name and log_trace_keys.
//
//  5. Run the health and metrics listeners plus the memory-trim loop
//     until SIGINT/SIGTERM.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	"github.com/gooddata/flight-server/internal/config"
	"github.com/gooddata/flight-server/internal/logger"
	"github.com/gooddata/flight-server/internal/server"
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	app := kingpin.New("flightd", "Flight data server.")
	configFiles := app.Flag("config",
		"Path to a YAML settings file.  Repeatable; later files override earlier ones.").Strings()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// Optional .env; absence is fine.
	_ = godotenv.Load()

	settings, cfg, err := config.Read(*configFiles...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootDir, _ := os.Getwd()
	log, err := logger.New(cfg, rootDir, runningInTTY())
	if err != nil {
		fmt.Fprintf(os.Stderr, "start logger: %v\n", err)
		os.Exit(1)
	}
	log.Debugw("effective settings", "settings", settings.All())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, log).Run(ctx); err != nil {
		log.Fatalw("server failed", "err", err)
	}
	log.Infow("shutdown complete")
}
