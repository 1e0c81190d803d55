// Command console runs the interactive health tracking console. It reads
// commands from stdin and prints replies to stdout; logs go to stderr.
//
// Configuration comes from config.yaml and environment variables (see
// internal/config). Without WEATHER_API_KEY water targets skip the heat
// adjustment.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/myhealth-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("console: %v", err)
	}
}
