// Command cardstack replays and renders swipeable card stack scenarios.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-drift/cardstack/cmd/cardstack/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
