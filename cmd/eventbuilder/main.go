// eventbuilder demonstrates the Builder pattern: it builds an event.Event with a fixed id and name
// and prints the name.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AntonStoeckl/event-builder-go/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cmd := newRootCmd(dependencies{
		loadConfig: func() (config.Config, error) { return config.Load() },
		now:        time.Now,
	})

	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
