// Package cli runs an ingestion command: positional arguments in, logs on
// stderr, process exit code out.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	ingest "github.com/thadeu/go-speech-ingest"
)

// Command describes one corpus entry point
type Command struct {
	Name string
	// Args names the positional arguments, in order
	Args []string
	// Build turns the positional arguments into a configured Ingester
	Build func(args []string, logger *slog.Logger) ingest.Ingester
	// CheckDeps runs before ingestion; defaults to CheckSoxInstalled
	CheckDeps func() error
}

// Main runs the command with the process arguments and exits
func (c Command) Main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := c.Run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// Run executes the command and returns its exit code: 0 on success,
// 1 when ingestion fails, 2 on a usage error.
func (c Command) Run(ctx context.Context, args []string, stderr io.Writer) int {
	if len(args) != len(c.Args) {
		fmt.Fprintf(stderr, "usage: %s %s\n", c.Name, strings.Join(c.Args, " "))
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	check := c.CheckDeps
	if check == nil {
		check = func() error { return ingest.CheckSoxInstalled("") }
	}
	if err := check(); err != nil {
		logger.Error("Dependency check failed", "error", err)
		return 1
	}

	result, err := c.Build(args, logger).Ingest(ctx)
	if err != nil {
		logger.Error("Ingestion failed", "error", err)
		return 1
	}

	logger.Info("Manifest written", "path", result.ManifestPath, "rows", result.Manifest.Len())
	return 0
}
