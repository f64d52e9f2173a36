package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/clibind/host"
	"github.com/vk/clibind/internal/ctxlog"
)

// main is the entrypoint for the stamp demo application.
func main() {
	// -d/--debug is universal: it is honored before binding so the log level
	// covers the binding itself.
	level := slog.LevelInfo
	for _, a := range os.Args[1:] {
		if a == "-d" || a == "--debug" {
			level = slog.LevelDebug
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	if err := run(ctx, os.Stdout, os.Args); err != nil {
		var exitErr *host.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the invocation for easier testing and error handling.
func run(ctx context.Context, out io.Writer, argv []string) error {
	return host.Run(ctx, argv, stampApp(), out, stamp)
}
