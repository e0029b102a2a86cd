package app

import (
	"context"
	"log/slog"

	"github.com/vango-dev/chatapp/pkg/serverfn"
)

// HelloWorld is the name of the greeting server function.
const HelloWorld = "hello_world"

// Greeting is what hello_world returns.
const Greeting = "Hey."

// Register adds the app's server functions to reg.
func Register(reg *serverfn.Registry, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	return serverfn.Handle(reg, HelloWorld, func(ctx context.Context, _ struct{}) (string, error) {
		logger.InfoContext(ctx, "Hey?")
		return Greeting, nil
	})
}
