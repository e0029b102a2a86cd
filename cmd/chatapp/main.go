// Command chatapp serves the chatapp UI and its server functions.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	cerrors "github.com/vango-dev/chatapp/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		cerrors.DisableColors()
	}
	if err := rootCmd().Execute(); err != nil && !errors.Is(err, context.Canceled) {
		cerrors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chatapp",
		Short: "Server-rendered greeting app with a WebAssembly client",
		Long: `chatapp renders its UI on the server, hydrates it in the browser with a
Go WebAssembly client and answers remote calls under /api/.

The server loads chatapp.json (or chatapp.yaml) from the working
directory, opens the database, applies migrations and listens.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "Configuration file (default: chatapp.json in the working directory)")

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		routesCmd(),
		versionCmd(),
	)
	return root
}
