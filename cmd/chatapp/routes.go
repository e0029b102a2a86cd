package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/chatapp/app"
	"github.com/vango-dev/chatapp/pkg/serverfn"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List UI routes and server functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRoutes(cmd.OutOrStdout())
		},
	}
}

func printRoutes(w io.Writer) error {
	reg := serverfn.NewRegistry(serverfn.WithLogger(slog.Default()))
	if err := app.Register(reg, slog.Default()); err != nil {
		return err
	}

	for _, r := range app.Routes() {
		fmt.Fprintf(w, "GET,HEAD  %-24s %s\n", r.Path, r.Title)
	}
	for _, name := range reg.Names() {
		fmt.Fprintf(w, "GET,POST  %-24s server function\n", serverfn.DefaultPrefix+"/"+name)
	}
	fmt.Fprintf(w, "GET       %-24s static\n", "/favicon.ico")
	fmt.Fprintf(w, "GET       %-24s health\n", "/healthz")
	return nil
}
