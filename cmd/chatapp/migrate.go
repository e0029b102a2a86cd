package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/chatapp/internal/db"
	"github.com/vango-dev/chatapp/migrations"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply pending database migrations and print the schema version.

serve does this on every start; migrate is for file-backed databases
that should be upgraded ahead of a deploy.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, "")
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			conn, err := e.openDB(ctx)
			if err != nil {
				return err
			}
			defer conn.Close()

			v, err := db.Version(ctx, conn, migrations.FS)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", v)
			return nil
		},
	}
}
