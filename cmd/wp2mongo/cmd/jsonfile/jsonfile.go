package jsonfile

import (
	"github.com/spf13/cobra"

	"wp2mongo/cmd/wp2mongo/cmd/common"
	"wp2mongo/internal/app"
)

// NewCmd returns the json command
func NewCmd(opts *common.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "json <file>",
		Short: "Migrate posts from a JSON file to MongoDB",
		Long: `Migrate posts from a JSON file to MongoDB

The file must hold a JSON array of objects that already use the
title, content and categories field names. They are inserted as is,
nothing is validated or renamed.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := opts.Logger()
			defer logger.Sync()

			app.Run(cmd.Context(), opts.Config, logger, app.InitializeMigrator, app.MigrateFromJSON(args[0]))
		},
	}
}
