package mysql

import (
	"context"

	"github.com/spf13/cobra"

	"wp2mongo/cmd/wp2mongo/cmd/common"
	"wp2mongo/internal/app"
)

// NewCmd returns the mysql command
func NewCmd(opts *common.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "mysql",
		Short: "Migrate published WordPress posts from MySQL to MongoDB",
		Long: `Migrate published WordPress posts from MySQL to MongoDB

- Reads every published post with its category names from wp_posts and the term tables
- Inserts them into the posts collection with a single bulk insert
- Connection settings come from MYSQL_HOST, MYSQL_USER, MYSQL_PASSWORD, MYSQL_DATABASE and MONGO_URI

Documents are only ever inserted, running it twice duplicates them.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			Run(cmd.Context(), opts)
		},
	}
}

// Run performs the MySQL migration. It is also what the root command does.
func Run(ctx context.Context, opts *common.Options) {
	logger := opts.Logger()
	defer logger.Sync()

	app.Run(ctx, opts.Config, logger, app.InitializeMigrator, app.MigrateFromMySQL)
}
