package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"wp2mongo/cmd/wp2mongo/cmd/common"
	"wp2mongo/cmd/wp2mongo/cmd/jsonfile"
	"wp2mongo/cmd/wp2mongo/cmd/mysql"
	"wp2mongo/cmd/wp2mongo/cmd/version"
	"wp2mongo/internal/config"
)

// NewRootCmd builds the command tree. Without a subcommand it runs the
// MySQL migration; the JSON migration is only reachable through json.
func NewRootCmd(opts *common.Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wp2mongo",
		Short: "One-off migration of blog posts into MongoDB",
		Long: `One-off migration of blog posts into MongoDB.
- Without a subcommand, published WordPress posts are copied from MySQL
- 'json <file>' copies posts from a JSON array instead
- Configuration is read from the environment or a .env file`,
		Args:             cobra.NoArgs,
		TraverseChildren: true,
		Run: func(cmd *cobra.Command, args []string) {
			mysql.Run(cmd.Context(), opts)
		},
	}

	rootCmd.AddCommand(mysql.NewCmd(opts))
	rootCmd.AddCommand(jsonfile.NewCmd(opts))
	rootCmd.AddCommand(version.NewCmd())

	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "V", false, "verbose output")

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once.
func Execute(cfg *config.Config, envFile string) {
	opts := &common.Options{Config: cfg, EnvFile: envFile}

	if err := NewRootCmd(opts).Execute(); err != nil {
		os.Exit(1)
	}
}
