package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/passport/internal/app"
)

// Execute runs the passport CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &app.Options{}

	root := &cobra.Command{
		Use:           "passport",
		Short:         "Pick countries from the countries GraphQL API and split them into groups",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), *opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/passport/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "prefs file (default ~/.config/passport/prefs.toml)")
	flags.StringVar(&opts.Endpoint, "endpoint", "", "countries GraphQL endpoint")
	flags.DurationVar(&opts.Timeout, "timeout", 0, "request timeout, e.g. 5s (default 10s)")
	flags.StringVar(&opts.LogFile, "log-file", "", `log file, "-" disables logging`)
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().IntVar(&opts.GroupSize, "group-size", 0, "pre-fill the group size input")

	root.AddCommand(listCmd(opts), groupsCmd(opts), logCmd(opts))
	return root
}
