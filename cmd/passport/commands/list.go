package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/passport/internal/app"
)

// list <filter>: print countries whose name contains filter.
func listCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list <filter>",
		Short: "Print countries whose name contains the filter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.List(cmd.Context(), *opts, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
}
