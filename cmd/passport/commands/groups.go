package commands

import (
	"github.com/spf13/cobra"

	"github.com/five82/passport/internal/app"
)

// groups CODE...: select the codes in order and print the groups.
func groupsCmd(opts *app.Options) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "groups CODE...",
		Short: "Select country codes in order and print them in groups",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Groups(cmd.Context(), *opts, size, args, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 0, "countries per group; 0 or less uses config group_size, else one group")
	return cmd
}
