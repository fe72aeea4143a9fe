package commands

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/passport/internal/app"
)

// log: pretty-print the tail of the log file.
func logCmd(opts *app.Options) *cobra.Command {
	var (
		lines   int
		noColor bool
	)
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the last lines of the passport log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			color := !noColor && isTerminal(cmd.OutOrStdout())
			return app.Log(*opts, lines, color, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines, 0 for all")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
	return cmd
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
