package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set at build time via ldflags
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dahlia version %s\n", Version)
			if Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", Commit)
			}
			if Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", Date)
			}
		},
	}
}
