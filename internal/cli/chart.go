package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var chartHeadingStyle = lipgloss.NewStyle().Bold(true)

func newChartCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Show every color code and formatter",
		Long: `Render a sample of every color code (0-9, a-f) and formatter (h-o)
at the active depth, each code applied to its own letter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := buildConverter(opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heading := fmt.Sprintf("Color codes and formatters at depth %s", conv.Depth())
			if _, err := fmt.Fprintln(out, chartHeadingStyle.Render(heading)); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, conv.Chart())
			return err
		},
	}
}
