package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/flextable/internal/tui/theme"
)

func (a *App) themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			current := strings.ToLower(a.config.UI.Theme)
			for _, name := range theme.Available() {
				t, err := theme.Load(name)
				if err != nil {
					return err
				}
				if name == current {
					fmt.Fprintf(out, "* %s %s\n", formatCurrent(name), formatMuted(t.Bg+" "+t.Accent))
					continue
				}
				fmt.Fprintf(out, "  %s %s\n", name, formatMuted(t.Bg+" "+t.Accent))
			}
			return nil
		},
	}
}
