package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/flextable/internal/flextable"
	"github.com/javiermolinar/flextable/internal/tui"
	"github.com/javiermolinar/flextable/internal/tui/theme"
	"github.com/javiermolinar/flextable/internal/tui/view"
)

func (a *App) renderCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Print a document as a table and exit",
		Long: `Render a table document once to stdout.

The width defaults to the configured width, then the terminal width.

Example:
  flextable render servers.toml --width 100`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument(args)
			if err != nil {
				return err
			}

			w := width
			if w <= 0 {
				w = a.config.UI.Width
			}
			if w <= 0 {
				w = termWidth()
			}

			t, err := theme.Load(a.config.UI.Theme)
			if err != nil {
				return fmt.Errorf("loading theme: %w", err)
			}
			styles := tui.NewStyles(t)
			table := flextable.New(doc.Table(nil),
				flextable.WithDefaultStyle(styles.TableStyle()),
				flextable.WithDefaultStyle(a.tableStyle()),
				flextable.WithCellStyles(styles.Cells),
			)

			disabled := 0
			for _, row := range doc.Rows {
				if row.Disabled {
					disabled++
				}
			}

			out := cmd.OutOrStdout()
			if doc.Title != "" {
				fmt.Fprintln(out, formatHeader(doc.Title))
			}
			fmt.Fprintln(out, table.View(w, ""))
			fmt.Fprintln(out, formatMuted(view.RowCountLabel(len(doc.Rows), disabled)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Render width in columns")
	return cmd
}

func (a *App) tableStyle() flextable.TableStyle {
	return flextable.TableStyle{
		BorderColor:     theme.Color(a.config.Table.BorderColor),
		BackgroundColor: theme.Color(a.config.Table.BackgroundColor),
	}
}
