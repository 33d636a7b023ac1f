package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/flextable/internal/config"
	"github.com/javiermolinar/flextable/internal/document"
	"github.com/javiermolinar/flextable/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	root    *cobra.Command
	debug   bool   // Enable debug logging
	theme   string // Theme override for this run
	noColor bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "flextable [document]",
		Short: "Browse bordered tables with per-row actions",
		Long: `Flextable renders a table document in the terminal.

Rows can carry inserted rows above and below them, be disabled behind
an overlay, and expose actions through a single icon or a dropdown menu.
Without a document argument the configured document is opened, or the
built-in sample when none is configured.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.applyFlags()
		},
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.loadDocument(args)
			if err != nil {
				return err
			}
			return tui.RunWithDebug(a.config, doc, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	a.root.PersistentFlags().StringVar(&a.theme, "theme", "", "Theme for this run (overrides config)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.renderCmd())
	a.root.AddCommand(a.themesCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "flextable %s (commit: %s)\n", Version, Commit)
		},
	}
}

// applyFlags folds persistent flags into the loaded config.
func (a *App) applyFlags() error {
	if a.noColor {
		DisableColor()
	}
	if a.theme != "" {
		cfg := *a.config
		cfg.UI.Theme = a.theme
		if err := cfg.Validate(); err != nil {
			return err
		}
		a.config = &cfg
	}
	return nil
}

// loadDocument resolves the document from the argument, then config,
// then the built-in sample.
func (a *App) loadDocument(args []string) (*document.Document, error) {
	path := a.config.Table.Document
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return document.Sample(), nil
	}
	return document.Load(path)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
