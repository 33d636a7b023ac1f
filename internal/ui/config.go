package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/flextable/internal/config"
	"github.com/javiermolinar/flextable/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var (
		initOnly bool
		edit     bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and optionally edits it.

Example:
  flextable config --edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath(), initOnly, edit)
		},
	}

	cmd.Flags().BoolVar(&initOnly, "init", false, "Create the config file with defaults and exit")
	cmd.Flags().BoolVar(&edit, "edit", false, "Edit values interactively")
	return cmd
}

func runConfig(in io.Reader, out io.Writer, configPath string, initOnly, edit bool) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "%s\n\n", formatStats("Created "+configPath))
	}
	if initOnly {
		return nil
	}

	printConfig(out, cfg)
	if !edit {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(in)
	fmt.Fprintln(out)

	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.Width = promptInt(reader, out, "Width (0 = terminal)", cfg.UI.Width)
	cfg.Table.BorderColor = promptValue(reader, out, "Border color (#rrggbb, empty for theme)", cfg.Table.BorderColor)
	cfg.Table.BackgroundColor = promptValue(reader, out, "Background color (#rrggbb, empty for theme)", cfg.Table.BackgroundColor)
	cfg.Table.Document = promptValue(reader, out, "Document path (empty for sample)", cfg.Table.Document)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, formatHeader("Current configuration:"))
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[ui]")
	fmt.Fprintf(out, "  theme            = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  width            = %d\n", cfg.UI.Width)
	fmt.Fprintln(out, "\n[table]")
	fmt.Fprintf(out, "  border_color     = %s\n", orNone(cfg.Table.BorderColor))
	fmt.Fprintf(out, "  background_color = %s\n", orNone(cfg.Table.BackgroundColor))
	fmt.Fprintf(out, "  document         = %s\n", orNone(cfg.Table.Document))
}

func orNone(s string) string {
	if s == "" {
		return formatMuted("(none)")
	}
	return s
}

// readLine returns the next trimmed line; at EOF it returns "".
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input := readLine(reader)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil && n >= 0 {
			return n
		}
		fmt.Fprintln(out, formatWarning(fmt.Sprintf("  Invalid number %q", value)))
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintln(out, formatWarning(fmt.Sprintf("  Invalid theme %q. Available: %s", value, options)))
	}
}
