package cmd

import (
	"fmt"

	"github.com/samsaffron/md2html/internal/config"
	"github.com/samsaffron/md2html/internal/ui"
	"github.com/spf13/cobra"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview <input-path>",
	Short: "Render a Markdown file in the terminal",
	Long: `Render a Markdown file in the terminal instead of writing HTML.

Examples:
  md2html preview README.md
  md2html preview README.md --width 100`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 0, "Wrap width (default: terminal width)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := checkInput(path); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ui.InitTheme(themeConfig(cfg.Theme))

	src, err := readInput(path)
	if err != nil {
		return err
	}

	width := previewWidth
	if width <= 0 {
		width = ui.TerminalWidth()
	}
	rendered, err := ui.RenderMarkdown(string(src), width)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}

func themeConfig(cfg config.ThemeConfig) ui.ThemeConfig {
	return ui.ThemeConfig{
		Primary:   cfg.Primary,
		Secondary: cfg.Secondary,
		Success:   cfg.Success,
		Error:     cfg.Error,
		Muted:     cfg.Muted,
	}
}
