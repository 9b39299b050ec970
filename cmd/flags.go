package cmd

import (
	"strings"

	"github.com/samsaffron/md2html/internal/config"
	"github.com/spf13/cobra"
)

// ConvertFlags holds the flag values that override conversion settings.
type ConvertFlags struct {
	Engine     string
	Indent     int
	NoHeadings bool
	Verify     bool
}

var convertFlags ConvertFlags

// AddEngineFlag adds the --engine flag with completion
func AddEngineFlag(cmd *cobra.Command, dest *string) {
	cmd.Flags().StringVar(dest, "engine", "", "Renderer to use: builtin or commonmark (overrides config)")
	if err := cmd.RegisterFlagCompletionFunc("engine", EngineFlagCompletion); err != nil {
		panic("failed to register engine completion: " + err.Error())
	}
}

// AddConvertFlags adds the flags shared by commands that write HTML
func AddConvertFlags(cmd *cobra.Command, flags *ConvertFlags) {
	AddEngineFlag(cmd, &flags.Engine)
	cmd.Flags().IntVar(&flags.Indent, "indent", 0, "Spaces before list items and paragraph text (default from config, 4)")
	cmd.Flags().BoolVar(&flags.NoHeadings, "no-headings", false, "Treat '# ' lines as paragraph text")
	cmd.Flags().BoolVar(&flags.Verify, "verify", false, "Check that every tag is closed in order before writing")
}

// EngineFlagCompletion completes --engine values
func EngineFlagCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, engine := range []string{config.EngineBuiltin, config.EngineCommonMark} {
		if strings.HasPrefix(engine, toComplete) {
			completions = append(completions, engine)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// loadConfig loads the config file and applies flag overrides on top.
func loadConfig(flags ConvertFlags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.ApplyOverrides(flags.Engine, flags.Indent, flags.NoHeadings, flags.Verify)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
