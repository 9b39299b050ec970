package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugLogs, "debug", "d", false, "Log conversion details to stderr")
	AddConvertFlags(rootCmd, &convertFlags)
}

var rootCmd = &cobra.Command{
	Use:   "md2html <input-path> <output-path>",
	Short: "Convert a Markdown file to HTML",
	Long: `md2html converts a small Markdown subset to HTML: headings, "- " and
"* " lists, paragraphs, **bold** and __italic__.

Examples:
  md2html README.md README.html
  md2html notes.md notes.html --engine commonmark
  md2html notes.md notes.html --verify --indent 2

  md2html preview README.md             # render in the terminal
  md2html batch "docs/**/*.md" --diff   # show what would change
  md2html config                        # view configuration`,
	Version:           Version,
	Args:              requireInputOutput,
	RunE:              runConvert,
	PersistentPreRun:  setupLogging,
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var debugLogs bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err for the user and returns the process exit code.
func reportError(w io.Writer, err error) int {
	fmt.Fprintln(w, err)
	return 1
}

func setupLogging(cmd *cobra.Command, args []string) {
	level := slog.LevelWarn
	if debugLogs {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
