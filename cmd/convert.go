package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/samsaffron/md2html/internal/config"
	"github.com/samsaffron/md2html/internal/htmlcheck"
	"github.com/samsaffron/md2html/internal/markdown"
	"github.com/spf13/cobra"
)

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, outputPath := args[0], args[1]

	// A missing input is reported ahead of config errors.
	if err := checkInput(inputPath); err != nil {
		return err
	}
	cfg, err := loadConfig(convertFlags)
	if err != nil {
		return err
	}
	return convertFile(inputPath, outputPath, cfg)
}

// checkInput returns a *MissingInputError when path does not exist.
func checkInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingInputError{Path: path}
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return nil
}

// readInput reads the Markdown source, mapping not-found to *MissingInputError.
func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// convertFile converts inputPath and writes the HTML to outputPath. The output
// file is only touched once conversion (and verification) succeeded.
func convertFile(inputPath, outputPath string, cfg *config.Config) error {
	if err := checkInput(inputPath); err != nil {
		return err
	}
	src, err := readInput(inputPath)
	if err != nil {
		return err
	}

	html, err := render(src, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	slog.Debug("converted", "input", inputPath, "output", outputPath, "bytes", len(html))
	return nil
}

// render converts Markdown source to the final HTML document text.
func render(src []byte, cfg *config.Config) (string, error) {
	var lines []string
	switch cfg.Engine {
	case config.EngineCommonMark:
		var err error
		lines, err = markdown.RenderCommonMark(src)
		if err != nil {
			return "", err
		}
	default:
		input := markdown.SplitLines(string(src))
		lines = markdown.ConvertWithOptions(input, markdown.Options{
			Indent:   cfg.IndentString(),
			Headings: cfg.Headings,
		})
		slog.Debug("classified lines", "input_lines", len(input), "output_lines", len(lines))
	}

	html := markdown.JoinLines(lines)
	if cfg.Verify {
		if err := htmlcheck.Check(html); err != nil {
			return "", fmt.Errorf("verify: %w", err)
		}
	}
	return html, nil
}
