package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samsaffron/md2html/internal/config"
	"github.com/samsaffron/md2html/internal/ui"
	"github.com/spf13/cobra"
)

var (
	batchFlags  ConvertFlags
	batchOutDir string
	batchDiff   bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <pattern>",
	Short: "Convert every Markdown file matching a glob pattern",
	Long: `Convert every file matching a glob pattern (** matches any depth).
Each file is written next to its source with the configured extension, or
under --out-dir keeping its path relative to the pattern's base directory.

Examples:
  md2html batch "*.md"
  md2html batch "docs/**/*.md" --out-dir site
  md2html batch "docs/**/*.md" --diff    # print changes, write nothing`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	AddConvertFlags(batchCmd, &batchFlags)
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Directory for generated files (overrides config)")
	batchCmd.Flags().BoolVar(&batchDiff, "diff", false, "Show a diff against existing output instead of writing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(batchFlags)
	if err != nil {
		return err
	}
	if batchOutDir != "" {
		cfg.Batch.OutDir = batchOutDir
	}
	ui.InitTheme(themeConfig(cfg.Theme))
	return convertBatch(cmd, args[0], cfg, batchDiff)
}

// convertBatch converts each file matching pattern. A failing file does not
// stop the batch; all failures are returned together at the end.
func convertBatch(cmd *cobra.Command, pattern string, cfg *config.Config, showDiff bool) error {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no files match %q", pattern)
	}

	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	styles := ui.NewStyles(cmd.ErrOrStderr())
	diffStyles := ui.NewStyles(cmd.OutOrStdout())
	ext := cfg.Batch.Extension
	if ext == "" {
		ext = ".html"
	}

	var errs []error
	changed := 0
	for _, src := range matches {
		dst := batchOutputPath(src, filepath.FromSlash(base), cfg.Batch.OutDir, ext)
		if dst == src {
			err := fmt.Errorf("%s: output would overwrite the source", src)
			fmt.Fprintln(cmd.ErrOrStderr(), styles.FormatResult(false, err.Error()))
			errs = append(errs, err)
			continue
		}

		if showDiff {
			differs, err := diffOutput(cmd, diffStyles, src, dst, cfg)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), styles.FormatResult(false, err.Error()))
				errs = append(errs, err)
				continue
			}
			if differs {
				changed++
			}
			continue
		}

		err := os.MkdirAll(filepath.Dir(dst), 0o755)
		if err == nil {
			err = convertFile(src, dst, cfg)
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), styles.FormatResult(false, err.Error()))
			errs = append(errs, err)
			continue
		}
		changed++
		fmt.Fprintln(cmd.ErrOrStderr(), styles.FormatResult(true, src+" -> "+dst))
	}

	verb := "converted"
	if showDiff {
		verb = "would change"
	}
	summary := fmt.Sprintf("%d of %d file(s) %s", changed, len(matches), verb)
	fmt.Fprintln(cmd.ErrOrStderr(), styles.FormatResult(len(errs) == 0, summary))
	if len(errs) > 0 {
		return fmt.Errorf("%d file(s) failed: %w", len(errs), errors.Join(errs...))
	}
	return nil
}

// diffOutput prints the diff between the existing output file and a fresh
// conversion of src. It reports whether the two differ.
func diffOutput(cmd *cobra.Command, styles *ui.Styles, src, dst string, cfg *config.Config) (bool, error) {
	data, err := readInput(src)
	if err != nil {
		return false, err
	}
	html, err := render(data, cfg)
	if err != nil {
		return false, fmt.Errorf("%s: %w", src, err)
	}

	existing, err := os.ReadFile(dst)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to read %s: %w", dst, err)
	}
	if string(existing) == html {
		return false, nil
	}
	ui.PrintUnifiedDiff(cmd.OutOrStdout(), styles, dst, string(existing), html)
	return true, nil
}

// batchOutputPath maps a matched source file to its output path. With an
// output directory, the path relative to base is kept.
func batchOutputPath(src, base, outDir, ext string) string {
	name := strings.TrimSuffix(src, filepath.Ext(src)) + ext
	if outDir == "" {
		return name
	}
	rel, err := filepath.Rel(base, name)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(name)
	}
	return filepath.Join(outDir, rel)
}
