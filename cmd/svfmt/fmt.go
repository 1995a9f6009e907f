package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"svfmt/internal/config"
	"svfmt/internal/diagfmt"
	"svfmt/internal/driver"
	"svfmt/internal/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format SystemVerilog source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Int("jobs", 0, "number of files formatted concurrently (0 = GOMAXPROCS)")
	fmtCmd.Flags().Bool("no-cache", false, "bypass the format result cache")
	fmtCmd.Flags().Int("line-limit", 0, "maximum line width (overrides svfmt.toml)")
	fmtCmd.Flags().Int("align-column", 0, "alignment anchor column (overrides svfmt.toml)")
	fmtCmd.Flags().Int("indent-width", 0, "spaces per indent level (overrides svfmt.toml)")
}

// layoutFor resolves the effective layout for a target: the nearest
// svfmt.toml walking up from it, with explicit flags taking precedence.
func layoutFor(cmd *cobra.Command, target string) (format.Options, error) {
	dir := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		dir = filepath.Dir(target)
	}

	cfg, _, err := config.ForDir(dir)
	if err != nil {
		return format.Options{}, err
	}

	if v, _ := cmd.Flags().GetInt("line-limit"); v > 0 {
		cfg.LineLimit = v
	}
	if v, _ := cmd.Flags().GetInt("align-column"); v > 0 {
		cfg.AlignColumn = v
	}
	if v, _ := cmd.Flags().GetInt("indent-width"); v > 0 {
		cfg.IndentWidth = v
	}
	if err := cfg.Validate(); err != nil {
		return format.Options{}, err
	}

	return format.Options{
		LineLimit:   cfg.LineLimit,
		AlignColumn: cfg.AlignColumn,
		IndentWidth: cfg.IndentWidth,
	}, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	layout, err := layoutFor(cmd, args[0])
	if err != nil {
		return err
	}

	results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:          check,
		Stdout:         writeToStdout,
		Jobs:           jobs,
		NoCache:        noCache,
		MaxDiagnostics: maxDiagnostics,
		Layout:         layout,
	})
	if err != nil {
		return err
	}

	printDiagnostics(cmd, results)

	var hasErrors bool
	var hasChanges bool

	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(results, &hasErrors)
			if hasErrors {
				return fmt.Errorf("fmt: failed to format some files")
			}
			return nil
		}
		renderFmtText(results, check, quiet, &hasErrors, &hasChanges)
	case "json":
		if err := renderFmtJSON(results, check); err != nil {
			return err
		}
		for _, res := range results {
			if res.Err != nil {
				hasErrors = true
			}
			if res.Changed {
				hasChanges = true
			}
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// printDiagnostics renders each file's bag to stderr.
func printDiagnostics(cmd *cobra.Command, results []driver.FormatResult) {
	opts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   true,
		ShowNotes: true,
	}
	for _, res := range results {
		if res.Bag == nil || (!res.Bag.HasErrors() && !res.Bag.HasWarnings()) {
			continue
		}
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, opts)
	}
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFmtText(results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}

		if check {
			if res.Changed {
				*hasChanges = true
				if !quiet {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
			continue
		}

		if res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}
}

func renderFmtJSON(results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
