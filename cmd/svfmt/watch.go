package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svfmt/internal/diagfmt"
	"svfmt/internal/driver"
)

var watchCmd = &cobra.Command{
	Use:   "watch [flags] <dir> [dir...]",
	Short: "Reformat SystemVerilog files as they change",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Int("line-limit", 0, "maximum line width (overrides svfmt.toml)")
	watchCmd.Flags().Int("align-column", 0, "alignment anchor column (overrides svfmt.toml)")
	watchCmd.Flags().Int("indent-width", 0, "spaces per indent level (overrides svfmt.toml)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	for _, dir := range args {
		info, err := os.Stat(dir)
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("watch: %s is not a directory", dir)
		}
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

	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   true,
		ShowNotes: true,
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "watching %d director(ies), press Ctrl-C to stop\n", len(args))
	}

	err = driver.Watch(cmd.Context(), args, driver.FormatOptions{
		MaxDiagnostics: maxDiagnostics,
		Layout:         layout,
	}, func(res driver.FormatResult) {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "watch: %s: %v\n", res.Path, res.Err)
		}
		if res.Bag != nil && (res.Bag.HasErrors() || res.Bag.HasWarnings()) {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, prettyOpts)
		}
		if res.Err == nil && res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
