// sectioncap evaluates a scene script, cuts every part with the scene's
// cut plane and writes the resulting caps (fill meshes and outlines) as
// JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/chazu/sectioncap/pkg/config"
	"github.com/chazu/sectioncap/pkg/section"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	styleFile string
	outFile   string
	cells     int
	verbose   bool
)

func main() {
	root := &cobra.Command{
		Use:   "sectioncap",
		Short: "Cut solids with a plane and cap the cross-sections",
		Long: `sectioncap evaluates a scene script, meshes every part and caps it
with the plane given by the script's (cut ...) form.

Commands:
  cap <script>     Write caps for every part as JSON
  check <script>   Evaluate and validate a script without meshing it
  config           Print the effective cap settings as TOML

Use "-" as the script to read from stdin.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&styleFile, "style", "", "TOML file with [cap] and [mesh] settings")
	root.PersistentFlags().StringVarP(&outFile, "out", "o", "", "write output to this file instead of stdout")
	root.PersistentFlags().IntVar(&cells, "cells", 0, "marching cubes resolution (overrides mesh.cells)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline details to stderr")

	root.AddCommand(
		capCmd(),
		checkCmd(),
		configCmd(),
	)

	if err := fang.Execute(context.Background(), root); err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	section.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads --style if given and applies --cells.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if styleFile != "" {
		var err error
		cfg, err = config.Load(styleFile)
		if err != nil {
			return config.Config{}, err
		}
	}
	if cells > 0 {
		cfg.Mesh.Cells = cells
	}
	return cfg, nil
}

func newAppFromFlags() (*App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}
	return NewApp(style, cfg.Mesh.Cells, section.Logger()), nil
}

func readSource(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// output returns the destination for command output and a function that
// closes it.
func output(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func capCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "cap <script>",
		Short: "Write caps for every part as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppFromFlags()
			if err != nil {
				return err
			}
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			result := app.Cap(source)
			for _, pc := range result.Parts {
				section.Logger().Debug("capped part", "part", pc.String())
			}

			w, closeOut, err := output(cmd)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(w)
			if pretty {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(result); err != nil {
				closeOut()
				return fmt.Errorf("encoding result: %w", err)
			}
			if err := closeOut(); err != nil {
				return err
			}

			if !result.OK() {
				return fmt.Errorf("%s: %d error(s), first: %s", args[0], len(result.Errors), result.Errors[0].Message)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <script>",
		Short: "Evaluate and validate a script without meshing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppFromFlags()
			if err != nil {
				return err
			}
			source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			result := app.Check(source)
			w, closeOut, err := output(cmd)
			if err != nil {
				return err
			}
			writeMessages(w, args[0], result)
			if err := closeOut(); err != nil {
				return err
			}
			if !result.OK() {
				return fmt.Errorf("%s: %d error(s)", args[0], len(result.Errors))
			}
			return nil
		},
	}
}

func writeMessages(w io.Writer, name string, result CapResult) {
	for _, e := range result.Errors {
		fmt.Fprintf(w, "%s:%d: error: %s\n", name, e.Line, e.Message)
	}
	for _, m := range result.Warnings {
		fmt.Fprintf(w, "%s:%d: warning: %s\n", name, m.Line, m.Message)
	}
	if result.OK() {
		fmt.Fprintf(w, "%s: ok (%d warning(s))\n", name, len(result.Warnings))
	}
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective cap settings as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			w, closeOut, err := output(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Encode(w); err != nil {
				closeOut()
				return err
			}
			return closeOut()
		},
	}
}
