// Command glyphlayout lays out phrase documents of a constructed writing
// system and renders them as SVG.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"

	"github.com/conscript/glyphlayout/backend/svg"
	"github.com/conscript/glyphlayout/engine/layout"
)

var traceKeys = []string{
	"glyphlayout.glyph",
	"glyphlayout.normalize",
	"glyphlayout.layout",
	"glyphlayout.svg",
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	logger := log.New(os.Stderr)
	var verbose bool
	root := &cobra.Command{
		Use:           "glyphlayout",
		Short:         "Lay out constructed-script glyph sequences",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
				for _, key := range traceKeys {
					tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
				}
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newRenderCommand(logger))
	root.AddCommand(newStrategiesCommand())
	return root
}

func newRenderCommand(logger *log.Logger) *cobra.Command {
	var out string
	var strategy string
	var preset string
	cmd := &cobra.Command{
		Use:   "render <phrase.toml>",
		Short: "Lay out a phrase document and write it as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			if strategy != "" {
				doc.Strategy = strategy
			}
			if preset != "" {
				doc.Preset = preset
			}
			res := doc.layout()
			logger.Debug("layout done",
				"glyphs", len(res.Positions),
				"bounds", svg.ViewBox(res.Bounds))
			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := svg.Write(w, res, svg.Options{}); err != nil {
				return err
			}
			if out != "" {
				logger.Info("rendered", "file", out, "glyphs", len(res.Positions))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write SVG to a file instead of stdout")
	cmd.Flags().StringVar(&strategy, "strategy", "", "override the document's layout strategy")
	cmd.Flags().StringVar(&preset, "preset", "", "override the document's config preset")
	return cmd
}

func newStrategiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the registered layout strategies",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range layout.ListStrategies() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
