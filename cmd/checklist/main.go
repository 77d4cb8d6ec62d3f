// Package main provides the CLI entry point for checklist-go.
package main

import (
	"fmt"
	"os"

	"github.com/dannyyo/checklist-go/pkg/checklist"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath   string
	variant      string
	templatePath string
	debug        bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Store inspection checklists exported to Excel",
	Long: `checklist-go collects a store inspection checklist (header, one
result per question, comments, photo evidence) and writes it into an
Excel workbook, either over a template or on a fresh sheet.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML layout file (overrides the variant preset)")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", string(checklist.VariantTemplate), "Layout preset: template or static")
	rootCmd.PersistentFlags().StringVar(&templatePath, "template", "", "Template workbook (overrides the layout)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd, fillCmd, questionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadOptions resolves the layout from the flags.
func loadOptions() (checklist.Options, error) {
	var (
		opts checklist.Options
		err  error
	)
	if configPath != "" {
		opts, err = checklist.LoadOptions(configPath)
	} else {
		opts, err = checklist.PresetOptions(checklist.Variant(variant))
	}
	if err != nil {
		return checklist.Options{}, err
	}

	if templatePath != "" {
		opts.Template = templatePath
	}
	if err := opts.Validate(); err != nil {
		return checklist.Options{}, err
	}
	return opts, nil
}

func currentLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
