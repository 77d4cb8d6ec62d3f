package main

import (
	"fmt"
	"os"

	"github.com/dannyyo/checklist-go/pkg/checklist"
	"github.com/dannyyo/checklist-go/pkg/checklist/output"
	"github.com/spf13/cobra"
)

var (
	questionsOutput string
	pretty          bool
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the detected questions as JSON",
	Args:  cobra.NoArgs,
	RunE:  runQuestions,
}

func init() {
	questionsCmd.Flags().StringVarP(&questionsOutput, "output", "o", "", "Output file path (default: stdout)")
	questionsCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	questions, err := checklist.NewSource(opts).Questions()
	if err != nil {
		return err
	}

	source := opts.Template
	if opts.Variant == checklist.VariantStatic {
		source = "static"
	}
	jsonData, err := output.QuestionsToJSON(source, questions, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if questionsOutput != "" {
		if err := os.WriteFile(questionsOutput, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
