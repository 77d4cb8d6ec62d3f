package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dannyyo/checklist-go/pkg/checklist"
	"github.com/dannyyo/checklist-go/pkg/checklist/form"
	"github.com/dannyyo/checklist-go/pkg/checklist/output"
	"github.com/spf13/cobra"
)

var fillJSON bool

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill the checklist in the terminal and write the workbook",
	Args:  cobra.NoArgs,
	RunE:  runFill,
}

func init() {
	fillCmd.Flags().BoolVar(&fillJSON, "json", false, "Print the report summary as JSON")
}

func runFill(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	questions, err := checklist.NewSource(opts).Questions()
	if err != nil {
		return fmt.Errorf("loading questions: %w", err)
	}

	sub, err := form.RunTUI(os.Stdin, cmd.OutOrStdout(), opts.Title, questions, opts.Trailing.Enabled(), time.Now())
	if err != nil {
		return err
	}

	report, err := checklist.NewGenerator(opts, currentLogger()).Generate(sub.Session, sub.Header, sub.Trailing)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if fillJSON {
		data, err := output.ReportToJSON(report, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Check List generado: %s\n", report.Path)
	fmt.Fprintf(out, "Respondidas: %d de %d, imágenes: %d\n", report.Answered, report.Questions, report.Images)
	for _, w := range report.Warnings {
		fmt.Fprintf(out, "Aviso: %s\n", w)
	}
	return nil
}
