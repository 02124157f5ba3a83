package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gradebook-cli/gradebook/internal/execcontext"
	"github.com/gradebook-cli/gradebook/internal/grading"
	"github.com/gradebook-cli/gradebook/internal/importer"
	"github.com/gradebook-cli/gradebook/internal/report"
	"github.com/gradebook-cli/gradebook/internal/style"
)

var errNoMarks = errors.New("no marks loaded")

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Grade the marks in a file and print the results",
	Long: `Load marks from a CSV or Excel file, then print the results table and
summary metrics without entering the interactive menu.

The first row of the file is treated as a header. Each following row is
name,marks. Rows without a numeric mark are skipped with a warning.

Examples:
  gradebook report marks.csv                         # Table and summary
  gradebook report marks.xlsx --output json          # Structured output
  gradebook report marks.csv --export report.csv     # Also write a grade report`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return generateReport(runContextFor(cmd), args[0])
	},
}

var exportPath string

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&exportPath, "export", "e", "", "write the graded report to this CSV or XLSX file")
}

func generateReport(ctx execcontext.RunContext, path string) error {
	res, err := importer.ReadScores(path)
	if err != nil {
		style.Error(ctx.StdErr, err.Error())
		return err
	}
	for _, row := range res.Skipped {
		style.Warning(ctx.StdErr, row.String())
	}
	if res.Scores.Len() == 0 {
		style.Warning(ctx.StdErr, fmt.Sprintf("No marks loaded from %s", path))
		return errNoMarks
	}

	grades := grading.Assign(res.Scores)
	outputFormat := viper.GetString("output")

	switch outputFormat {
	case "json":
		style.PrintJSON(ctx.StdOut, report.Build(res.Scores, grades))
	case "yaml":
		style.PrintYAML(ctx.StdOut, report.Build(res.Scores, grades))
	default:
		report.DisplayResults(ctx.StdOut, res.Scores, grades)
		summary := report.Summarize(res.Scores, grades)
		report.PrintSummary(ctx.StdOut, summary)
		if viper.GetBool("verbose") {
			fmt.Fprintf(ctx.StdOut, "Passed students: %s\n", strings.Join(summary.Passed, ", "))
			fmt.Fprintf(ctx.StdOut, "Failed students: %s\n", strings.Join(summary.Failed, ", "))
		}
	}

	if exportPath == "" {
		return nil
	}

	if err := importer.ExportReport(exportPath, res.Scores, grades); err != nil {
		style.Error(ctx.StdErr, err.Error())
		return err
	}

	log.Debug().Str("file", exportPath).Msg("Report written")
	if !viper.GetBool("quiet") && outputFormat == "text" {
		style.Success(ctx.StdOut, fmt.Sprintf("Grades exported to '%s'", exportPath))
	}

	return nil
}
