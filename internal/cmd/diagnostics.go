package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/buildview/internal/build"
)

var diagnosticsCmd = &cobra.Command{
	Use:     "diagnostics [build-id|file]",
	Aliases: []string{"diag"},
	Short:   "Print the diagnostics of a build",
	Long: `Print every output line that names a file position, as a table.

The argument is a build ID or the path of a saved log file, as for
'buildview view'. Without an argument the latest stored build is used.

Examples:
  buildview diagnostics
  buildview diagnostics --errors-only 20261019-143005-9f2c
  make 2>&1 | tee build.log; buildview diagnostics build.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDiagnostics,
}

var diagnosticsErrorsOnly bool

func init() {
	rootCmd.AddCommand(diagnosticsCmd)

	diagnosticsCmd.Flags().BoolVarP(&diagnosticsErrorsOnly, "errors-only", "e", false, "Only show error lines")
}

func runDiagnostics(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ref := ""
	if len(args) > 0 {
		ref = args[0]
	}
	log, err := loadLog(cmd.Context(), cfg, ref)
	if err != nil {
		return err
	}

	lines := diagnosticLines(log, diagnosticsErrorsOnly)
	out := cmd.OutOrStdout()
	if len(lines) == 0 {
		fmt.Fprintln(out, "No diagnostics.")
		return nil
	}

	fmt.Fprintln(out, diagnosticsTable(lines))
	fmt.Fprintf(out, "\n%d errors, %d warnings\n", log.ErrorCount(), log.WarningCount())
	return nil
}

// diagnosticLines returns the navigable lines of log in output order.
// Plain lines with a position (notes, "In file included from") are kept
// unless errorsOnly is set.
func diagnosticLines(log *build.Log, errorsOnly bool) []build.Line {
	var out []build.Line
	for _, line := range log.Lines() {
		if !line.Navigable() {
			continue
		}
		if errorsOnly && line.Kind != build.KindError {
			continue
		}
		out = append(out, line)
	}
	return out
}

func diagnosticsTable(lines []build.Line) *uitable.Table {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 100
	tbl.AddRow(bold.Sprint("KIND"), bold.Sprint("LOCATION"), bold.Sprint("MESSAGE"))
	for _, line := range lines {
		tbl.AddRow(kindCell(line.Kind), location(line), strings.TrimSpace(line.Text))
	}
	return tbl
}

func kindCell(k build.Kind) string {
	switch k {
	case build.KindError:
		return color.RedString(string(k))
	case build.KindWarning:
		return color.YellowString(string(k))
	case build.KindPlain:
		return "note"
	}
	return string(k)
}

// location formats file:line[:column] as the tool printed it.
func location(line build.Line) string {
	loc := line.Filename + ":" + strconv.Itoa(line.Line)
	if line.Column > 0 {
		loc += ":" + strconv.Itoa(line.Column)
	}
	return loc
}
