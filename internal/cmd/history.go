package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/Iron-Ham/buildview/internal/build"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored builds",
	Long: `List finished builds from the history store, newest first.

Open one with 'buildview view <build-id>'.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyDeleteCmd = &cobra.Command{
	Use:     "delete <build-id>...",
	Aliases: []string{"rm"},
	Short:   "Delete stored builds",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runHistoryDelete,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyDeleteCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of builds to show (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)
	if store == nil {
		return fmt.Errorf("build history is disabled (store.enabled is false)")
	}

	records, skipped := store.List(cmd.Context())
	out := cmd.OutOrStdout()

	if len(records) == 0 {
		fmt.Fprintln(out, "No stored builds.")
	} else {
		if historyLimit > 0 && len(records) > historyLimit {
			records = records[:historyLimit]
		}
		fmt.Fprintln(out, historyTable(records))
	}

	for _, id := range skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped unreadable record %s\n", id)
	}
	return nil
}

func historyTable(records []build.Record) *uitable.Table {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(
		bold.Sprint("ID"),
		bold.Sprint("STARTED"),
		bold.Sprint("DURATION"),
		bold.Sprint("RESULT"),
		bold.Sprint("ERRORS"),
		bold.Sprint("WARNINGS"),
		bold.Sprint("COMMAND"),
	)
	for _, r := range records {
		errs, warns := r.Counts()
		tbl.AddRow(
			r.ID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			faint.Sprint(formatDuration(r.Duration())),
			formatResult(r.ExitCode),
			countCell(errs, color.FgRed),
			countCell(warns, color.FgYellow),
			strings.Join(r.Command, " "),
		)
	}
	return tbl
}

// formatResult renders an exit code as "ok" or "exit N", coloured.
func formatResult(exitCode int) string {
	if exitCode == 0 {
		return color.GreenString("ok")
	}
	return color.RedString("exit %d", exitCode)
}

// countCell colours non-zero counts so failing builds stand out.
func countCell(n int, attr color.Attribute) string {
	if n == 0 {
		return "0"
	}
	return color.New(attr).Sprint(strconv.Itoa(n))
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Truncate(time.Second).String()
	}
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store := openStore(cfg)
	if store == nil {
		return fmt.Errorf("build history is disabled (store.enabled is false)")
	}

	for _, id := range args {
		if err := store.Delete(id); err != nil {
			return fmt.Errorf("cannot delete %s: %w", id, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	}
	return nil
}
