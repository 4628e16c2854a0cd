// history.go implements the "recruit history" command listing submission events.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tezosjh/recruit/internal/log"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent submission events",
	Long: `Display the submission event log: attempts, failures with their
error text, and successes. Answer values are never recorded.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of most recent events to show (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	events, err := log.NewLogger(cfg.Log.EventsFile)
	if err != nil {
		return err
	}
	all, err := events.ReadAll()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No submissions recorded yet.")
		return nil
	}

	if historyLimit > 0 && len(all) > historyLimit {
		all = all[len(all)-historyLimit:]
	}
	printHistory(cmd.OutOrStdout(), all)
	return nil
}

func printHistory(w io.Writer, events []log.LogEvent) {
	for _, ev := range events {
		fmt.Fprintf(w, "%s  %-21s", ev.Time.Local().Format("2006-01-02 15:04:05"), ev.Event)
		if ev.SubmissionID != "" {
			fmt.Fprintf(w, "  %s", shortID(ev.SubmissionID))
		}
		if ev.Attempt > 0 {
			fmt.Fprintf(w, "  attempt=%d", ev.Attempt)
		}
		if ev.Status > 0 {
			fmt.Fprintf(w, "  http=%d", ev.Status)
		}
		if ev.DurationMs > 0 {
			fmt.Fprintf(w, "  %dms", ev.DurationMs)
		}
		if len(ev.Fields) > 0 {
			fmt.Fprintf(w, "  fields=%d", len(ev.Fields))
		}
		if ev.Error != "" {
			fmt.Fprintf(w, "  error=%q", strings.ReplaceAll(ev.Error, "\n", " "))
		}
		fmt.Fprintln(w)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
