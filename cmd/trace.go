package cmd

import (
	"database/sql"
	"eomarket/internal/trace"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var (
	traceDBPath  string
	traceSession string
	traceLimit   int
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "List recorded navigation transitions",
	Long: `Prints the sessions recorded with --trace-db, or the transitions of one
session in the order they were dispatched.`,
	Args: cobra.NoArgs,
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&traceDBPath, "db", "", "trace database (default: trace_db from config)")
	traceCmd.Flags().StringVar(&traceSession, "session", "", "session id; lists sessions when empty")
	traceCmd.Flags().IntVar(&traceLimit, "limit", 0, "maximum number of transitions to show (0 shows all)")
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	path := traceDBPath
	if path == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path = cfg.TraceDB
	}
	if path == "" {
		return fmt.Errorf("no trace database: pass --db or set trace_db")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("failed to open trace database: %w", err)
	}

	database, err := trace.Open(path)
	if err != nil {
		return err
	}
	defer database.Close()

	if traceSession == "" {
		return printSessions(cmd.OutOrStdout(), database)
	}
	return printTransitions(cmd.OutOrStdout(), database, traceSession, traceLimit)
}

func printSessions(w io.Writer, database *sql.DB) error {
	sessions, err := trace.ListSessions(database)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		_, _ = fmt.Fprintln(w, "No sessions recorded.")
		return nil
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("SESSION"), bold.Sprint("STARTED"), bold.Sprint("TRANSITIONS"), bold.Sprint("LAST PAGE"))
	for _, s := range sessions {
		tbl.AddRow(s.ID, s.StartedAt.Local().Format("2006-01-02 15:04:05"), s.Transitions, s.LastPage)
	}
	tbl.RightAlign(2)

	_, _ = fmt.Fprintln(w, tbl)
	return nil
}

func printTransitions(w io.Writer, database *sql.DB, session string, limit int) error {
	transitions, err := trace.ListTransitions(database, session, limit)
	if err != nil {
		return err
	}
	if len(transitions) == 0 {
		_, _ = fmt.Fprintf(w, "No transitions recorded for session %s.\n", session)
		return nil
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("SEQ"), bold.Sprint("EVENT"), bold.Sprint("PAGE"), bold.Sprint("OVERLAY"),
		bold.Sprint("LAYOUT"), bold.Sprint("SCROLL Y"), bold.Sprint("BOTTOM NAV"))
	for _, t := range transitions {
		nav := "visible"
		if t.NavHidden {
			nav = "hidden"
		}
		tbl.AddRow(t.Seq, t.Event, t.ActivePage, t.Overlay, t.Layout, t.ScrollY, nav)
	}
	tbl.RightAlign(0)
	tbl.RightAlign(5)

	_, _ = fmt.Fprintln(w, tbl)
	return nil
}
