// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/logstrip/internal/history"
	"github.com/pdiddy/logstrip/internal/strip"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or export recorded runs",
	Long: `History reads the SQLite run history written by logstrip --history.
The database lives at <root>/.logstrip/history.db unless history.db_path
is set in the config file.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := historyStore()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(context.Background(), limit)
	if err != nil {
		return err
	}
	formatRuns(cmd.OutOrStdout(), runs)
	return nil
}

func formatRuns(w io.Writer, runs []history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	for _, r := range runs {
		fmt.Fprintf(w, "%s  %s  removed %d (processed %d, skipped %d)\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.ID,
			r.TotalRemoved, r.Processed, r.Skipped)
		for _, f := range r.Files {
			fmt.Fprintf(w, "    %-10s %5d -> %-5d %s\n", f.Status, f.OriginalLines, f.FinalLines, f.Path)
		}
	}
	fmt.Fprintf(w, "\n%d runs\n", len(runs))
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to a YAML file",
	Args:  cobra.NoArgs,
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := historyStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ExportYAML(context.Background(), out, limit); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
	return nil
}

// --- shared helpers ---

func historyStore() (*history.Store, error) {
	root, err := strip.ResolveRoot(cfg.Strip.Root)
	if err != nil {
		return nil, err
	}
	return openHistory(root)
}

func init() {
	historyCmd.PersistentFlags().Int("limit", 20, "maximum number of runs")

	historyExportCmd.Flags().String("out", "logstrip-history.yaml", "output YAML file")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)

	rootCmd.AddCommand(historyCmd)
}
