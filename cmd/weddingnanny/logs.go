package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the content change log, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore := openStore()
		defer closeStore()

		limit, _ := cmd.Flags().GetInt("limit")
		logs := store.Logs()
		if limit > 0 && len(logs) > limit {
			logs = logs[:limit]
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tBY\tCHANGE")
		for _, l := range logs {
			fmt.Fprintf(w, "%s\t%s\t%s\n", formatMillis(l.Timestamp), l.Author, l.Description)
		}
		w.Flush()
	},
}

func init() {
	logsCmd.Flags().IntP("limit", "n", 0, "show at most n entries")
	rootCmd.AddCommand(logsCmd)
}
