package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/eringen/weddingnanny/content"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "List, create, delete and restore content backups",
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore := openStore()
		defer closeStore()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCREATED\tLABEL")
		for _, b := range store.Backups() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", b.ID, formatMillis(b.Timestamp), b.Label)
		}
		w.Flush()
	},
}

var backupCreateCmd = &cobra.Command{
	Use:   "create <label>",
	Short: "Snapshot the current pages and settings",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore := openStore()
		defer closeStore()

		b, err := store.CreateBackup(strings.Join(args, " "))
		mustPersist(err)
		fmt.Fprintf(cmd.OutOrStdout(), "Created backup %s (%s)\n", b.ID, b.Label)
	},
}

var backupDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore := openStore()
		defer closeStore()

		if _, ok := store.Backup(args[0]); !ok {
			log.Fatalf("weddingnanny: backup %q not found", args[0])
		}
		mustPersist(store.DeleteBackup(args[0]))
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted backup %s\n", args[0])
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Replace the current pages and settings with a backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore := openStore()
		defer closeStore()

		p, err := store.ProposeRestore(args[0])
		if err != nil {
			log.Fatalf("weddingnanny: %v", err)
		}
		confirmAndCommit(cmd, store, p)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset pages and settings to factory defaults (backups are kept)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, closeStore := openStore()
		defer closeStore()
		confirmAndCommit(cmd, store, store.ProposeReset())
	},
}

// confirmAndCommit prints what p would change and commits it only when --yes
// was given.
func confirmAndCommit(cmd *cobra.Command, store *content.Store, p content.Proposal) {
	out := cmd.OutOrStdout()
	printProposal(out, p)
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Fprintln(out, "Nothing changed. Re-run with --yes to apply.")
		return
	}
	mustPersist(store.Commit(p))
	fmt.Fprintf(out, "Applied %s: %s\n", p.Action, p.Label)
}

func printProposal(w io.Writer, p content.Proposal) {
	fmt.Fprintf(w, "%s %q: %d lines added, %d lines removed\n", p.Action, p.Label, p.Added, p.Removed)
	if p.Empty() {
		fmt.Fprintln(w, "Content is already identical.")
		return
	}
	fmt.Fprint(w, p.Diff)
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

func init() {
	backupRestoreCmd.Flags().BoolP("yes", "y", false, "apply without asking")
	resetCmd.Flags().BoolP("yes", "y", false, "apply without asking")

	backupCmd.AddCommand(backupListCmd, backupCreateCmd, backupDeleteCmd, backupRestoreCmd)
	rootCmd.AddCommand(backupCmd, resetCmd)
}
