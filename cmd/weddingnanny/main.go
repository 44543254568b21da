// Command weddingnanny serves the Wedding Nanny site and manages its saved
// content from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "weddingnanny",
	Short: "Wedding Nanny marketing site and content admin",
	Long: `weddingnanny serves the Wedding Nanny landing pages and admin console,
and manages the saved content (backups, resets, change log) offline.

Configuration comes from environment variables (ADMIN_PASSWORD, SITE_URL,
STORAGE_BACKEND, ...) or an optional weddingnanny.yaml in the working directory.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the weddingnanny version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "weddingnanny %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./weddingnanny.yaml)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
