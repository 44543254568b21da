package main

import (
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/weddingnanny"
	"github.com/eringen/weddingnanny/views"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the public site and the admin console",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := siteConfig()
		if err != nil {
			log.Fatalf("weddingnanny: %v", err)
		}
		app := weddingnanny.New(cfg, views.Defaults(),
			weddingnanny.WithStaticDir(viper.GetString(keyStaticDir)),
		)
		defer app.Close()
		if err := app.Start(); err != nil {
			log.Fatalf("weddingnanny: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":3000", "HTTP listen address")
	serveCmd.Flags().String("static-dir", "public", "directory for static assets and uploads")
	serveCmd.Flags().Bool("metrics", false, "serve Prometheus metrics at /metrics")
	viper.BindPFlag(keyAddr, serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag(keyStaticDir, serveCmd.Flags().Lookup("static-dir"))
	viper.BindPFlag(keyMetrics, serveCmd.Flags().Lookup("metrics"))
}
