package main

import (
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:     "stalkermap",
	Short:   "Concurrent TCP probe engine",
	Long:    "stalkermap drives a pool of concurrent TCP probes against a set of targets and streams one log record per completed task.",
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and runs it. This
// is called by main.main once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (optional; defaults are used when omitted)")
	rootCmd.AddCommand(scanCmd)
}
