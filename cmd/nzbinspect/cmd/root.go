package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/javi11/nzbinspect/internal/slogutil"
)

var (
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "nzbinspect",
	Short: "Parse and inspect NZB index files",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slogutil.Setup(slogutil.Config{Level: logLevel, LogPath: logFile})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write rotated logs to this file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
