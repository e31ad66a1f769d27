package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd, serveCmd)
}

var rootCmd = &cobra.Command{
	Use:   "warden",
	Short: "Monitors registered checks and alerts their owners when they go up or down",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Could not execute command")
	}
}
