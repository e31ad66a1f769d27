// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"uptime-warden/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes a config.yml with default values to the working directory",
	Run:   initConfig,
}

func initConfig(cmd *cobra.Command, args []string) {
	if err := config.Initialize(); err != nil {
		var alreadyExistsErr viper.ConfigFileAlreadyExistsError
		if errors.As(err, &alreadyExistsErr) {
			log.Warn().Msg("Configuration file already exists, nothing to do")
			return
		}
		log.Fatal().Err(err).Msg("Could not write configuration file")
	}

	log.Info().Msg("Configuration file written")
}
