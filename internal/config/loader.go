// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"strings"
)

var Current Configuration

func Load() Configuration {
	configureViper()
	setDefaults()
	Current = readConfiguration()

	return Current
}

func Initialize() error {
	configureViper()
	setDefaults()
	return viper.SafeWriteConfig()
}

func configureViper() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("warden")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func setDefaults() {
	// General
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("port", 8080)

	// Engine
	viper.SetDefault("scheduler.interval", "60s")
	viper.SetDefault("probe.maxConcurrent", 0)

	// Store
	viper.SetDefault("store.backend", "file")
	viper.SetDefault("store.dataDir", ".data")
	viper.SetDefault("store.mongo.url", "mongodb://localhost:27017")
	viper.SetDefault("store.mongo.database", "warden")
	viper.SetDefault("store.sqlite.path", "warden.db")

	// Alerting
	viper.SetDefault("alert.verifyOwner", true)
	viper.SetDefault("alert.template", "Alert: Your check for $method $protocol://$url is currently $state")
	viper.SetDefault("alert.sms.enabled", false)
	viper.SetDefault("alert.sms.baseUrl", "https://api.twilio.com")
	viper.SetDefault("alert.sms.accountSid", "")
	viper.SetDefault("alert.sms.authToken", "")
	viper.SetDefault("alert.sms.fromPhone", "")
	viper.SetDefault("alert.sms.countryCode", "+1")
	viper.SetDefault("alert.sms.timeout", "10s")

	// Hazelcast
	viper.SetDefault("hazelcast.enabled", false)
	viper.SetDefault("hazelcast.serviceDNS", "localhost:5701")
	viper.SetDefault("hazelcast.clusterName", "dev")
	viper.SetDefault("hazelcast.lockMap", "check-locks")
	viper.SetDefault("hazelcast.lockTimeout", "10ms")

	// Kafka
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", "localhost:9092")
	viper.SetDefault("kafka.topic", "check-outcomes")

	// Metrics
	viper.SetDefault("metrics.enabled", true)

	// Tracing
	viper.SetDefault("tracing.enabled", false)
	viper.SetDefault("tracing.collectorEndpoint", "localhost:4318")
	viper.SetDefault("tracing.https", false)
	viper.SetDefault("tracing.debugEnabled", false)

	// Api
	viper.SetDefault("api.enabled", true)
}

func readConfiguration() Configuration {
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Info().Msg("Configuration file not found but environment variables will be taken into account!")
		} else {
			log.Warn().Err(err).Msg("Could not read configuration file")
		}
	}

	viper.AutomaticEnv()

	var config Configuration
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatal().Err(err).Msg("Could not unmarshal current configuration!")
	}

	return config
}
