// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"time"
	"uptime-warden/internal/config"
)

func BuildTestConfig() config.Configuration {
	return config.Configuration{
		LogLevel: "debug",
		Port:     8080,
		Scheduler: config.Scheduler{
			Interval: 60 * time.Second,
		},
		Store: config.Store{
			Backend: "file",
			DataDir: ".data",
			Mongo: config.Mongo{
				Url:      EnvOrDefault("MONGO_URL", "mongodb://localhost:27017"),
				Database: "warden",
			},
			Sqlite: config.Sqlite{
				Path: "warden.db",
			},
		},
		Alert: config.Alert{
			VerifyOwner: true,
			Template:    "Alert: Your check for $method $protocol://$url is currently $state",
			Sms: config.Sms{
				Enabled:     true,
				BaseUrl:     "https://sms.local",
				AccountSid:  "AC0123456789",
				AuthToken:   "secret",
				FromPhone:   "+15550000000",
				CountryCode: "+1",
				Timeout:     5 * time.Second,
			},
		},
		Hazelcast: config.Hazelcast{
			ServiceDNS:  EnvOrDefault("HAZELCAST_HOST", "localhost"),
			ClusterName: "dev",
			LockMap:     "check-locks",
			LockTimeout: 10 * time.Millisecond,
		},
		Kafka: config.Kafka{
			Brokers: []string{"broker1:9092", "broker2:9092"},
			Topic:   "check-outcomes",
		},
		Metrics: config.Metrics{
			Enabled: true,
		},
		Tracing: config.Tracing{
			CollectorEndpoint: "http://tracing.local/collect",
			DebugEnabled:      false,
			Enabled:           false,
		},
		Api: config.Api{
			Enabled: true,
		},
	}
}
