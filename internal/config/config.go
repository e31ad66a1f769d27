// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package config

import "time"

type Configuration struct {
	LogLevel string `mapstructure:"logLevel"`
	Port     int    `mapstructure:"port"`

	Scheduler Scheduler `mapstructure:"scheduler"`
	Probe     Probe     `mapstructure:"probe"`
	Store     Store     `mapstructure:"store"`
	Alert     Alert     `mapstructure:"alert"`

	Hazelcast Hazelcast `mapstructure:"hazelcast"`
	Kafka     Kafka     `mapstructure:"kafka"`
	Metrics   Metrics   `mapstructure:"metrics"`
	Tracing   Tracing   `mapstructure:"tracing"`
	Api       Api       `mapstructure:"api"`
}

type Scheduler struct {
	Interval time.Duration `mapstructure:"interval"`
}

type Probe struct {
	MaxConcurrent int `mapstructure:"maxConcurrent"`
}

type Store struct {
	Backend string `mapstructure:"backend"`
	DataDir string `mapstructure:"dataDir"`
	Mongo   Mongo  `mapstructure:"mongo"`
	Sqlite  Sqlite `mapstructure:"sqlite"`
}

type Mongo struct {
	Url      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type Sqlite struct {
	Path string `mapstructure:"path"`
}

type Alert struct {
	VerifyOwner bool   `mapstructure:"verifyOwner"`
	Template    string `mapstructure:"template"`
	Sms         Sms    `mapstructure:"sms"`
}

type Sms struct {
	Enabled     bool          `mapstructure:"enabled"`
	BaseUrl     string        `mapstructure:"baseUrl"`
	AccountSid  string        `mapstructure:"accountSid"`
	AuthToken   string        `mapstructure:"authToken"`
	FromPhone   string        `mapstructure:"fromPhone"`
	CountryCode string        `mapstructure:"countryCode"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type Hazelcast struct {
	Enabled     bool          `mapstructure:"enabled"`
	ServiceDNS  string        `mapstructure:"serviceDNS"`
	ClusterName string        `mapstructure:"clusterName"`
	LockMap     string        `mapstructure:"lockMap"`
	LockTimeout time.Duration `mapstructure:"lockTimeout"`
}

type Kafka struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

type Tracing struct {
	CollectorEndpoint string `mapstructure:"collectorEndpoint"`
	Https             bool   `mapstructure:"https"`
	DebugEnabled      bool   `mapstructure:"debugEnabled"`
	Enabled           bool   `mapstructure:"enabled"`
}

type Api struct {
	Enabled bool `mapstructure:"enabled"`
}
