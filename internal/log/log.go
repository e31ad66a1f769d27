// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"io"
	"os"
)

// SetLogLevel replaces the global logger with a stdout logger of the given level.
func SetLogLevel(level string) {
	Configure(level, os.Stdout)
}

// Configure points the global logger at out. Debug output is human readable,
// every other level is written as JSON. Unknown levels fall back to info.
func Configure(level string, out io.Writer) zerolog.Level {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || logLevel == zerolog.NoLevel {
		log.Info().Msgf("Invalid log level %q. Info log level is used", level)
		logLevel = zerolog.InfoLevel
	}

	if logLevel == zerolog.DebugLevel {
		out = zerolog.ConsoleWriter{Out: out}
	}

	log.Logger = zerolog.New(out).Level(logLevel).With().Timestamp().Logger()
	return logLevel
}
