// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"github.com/spf13/afero"
	"strings"
	"uptime-warden/internal/config"
)

const (
	NamespaceUsers  = "users"
	NamespaceTokens = "tokens"
	NamespaceChecks = "checks"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrMalformed          = errors.New("record is not well-formed")
)

// Record is a decoded JSON object as it is kept in a namespace.
type Record map[string]any

// RecordStore is the part of the store the monitoring engine relies on.
type RecordStore interface {
	List(ctx context.Context, namespace string) ([]string, error)
	Read(ctx context.Context, namespace string, key string) (Record, error)
	Update(ctx context.Context, namespace string, key string, record any) error
}

type Store interface {
	RecordStore
	Create(ctx context.Context, namespace string, key string, record any) error
	Delete(ctx context.Context, namespace string, key string) error
	Close(ctx context.Context) error
}

// New creates the store backend selected by the configuration.
func New(cfg config.Store) (Store, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "file":
		return NewFileStore(afero.NewOsFs(), cfg.DataDir), nil
	case "mongo":
		return NewMongoStore(&cfg.Mongo)
	case "sqlite":
		return NewSQLiteStore(cfg.Sqlite.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
