// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"context"
	"fmt"
	"os"
	"uptime-warden/internal/store"
)

func EnvOrDefault(name string, fallback string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}
	return fallback
}

// SeedChecks creates every record in the checks namespace under its id.
func SeedChecks(ctx context.Context, s store.Store, records ...store.Record) error {
	for _, record := range records {
		id, ok := record["id"].(string)
		if !ok {
			return fmt.Errorf("record has no string id: %v", record)
		}

		if err := s.Create(ctx, store.NamespaceChecks, id, record); err != nil {
			return err
		}
	}
	return nil
}
