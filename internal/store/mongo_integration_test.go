// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

//go:build testing

package store

import (
	"context"
	"fmt"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"testing"
	"uptime-warden/internal/config"
)

func TestMongoStore_Integration(t *testing.T) {
	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.Run("mongo", "7", nil)
	require.NoError(t, err)
	defer func() {
		_ = pool.Purge(resource)
	}()

	url := fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))
	require.NoError(t, pool.Retry(func() error {
		client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(url))
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())
		return client.Ping(context.Background(), nil)
	}))

	store, err := NewMongoStore(&config.Mongo{Url: url, Database: "warden"})
	require.NoError(t, err)
	defer store.Close(context.Background())

	ctx := context.Background()

	_, err = store.List(ctx, NamespaceChecks)
	assert.ErrorIs(t, err, ErrCollectionNotFound)

	require.NoError(t, store.Create(ctx, NamespaceChecks, "abc", map[string]any{"state": "down", "successCodes": []int{200}}))
	assert.ErrorIs(t, store.Create(ctx, NamespaceChecks, "abc", map[string]any{}), ErrAlreadyExists)
	require.NoError(t, store.Update(ctx, NamespaceChecks, "abc", map[string]any{"state": "up", "successCodes": []int{200}, "lastChecked": 1700000000000}))
	assert.ErrorIs(t, store.Update(ctx, NamespaceChecks, "missing", map[string]any{}), ErrNotFound)

	record, err := store.Read(ctx, NamespaceChecks, "abc")
	require.NoError(t, err)
	assert.Equal(t, "up", record["state"])
	assert.Equal(t, []any{float64(200)}, record["successCodes"])
	assert.Equal(t, float64(1700000000000), record["lastChecked"])

	keys, err := store.List(ctx, NamespaceChecks)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, keys)

	require.NoError(t, store.Delete(ctx, NamespaceChecks, "abc"))
	assert.ErrorIs(t, store.Delete(ctx, NamespaceChecks, "abc"), ErrNotFound)
}
