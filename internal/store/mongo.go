// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"uptime-warden/internal/config"
)

// MongoStore maps every namespace to a collection and every key to a document _id.
type MongoStore struct {
	Client *mongo.Client
	Config *config.Mongo
}

func NewMongoStore(config *config.Mongo) (*MongoStore, error) {
	log.Debug().Msg("Connecting to mongoDB")
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(config.Url))
	if err != nil {
		log.Error().Err(err).Msg("Could not connect to mongoDB")
		return nil, err
	}

	if err = pingMongoNode(client); err != nil {
		return nil, err
	}

	return &MongoStore{
		Client: client,
		Config: config,
	}, nil
}

func pingMongoNode(client *mongo.Client) error {
	log.Debug().Msg("Sending ping to mongoDB")

	if err := client.Ping(context.TODO(), nil); err != nil {
		log.Error().Err(err).Msg("Could not reach primary mongoDB node")
		return err
	}

	log.Info().Msg("Connection to mongoDB established")
	return nil
}

func (s *MongoStore) collection(namespace string) *mongo.Collection {
	return s.Client.Database(s.Config.Database).Collection(namespace)
}

func (s *MongoStore) List(ctx context.Context, namespace string) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1}).SetSort(bson.M{"_id": 1})
	cursor, err := s.collection(namespace).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("could not list namespace %s: %w", namespace, err)
	}
	defer cursor.Close(ctx)

	var keys []string
	for cursor.Next(ctx) {
		var document struct {
			Id string `bson:"_id"`
		}

		if err := cursor.Decode(&document); err != nil {
			log.Warn().Err(err).Msgf("Skipping undecodable document in namespace %s", namespace)
			continue
		}
		keys = append(keys, document.Id)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate namespace %s: %w", namespace, err)
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, namespace)
	}

	return keys, nil
}

func (s *MongoStore) Read(ctx context.Context, namespace string, key string) (Record, error) {
	var document bson.M
	if err := s.collection(namespace).FindOne(ctx, bson.M{"_id": key}).Decode(&document); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, namespace, key)
		}
		return nil, fmt.Errorf("could not read %s/%s: %w", namespace, key, err)
	}

	delete(document, "_id")

	data, err := bson.MarshalExtJSON(document, false, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return decodeRecord(data)
}

func (s *MongoStore) Create(ctx context.Context, namespace string, key string, record any) error {
	document, err := toDocument(key, record)
	if err != nil {
		return err
	}

	if _, err := s.collection(namespace).InsertOne(ctx, document); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s/%s", ErrAlreadyExists, namespace, key)
		}
		return fmt.Errorf("could not create %s/%s: %w", namespace, key, err)
	}

	return nil
}

func (s *MongoStore) Update(ctx context.Context, namespace string, key string, record any) error {
	document, err := toDocument(key, record)
	if err != nil {
		return err
	}

	result, err := s.collection(namespace).ReplaceOne(ctx, bson.M{"_id": key}, document)
	if err != nil {
		return fmt.Errorf("could not update %s/%s: %w", namespace, key, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, namespace, key)
	}

	return nil
}

func (s *MongoStore) Delete(ctx context.Context, namespace string, key string) error {
	result, err := s.collection(namespace).DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return fmt.Errorf("could not delete %s/%s: %w", namespace, key, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, namespace, key)
	}

	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

func toDocument(key string, record any) (bson.M, error) {
	normalized, err := toRecord(record)
	if err != nil {
		return nil, err
	}

	document := bson.M(normalized)
	document["_id"] = key
	return document, nil
}
