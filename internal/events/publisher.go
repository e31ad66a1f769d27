// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/IBM/sarama"
	"github.com/burdiyan/kafkautil"
	"github.com/rs/zerolog/log"
	"uptime-warden/internal/config"
)

type Publisher interface {
	Publish(ctx context.Context, event OutcomeEvent) error
	Close() error
}

type KafkaPublisher struct {
	Producer sarama.SyncProducer
	Topic    string
}

// NewPublisher returns a Kafka publisher when enabled and a no-op publisher otherwise.
func NewPublisher(cfg config.Kafka) (Publisher, error) {
	if !cfg.Enabled {
		return NoopPublisher{}, nil
	}
	return NewKafkaPublisher(cfg)
}

func NewKafkaPublisher(cfg config.Kafka) (*KafkaPublisher, error) {
	kafkaConfig := sarama.NewConfig()
	kafkaConfig.Producer.Partitioner = kafkautil.NewJVMCompatiblePartitioner
	kafkaConfig.Producer.Return.Successes = true
	kafkaConfig.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(cfg.Brokers, kafkaConfig)
	if err != nil {
		log.Error().Err(err).Msg("Could not create Kafka producer")
		return nil, err
	}

	return &KafkaPublisher{
		Producer: producer,
		Topic:    cfg.Topic,
	}, nil
}

// Publish keys every event by check id so events of one check stay on one partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event OutcomeEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not encode outcome event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Key:   sarama.StringEncoder(event.CheckId),
		Topic: p.Topic,
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte("check.outcome")},
		},
	}

	partition, offset, err := p.Producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("could not publish outcome event: %w", err)
	}

	log.Debug().Str("checkId", event.CheckId).Msgf("Published outcome event to partition %d at offset %d", partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.Producer.Close()
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event OutcomeEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
