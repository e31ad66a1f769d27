// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
	"uptime-warden/internal/check"
	"uptime-warden/internal/config"
)

func newEvent() OutcomeEvent {
	return OutcomeEvent{
		CycleId:        "cycle-1",
		CheckId:        "abcdefghij0123456789",
		PreviousState:  check.StateUp,
		State:          check.StateDown,
		Failure:        check.FailureTimeout,
		CheckedAt:      time.UnixMilli(1700000000000).UTC(),
		AlertWarranted: true,
	}
}

func TestKafkaPublisher_Publish(t *testing.T) {
	mockConfig := mocks.NewTestConfig()
	mockConfig.Producer.Return.Successes = true

	producer := mocks.NewSyncProducer(t, mockConfig)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, _ := msg.Key.Encode()
		if string(key) != "abcdefghij0123456789" {
			return errors.New("unexpected message key")
		}

		value, _ := msg.Value.Encode()
		var event OutcomeEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return err
		}
		if event.State != check.StateDown || !event.AlertWarranted {
			return errors.New("unexpected message value")
		}
		return nil
	})

	publisher := &KafkaPublisher{Producer: producer, Topic: "check-outcomes"}

	assert.NoError(t, publisher.Publish(context.Background(), newEvent()))
	assert.NoError(t, publisher.Close())
}

func TestKafkaPublisher_PublishFails(t *testing.T) {
	mockConfig := mocks.NewTestConfig()
	mockConfig.Producer.Return.Successes = true

	producer := mocks.NewSyncProducer(t, mockConfig)
	producer.ExpectSendMessageAndFail(errors.New("broker unavailable"))

	publisher := &KafkaPublisher{Producer: producer, Topic: "check-outcomes"}

	err := publisher.Publish(context.Background(), newEvent())
	assert.ErrorContains(t, err, "broker unavailable")
	assert.NoError(t, publisher.Close())
}

func TestNewPublisher_Disabled(t *testing.T) {
	publisher, err := NewPublisher(config.Kafka{Enabled: false})

	assert.NoError(t, err)
	assert.IsType(t, NoopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), newEvent()))
}
