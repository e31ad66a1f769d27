// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package alert

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"uptime-warden/internal/check"
	"uptime-warden/internal/config"
	"uptime-warden/internal/store"
	"uptime-warden/internal/utils"
)

var ErrOwnerNotFound = errors.New("owner of check not found")

// Notifier delivers a message body to a phone number.
type Notifier interface {
	Send(ctx context.Context, phone string, body string) error
}

type Dispatcher struct {
	notifier    Notifier
	records     store.RecordStore
	verifyOwner bool
	template    string
}

func NewDispatcher(cfg config.Alert, notifier Notifier, records store.RecordStore) *Dispatcher {
	return &Dispatcher{
		notifier:    notifier,
		records:     records,
		verifyOwner: cfg.VerifyOwner && records != nil,
		template:    cfg.Template,
	}
}

// Message renders the status notification for the current state of c.
func (d *Dispatcher) Message(c check.Check) string {
	return utils.ReplaceWithMap(d.template, map[string]string{
		"$method":   c.HttpMethod(),
		"$protocol": string(c.Protocol),
		"$url":      c.Url,
		"$state":    string(c.State),
	})
}

// Notify makes a single delivery attempt. Callers log the error, nothing is retried.
func (d *Dispatcher) Notify(ctx context.Context, c check.Check) error {
	if d.verifyOwner {
		if _, err := d.records.Read(ctx, store.NamespaceUsers, c.OwnerPhone); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrOwnerNotFound, c.OwnerPhone)
			}
			return fmt.Errorf("could not look up owner of check %s: %w", c.Id, err)
		}
	}

	log.Debug().Str("checkId", c.Id).Msgf("Sending alert for state %s", c.State)

	if err := d.notifier.Send(ctx, c.OwnerPhone, d.Message(c)); err != nil {
		return fmt.Errorf("could not deliver alert for check %s: %w", c.Id, err)
	}

	return nil
}
