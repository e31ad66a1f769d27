// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import "uptime-warden/internal/store"

const (
	TestCheckId    = "abcdefghij0123456789"
	TestOwnerPhone = "5551234567"
)

// NewTestCheckRecord returns a stored check that has never been evaluated.
func NewTestCheckRecord(checkId string) store.Record {
	return store.Record{
		"id":             checkId,
		"userPhone":      TestOwnerPhone,
		"protocol":       "https",
		"url":            "example.com",
		"method":         "get",
		"successCodes":   []any{float64(200)},
		"timeOutSeconds": float64(3),
	}
}

// NewEvaluatedCheckRecord returns a stored check that was last seen in the given state.
func NewEvaluatedCheckRecord(checkId string, state string) store.Record {
	record := NewTestCheckRecord(checkId)
	record["state"] = state
	record["lastChecked"] = float64(1700000000000)
	return record
}

func NewTestUserRecord() store.Record {
	return store.Record{
		"phone":  TestOwnerPhone,
		"checks": []any{TestCheckId},
	}
}
