package events

import (
	"time"
	"uptime-warden/internal/check"
)

// OutcomeEvent describes one completed and persisted cycle.
type OutcomeEvent struct {
	CycleId        string      `json:"cycleId"`
	CheckId        string      `json:"checkId"`
	PreviousState  check.State `json:"previousState"`
	State          check.State `json:"state"`
	ResponseCode   int         `json:"responseCode,omitempty"`
	Failure        string      `json:"failure,omitempty"`
	CheckedAt      time.Time   `json:"checkedAt"`
	AlertWarranted bool        `json:"alertWarranted"`
}
