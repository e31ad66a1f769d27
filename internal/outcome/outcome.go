package outcome

import (
	"time"
	"uptime-warden/internal/check"
	"uptime-warden/internal/store"
)

// Decision is the result of feeding one probe outcome into the up/down state machine.
type Decision struct {
	Previous       check.State
	Next           check.State
	AlertWarranted bool
}

func (d Decision) Changed() bool {
	return d.Previous != d.Next
}

// Decide computes the next state from the outcome alone. An alert is only warranted
// for checks that have been evaluated before, so a fresh check never alerts.
func Decide(c check.Check, o check.Outcome) Decision {
	next := check.StateDown
	if !o.Failed() && c.Accepts(o.ResponseCode) {
		next = check.StateUp
	}

	return Decision{
		Previous:       c.State,
		Next:           next,
		AlertWarranted: c.HasBeenChecked() && next != c.State,
	}
}

// Apply returns the check as it stands after a completed probe.
func Apply(c check.Check, d Decision, now time.Time) check.Check {
	c.State = d.Next
	c.LastChecked = now.UnixMilli()
	c.SuccessCodes = append([]int(nil), c.SuccessCodes...)
	return c
}

// Patch returns a copy of the stored record with only state and lastChecked replaced.
// Every other key is written back exactly as it was read.
func Patch(raw store.Record, d Decision, now time.Time) store.Record {
	patched := make(store.Record, len(raw)+2)
	for key, value := range raw {
		patched[key] = value
	}

	patched["state"] = string(d.Next)
	patched["lastChecked"] = now.UnixMilli()
	return patched
}
