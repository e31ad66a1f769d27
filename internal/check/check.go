// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"fmt"
	"strings"
	"time"
	"uptime-warden/internal/utils"
)

type State string

const (
	StateUp   State = "up"
	StateDown State = "down"
)

type Protocol string

const (
	ProtocolHttp  Protocol = "http"
	ProtocolHttps Protocol = "https"
)

type Method string

const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodPut    Method = "put"
	MethodDelete Method = "delete"
)

const FailureTimeout = "timeout"

// Check is one monitored endpoint together with its last known status.
// LastChecked holds epoch milliseconds of the last completed probe and is 0 for a check never probed.
type Check struct {
	Id             string   `json:"id"`
	OwnerPhone     string   `json:"userPhone"`
	Protocol       Protocol `json:"protocol"`
	Url            string   `json:"url"`
	Method         Method   `json:"method"`
	SuccessCodes   []int    `json:"successCodes"`
	TimeoutSeconds int      `json:"timeOutSeconds"`
	State          State    `json:"state"`
	LastChecked    int64    `json:"lastChecked,omitempty"`
}

func (c Check) Target() string {
	return fmt.Sprintf("%s://%s", c.Protocol, c.Url)
}

func (c Check) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Check) HttpMethod() string {
	return strings.ToUpper(string(c.Method))
}

func (c Check) HasBeenChecked() bool {
	return c.LastChecked > 0
}

func (c Check) Accepts(responseCode int) bool {
	return utils.Contains(c.SuccessCodes, responseCode)
}

// Outcome is the result of exactly one probe.
type Outcome struct {
	ResponseCode int
	Failure      string
	Duration     time.Duration
}

func (o Outcome) Failed() bool {
	return o.Failure != ""
}

func (o Outcome) TimedOut() bool {
	return o.Failure == FailureTimeout
}
