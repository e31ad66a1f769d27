package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrRejected = errors.New("check rejected")

const (
	idLength    = 20
	phoneLength = 10
	minTimeout  = 1
	maxTimeout  = 5
)

// Validate turns a raw stored record into a Check. Every rule is evaluated so the
// returned error names all offending fields at once.
func Validate(raw map[string]any) (Check, error) {
	var (
		c       Check
		invalid []string
	)

	if id, ok := trimmedString(raw["id"]); ok && len(id) == idLength {
		c.Id = id
	} else {
		invalid = append(invalid, "id")
	}

	if phone, ok := trimmedString(raw["userPhone"]); ok && len(phone) == phoneLength {
		c.OwnerPhone = phone
	} else {
		invalid = append(invalid, "userPhone")
	}

	if protocol, ok := raw["protocol"].(string); ok && isProtocol(Protocol(protocol)) {
		c.Protocol = Protocol(protocol)
	} else {
		invalid = append(invalid, "protocol")
	}

	if url, ok := trimmedString(raw["url"]); ok && url != "" {
		c.Url = url
	} else {
		invalid = append(invalid, "url")
	}

	if method, ok := raw["method"].(string); ok && isMethod(Method(method)) {
		c.Method = Method(method)
	} else {
		invalid = append(invalid, "method")
	}

	if codes, ok := raw["successCodes"].([]any); ok && len(codes) > 0 {
		c.SuccessCodes = make([]int, 0, len(codes))
		for _, code := range codes {
			if value, ok := integral(code); ok {
				c.SuccessCodes = append(c.SuccessCodes, int(value))
			}
		}
	} else if codes, ok := raw["successCodes"].([]int); ok && len(codes) > 0 {
		c.SuccessCodes = append([]int(nil), codes...)
	} else {
		invalid = append(invalid, "successCodes")
	}

	if timeout, ok := integral(raw["timeOutSeconds"]); ok && timeout >= minTimeout && timeout <= maxTimeout {
		c.TimeoutSeconds = int(timeout)
	} else {
		invalid = append(invalid, "timeOutSeconds")
	}

	if len(invalid) > 0 {
		return Check{}, fmt.Errorf("%w: invalid fields %s", ErrRejected, strings.Join(invalid, ", "))
	}

	c.State = StateDown
	if state, ok := raw["state"].(string); ok && State(state) == StateUp {
		c.State = StateUp
	}

	if lastChecked, ok := number(raw["lastChecked"]); ok && lastChecked > 0 {
		c.LastChecked = int64(lastChecked)
	}

	return c, nil
}

func isProtocol(protocol Protocol) bool {
	return protocol == ProtocolHttp || protocol == ProtocolHttps
}

func isMethod(method Method) bool {
	switch method {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	default:
		return false
	}
}

func trimmedString(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

func number(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return number(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return number(f)
	default:
		return 0, false
	}
}

func integral(value any) (int64, bool) {
	f, ok := number(value)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}
