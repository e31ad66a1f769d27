package store

import (
	"encoding/json"
	"fmt"
)

func decodeRecord(data []byte) (Record, error) {
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if record == nil {
		return nil, fmt.Errorf("%w: payload is null", ErrMalformed)
	}

	return record, nil
}

func encodeRecord(record any) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("could not encode record: %w", err)
	}

	return data, nil
}

// toRecord normalizes any JSON-serializable value into a Record.
func toRecord(record any) (Record, error) {
	data, err := encodeRecord(record)
	if err != nil {
		return nil, err
	}

	return decodeRecord(data)
}
