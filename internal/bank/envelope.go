package bank

import (
	"encoding/json"
	"errors"
)

// envelope is the optional wrapper the upstream puts around payloads. Older
// endpoints return `{data: ...}`, newer ones `{status, data, error}`, and some
// return the payload bare.
type envelope struct {
	Status *string         `json:"status,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  *string         `json:"error,omitempty"`
}

// UnwrapEnvelope extracts the payload from an upstream response body. Bodies
// without a recognizable envelope are returned unchanged; an envelope carrying
// an error becomes an error.
func UnwrapEnvelope(raw []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Not an object (e.g. a bare array): the body is the payload.
		return raw, nil
	}
	if env.Error != nil && *env.Error != "" {
		return nil, errors.New("upstream error: " + *env.Error)
	}
	if env.Data != nil {
		return env.Data, nil
	}
	return raw, nil
}
