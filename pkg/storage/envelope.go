package storage

import (
	"encoding/json"
	"errors"
	"time"
)

// envelope is the wire format for durable entries in external backends.
// Expiry is kept inside the value itself, in unix milliseconds, so entries
// remain TTL-aware even when read by a backend or tool that does not track
// native expirations. Zero expiry means the entry never expires.
type envelope struct {
	Value  []byte `json:"value"`
	Expiry int64  `json:"expiry,omitempty"`
}

func wrapValue(value []byte, ttl time.Duration) ([]byte, error) {
	env := envelope{Value: value}
	if ttl > 0 {
		env.Expiry = time.Now().Add(ttl).UnixMilli()
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, errors.Join(ErrInvalidEntry, err)
	}
	return raw, nil
}

// unwrapValue decodes an envelope and reports whether its expiry has passed.
func unwrapValue(raw []byte) (value []byte, expired bool, err error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false, errors.Join(ErrInvalidEntry, err)
	}
	if env.Expiry > 0 && time.Now().UnixMilli() > env.Expiry {
		return nil, true, nil
	}
	return env.Value, false, nil
}
