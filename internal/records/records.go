// Package records stores typed values in the kv store as versioned JSON:
//
//	{"v":1,"data":<value>}
//
// A value that cannot be decoded (bad JSON, unknown version, missing data)
// is reported as ErrMalformed so callers can recover locally.
package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/launchpad/internal/repositories/kv"
)

// Version is the envelope version written by Encode.
const Version = 1

var ErrMalformed = errors.New("malformed record")

type envelope struct {
	V    int             `json:"v"`
	Data json.RawMessage `json:"data"`
}

// Encode wraps v in a versioned envelope.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return json.Marshal(envelope{V: Version, Data: data})
}

// Decode unwraps b into out.
func Decode(b []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if env.V != Version {
		return fmt.Errorf("%w: unsupported version %d", ErrMalformed, env.V)
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return fmt.Errorf("%w: no data", ErrMalformed)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// Load reads and decodes the record under key. found is false when the key
// is absent; then err is nil and v is the zero value.
func Load[T any](ctx context.Context, r kv.Repository, key string) (v T, found bool, err error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return v, false, err
	}
	if raw == nil {
		return v, false, nil
	}
	if err := Decode(raw, &v); err != nil {
		return v, true, fmt.Errorf("record %s: %w", key, err)
	}
	return v, true, nil
}

// Save encodes v and writes it under key.
func Save[T any](ctx context.Context, r kv.Repository, key string, v T) error {
	b, err := Encode(v)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, b)
}
