// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"encoding/json"
	"errors"

	"github.com/daoforge/scriptexport/lib/script"
)

// Dispatch resolves key in the registry, decodes params into the
// builder's expected input type, invokes it, and returns the
// resulting envelope. Failures come back as a classified [*Error]:
// [UnknownKey] when no builder is registered under key (no builder
// logic runs), [InvalidParameters] when params do not decode (the
// builder is not invoked), [BuildFailed] for anything the builder
// itself reports. Dispatch is pure and never retried.
func Dispatch(registry *Registry, key string, params json.RawMessage) (script.Envelope, error) {
	entry, ok := registry.Lookup(key)
	if !ok {
		return script.Envelope{}, &Error{Kind: UnknownKey, Key: key}
	}

	envelope, err := entry.Build(params)
	if err != nil {
		var classified *Error
		if errors.As(err, &classified) {
			// Builders constructed via [Builder] don't know their
			// registration key; stamp it in for reporting. Stamp a
			// copy so a builder returning a shared error value is
			// never mutated under concurrent dispatch.
			if classified.Key == "" {
				stamped := *classified
				stamped.Key = key
				return script.Envelope{}, &stamped
			}
			return script.Envelope{}, err
		}
		// A bare error from a hand-rolled BuildFunc is a builder
		// failure by definition: parameter decoding already succeeded
		// inside the entry.
		return script.Envelope{}, &Error{Kind: BuildFailed, Key: key, Err: err}
	}
	return envelope, nil
}
