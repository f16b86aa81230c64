// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/daoforge/scriptexport/lib/script"
)

// BuildFunc is the type-erased shape of every registered builder:
// raw caller-supplied parameters in, envelope or classified error
// out. Construct one with [Builder] or [NoParams] so that parameter
// decoding and error classification are folded in uniformly.
type BuildFunc func(params json.RawMessage) (script.Envelope, error)

// Entry is one registered capability.
type Entry struct {
	// Key is the unique builder identifier requests name.
	Key string

	// Description is a one-line human-readable summary, served by the
	// builder listing endpoint.
	Description string

	// Build decodes parameters and produces the artifact.
	Build BuildFunc
}

// Registry is the insertion-ordered collection of builder entries.
// Populate it with [Registry.Register] during startup; after that it
// is read-only and safe for concurrent lookups without locking.
type Registry struct {
	entries map[string]Entry
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register inserts a new entry. A duplicate key is a programming
// error in the fixed startup registration chain, reported as an error
// so the caller can abort startup before any request is served —
// there is no silent replacement.
func (r *Registry) Register(entry Entry) error {
	if entry.Key == "" {
		return errors.New("registering builder: empty key")
	}
	if entry.Build == nil {
		return fmt.Errorf("registering builder %q: nil build function", entry.Key)
	}
	if _, exists := r.entries[entry.Key]; exists {
		return fmt.Errorf("registering builder %q: key already registered", entry.Key)
	}
	r.entries[entry.Key] = entry
	r.order = append(r.order, entry.Key)
	return nil
}

// Lookup returns the entry for key. Absence is a normal outcome at
// this layer; the caller decides how to report it.
func (r *Registry) Lookup(key string) (Entry, bool) {
	entry, ok := r.entries[key]
	return entry, ok
}

// Keys returns the builder keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, key := range r.order {
		entries = append(entries, r.entries[key])
	}
	return entries
}

// Len returns the number of registered builders.
func (r *Registry) Len() int {
	return len(r.order)
}

// Builder adapts a typed build function into a [BuildFunc]. The
// parameter type's JSON decode runs first, strictly (unknown fields
// rejected); decode failure is classified [InvalidParameters] and the
// build function is never invoked. A build error that is not already
// classified is wrapped as [BuildFailed].
func Builder[P any](build func(P) (script.Envelope, error)) BuildFunc {
	return func(raw json.RawMessage) (script.Envelope, error) {
		var params P
		if err := decodeParams(raw, &params); err != nil {
			return script.Envelope{}, &Error{Kind: InvalidParameters, Err: err}
		}
		envelope, err := build(params)
		if err != nil {
			var classified *Error
			if errors.As(err, &classified) {
				return script.Envelope{}, err
			}
			return script.Envelope{}, &Error{Kind: BuildFailed, Err: err}
		}
		return envelope, nil
	}
}

// NoParams adapts a parameterless build function into a [BuildFunc].
// Absent, empty, null, or empty-object parameters are accepted;
// anything else is [InvalidParameters].
func NoParams(build func() (script.Envelope, error)) BuildFunc {
	return Builder(func(struct{}) (script.Envelope, error) {
		return build()
	})
}

// decodeParams strictly decodes raw into params. Absent input leaves
// params at its zero value, matching builders whose parameter struct
// fields are all optional or absent entirely.
func decodeParams(raw json.RawMessage, params any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(params); err != nil {
		return err
	}
	// A second document after the first is malformed input, not a
	// decode success with leftovers.
	if decoder.More() {
		return errors.New("trailing data after parameter document")
	}
	return nil
}
