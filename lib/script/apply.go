// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"fmt"

	"github.com/daoforge/scriptexport/lib/codec"
	"github.com/daoforge/scriptexport/lib/plutus"
)

// Apply instantiates a parameterized program template with concrete
// arguments, producing the self-contained program bytes. The template
// and the canonical encoding of each argument are framed together as
// one deterministic CBOR container, so the same (template, args) pair
// always yields identical program bytes and distinct arguments always
// yield distinct programs.
func Apply(template []byte, args ...plutus.Data) ([]byte, error) {
	if len(template) == 0 {
		return nil, fmt.Errorf("applying parameters: empty program template")
	}

	container := make([]any, 0, len(args)+1)
	container = append(container, template)
	for i, arg := range args {
		encoded, err := plutus.Encode(arg)
		if err != nil {
			return nil, fmt.Errorf("applying parameter %d: %w", i, err)
		}
		container = append(container, codec.RawMessage(encoded))
	}

	program, err := codec.Marshal(container)
	if err != nil {
		return nil, fmt.Errorf("applying parameters: %w", err)
	}
	return program, nil
}
