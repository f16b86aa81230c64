// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"bytes"
	"testing"

	"github.com/daoforge/scriptexport/lib/plutus"
)

func TestEnvelopeKinds(t *testing.T) {
	program := []byte{0x01, 0x02}

	policy := FromPolicy(NewMintingPolicy(program))
	if policy.Kind() != KindPolicy {
		t.Errorf("policy envelope kind = %s, want %s", policy.Kind(), KindPolicy)
	}
	if !bytes.Equal(policy.Payload(), program) {
		t.Errorf("policy payload = %x, want %x", policy.Payload(), program)
	}

	validator := FromValidator(NewSpendingValidator(program))
	if validator.Kind() != KindValidator {
		t.Errorf("validator envelope kind = %s, want %s", validator.Kind(), KindValidator)
	}

	datum := FromDatum([]byte{0xd8, 0x79, 0x80})
	if datum.Kind() != KindDatum {
		t.Errorf("datum envelope kind = %s, want %s", datum.Kind(), KindDatum)
	}
}

func TestEnvelopePayloadImmutable(t *testing.T) {
	source := []byte{0x0a, 0x0b}
	envelope := FromPolicy(NewMintingPolicy(source))

	// Mutating the source after construction must not reach the
	// envelope, and neither must mutating a returned payload copy.
	source[0] = 0xff
	leaked := envelope.Payload()
	leaked[1] = 0xff

	if !bytes.Equal(envelope.Payload(), []byte{0x0a, 0x0b}) {
		t.Errorf("envelope payload mutated to %x", envelope.Payload())
	}
}

func TestEnvelopeHex(t *testing.T) {
	envelope := FromDatum([]byte{0xde, 0xad})
	if envelope.Hex() != "dead" {
		t.Errorf("Hex = %s, want dead", envelope.Hex())
	}
	if empty := FromDatum(nil); empty.Hex() != "" {
		t.Errorf("empty payload Hex = %q, want empty string", empty.Hex())
	}
}

func TestEnvelopeHash(t *testing.T) {
	first := FromPolicy(NewMintingPolicy([]byte{0x01}))
	second := FromPolicy(NewMintingPolicy([]byte{0x01}))
	other := FromPolicy(NewMintingPolicy([]byte{0x02}))

	if first.Hash() != second.Hash() {
		t.Error("equal payloads produced different hashes")
	}
	if first.Hash() == other.Hash() {
		t.Error("distinct payloads produced the same hash")
	}
	if got := len(first.HashHex()); got != HashSize*2 {
		t.Errorf("HashHex length = %d, want %d", got, HashSize*2)
	}
}

func TestApplyDeterministic(t *testing.T) {
	template := []byte{0x4d, 0x01}
	args := []plutus.Data{plutus.B([]byte{0xaa}), plutus.I(3)}

	first, err := Apply(template, args...)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	second, err := Apply(template, plutus.B([]byte{0xaa}), plutus.I(3))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("Apply not deterministic:\n  %x\n  %x", first, second)
	}
}

func TestApplyDistinguishesArguments(t *testing.T) {
	template := []byte{0x4d, 0x01}
	first, err := Apply(template, plutus.I(1))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	second, err := Apply(template, plutus.I(2))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Error("distinct arguments produced identical programs")
	}
}

func TestApplyEmptyTemplate(t *testing.T) {
	if _, err := Apply(nil, plutus.I(1)); err == nil {
		t.Error("Apply accepted an empty template")
	}
}
