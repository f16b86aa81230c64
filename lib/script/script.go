// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package script

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Kind tags an envelope with the artifact category downstream
// consumers use to interpret the payload. The core never branches on
// it.
type Kind string

const (
	// KindPolicy marks a compiled minting policy.
	KindPolicy Kind = "policy"

	// KindValidator marks a compiled spending validator.
	KindValidator Kind = "validator"

	// KindDatum marks a canonically encoded inline datum.
	KindDatum Kind = "datum"
)

// HashSize is the script hash length in bytes (BLAKE2b-224, the
// on-chain script address digest).
const HashSize = 28

// Envelope is the uniform wrapper around one exported artifact. The
// payload is immutable once constructed; the constructors in this
// package are the only places a kind is assigned.
type Envelope struct {
	payload []byte
	kind    Kind
}

// Payload returns a copy of the artifact bytes.
func (e Envelope) Payload() []byte {
	return bytes.Clone(e.payload)
}

// Kind returns the artifact category tag.
func (e Envelope) Kind() Kind {
	return e.kind
}

// Hex returns the lowercase hexadecimal rendering of the payload,
// used when the artifact travels through a text-only transport field.
func (e Envelope) Hex() string {
	return hex.EncodeToString(e.payload)
}

// Hash returns the BLAKE2b-224 digest of the payload. Callers use it
// as the stable identifier for a compiled script.
func (e Envelope) Hash() [HashSize]byte {
	var digest [HashSize]byte
	hasher, err := blake2b.New(HashSize, nil)
	if err != nil {
		// Only reachable with an invalid digest size, which is fixed
		// at compile time.
		panic("script: blake2b initialization failed: " + err.Error())
	}
	hasher.Write(e.payload)
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// HashHex returns the hex rendering of [Envelope.Hash], the canonical
// format used in responses and log output.
func (e Envelope) HashHex() string {
	digest := e.Hash()
	return hex.EncodeToString(digest[:])
}

// MintingPolicy wraps the compiled program bytes of a minting policy.
type MintingPolicy struct {
	program []byte
}

// NewMintingPolicy wraps compiled program bytes. The input is copied.
func NewMintingPolicy(program []byte) MintingPolicy {
	return MintingPolicy{program: bytes.Clone(program)}
}

// Bytes returns a copy of the compiled program.
func (p MintingPolicy) Bytes() []byte {
	return bytes.Clone(p.program)
}

// SpendingValidator wraps the compiled program bytes of a spending
// validator.
type SpendingValidator struct {
	program []byte
}

// NewSpendingValidator wraps compiled program bytes. The input is
// copied.
func NewSpendingValidator(program []byte) SpendingValidator {
	return SpendingValidator{program: bytes.Clone(program)}
}

// Bytes returns a copy of the compiled program.
func (v SpendingValidator) Bytes() []byte {
	return bytes.Clone(v.program)
}

// FromPolicy wraps a compiled minting policy in an envelope. Pure:
// the program's underlying bytes are tagged, never transformed.
func FromPolicy(policy MintingPolicy) Envelope {
	return Envelope{payload: policy.Bytes(), kind: KindPolicy}
}

// FromValidator wraps a compiled spending validator in an envelope.
func FromValidator(validator SpendingValidator) Envelope {
	return Envelope{payload: validator.Bytes(), kind: KindValidator}
}

// FromDatum wraps a canonically encoded datum in an envelope. The
// encoded parameter must already be the canonical encoding (see
// lib/plutus); this constructor only tags it.
func FromDatum(encoded []byte) Envelope {
	return Envelope{payload: bytes.Clone(encoded), kind: KindDatum}
}

func (e Envelope) String() string {
	return fmt.Sprintf("%s(%d bytes, %s)", e.kind, len(e.payload), e.HashHex())
}
