// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical data always
// produces identical bytes — downstream consumers hash and compare
// exported artifacts, so any divergence here is a wire break.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Arbitrary-precision integers in the script data algebra encode
	// as plain CBOR ints when they fit, falling back to bignum tags
	// 2/3 only beyond 64 bits. This keeps integer encoding injective
	// across the int64/big.Int boundary.
	encOptions.BigIntConvert = cbor.BigIntConvertShortest
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Script data never uses non-string map keys at the protocol
		// layer, and any-typed decode targets should produce
		// map[string]any rather than the CBOR default
		// map[interface{}]interface{}.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Encoder is a CBOR stream encoder. Type alias so consumers import
// only lib/codec, not fxamacker/cbor directly.
type Encoder = cbor.Encoder

// RawMessage is a raw encoded CBOR value, used to splice pre-encoded
// artifact bytes into a larger CBOR structure without re-encoding.
type RawMessage = cbor.RawMessage

// Tag is a tagged CBOR data item. The script data algebra uses tags
// for constructor indexes; exposing the alias keeps fxamacker out of
// the encoder package's imports.
type Tag = cbor.Tag

// NewEncoder returns a CBOR encoder that writes to w using the
// standard Core Deterministic Encoding configuration.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}
