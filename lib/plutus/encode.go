// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package plutus

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/daoforge/scriptexport/lib/codec"
)

// Constructor index to CBOR tag mapping, following the on-chain
// convention: indexes 0–6 use the compact tag block 121–127, indexes
// 7–127 use 1280–1400, and anything larger falls back to the general
// tag 102 whose content carries the index explicitly.
const (
	compactTagBase   = 121
	compactIndexMax  = 6
	extendedTagBase  = 1280
	extendedIndexMax = 127
	generalTag       = 102
)

// initialBufferSize pre-sizes the encode buffer for the common case:
// small datums and script containers are well under this. Larger
// values grow the buffer geometrically; sizing is a tuning detail and
// has no effect on the produced bytes.
const initialBufferSize = 128

func (c Constr) cborValue() any {
	fields := make([]any, len(c.fields))
	for i, field := range c.fields {
		fields[i] = field.cborValue()
	}
	switch {
	case c.index <= compactIndexMax:
		return codec.Tag{Number: compactTagBase + c.index, Content: fields}
	case c.index <= extendedIndexMax:
		return codec.Tag{Number: extendedTagBase + (c.index - 7), Content: fields}
	default:
		return codec.Tag{Number: generalTag, Content: []any{c.index, fields}}
	}
}

// Encode returns the canonical binary encoding of d. Encoding a
// well-formed value of the algebra never fails; an error here
// indicates a defect in the encoder configuration, not bad input.
func Encode(d Data) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(initialBufferSize)
	if err := codec.NewEncoder(&buf).Encode(d.cborValue()); err != nil {
		return nil, fmt.Errorf("encoding script data: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeHex returns the lowercase hexadecimal rendering of the
// canonical encoding of d.
func EncodeHex(d Data) (string, error) {
	encoded, err := Encode(d)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(encoded), nil
}

// Decode parses a canonical encoding back into a Data value. Input
// that is valid CBOR but falls outside the script data algebra (maps,
// floats, text strings) is rejected.
func Decode(encoded []byte) (Data, error) {
	var raw any
	if err := codec.Unmarshal(encoded, &raw); err != nil {
		return nil, fmt.Errorf("decoding script data: %w", err)
	}
	return fromCBOR(raw)
}

// DecodeHex parses the hex rendering produced by [EncodeHex].
func DecodeHex(encoded string) (Data, error) {
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding script data hex: %w", err)
	}
	return Decode(raw)
}

func fromCBOR(raw any) (Data, error) {
	switch v := raw.(type) {
	case uint64:
		return IBig(new(big.Int).SetUint64(v)), nil
	case int64:
		return I(v), nil
	case big.Int:
		return IBig(&v), nil
	case *big.Int:
		return IBig(v), nil
	case []byte:
		return B(v), nil
	case []any:
		items := make([]Data, len(v))
		for i, item := range v {
			decoded, err := fromCBOR(item)
			if err != nil {
				return nil, err
			}
			items[i] = decoded
		}
		return L(items...), nil
	case codec.Tag:
		return constrFromTag(v)
	default:
		return nil, fmt.Errorf("decoding script data: %T is outside the data algebra", raw)
	}
}

func constrFromTag(tag codec.Tag) (Data, error) {
	var index uint64
	content := tag.Content
	switch {
	case tag.Number >= compactTagBase && tag.Number <= compactTagBase+compactIndexMax:
		index = tag.Number - compactTagBase
	case tag.Number >= extendedTagBase && tag.Number <= extendedTagBase+uint64(extendedIndexMax-7):
		index = tag.Number - extendedTagBase + 7
	case tag.Number == generalTag:
		pair, ok := content.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("decoding script data: malformed general constructor tag")
		}
		rawIndex, ok := pair[0].(uint64)
		if !ok {
			return nil, fmt.Errorf("decoding script data: general constructor index is %T, want uint64", pair[0])
		}
		index = rawIndex
		content = pair[1]
	default:
		return nil, fmt.Errorf("decoding script data: unrecognized tag %d", tag.Number)
	}

	rawFields, ok := content.([]any)
	if !ok {
		return nil, fmt.Errorf("decoding script data: constructor fields are %T, want array", content)
	}
	fields := make([]Data, len(rawFields))
	for i, rawField := range rawFields {
		decoded, err := fromCBOR(rawField)
		if err != nil {
			return nil, err
		}
		fields[i] = decoded
	}
	return C(index, fields...), nil
}
