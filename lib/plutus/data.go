// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package plutus

import (
	"bytes"
	"math/big"
)

// Data is a value in the script data algebra. The four
// implementations — [Integer], [Bytes], [List], and [Constr] — are
// the complete set; the interface is sealed by the unexported method.
type Data interface {
	// cborValue returns the value in a shape the deterministic CBOR
	// encoder accepts directly.
	cborValue() any
}

// Integer is an arbitrary-precision integer.
type Integer struct {
	value *big.Int
}

// I constructs an Integer from an int64.
func I(v int64) Integer {
	return Integer{value: big.NewInt(v)}
}

// IBig constructs an Integer from a big.Int. The value is copied, so
// later mutation of v does not affect the Integer.
func IBig(v *big.Int) Integer {
	return Integer{value: new(big.Int).Set(v)}
}

// BigInt returns a copy of the integer's value.
func (i Integer) BigInt() *big.Int {
	if i.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.value)
}

func (i Integer) cborValue() any {
	// The encoder's BigIntConvertShortest setting renders this as a
	// plain CBOR int whenever it fits in 64 bits.
	return i.BigInt()
}

// Bytes is an opaque byte string.
type Bytes struct {
	value []byte
}

// B constructs a Bytes value. The input is copied.
func B(v []byte) Bytes {
	return Bytes{value: bytes.Clone(v)}
}

// Value returns a copy of the byte string.
func (b Bytes) Value() []byte {
	return bytes.Clone(b.value)
}

func (b Bytes) cborValue() any {
	if b.value == nil {
		return []byte{}
	}
	return b.value
}

// List is an ordered sequence of Data values.
type List struct {
	items []Data
}

// L constructs a List from the given items in order.
func L(items ...Data) List {
	return List{items: items}
}

// Items returns the list elements in order. The returned slice is
// shared; callers must not modify it.
func (l List) Items() []Data {
	return l.items
}

func (l List) cborValue() any {
	values := make([]any, len(l.items))
	for i, item := range l.items {
		values[i] = item.cborValue()
	}
	return values
}

// Constr is an indexed constructor application: a tagged record whose
// fields appear in the order fixed by the constructor's schema.
type Constr struct {
	index  uint64
	fields []Data
}

// C constructs a Constr with the given constructor index and fields.
func C(index uint64, fields ...Data) Constr {
	return Constr{index: index, fields: fields}
}

// Index returns the constructor index.
func (c Constr) Index() uint64 {
	return c.index
}

// Fields returns the constructor fields in schema order. The returned
// slice is shared; callers must not modify it.
func (c Constr) Fields() []Data {
	return c.fields
}

// Equal reports whether two Data values are structurally equal.
// Equal values are guaranteed to have identical canonical encodings.
func Equal(a, b Data) bool {
	switch av := a.(type) {
	case Integer:
		bv, ok := b.(Integer)
		return ok && av.BigInt().Cmp(bv.BigInt()) == 0
	case Bytes:
		bv, ok := b.(Bytes)
		return ok && bytes.Equal(av.value, bv.value)
	case List:
		bv, ok := b.(List)
		if !ok || len(av.items) != len(bv.items) {
			return false
		}
		for i := range av.items {
			if !Equal(av.items[i], bv.items[i]) {
				return false
			}
		}
		return true
	case Constr:
		bv, ok := b.(Constr)
		if !ok || av.index != bv.index || len(av.fields) != len(bv.fields) {
			return false
		}
		for i := range av.fields {
			if !Equal(av.fields[i], bv.fields[i]) {
				return false
			}
		}
		return true
	}
	return false
}
