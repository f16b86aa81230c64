// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package govern

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/daoforge/scriptexport/lib/plutus"
)

// Thresholds is the proposal threshold set, in documented order:
// execute, create, vote. The JSON form is a list of exactly three
// integers; any other length fails decoding, so the mismatch surfaces
// as an invalid-parameters error before any builder runs.
type Thresholds [3]int64

func (t *Thresholds) UnmarshalJSON(data []byte) error {
	var raw []int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("thresholds: %w", err)
	}
	if len(raw) != len(t) {
		return fmt.Errorf("thresholds: exactly %d values required, got %d", len(t), len(raw))
	}
	copy(t[:], raw)
	return nil
}

// Timings is the proposal timing set, in documented order: draft,
// voting, locking, executing. The JSON form is a list of exactly four
// integers.
type Timings [4]int64

func (t *Timings) UnmarshalJSON(data []byte) error {
	var raw []int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timings: %w", err)
	}
	if len(raw) != len(t) {
		return fmt.Errorf("timings: exactly %d values required, got %d", len(t), len(raw))
	}
	copy(t[:], raw)
	return nil
}

// TxID is a transaction hash in hex form. Decoding validates the
// 32-byte length so malformed references are rejected at the
// parameter boundary.
type TxID [32]byte

func (id *TxID) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("txId: %w", err)
	}
	decoded, err := hex.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("txId: %w", err)
	}
	if len(decoded) != len(id) {
		return fmt.Errorf("txId: %d bytes, want %d", len(decoded), len(id))
	}
	copy(id[:], decoded)
	return nil
}

// OutputRef identifies the bootstrap UTxO a governor instance is
// parameterized by.
type OutputRef struct {
	TxID  TxID   `json:"txId"`
	Index uint32 `json:"index"`
}

func (r OutputRef) data() plutus.Data {
	return plutus.C(0, plutus.B(r.TxID[:]), plutus.I(int64(r.Index)))
}

// GovernorScriptParams are the request parameters for the governor
// policy and validator builders.
type GovernorScriptParams struct {
	Bootstrap OutputRef `json:"bootstrap"`
}

// GovernorDatumParams are the request parameters for the governor
// datum builder.
type GovernorDatumParams struct {
	Thresholds        Thresholds `json:"thresholds"`
	Timings           Timings    `json:"timings"`
	NextProposalID    int64      `json:"nextProposalId"`
	MaxTimeRangeWidth int64      `json:"maxTimeRangeWidth"`
	MaxCosigners      int64      `json:"maxCosigners"`
}

// GovernorDatum constructs the datum value from well-typed
// parameters. Field order in the constructor is fixed: thresholds,
// timings, next proposal id, max time-range width, max cosigners.
// Range violations here are builder failures — the shape was valid,
// the values are not.
func GovernorDatum(params GovernorDatumParams) (plutus.Data, error) {
	for i, threshold := range params.Thresholds {
		if threshold < 0 {
			return nil, fmt.Errorf("threshold %d is negative (%d)", i, threshold)
		}
	}
	for i, timing := range params.Timings {
		if timing < 0 {
			return nil, fmt.Errorf("timing %d is negative (%d)", i, timing)
		}
	}
	if params.NextProposalID < 0 {
		return nil, fmt.Errorf("next proposal id is negative (%d)", params.NextProposalID)
	}
	if params.MaxTimeRangeWidth <= 0 {
		return nil, fmt.Errorf("max time-range width must be positive, got %d", params.MaxTimeRangeWidth)
	}
	if params.MaxCosigners < 1 {
		return nil, fmt.Errorf("max cosigners must be at least 1, got %d", params.MaxCosigners)
	}

	thresholds := make([]plutus.Data, len(params.Thresholds))
	for i, threshold := range params.Thresholds {
		thresholds[i] = plutus.I(threshold)
	}
	timings := make([]plutus.Data, len(params.Timings))
	for i, timing := range params.Timings {
		timings[i] = plutus.I(timing)
	}

	return plutus.C(0,
		plutus.L(thresholds...),
		plutus.L(timings...),
		plutus.I(params.NextProposalID),
		plutus.I(params.MaxTimeRangeWidth),
		plutus.I(params.MaxCosigners),
	), nil
}
