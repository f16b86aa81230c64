// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package govern

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/daoforge/scriptexport/lib/plutus"
)

func TestThresholdsArity(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"exactly three", `[1, 2, 3]`, ""},
		{"two", `[1, 2]`, "exactly 3"},
		{"four", `[1, 2, 3, 4]`, "exactly 3"},
		{"empty", `[]`, "exactly 3"},
		{"not a list", `7`, "thresholds"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var thresholds Thresholds
			err := json.Unmarshal([]byte(test.raw), &thresholds)
			if test.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if thresholds != (Thresholds{1, 2, 3}) {
					t.Errorf("thresholds = %v, want [1 2 3]", thresholds)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("error = %v, want containing %q", err, test.wantErr)
			}
		})
	}
}

func TestTimingsArity(t *testing.T) {
	var timings Timings
	if err := json.Unmarshal([]byte(`[10, 20, 30, 40]`), &timings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if timings != (Timings{10, 20, 30, 40}) {
		t.Errorf("timings = %v, want [10 20 30 40]", timings)
	}

	for _, raw := range []string{`[10, 20, 30]`, `[10, 20, 30, 40, 50]`, `[]`} {
		if err := json.Unmarshal([]byte(raw), &timings); err == nil {
			t.Errorf("timings accepted %s", raw)
		}
	}
}

func TestTxIDValidation(t *testing.T) {
	valid := strings.Repeat("ab", 32)
	var id TxID
	if err := json.Unmarshal([]byte(`"`+valid+`"`), &id); err != nil {
		t.Fatalf("valid txId rejected: %v", err)
	}

	for name, raw := range map[string]string{
		"short":   `"abcd"`,
		"long":    `"` + strings.Repeat("ab", 33) + `"`,
		"non-hex": `"` + strings.Repeat("zz", 32) + `"`,
		"number":  `42`,
	} {
		if err := json.Unmarshal([]byte(raw), &id); err == nil {
			t.Errorf("%s txId accepted", name)
		}
	}
}

func validDatumParams() GovernorDatumParams {
	return GovernorDatumParams{
		Thresholds:        Thresholds{100, 200, 300},
		Timings:           Timings{10, 20, 30, 40},
		NextProposalID:    7,
		MaxTimeRangeWidth: 3600,
		MaxCosigners:      5,
	}
}

func TestGovernorDatumFieldOrder(t *testing.T) {
	datum, err := GovernorDatum(validDatumParams())
	if err != nil {
		t.Fatalf("GovernorDatum failed: %v", err)
	}

	constr, ok := datum.(plutus.Constr)
	if !ok {
		t.Fatalf("datum is %T, want Constr", datum)
	}
	if constr.Index() != 0 {
		t.Errorf("constructor index = %d, want 0", constr.Index())
	}
	fields := constr.Fields()
	if len(fields) != 5 {
		t.Fatalf("datum has %d fields, want 5", len(fields))
	}

	wantThresholds := plutus.L(plutus.I(100), plutus.I(200), plutus.I(300))
	if !plutus.Equal(fields[0], wantThresholds) {
		t.Errorf("field 0 (thresholds) = %v", fields[0])
	}
	wantTimings := plutus.L(plutus.I(10), plutus.I(20), plutus.I(30), plutus.I(40))
	if !plutus.Equal(fields[1], wantTimings) {
		t.Errorf("field 1 (timings) = %v", fields[1])
	}
	for i, want := range []int64{7, 3600, 5} {
		got, ok := fields[2+i].(plutus.Integer)
		if !ok || got.BigInt().Cmp(big.NewInt(want)) != 0 {
			t.Errorf("field %d = %v, want integer %d", 2+i, fields[2+i], want)
		}
	}
}

func TestGovernorDatumRangeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GovernorDatumParams)
	}{
		{"negative threshold", func(p *GovernorDatumParams) { p.Thresholds[1] = -1 }},
		{"negative timing", func(p *GovernorDatumParams) { p.Timings[3] = -10 }},
		{"negative proposal id", func(p *GovernorDatumParams) { p.NextProposalID = -1 }},
		{"zero time range", func(p *GovernorDatumParams) { p.MaxTimeRangeWidth = 0 }},
		{"zero cosigners", func(p *GovernorDatumParams) { p.MaxCosigners = 0 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params := validDatumParams()
			test.mutate(&params)
			if _, err := GovernorDatum(params); err == nil {
				t.Error("out-of-range parameters accepted")
			}
		})
	}
}
