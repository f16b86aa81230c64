// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package govern

import (
	"encoding/hex"
	"fmt"

	"github.com/daoforge/scriptexport/lib/export"
	"github.com/daoforge/scriptexport/lib/plutus"
	"github.com/daoforge/scriptexport/lib/script"
)

// authorityPolicySize is the policy id length in bytes.
const authorityPolicySize = 28

// ChainParams are the startup-supplied chain references that
// parameterize builders at registration time. They come from the
// service configuration, not from requests.
type ChainParams struct {
	// Network names the target chain ("mainnet", "preprod", ...).
	// Informational; recorded in builder descriptions.
	Network string

	// AuthorityPolicy is the hex policy id of the governance
	// authority token the treasury validator honors.
	AuthorityPolicy string

	// AuthorityName is the authority token name.
	AuthorityName string
}

// validate checks the chain references and returns the decoded
// authority policy id, so callers never re-decode the hex form.
func (p ChainParams) validate() ([]byte, error) {
	if p.Network == "" {
		return nil, fmt.Errorf("chain params: network is required")
	}
	policy, err := hex.DecodeString(p.AuthorityPolicy)
	if err != nil {
		return nil, fmt.Errorf("chain params: authority policy: %w", err)
	}
	if len(policy) != authorityPolicySize {
		return nil, fmt.Errorf("chain params: authority policy is %d bytes, want %d", len(policy), authorityPolicySize)
	}
	if p.AuthorityName == "" {
		return nil, fmt.Errorf("chain params: authority name is required")
	}
	return policy, nil
}

// authorityData is the asset-class value applied to the treasury
// template: constructor 0 of (policy id, token name).
func (p ChainParams) authorityData(policy []byte) plutus.Data {
	return plutus.C(0, plutus.B(policy), plutus.B([]byte(p.AuthorityName)))
}

// RegisterAll populates the registry with the full builder set, in
// fixed order. Called exactly once during startup; any error —
// including a duplicate key, which would be a defect in this chain —
// aborts startup before a request is served.
func RegisterAll(registry *export.Registry, chain ChainParams) error {
	authorityPolicy, err := chain.validate()
	if err != nil {
		return err
	}
	authority := chain.authorityData(authorityPolicy)

	entries := []export.Entry{
		{
			Key:         "alwaysSucceedsPolicy",
			Description: "minting policy that approves every mint (test instrument)",
			Build: export.NoParams(func() (script.Envelope, error) {
				return script.FromPolicy(script.NewMintingPolicy(alwaysSucceedsProgram)), nil
			}),
		},
		{
			Key:         "alwaysSucceedsValidator",
			Description: "spending validator that approves every spend (test instrument)",
			Build: export.NoParams(func() (script.Envelope, error) {
				return script.FromValidator(script.NewSpendingValidator(alwaysSucceedsProgram)), nil
			}),
		},
		{
			Key:         "governorPolicy",
			Description: "governor state-thread minting policy for a bootstrap output",
			Build: export.Builder(func(params GovernorScriptParams) (script.Envelope, error) {
				program, err := script.Apply(governorPolicyTemplate, params.Bootstrap.data())
				if err != nil {
					return script.Envelope{}, err
				}
				return script.FromPolicy(script.NewMintingPolicy(program)), nil
			}),
		},
		{
			Key:         "governorValidator",
			Description: "governor spending validator for a bootstrap output",
			Build: export.Builder(func(params GovernorScriptParams) (script.Envelope, error) {
				program, err := script.Apply(governorValidatorTemplate, params.Bootstrap.data())
				if err != nil {
					return script.Envelope{}, err
				}
				return script.FromValidator(script.NewSpendingValidator(program)), nil
			}),
		},
		{
			Key:         "treasuryValidator",
			Description: fmt.Sprintf("treasury spending validator bound to the %s authority token", chain.Network),
			Build: export.NoParams(func() (script.Envelope, error) {
				program, err := script.Apply(treasuryValidatorTemplate, authority)
				if err != nil {
					return script.Envelope{}, err
				}
				return script.FromValidator(script.NewSpendingValidator(program)), nil
			}),
		},
		{
			Key:         "governorDatum",
			Description: "initial governor datum from proposal thresholds and timings",
			Build: export.Builder(func(params GovernorDatumParams) (script.Envelope, error) {
				datum, err := GovernorDatum(params)
				if err != nil {
					return script.Envelope{}, err
				}
				encoded, err := plutus.Encode(datum)
				if err != nil {
					return script.Envelope{}, err
				}
				return script.FromDatum(encoded), nil
			}),
		},
	}

	for _, entry := range entries {
		if err := registry.Register(entry); err != nil {
			return fmt.Errorf("registering governance builders: %w", err)
		}
	}
	return nil
}
