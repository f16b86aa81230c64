// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package govern

import "encoding/hex"

// Compiled program templates, embedded as hex at build time. The
// always-succeeds pair is self-contained; the governor and treasury
// templates are parameterized and must go through script.Apply before
// export.
const (
	alwaysSucceedsHex = "4d01000033222220051200120011"

	governorPolicyHex = "5900b400084d8d22200512000100003322c0a400926024602600424a666ae68cdc3a4a66" +
		"6ae68cdc3a33232323c0a40092222005120000084d8dc0a400928c94ccd5cd2220051200" +
		"19b87480cdc78010008a500100003322010000332222200512004a666ae68cdc3a4a666a" +
		"e68cdc3a8c94ccd5cd19b8748001000033228c94ccd5cd4a666ae68cdc3ac0a400920008" +
		"4d8dc0a400928c94ccd5cdcdc78010008a504a666ae68cdc3a14a2294019b87480602460" +
		"260042"

	governorValidatorHex = "590190533357346001000033225333573460533357346033232323c0a40092cdc7801000" +
		"8a50a666ae68602460260042332323234a666ae68cdc3a5333573460a666ae6822200512" +
		"002220051200cdc78010008a502220051200a666ae68a666ae6819b87480602460260042" +
		"53335734600100003322c0a4009214a229408c94ccd5cd2220051200cdc78010008a5022" +
		"200512008c94ccd5cd60246026004200084d8d19b87480a666ae6819b874804a666ae68c" +
		"dc3ac0a400922220051200010000332200084d8d4a666ae68cdc3a533357346060246026" +
		"004222200512004a666ae68cdc3a2220051200cdc78010008a5060246026004214a22940" +
		"00084d8da666ae6833232323a666ae68a666ae684a666ae68cdc3a00084d8d6024602600" +
		"42c0a4009200084d8d00084d8d222005120019b8748000084d8d332323238c94ccd5cdc0" +
		"a400924a666ae68cdc3a3323232314a22940cdc78010008a5060246026004200084d8dc0" +
		"a400928c94ccd5cd4a666ae68cdc3a00084d8da666ae6853335734605333573460010000" +
		"33224a666ae68c"

	treasuryValidatorHex = "5900dc01000033225333573460a666ae68cdc78010008a5060246026004222200512004a" +
		"666ae68cdc3a19b87480c0a40092a666ae684a666ae68cdc3a00084d8d14a22940cdc780" +
		"10008a5000084d8d14a2294033232323602460260042332323234a666ae68cdc3ac0a400" +
		"928c94ccd5cd8c94ccd5cd602460260042c0a4009219b87480cdc78010008a5019b87480" +
		"cdc78010008a50a666ae684a666ae68cdc3a332323238c94ccd5cd14a229402220051200" +
		"5333573460010000332222200512003323232300084d8d33232323533357346000084d8d" +
		"cdc78010008a50"
)

var (
	alwaysSucceedsProgram     = mustProgram(alwaysSucceedsHex)
	governorPolicyTemplate    = mustProgram(governorPolicyHex)
	governorValidatorTemplate = mustProgram(governorValidatorHex)
	treasuryValidatorTemplate = mustProgram(treasuryValidatorHex)
)

func mustProgram(encoded string) []byte {
	program, err := hex.DecodeString(encoded)
	if err != nil {
		panic("govern: bad embedded program template: " + err.Error())
	}
	return program
}
