// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	data := "test-data"

	got := HashString(data, testHashKey)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte(data))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Errorf("HashString mismatch:\n  got:  %s\n  want: %s", got, want)
	}
	if len(got) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(got))
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if HashString("payload", testHashKey) != HashString("payload", testHashKey) {
		t.Error("same input must produce same hash")
	}
}

func TestHashString_DifferentKeys(t *testing.T) {
	if HashString("payload", "key-one") == HashString("payload", "key-two") {
		t.Error("different keys must produce different hashes for the same data")
	}
}

func TestHashFields_JoinsWithSeparator(t *testing.T) {
	got := HashFields(testHashKey, "5", "100", "9")
	want := HashString("5|100|9", testHashKey)

	if got != want {
		t.Errorf("HashFields mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

// TestHashFields_SeparatorPreventsShifting checks that moving digits between
// adjacent parts changes the result.
func TestHashFields_SeparatorPreventsShifting(t *testing.T) {
	a := HashFields(testHashKey, "12", "3")
	b := HashFields(testHashKey, "1", "23")

	if a == b {
		t.Error("shifted parts must produce different hashes")
	}
}
