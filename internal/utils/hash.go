package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// FieldSeparator joins the parts hashed by HashFields.
const FieldSeparator = "|"

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// A new HMAC instance is created on each call.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// HashFields joins parts with FieldSeparator and returns the hex-encoded
// HMAC-SHA256 of the result keyed with hashKey.
//
// Example usage:
//
//	token := utils.HashFields(salt, "5", "1700000000", "9", "1690000000")
func HashFields(hashKey string, parts ...string) string {
	return HashString(strings.Join(parts, FieldSeparator), hashKey)
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
