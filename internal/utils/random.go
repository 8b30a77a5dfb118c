package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString returns n characters drawn uniformly from [a-zA-Z0-9] using
// crypto/rand. Used for trust cookie values.
func RandomString(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid random string length %d", n)
	}

	limit := big.NewInt(int64(len(alphanumeric)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("error reading random source: %w", err)
		}
		buf[i] = alphanumeric[idx.Int64()]
	}

	return string(buf), nil
}
