package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const keyCharset = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultKeyLength is the length of generated room credentials
const DefaultKeyLength = 10

// SecureRandomKey generates a random alphanumeric key of the given length
// using crypto/rand. Used for room credentials when the operator leaves
// them blank.
func SecureRandomKey(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("key length must be positive, got %d", length)
	}

	max := big.NewInt(int64(len(keyCharset)))
	key := make([]byte, length)
	for i := range key {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random key: %w", err)
		}
		key[i] = keyCharset[n.Int64()]
	}

	return string(key), nil
}
