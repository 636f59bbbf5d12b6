package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var errNonPositiveBound = errors.New("bound must be positive")

// RandomIndex returns a cryptographically secure, unbiased integer in [0, n).
func RandomIndex(n int) (int, error) {
	if n <= 0 {
		return 0, errNonPositiveBound
	}
	position, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(position.Int64()), nil
}
