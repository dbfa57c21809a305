package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	IDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	IDLength   = 8
)

// NewID returns a short opaque identifier drawn from IDAlphabet.
func NewID() string {
	return RandomString(IDLength)
}

func RandomString(length int) string {
	result := make([]byte, length)
	max := big.NewInt(int64(len(IDAlphabet)))
	for i := range result {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("crypto/rand unavailable: " + err.Error())
		}
		result[i] = IDAlphabet[num.Int64()]
	}
	return string(result)
}
