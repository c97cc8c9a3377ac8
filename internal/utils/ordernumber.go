package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderNumber returns a human-readable order number in the form
// ORD-<yyyymmdd>-<6 char random suffix>, used for customer-facing tracking.
func GenerateOrderNumber() string {
	datePart := time.Now().UTC().Format("20060102")

	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(orderNumberAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// fallback: time-based entropy
			n = big.NewInt(time.Now().UnixNano() % int64(len(orderNumberAlphabet)))
		}
		suffix[i] = orderNumberAlphabet[n.Int64()]
	}

	return fmt.Sprintf("ORD-%s-%s", datePart, suffix)
}
