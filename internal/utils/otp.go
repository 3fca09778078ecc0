package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GeneratePickupOTP returns a uniformly random 6-digit numeric one-time code
// used to confirm physical passenger pickup.
func GeneratePickupOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
