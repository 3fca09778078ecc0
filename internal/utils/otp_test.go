package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePickupOTP(t *testing.T) {
	otpPattern := regexp.MustCompile(`^\d{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		otp, err := GeneratePickupOTP()
		require.NoError(t, err)
		assert.Regexp(t, otpPattern, otp)
		seen[otp] = true
	}

	// 50 draws from a million values should practically never all collide
	assert.Greater(t, len(seen), 1)
}
