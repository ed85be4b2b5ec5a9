package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	assert.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestRandomString(t *testing.T) {
	s := RandomString(16)
	assert.Len(t, s, 16)
	assert.NotEqual(t, s, RandomString(16))
}
