package apikey

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// Scope represents an API key permission scope
type Scope string

// Available scopes
const (
	// ScopeRead allows account lookup (the scan-a-member flow)
	ScopeRead Scope = "READ"
	// ScopePurchase allows debiting points for a purchase
	ScopePurchase Scope = "PURCHASE"
	// ScopeAdmin allows key management
	ScopeAdmin Scope = "ADMIN"
)

// GenerateAPIKey generates a new API key with the given prefix
func GenerateAPIKey(prefix string) (string, error) {
	// Generate 20 random bytes
	bytes := make([]byte, 20)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	// Encode to base32 and remove padding
	encoded := base32.StdEncoding.EncodeToString(bytes)
	encoded = strings.ReplaceAll(encoded, "=", "")

	// Format as prefix_encoded
	return prefix + "_" + encoded, nil
}

// ValidateScope checks if a scope is valid
func ValidateScope(scope Scope) bool {
	switch scope {
	case ScopeRead, ScopePurchase, ScopeAdmin:
		return true
	default:
		return false
	}
}
