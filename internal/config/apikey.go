// Package config provides API key hashing and verification functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// APIKeyConfig holds configuration for API key hashing and verification. The
// server never stores the raw key: clients present it to /auth/token, which
// compares against the stored bcrypt hash.
type APIKeyConfig struct {
	BcryptCost int
	KeyHash    string // bcrypt hash of the shared API key
}

// NewAPIKeyConfig creates a new API key configuration from environment
// variables. It reads RFM_API_KEY_HASH (required when auth is enabled) and
// BCRYPT_COST (default: 12, used only by the hash helper).
func NewAPIKeyConfig() (*APIKeyConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "12" // default
	}

	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}

	config := &APIKeyConfig{
		BcryptCost: cost,
		KeyHash:    os.Getenv("RFM_API_KEY_HASH"),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *APIKeyConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	if c.KeyHash == "" {
		return fmt.Errorf("RFM_API_KEY_HASH is required but not set")
	}
	return nil
}

// HashAPIKey hashes an API key using bcrypt. Used by operators to produce the
// RFM_API_KEY_HASH value.
func (c *APIKeyConfig) HashAPIKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash API key: %w", err)
	}
	return string(hash), nil
}

// VerifyAPIKey verifies a presented API key against the stored hash.
func (c *APIKeyConfig) VerifyAPIKey(key string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.KeyHash), []byte(key)) == nil
}
