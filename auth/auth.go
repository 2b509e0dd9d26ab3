// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AdminScope is the message signed to derive the admin key
const AdminScope = "foe-finder:admin"

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidToken    = errors.New("invalid token format")
)

// NewUserID returns a random (v4) UUID for a user record
func NewUserID() string {
	return uuid.NewString()
}

// NewSnapshotID returns a time-ordered (v7) UUID so snapshot ids sort by
// creation time. Falls back to v4 if the clock source fails.
func NewSnapshotID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// GenerateAdminKey derives the admin key from the salt.
// Deterministic, so it never has to be stored.
func GenerateAdminKey(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(AdminScope))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks the provided key against the salt
func ValidateAdminKey(adminKey, salt string) error {
	expected := GenerateAdminKey(salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateUserToken creates a random secure token identifying a user.
// The token is the only credential: whoever holds it can submit answers.
func GenerateUserToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate user token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// CheckTokenFormat rejects values that cannot be a token from GenerateUserToken
func CheckTokenFormat(token string) error {
	if len(token) != 32 {
		return ErrInvalidToken
	}
	if _, err := base64.RawURLEncoding.DecodeString(token); err != nil {
		return ErrInvalidToken
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
