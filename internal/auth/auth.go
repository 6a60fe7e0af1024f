// Package auth provides optional password validation for ledger-backed
// players.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"unicode"
)

var (
	// ErrComplexity indicates a candidate password fails the complexity rule
	ErrComplexity = errors.New("password must be at least 8 characters long and contain at least one number and one letter")

	// ErrInvalidPassword indicates the password does not match the stored hash
	ErrInvalidPassword = errors.New("auth: invalid password")
)

// HashPassword enforces the complexity rule and returns the hex-encoded
// sha256 digest stored in the ledger.
func HashPassword(password string) (string, error) {
	if err := checkComplexity(password); err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func checkComplexity(password string) error {
	if len(password) < 8 {
		return ErrComplexity
	}
	var hasDigit, hasLetter bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}
	if !hasDigit || !hasLetter {
		return ErrComplexity
	}
	return nil
}

// HashStore is what the validator needs from the player ledger
type HashStore interface {
	PasswordHash(ctx context.Context, playerID int64) (string, error)
}

// Validator checks entered passwords against the ledger's stored hashes
type Validator struct {
	store HashStore
}

// NewValidator creates a validator backed by the given hash store
func NewValidator(store HashStore) *Validator {
	return &Validator{store: store}
}

// Validate compares the candidate password against the player's stored
// hash. A missing hash surfaces the store's not-found error unchanged.
func (v *Validator) Validate(ctx context.Context, playerID int64, password string) error {
	stored, err := v.store.PasswordHash(ctx, playerID)
	if err != nil {
		return fmt.Errorf("fetch stored hash: %w", err)
	}
	sum := sha256.Sum256([]byte(password))
	candidate := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) != 1 {
		return ErrInvalidPassword
	}
	return nil
}
