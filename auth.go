// auth.go holds the account record and password hashing for the HTTP basic
// auth layer. Hashes use pbkdf2-hmac-sha256 with a per-account salt, stored
// as "salt$hexdigest".
package main

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/pbkdf2"
	"gorm.io/gorm"
)

const (
	pbkdf2Iterations = 100_000
	pbkdf2KeyLen     = 32
)

// Account is a user allowed to reach the HTTP surface.
type Account struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Email        string
	IsActive     bool `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// hashPassword derives a storable hash for the password.
func hashPassword(password string) (string, error) {
	raw := make([]byte, 8)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return salt + "$" + hex.EncodeToString(key), nil
}

// verifyPassword checks a provided password against a stored hash. Malformed
// stored values and empty inputs verify as false, never as an error.
func verifyPassword(stored, provided string) bool {
	if stored == "" || provided == "" {
		return false
	}
	salt, digest, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(provided), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return hmac.Equal(got, want)
}

// CreateAccount stores a new account with a hashed password.
func (s *Store) CreateAccount(username, password, email string) (*Account, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	a := &Account{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		IsActive:     true,
	}
	if err := s.db.Create(a).Error; err != nil {
		return nil, fmt.Errorf("create account %q: %w", username, err)
	}
	return a, nil
}

// GetAccount returns the account for a username, or nil if there is none.
func (s *Store) GetAccount(username string) (*Account, error) {
	var a Account
	err := s.db.First(&a, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account %q: %w", username, err)
	}
	return &a, nil
}

// authorize checks basic-auth credentials against the accounts table.
func authorize(store *Store, username, password string) bool {
	a, err := store.GetAccount(username)
	if err != nil || a == nil || !a.IsActive {
		return false
	}
	return verifyPassword(a.PasswordHash, password)
}
