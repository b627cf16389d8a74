package auth

import (
	"crypto/subtle"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Default admin account accepted when no other credentials are configured.
const (
	DefaultUsername = "admin"
	DefaultPassword = "secret"
)

// CredentialChecker decides whether a username/password pair may sign in.
type CredentialChecker interface {
	Check(username, password string) bool
}

// CredentialFunc adapts a plain function to CredentialChecker.
type CredentialFunc func(username, password string) bool

// Check implements CredentialChecker.
func (f CredentialFunc) Check(username, password string) bool {
	return f(username, password)
}

// StaticCredentials accepts exactly one account whose password is stored as a bcrypt hash.
type StaticCredentials struct {
	Username     string
	PasswordHash []byte
}

// NewStaticCredentials hashes password and returns a checker for the single account.
func NewStaticCredentials(username, password string) (*StaticCredentials, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &StaticCredentials{Username: username, PasswordHash: []byte(hash)}, nil
}

// Check implements CredentialChecker.
func (c *StaticCredentials) Check(username, password string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) != 1 {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)) == nil
}

var defaultCredentials = sync.OnceValues(func() (*StaticCredentials, error) {
	return NewStaticCredentials(DefaultUsername, DefaultPassword)
})

// DefaultCredentials returns the checker for the built-in admin account.
// The hash is computed once per process.
func DefaultCredentials() (*StaticCredentials, error) {
	return defaultCredentials()
}

// HashPassword hashes the password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}
