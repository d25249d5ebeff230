package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Authenticator gates the app behind a single fixed demo credential.
// The data layer is indifferent to it; there are no accounts.
type Authenticator struct {
	username string
	hash     []byte
}

// New hashes the configured password once at construction so the
// plaintext is not held for the process lifetime.
func New(username, password string) (*Authenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash credential: %w", err)
	}
	return &Authenticator{username: username, hash: hash}, nil
}

// Verify checks the credential pair. Both comparisons always run.
func (a *Authenticator) Verify(username, password string) bool {
	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.hash, []byte(password)) == nil
	return nameOK && passOK
}
