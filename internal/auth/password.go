package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor applied to every stored password.
const PasswordCost = 10

// bcrypt only ever reads this many bytes of a password.
const maxPasswordBytes = 72

// ErrMissingPassword is returned when a request carried no password at all.
var ErrMissingPassword = errors.New("password is missing")

// HashPassword returns a salted bcrypt hash of password. Bytes past the 72nd are ignored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. A malformed hash is a mismatch.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// Bcrypt hashes request passwords that may be absent from the payload.
type Bcrypt struct{}

// Hash fails with ErrMissingPassword when password is nil.
func (Bcrypt) Hash(password *string) (string, error) {
	if password == nil {
		return "", ErrMissingPassword
	}
	return HashPassword(*password)
}

// Verify fails with ErrMissingPassword when password is nil; otherwise it
// reports whether password matches hash.
func (Bcrypt) Verify(password *string, hash string) (bool, error) {
	if password == nil {
		return false, ErrMissingPassword
	}
	return VerifyPassword(*password, hash), nil
}
