// Package auth derives and verifies password hashes.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dtroode/emr-server/internal/model"
)

const (
	saltLen = 16
	keyLen  = 32
)

var ErrMalformedHash = errors.New("malformed password hash")

// ValidateParams rejects argon2 parameters that argon2.IDKey refuses.
func ValidateParams(time, memKiB uint32, par uint8) error {
	switch {
	case time == 0:
		return errors.New("argon2 time must be at least 1")
	case par == 0:
		return errors.New("argon2 parallelism must be at least 1")
	case memKiB < 8*uint32(par):
		return fmt.Errorf("argon2 memory must be at least %d KiB for parallelism %d", 8*uint32(par), par)
	}
	return nil
}

var _ model.PasswordHasher = (*Argon2Hasher)(nil)

// Argon2Hasher hashes passwords with argon2id. Hashes are stored in the PHC
// string format so parameters can change without breaking old hashes.
type Argon2Hasher struct {
	time   uint32
	memKiB uint32
	par    uint8
}

func NewArgon2Hasher(time, memKiB uint32, par uint8) *Argon2Hasher {
	return &Argon2Hasher{time: time, memKiB: memKiB, par: par}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memKiB, h.par, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memKiB, h.time, h.par,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches encoded, using the parameters
// recorded in encoded.
func (h *Argon2Hasher) Verify(encoded, password string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, ErrMalformedHash
	}

	var (
		memKiB, t uint32
		par       uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memKiB, &t, &par); err != nil {
		return false, ErrMalformedHash
	}
	if err := ValidateParams(t, memKiB, par); err != nil {
		return false, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false, ErrMalformedHash
	}

	got := argon2.IDKey([]byte(password), salt, t, memKiB, par, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
