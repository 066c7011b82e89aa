package userservice

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 600_000
	pbkdf2KeyLength  = 32
	saltLength       = 8
)

var (
	ErrInvalidHash = errors.New("invalid password hash")

	saltAlphabet = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
)

func generateSalt() (string, error) {
	b := make([]byte, saltLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	for i := range b {
		b[i] = saltAlphabet[int(b[i])%len(saltAlphabet)]
	}

	return string(b), nil
}

// set derives a salted PBKDF2-HMAC-SHA256 hash and records it in the form
// pbkdf2:sha256:<iterations>$<salt>$<hexdigest>.
func (p *Password) set(pwd string) error {
	salt, err := generateSalt()
	if err != nil {
		return err
	}

	key := pbkdf2.Key([]byte(pwd), []byte(salt), pbkdf2Iterations, pbkdf2KeyLength, sha256.New)

	p.Plain = pwd
	p.stored = fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", pbkdf2Iterations, salt, hex.EncodeToString(key))

	return nil
}

// compare re-derives the hash using the parameters embedded in the stored
// string and reports whether it matches.
func (p *Password) compare(pwd string) (bool, error) {
	parts := strings.SplitN(p.stored, "$", 3)
	if len(parts) != 3 {
		return false, ErrInvalidHash
	}

	method, salt, digest := parts[0], parts[1], parts[2]

	iterations := pbkdf2Iterations
	switch {
	case method == "pbkdf2:sha256":
	case strings.HasPrefix(method, "pbkdf2:sha256:"):
		n, err := strconv.Atoi(strings.TrimPrefix(method, "pbkdf2:sha256:"))
		if err != nil {
			return false, ErrInvalidHash
		}
		iterations = n
	default:
		return false, ErrInvalidHash
	}

	want, err := hex.DecodeString(digest)
	if err != nil {
		return false, ErrInvalidHash
	}

	got := pbkdf2.Key([]byte(pwd), []byte(salt), iterations, len(want), sha256.New)

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
