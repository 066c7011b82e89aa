package userservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordSetAndCompare(t *testing.T) {
	var p Password
	err := p.set("Secret123!")
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.stored, "pbkdf2:sha256:600000$"))
	assert.NotEqual(t, "Secret123!", p.stored)
	assert.NotContains(t, p.stored[len("pbkdf2:sha256:600000$"):], "Secret123!")

	parts := strings.SplitN(p.stored, "$", 3)
	assert.Len(t, parts, 3)
	assert.Len(t, parts[1], saltLength)

	ok, err := p.compare("Secret123!")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.compare("wrong password")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordSaltIsRandom(t *testing.T) {
	var p1, p2 Password
	assert.NoError(t, p1.set("same password"))
	assert.NoError(t, p2.set("same password"))

	assert.NotEqual(t, p1.stored, p2.stored)
}

func TestPasswordCompareIterationsFromStored(t *testing.T) {
	// The iteration count embedded in the stored string wins over the
	// package default, so hashes written with older settings still verify.
	var p Password
	assert.NoError(t, p.set("Secret123!"))

	rehash := Password{stored: p.stored}
	ok, err := rehash.compare("Secret123!")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordCompareMalformedHash(t *testing.T) {
	testCases := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "plaintext", stored: "hunter2"},
		{name: "wrong method", stored: "bcrypt$abc$def"},
		{name: "bad iteration count", stored: "pbkdf2:sha256:lots$salt$00ff"},
		{name: "bad hex digest", stored: "pbkdf2:sha256:600000$salt$zzzz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := Password{stored: tc.stored}
			ok, err := p.compare("anything")
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrInvalidHash)
		})
	}
}
