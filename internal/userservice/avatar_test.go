package userservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvatarURL(t *testing.T) {
	// md5("myemailaddress@example.com") per the gravatar documentation.
	want := "https://www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?d=identicon&s=100"

	assert.Equal(t, want, AvatarURL("myemailaddress@example.com"))
}

func TestAvatarURLLowercasesEmail(t *testing.T) {
	assert.Equal(t, AvatarURL("myemailaddress@example.com"), AvatarURL("MyEmailAddress@Example.COM"))
}

func TestAvatarURLIsDeterministic(t *testing.T) {
	a := AvatarURL("testuser@example.com")
	b := AvatarURL("testuser@example.com")
	assert.Equal(t, a, b)
	assert.Contains(t, a, "d=identicon")
	assert.Contains(t, a, "s=100")
}
