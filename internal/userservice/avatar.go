package userservice

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	avatarBaseURL = "https://www.gravatar.com/avatar"
	avatarSize    = 100
)

// AvatarURL builds the gravatar URL for an email address: the address is
// lower-cased, MD5-hashed and hex-encoded into a fixed template with an
// identicon fallback. No network call happens here; the browser resolves
// the returned URL.
func AvatarURL(email string) string {
	digest := md5.Sum([]byte(strings.ToLower(email)))
	return fmt.Sprintf("%s/%s?d=identicon&s=%d", avatarBaseURL, hex.EncodeToString(digest[:]), avatarSize)
}
