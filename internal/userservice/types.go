package userservice

import "database/sql"

var (
	// AnonymousUser is the identity carried by requests that present no
	// valid session. Handlers test for it with IsAnonymous.
	AnonymousUser = User{}
)

type UserService struct {
	m *DBModel
}

type DBModel struct {
	db *sql.DB
}

type User struct {
	ID       int      `json:"id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Password Password `json:"-"`
}

// Password holds a plaintext password alongside its derived hash string.
// The stored form embeds the derivation parameters and salt, so comparing
// needs no out-of-band state.
type Password struct {
	Plain  string `json:"-"`
	stored string `json:"-"`
}
