package userservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hueyvil/inkpost/internal/common"
)

var (
	ErrAuthenticationFailure = errors.New("invalid credentials")
)

func NewUserService(db *sql.DB) *UserService {
	return &UserService{
		m: newUserModel(db),
	}
}

// RegisterUser creates a new user account. The email address is checked for
// an existing account before the insert; the stored password is the derived
// hash, never the plaintext.
func (s *UserService) RegisterUser(ctx context.Context, name, email, password string) (*User, error) {
	v := common.NewValidator()
	validateName(v, name)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	taken, err := s.m.emailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	u := User{
		Name:     name,
		Email:    email,
		Password: Password{Plain: password},
	}

	if err := u.Password.set(u.Password.Plain); err != nil {
		return nil, err
	}

	if err := s.m.insertUser(ctx, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

// AuthenticateUser looks up the account by email and verifies the password.
// An unknown address returns ErrNotFound so the caller can distinguish it
// from a wrong password.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*User, error) {
	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user, err := s.m.getUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAuthenticationFailure
	}

	return user, nil
}

// GetUserByID restores a user from a session reference. A missing row is
// ErrNotFound; callers are expected to fail the request rather than fall
// back to an anonymous identity.
func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getUserById(ctx, id)
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
