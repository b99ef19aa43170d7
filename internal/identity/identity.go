// Package identity defines the authentication provider contract the session
// layer is written against. Implementations own credential storage and token
// issuance; callers only see accounts and a change stream.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials is returned when an email/password pair does not
	// match a stored account.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailInUse is returned by SignUp when the email already has an account.
	ErrEmailInUse = errors.New("email already in use")

	// ErrWeakPassword is returned by SignUp when the password is shorter than
	// the provider's minimum.
	ErrWeakPassword = errors.New("password too weak")

	// ErrAccountNotFound is returned when an operation references an unknown UID.
	ErrAccountNotFound = errors.New("account not found")
)

// Account is the provider's view of an authenticated user.
type Account struct {
	UID         string
	Email       string
	DisplayName string
}

// Provider is the authentication backend. Changes delivers the current
// account after every sign-in, profile update, and sign-out (nil on
// sign-out), letting observers react without polling.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*Account, error)
	SignIn(ctx context.Context, email, password string) (*Account, error)
	SignOut(ctx context.Context) error
	UpdateDisplayName(ctx context.Context, uid, name string) error
	Changes() <-chan *Account
}
