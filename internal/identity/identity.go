// Package identity resolves the current user. The mobile app gets this
// from its auth provider; the companion reads it from the environment
// so every command acts on the same account.
package identity

import (
	"fmt"
	"os"
)

// User is the authenticated account the companion operates as.
type User struct {
	UID   string
	Email string
}

// Provider yields the current user.
type Provider interface {
	Current() (User, error)
}

// EnvProvider reads the user from STEPSYNC_UID and STEPSYNC_EMAIL.
type EnvProvider struct{}

func (EnvProvider) Current() (User, error) {
	uid := os.Getenv("STEPSYNC_UID")
	if uid == "" {
		return User{}, fmt.Errorf("STEPSYNC_UID not set: set it to your account id")
	}
	return User{UID: uid, Email: os.Getenv("STEPSYNC_EMAIL")}, nil
}

// Static returns a fixed user; used in tests and local tooling.
type Static struct {
	User User
}

func (s Static) Current() (User, error) {
	if s.User.UID == "" {
		return User{}, fmt.Errorf("static identity has no uid")
	}
	return s.User, nil
}
