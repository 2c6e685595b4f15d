// Package auth sources LinkedIn credentials from the environment and
// persists browser cookies so repeated runs can reuse a live session.
package auth

import (
	"fmt"
	"os"
)

// Environment variables holding the LinkedIn account credentials.
const (
	EnvEmail    = "LINKEDIN_EMAIL"
	EnvPassword = "LINKEDIN_PASSWORD"
)

// Credentials holds the account identity used for form login.
type Credentials struct {
	Email    string
	Password string
}

// FromEnv reads credentials from the environment. A missing value is a
// configuration error; nothing browser-related should start without them.
func FromEnv() (Credentials, error) {
	email := os.Getenv(EnvEmail)
	password := os.Getenv(EnvPassword)
	if email == "" || password == "" {
		return Credentials{}, fmt.Errorf(
			"missing LinkedIn credentials: set %s and %s", EnvEmail, EnvPassword)
	}
	return Credentials{Email: email, Password: password}, nil
}
