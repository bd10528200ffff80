// Package validate checks request input before any store access.
// Messages are client-facing and their wording is part of the API.
package validate

import "regexp"

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLen = 6

// Register validates input for account creation. Returns one message per
// rejected field, empty when the input is acceptable.
func Register(name, email, password string) []string {
	var msgs []string
	if name == "" {
		msgs = append(msgs, "Name is required")
	}
	if !emailRx.MatchString(email) {
		msgs = append(msgs, "Please include a valid email")
	}
	if len(password) < minPasswordLen {
		msgs = append(msgs, "Please enter a password with 6 or more characters")
	}
	return msgs
}

// Login validates input for authentication.
func Login(email, password string) []string {
	var msgs []string
	if !emailRx.MatchString(email) {
		msgs = append(msgs, "Please include a valid email")
	}
	if password == "" {
		msgs = append(msgs, "Password is required")
	}
	return msgs
}
