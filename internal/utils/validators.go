// Package utils holds small input validators shared by the auth and
// profile handlers.
package utils

import (
	"net/mail"
	"strings"
	"unicode"
)

// IsValidEmail reports whether the address is a bare, parseable email
// whose domain contains a dot.
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	return strings.Contains(domain, ".")
}

// IsComplexPassword reports whether the password is at least 8 characters
// and mixes upper case, lower case, a digit and a symbol.
func IsComplexPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}
