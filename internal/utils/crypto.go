package utils

import "crypto/rand"

// RandomDigits returns a string of n decimal digits read from crypto/rand.
func RandomDigits(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = '0' + b[i]%10
	}
	return string(b), nil
}

// MustRandomDigits panics if the system randomness source fails.
func MustRandomDigits(n int) string {
	s, err := RandomDigits(n)
	if err != nil {
		panic("failed to generate random digits: " + err.Error())
	}
	return s
}
