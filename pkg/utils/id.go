package utils

import "github.com/google/uuid"

// UniqueID generates an asset id: the given prefix followed by the first 8
// characters of a random UUID.
func UniqueID(prefix string) string {
	return prefix + uuid.NewString()[:8]
}
