package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"

	"timeboard/internal/common"
)

const (
	saltLength = 16
	keyLength  = 32

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// HashPassword derives an argon2id hash of password under a fresh random
// salt. The salt is stored in the first saltLength bytes of the result so
// VerifyPassword needs no extra state.
func HashPassword(password []byte) []byte {
	salt := common.GenerateRandByteArray(saltLength)
	key := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, keyLength)
	return append(salt, key...)
}

// VerifyPassword reports whether password matches the stored salt+hash.
// The hash comparison is constant time.
func VerifyPassword(password []byte, stored []byte) bool {
	if len(stored) != saltLength+keyLength {
		return false
	}
	salt := stored[:saltLength]
	key := argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, keyLength)
	return subtle.ConstantTimeCompare(key, stored[saltLength:]) == 1
}
