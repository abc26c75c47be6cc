package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// NewID32 returns a public identifier: exactly 32 lowercase hex characters,
// no separators or prefixes.
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Valid32 reports whether s is a well-formed public identifier.
func Valid32(s string) bool { return reHex32.MatchString(s) }
