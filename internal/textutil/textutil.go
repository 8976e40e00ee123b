package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hash computes a SHA-256 hex hash of a string for deduplication.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxLen bytes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// SplitCodes splits a two-part flag value such as "US-GB" or "en-de". An
// empty value yields no codes.
func SplitCodes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "-")
}
