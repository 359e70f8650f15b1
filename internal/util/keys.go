package util

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// BindingID returns a deterministic short id for an ordered list of parts:
// prefix + ":" + the first 16 hex chars of their SHA-256.
func BindingID(prefix string, parts []string) string {
	joined := strings.Join(parts, "\x00")
	sum := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("%s:%x", prefix, sum)[:len(prefix)+1+16]
}
