package util

import (
	"crypto/sha1"
	"encoding/hex"
)

// StableID returns the hex sha1 of s. Used for scene node IDs in the
// interchange document so the same source always yields the same IDs.
func StableID(s string) string {
	hasher := sha1.New()
	hasher.Write([]byte(s))

	return hex.EncodeToString(hasher.Sum(nil))
}
