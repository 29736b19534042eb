package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a namespaced cache key of the form prefix:hash(parts...).
// The parts fold in everything a cached result depends on (diagram hash,
// routing options, output format), so any change produces a fresh key.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full 64-char SHA-256; a truncated key risks colliding two diagrams.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash fingerprints data as a 64-character SHA-256 hex string. The runner
// uses it to content-address serialized diagrams.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
