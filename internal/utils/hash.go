package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

var fingerprintPool = sync.Pool{
	New: func() any { return sha256.New() },
}

// Fingerprint returns the hex SHA-256 of parts joined by a zero byte.
// It keys cached chart responses by endpoint and request body.
func Fingerprint(parts ...[]byte) string {
	h := fingerprintPool.Get().(hash.Hash)
	h.Reset()

	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write(p)
	}
	sum := h.Sum(nil)

	h.Reset()
	fingerprintPool.Put(h)

	return hex.EncodeToString(sum)
}
