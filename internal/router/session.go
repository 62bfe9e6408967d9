package router

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const sessionKeyInfo = "bloghub session cookie v1"

// sessionKeys derives the cookie signing key and the AES-256 encryption key from the one
// configured secret, so the session cookie is both authenticated and unreadable.
func sessionKeys(secret string) (hashKey, blockKey []byte, err error) {
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(sessionKeyInfo))

	hashKey = make([]byte, 64)
	if _, err := io.ReadFull(r, hashKey); err != nil {
		return nil, nil, fmt.Errorf("derive session hash key: %w", err)
	}
	blockKey = make([]byte, 32)
	if _, err := io.ReadFull(r, blockKey); err != nil {
		return nil, nil, fmt.Errorf("derive session block key: %w", err)
	}
	return hashKey, blockKey, nil
}
