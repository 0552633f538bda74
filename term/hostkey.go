package term

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
)

// EnsureHostKey generates an ed25519 host key at path if none exists.
// Returns true when a new key was written.
func EnsureHostKey(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil // key already exists
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return false, fmt.Errorf("generate host key: %w", err)
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return false, fmt.Errorf("marshal host key: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return false, fmt.Errorf("write host key: %w", err)
	}
	defer f.Close()

	if err := pem.Encode(f, &pem.Block{Type: "PRIVATE KEY", Bytes: keyBytes}); err != nil {
		return false, fmt.Errorf("write host key: %w", err)
	}
	return true, nil
}
