package term

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	created, err := EnsureHostKey(path)
	require.NoError(t, err)
	assert.True(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	block, _ := pem.Decode(data)
	require.NotNil(t, block)
	assert.Equal(t, "PRIVATE KEY", block.Type)

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)
	assert.IsType(t, ed25519.PrivateKey{}, key)

	// Existing keys are left alone
	created, err = EnsureHostKey(path)
	require.NoError(t, err)
	assert.False(t, created)

	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestEnsureHostKey_BadDir(t *testing.T) {
	_, err := EnsureHostKey(filepath.Join(t.TempDir(), "missing", "host_key"))
	assert.Error(t, err)
}
