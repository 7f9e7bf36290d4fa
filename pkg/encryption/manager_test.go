package encryption

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var testKey = []byte(strings.Repeat("k", 32))

func TestManager_StringRoundTrip(t *testing.T) {
	constructors := map[string]func([]byte) (*Manager, error){
		"chacha20-poly1305":  NewManagerWithChaCha20Poly1305,
		"xchacha20-poly1305": NewManagerWithXChaCha20Poly1305,
		"aes-256-gcm":        NewManagerWithAES256GCM,
	}

	for name, newManager := range constructors {
		t.Run(name, func(t *testing.T) {
			mgr, err := newManager(testKey)
			require.NoError(t, err)

			token, err := mgr.EncryptString("sub-042")
			require.NoError(t, err)
			require.NotEqual(t, "sub-042", token)

			plain, err := mgr.DecryptString(token)
			require.NoError(t, err)
			require.Equal(t, "sub-042", plain)
		})
	}
}

func TestManager_EmptyString(t *testing.T) {
	mgr, err := NewManagerWithChaCha20Poly1305(testKey)
	require.NoError(t, err)

	token, err := mgr.EncryptString("")
	require.NoError(t, err)
	require.Equal(t, "", token)

	plain, err := mgr.DecryptString("")
	require.NoError(t, err)
	require.Equal(t, "", plain)
}

func TestManager_NonDeterministicTokens(t *testing.T) {
	mgr, err := NewManagerWithChaCha20Poly1305(testKey)
	require.NoError(t, err)

	a, err := mgr.EncryptString("sub-001")
	require.NoError(t, err)
	b, err := mgr.EncryptString("sub-001")
	require.NoError(t, err)
	require.NotEqual(t, a, b) // fresh nonce per call
}

func TestManager_DecryptErrors(t *testing.T) {
	mgr, err := NewManagerWithChaCha20Poly1305(testKey)
	require.NoError(t, err)

	_, err = mgr.DecryptString("not base64!!")
	require.Error(t, err)

	_, err = mgr.DecryptString("c2hvcnQ=") // valid base64, too short for a nonce
	require.Error(t, err)
}

func TestManager_WrongKeyFails(t *testing.T) {
	mgr, err := NewManagerWithChaCha20Poly1305(testKey)
	require.NoError(t, err)
	other, err := NewManagerWithChaCha20Poly1305([]byte(strings.Repeat("x", 32)))
	require.NoError(t, err)

	token, err := mgr.EncryptString("sub-042")
	require.NoError(t, err)

	_, err = other.DecryptString(token)
	require.Error(t, err)
}

func TestNewCipher_InvalidKeySizes(t *testing.T) {
	short := []byte("too short")

	_, err := NewChaCha20Poly1305Cipher(short)
	require.Error(t, err)
	_, err = NewXChaCha20Poly1305Cipher(short)
	require.Error(t, err)
	_, err = NewAES256GCMCipher(short)
	require.Error(t, err)
}
