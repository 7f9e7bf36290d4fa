package encryption

import (
	"encoding/base64"
	"fmt"
)

// Manager handles encryption and decryption of sensitive recording fields,
// primarily subject codes, which are stored encrypted at rest for
// de-identification.
type Manager struct {
	cipher *Cipher
}

// NewManager creates a new encryption manager with the specified cipher.
func NewManager(cipher *Cipher) *Manager {
	return &Manager{
		cipher: cipher,
	}
}

// NewManagerWithChaCha20Poly1305 creates a manager using ChaCha20-Poly1305 (recommended default).
func NewManagerWithChaCha20Poly1305(key []byte) (*Manager, error) {
	cipher, err := NewChaCha20Poly1305Cipher(key)
	if err != nil {
		return nil, err
	}
	return NewManager(cipher), nil
}

// NewManagerWithXChaCha20Poly1305 creates a manager using XChaCha20-Poly1305.
func NewManagerWithXChaCha20Poly1305(key []byte) (*Manager, error) {
	cipher, err := NewXChaCha20Poly1305Cipher(key)
	if err != nil {
		return nil, err
	}
	return NewManager(cipher), nil
}

// NewManagerWithAES256GCM creates a manager using AES-256-GCM.
func NewManagerWithAES256GCM(key []byte) (*Manager, error) {
	cipher, err := NewAES256GCMCipher(key)
	if err != nil {
		return nil, err
	}
	return NewManager(cipher), nil
}

// CipherType returns the cipher type used by this manager.
func (m *Manager) CipherType() CipherType {
	return m.cipher.Type()
}

// EncryptString encrypts a plaintext string and returns a base64 token
// suitable for a text column. Empty input round-trips to an empty token.
func (m *Manager) EncryptString(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	sealed, err := m.cipher.Encrypt([]byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("encrypt string: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptString reverses EncryptString.
func (m *Manager) DecryptString(token string) (string, error) {
	if token == "" {
		return "", nil
	}

	sealed, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}

	plaintext, err := m.cipher.Decrypt(sealed)
	if err != nil {
		return "", fmt.Errorf("decrypt string: %w", err)
	}

	return string(plaintext), nil
}
