package core

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/pbkdf2"
)

// Sealed backup format constants
const (
	sealMagic        = "STUDYPLAN"
	pbkdf2Iterations = 100000
	saltSize         = 16
	nonceSize        = 12
	keySize          = 32

	// MinPasswordLength is the shortest password accepted for sealing.
	MinPasswordLength = 8
)

var (
	// ErrDecryptionFailed is returned when a sealed backup cannot be opened
	ErrDecryptionFailed = errors.New("decryption failed: wrong password or corrupted data")

	// ErrInvalidArmor is returned for input that is not a sealed backup
	ErrInvalidArmor = errors.New("invalid sealed backup: missing " + sealMagic + " header")
)

// IsSealed reports whether data looks like an armored encrypted backup.
func IsSealed(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte(sealMagic+":"))
}

// Seal encrypts plaintext with AES-256-GCM under a PBKDF2 key and returns
// the armored text "STUDYPLAN:<base58(salt|nonce|ciphertext)>".
func Seal(plaintext []byte, password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	gcm, err := newGCM(password, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	result := make([]byte, 0, saltSize+nonceSize+len(ciphertext))
	result = append(result, salt...)
	result = append(result, nonce...)
	result = append(result, ciphertext...)

	return sealMagic + ":" + base58.Encode(result), nil
}

// Unseal reverses Seal.
func Unseal(armored []byte, password string) ([]byte, error) {
	text := strings.TrimSpace(string(armored))
	if !strings.HasPrefix(text, sealMagic+":") {
		return nil, ErrInvalidArmor
	}

	data := base58.Decode(strings.TrimPrefix(text, sealMagic+":"))

	// 16 is the GCM tag size
	if len(data) < saltSize+nonceSize+16 {
		return nil, fmt.Errorf("sealed backup too short: %w", ErrInvalidArmor)
	}

	salt := data[:saltSize]
	nonce := data[saltSize : saltSize+nonceSize]
	ciphertext := data[saltSize+nonceSize:]

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keySize, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, nil
}
