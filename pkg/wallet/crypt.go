package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/scrypt"
)

const (
	saltSize = 16
	keySize  = 32

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// crypt seals wallet data with AES-GCM under a key stretched from the password.
type crypt struct {
	password []byte
}

func newCrypt(password []byte) *crypt {
	return &crypt{password: password}
}

func (a *crypt) Encrypt(plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	aead, err := a.aead(salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	out := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, salt), nil
}

func (a *crypt) Decrypt(data []byte) ([]byte, error) {
	if len(data) < saltSize {
		return nil, errors.Errorf("invalid cipher size %d", len(data))
	}
	salt := data[:saltSize]
	aead, err := a.aead(salt)
	if err != nil {
		return nil, err
	}
	rest := data[saltSize:]
	if len(rest) < aead.NonceSize()+aead.Overhead() {
		return nil, errors.Errorf("invalid cipher size %d", len(data))
	}
	nonce, ciphertext := rest[:aead.NonceSize()], rest[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, salt)
	if err != nil {
		return nil, errors.New("invalid password")
	}
	return plaintext, nil
}

func (a *crypt) aead(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(a.password, salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
