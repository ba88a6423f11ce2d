// Package crypto holds the ledger's key, signature and hash primitives.
package crypto

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/base32"
	"encoding/base64"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"
)

const (
	DigestSize    = sha512.Size256
	SeedSize      = ed25519.SeedSize
	PublicKeySize = ed25519.PublicKeySize
	SecretKeySize = ed25519.PrivateKeySize
	SignatureSize = ed25519.SignatureSize
)

// Base32 is the text encoding of digests and addresses.
var Base32 = base32.StdEncoding.WithPadding(base32.NoPadding)

type Digest [DigestSize]byte

func (d Digest) String() string {
	return Base32.EncodeToString(d[:])
}

func NewDigestFromBase32(s string) (Digest, error) {
	var d Digest
	b, err := Base32.DecodeString(s)
	if err != nil {
		return d, errors.Wrap(err, "invalid base32 digest")
	}
	if l := len(b); l != DigestSize {
		return d, errors.Errorf("incorrect digest length %d, expected %d", l, DigestSize)
	}
	copy(d[:], b)
	return d, nil
}

// SecretKey holds the ed25519 seed followed by the public key.
type SecretKey [SecretKeySize]byte

func (k SecretKey) PublicKey() PublicKey {
	var pk PublicKey
	copy(pk[:], k[SeedSize:])
	return pk
}

// Seed returns the 32 bytes the key pair is generated from.
func (k SecretKey) Seed() []byte {
	return bytes.Clone(k[:SeedSize])
}

type PublicKey [PublicKeySize]byte

func (k PublicKey) String() string {
	return base64.StdEncoding.EncodeToString(k[:])
}

// Valid reports whether the key is a canonical encoding of a curve point.
func (k PublicKey) Valid() bool {
	p, err := new(edwards25519.Point).SetBytes(k[:])
	if err != nil {
		return false
	}
	return bytes.Equal(p.Bytes(), k[:])
}

type Signature [SignatureSize]byte

func (s Signature) String() string {
	return base64.StdEncoding.EncodeToString(s[:])
}

// Hash is SHA-512/256, the digest the ledger uses for transaction ids and address checksums.
func Hash(data []byte) Digest {
	return sha512.Sum512_256(data)
}

func GenerateKeyPair(seed []byte) (SecretKey, PublicKey, error) {
	var (
		sk SecretKey
		pk PublicKey
	)
	if l := len(seed); l != SeedSize {
		return sk, pk, errors.Errorf("invalid seed length %d, expected %d", l, SeedSize)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	copy(sk[:], priv)
	copy(pk[:], priv[SeedSize:])
	return sk, pk, nil
}

// Sign fails when the public half of the secret key does not match its seed.
func Sign(secretKey SecretKey, data []byte) (Signature, error) {
	var sig Signature
	derived := ed25519.NewKeyFromSeed(secretKey[:SeedSize])
	if !bytes.Equal(derived[SeedSize:], secretKey[SeedSize:]) {
		return sig, errors.New("secret key does not match its public key")
	}
	copy(sig[:], ed25519.Sign(derived, data))
	return sig, nil
}

func Verify(publicKey PublicKey, signature Signature, data []byte) bool {
	return ed25519.Verify(publicKey[:], data, signature[:])
}
