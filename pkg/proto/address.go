package proto

import (
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/pkg/errors"

	"github.com/assetnote/assetnote/pkg/crypto"
)

const AddressSize = crypto.PublicKeySize

// Address is the public key of an account. Its text form is the 58 character base32 of the key followed by
// the last four bytes of its SHA-512/256 hash.
type Address [AddressSize]byte

func NewAddressFromPublicKey(publicKey crypto.PublicKey) Address {
	return Address(publicKey)
}

func NewAddressFromString(s string) (Address, error) {
	decoded, err := types.DecodeAddress(s)
	if err != nil {
		return Address{}, errors.Wrapf(err, "invalid address %q", s)
	}
	a := Address(decoded)
	if !a.Valid() {
		return Address{}, errors.Errorf("address %q is not a valid public key", s)
	}
	return a, nil
}

func (a Address) PublicKey() crypto.PublicKey {
	return crypto.PublicKey(a)
}

func (a Address) Valid() bool {
	return a.PublicKey().Valid()
}

func (a Address) String() string {
	return types.Address(a).String()
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	r, err := NewAddressFromString(string(text))
	if err != nil {
		return err
	}
	*a = r
	return nil
}
