package wallet

import (
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"

	"github.com/assetnote/assetnote/pkg/crypto"
	"github.com/assetnote/assetnote/pkg/proto"
)

// ledgerMnemonicWords is the length of a ledger account mnemonic. Shorter phrases are read as BIP-39.
const ledgerMnemonicWords = 25

// Credential is the issuing identity of the service. It is created once at startup and never changes.
type Credential struct {
	secretKey crypto.SecretKey
	address   proto.Address
}

// NewCredentialFromMnemonic derives the key pair from a 25 word ledger account mnemonic or from a BIP-39 mnemonic.
func NewCredentialFromMnemonic(phrase string) (*Credential, error) {
	seed, err := mnemonicSeed(phrase)
	if err != nil {
		return nil, err
	}
	sk, pk, err := crypto.GenerateKeyPair(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate key pair")
	}
	return &Credential{secretKey: sk, address: proto.NewAddressFromPublicKey(pk)}, nil
}

func normalizeMnemonic(phrase string) string {
	return strings.Join(strings.Fields(phrase), " ")
}

func mnemonicSeed(phrase string) ([]byte, error) {
	phrase = normalizeMnemonic(phrase)
	if len(strings.Fields(phrase)) == ledgerMnemonicWords {
		key, err := mnemonic.ToKey(phrase)
		if err != nil {
			return nil, errors.Wrap(err, "invalid account mnemonic")
		}
		return key, nil
	}
	seed, err := bip39.NewSeedWithErrorChecking(phrase, "")
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}
	return seed[:crypto.SeedSize], nil
}

func validMnemonic(phrase string) bool {
	_, err := mnemonicSeed(phrase)
	return err == nil
}

// NewMnemonic returns a fresh 25 word account mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(crypto.SeedSize * 8)
	if err != nil {
		return "", err
	}
	return mnemonic.FromKey(entropy)
}

func (c *Credential) Address() proto.Address {
	return c.address
}

func (c *Credential) Sign(tx *proto.AssetConfigTx) (*proto.SignedTx, error) {
	if tx.Sender != c.address {
		return nil, errors.Errorf("transaction sender %s is not the credential address %s", tx.Sender, c.address)
	}
	return tx.Sign(c.secretKey)
}
