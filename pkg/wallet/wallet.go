package wallet

import (
	"encoding/binary"
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	curVersion  = 3
	versionSize = 4
)

type walletFormat struct {
	Mnemonic string `json:"mnemonic"`
}

// Wallet is an encrypted file that keeps the service mnemonic.
type Wallet struct {
	Version uint32
	format  walletFormat
}

func NewWallet(mnemonic string) (*Wallet, error) {
	mnemonic = normalizeMnemonic(mnemonic)
	if !validMnemonic(mnemonic) {
		return nil, errors.New("invalid mnemonic")
	}
	return &Wallet{Version: curVersion, format: walletFormat{Mnemonic: mnemonic}}, nil
}

func (a *Wallet) Mnemonic() string {
	return a.format.Mnemonic
}

func (a *Wallet) Credential() (*Credential, error) {
	return NewCredentialFromMnemonic(a.format.Mnemonic)
}

func (a *Wallet) Encode(password []byte) ([]byte, error) {
	walletData, err := json.Marshal(a.format)
	if err != nil {
		return nil, err
	}
	rs, err := newCrypt(password).Encrypt(walletData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt wallet")
	}
	rs = append(make([]byte, versionSize), rs...)
	binary.BigEndian.PutUint32(rs[:versionSize], curVersion)
	return rs, nil
}

func Decode(walletData []byte, password []byte) (*Wallet, error) {
	if len(walletData) < versionSize {
		return nil, errors.Errorf("wallet data is too short: %d bytes", len(walletData))
	}
	version := binary.BigEndian.Uint32(walletData[:versionSize])
	if version != curVersion {
		return nil, errors.Errorf("unsupported wallet version %d", version)
	}
	bts, err := newCrypt(password).Decrypt(walletData[versionSize:])
	if err != nil {
		return nil, err
	}
	format := walletFormat{}
	if err := json.Unmarshal(bts, &format); err != nil {
		return nil, errors.Wrap(err, "corrupted wallet data")
	}
	if !validMnemonic(format.Mnemonic) {
		return nil, errors.New("wallet holds an invalid mnemonic")
	}
	return &Wallet{Version: version, format: format}, nil
}
