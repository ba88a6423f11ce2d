package main

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/assetnote/assetnote/pkg/proto"
	"github.com/assetnote/assetnote/pkg/wallet"
)

// loadCredential reads the issuer mnemonic from a mnemonic file, an encrypted wallet or the environment, in that order.
func loadCredential(fs afero.Fs, c *config, getenv func(string) string) (*wallet.Credential, error) {
	cred, err := readCredential(fs, c, getenv)
	if err != nil {
		return nil, err
	}
	if c.address != "" {
		expected, err := proto.NewAddressFromString(c.address)
		if err != nil {
			return nil, errors.Wrap(err, "invalid --address")
		}
		if expected != cred.Address() {
			return nil, errors.Errorf("credential belongs to %s, expected %s", cred.Address(), expected)
		}
	}
	return cred, nil
}

func readCredential(fs afero.Fs, c *config, getenv func(string) string) (*wallet.Credential, error) {
	switch {
	case c.mnemonicFile != "":
		b, err := afero.ReadFile(fs, c.mnemonicFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read mnemonic file")
		}
		return wallet.NewCredentialFromMnemonic(string(b))
	case c.walletPath != "":
		password, err := afero.ReadFile(fs, c.walletPasswordFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read wallet password file")
		}
		data, err := wallet.NewLoader(fs, c.walletPath).Load()
		if err != nil {
			return nil, err
		}
		wlt, err := wallet.Decode(data, bytes.TrimRight(password, "\r\n"))
		if err != nil {
			return nil, errors.Wrap(err, "failed to open wallet")
		}
		return wlt.Credential()
	default:
		mnemonic := getenv(mnemonicEnv)
		if mnemonic == "" {
			return nil, errors.New("no issuer credential: set --mnemonic-file, --wallet or " + mnemonicEnv)
		}
		return wallet.NewCredentialFromMnemonic(mnemonic)
	}
}
