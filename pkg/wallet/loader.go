package wallet

import (
	"os/user"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const defaultWalletName = ".assetnote.wallet"

type Loader interface {
	Load() ([]byte, error)
}

type LoaderImpl struct {
	fs   afero.Fs
	path string
}

// NewLoader reads the wallet from path, or from the home directory when path is empty.
func NewLoader(fs afero.Fs, path string) LoaderImpl {
	return LoaderImpl{fs: fs, path: path}
}

func (a LoaderImpl) Load() ([]byte, error) {
	p, err := a.Path()
	if err != nil {
		return nil, err
	}
	b, err := afero.ReadFile(a.fs, p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read wallet %q", p)
	}
	return b, nil
}

func (a LoaderImpl) Path() (string, error) {
	if a.path != "" {
		return a.path, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(u.HomeDir, defaultWalletName), nil
}
