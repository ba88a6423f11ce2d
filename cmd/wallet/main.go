package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/howeyc/gopass"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	"github.com/assetnote/assetnote/pkg/wallet"
)

var usage = `

Usage:
  wallet command [flags]

Available Commands:
  new          Generate a new issuer mnemonic and store it in an encrypted wallet
  add          Store an existing mnemonic in an encrypted wallet
  show         Print the wallet mnemonic and issuer address

`

type Opts struct {
	Force        bool
	PathToWallet string
}

func main() {
	opts := Opts{}

	flag.BoolVarP(&opts.Force, "force", "f", false, "Overwrite existing wallet")
	flag.StringVarP(&opts.PathToWallet, "wallet", "w", "", "Path to wallet")

	flag.Parse()

	fs := afero.NewOsFs()
	var err error
	switch flag.Arg(0) {
	case "new":
		err = newWallet(fs, opts)
	case "add":
		err = addToWallet(fs, opts)
	case "show":
		err = show(fs, opts)
	default:
		showUsageAndExit()
	}
	if err != nil {
		fmt.Printf("Err: %s\n", err.Error())
		os.Exit(1)
	}
}

func showUsageAndExit() {
	fmt.Print(usage)
	flag.PrintDefaults()
	os.Exit(0)
}

func askPassword() ([]byte, error) {
	fmt.Print("Enter password: ")
	pass, err := gopass.GetPasswd()
	if err != nil {
		return nil, errors.New("interrupted")
	}
	if len(pass) == 0 {
		return nil, errors.New("password required")
	}
	return pass, nil
}

func newWallet(fs afero.Fs, opts Opts) error {
	mnemonic, err := wallet.NewMnemonic()
	if err != nil {
		return err
	}
	pass, err := askPassword()
	if err != nil {
		return err
	}
	cred, err := writeWallet(fs, opts, mnemonic, pass)
	if err != nil {
		return err
	}
	fmt.Printf("mnemonic: %s\naddress: %s\nCreated!\n", mnemonic, cred.Address())
	return nil
}

func addToWallet(fs afero.Fs, opts Opts) error {
	pass, err := askPassword()
	if err != nil {
		return err
	}
	fmt.Print("Enter mnemonic: ")
	mnemonic, err := gopass.GetPasswd()
	if err != nil {
		return errors.New("interrupted")
	}
	cred, err := writeWallet(fs, opts, string(mnemonic), pass)
	if err != nil {
		return err
	}
	fmt.Printf("address: %s\nCreated!\n", cred.Address())
	return nil
}

func show(fs afero.Fs, opts Opts) error {
	pass, err := askPassword()
	if err != nil {
		return err
	}
	wlt, err := readWallet(fs, opts, pass)
	if err != nil {
		return err
	}
	cred, err := wlt.Credential()
	if err != nil {
		return err
	}
	fmt.Printf("mnemonic: %s\naddress: %s\n", wlt.Mnemonic(), cred.Address())
	return nil
}

func writeWallet(fs afero.Fs, opts Opts, mnemonic string, pass []byte) (*wallet.Credential, error) {
	walletPath, err := wallet.NewLoader(fs, opts.PathToWallet).Path()
	if err != nil {
		return nil, err
	}
	exists, err := afero.Exists(fs, walletPath)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Force {
		return nil, errors.Errorf("wallet %q already exists, use --force to overwrite", walletPath)
	}
	wlt, err := wallet.NewWallet(strings.TrimSpace(mnemonic))
	if err != nil {
		return nil, err
	}
	cred, err := wlt.Credential()
	if err != nil {
		return nil, err
	}
	bts, err := wlt.Encode(pass)
	if err != nil {
		return nil, err
	}
	if err := afero.WriteFile(fs, walletPath, bts, 0600); err != nil {
		return nil, errors.Wrapf(err, "failed to write wallet %q", walletPath)
	}
	return cred, nil
}

func readWallet(fs afero.Fs, opts Opts, pass []byte) (*wallet.Wallet, error) {
	b, err := wallet.NewLoader(fs, opts.PathToWallet).Load()
	if err != nil {
		return nil, err
	}
	return wallet.Decode(b, pass)
}
