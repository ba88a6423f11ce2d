package proto

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/assetnote/assetnote/pkg/crypto"
)

const (
	// MaxNoteSize is the largest note a transaction may carry.
	MaxNoteSize = 1024
	// ValidityWindow is the number of rounds a transaction stays valid after its first valid round.
	ValidityWindow = 1000
)

// Round is the ledger's logical clock.
type Round uint64

func (r Round) String() string {
	return strconv.FormatUint(uint64(r), 10)
}

type AssetID uint64

func (id AssetID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func NewAssetIDFromString(s string) (AssetID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid asset id %q", s)
	}
	return AssetID(v), nil
}

// SuggestedParams are the network parameters a transaction is built from.
type SuggestedParams struct {
	ConsensusVersion string
	FeePerByte       uint64
	MinFee           uint64
	GenesisID        string
	GenesisHash      crypto.Digest
	LastRound        Round
}

// Validate rejects parameters that could not have come from a live node.
func (p SuggestedParams) Validate() error {
	switch {
	case p.LastRound == 0:
		return errors.New("last round is missing")
	case p.MinFee == 0:
		return errors.New("min fee is missing")
	case p.GenesisHash == crypto.Digest{}:
		return errors.New("genesis hash is missing")
	}
	return nil
}
