package issuance

import (
	"github.com/pkg/errors"

	"github.com/assetnote/assetnote/pkg/metadata"
	"github.com/assetnote/assetnote/pkg/proto"
)

// AssetModel is the create request and its response.
type AssetModel struct {
	AssetTotal    uint64            `json:"assetTotal"`
	AssetDecimals uint32            `json:"assetDecimals"`
	UnitName      string            `json:"unitName"`
	AssetName     string            `json:"assetName"`
	URL           string            `json:"url"`
	DefaultFrozen bool              `json:"defaultFrozen"`
	Metadata      metadata.Metadata `json:"metadata"`
	TxID          string            `json:"txId,omitempty"`
	AssetID       proto.AssetID     `json:"assetId,omitempty"`
}

// SetTxID stamps the transaction id. Once set it never changes.
func (m *AssetModel) SetTxID(txID string) error {
	if txID == "" {
		return errors.New("empty transaction id")
	}
	if m.TxID != "" && m.TxID != txID {
		return errors.Errorf("transaction id is already set to %s", m.TxID)
	}
	m.TxID = txID
	return nil
}

// AssetParams applies the single issuer policy: the issuer holds every control role.
func (m *AssetModel) AssetParams(issuer proto.Address) proto.AssetParams {
	return proto.AssetParams{
		Total:         m.AssetTotal,
		Decimals:      m.AssetDecimals,
		DefaultFrozen: m.DefaultFrozen,
		UnitName:      m.UnitName,
		AssetName:     m.AssetName,
		URL:           m.URL,
		Manager:       issuer,
		Reserve:       issuer,
		Freeze:        issuer,
		Clawback:      issuer,
	}
}
