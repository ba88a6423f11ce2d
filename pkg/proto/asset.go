package proto

import (
	"fmt"
)

const (
	MaxUnitNameLen  = 8
	MaxAssetNameLen = 32
	MaxURLLen       = 96
	MaxDecimals     = 19
)

// AssetParams are the parameters of an asset being created.
type AssetParams struct {
	Total         uint64
	Decimals      uint32
	DefaultFrozen bool
	UnitName      string
	AssetName     string
	URL           string
	Manager       Address
	Reserve       Address
	Freeze        Address
	Clawback      Address
}

func (p AssetParams) Validate() error {
	if p.Total == 0 {
		return fmt.Errorf("total must be positive")
	}
	if p.Decimals > MaxDecimals {
		return fmt.Errorf("decimals %d exceed %d", p.Decimals, MaxDecimals)
	}
	if l := len(p.UnitName); l > MaxUnitNameLen {
		return fmt.Errorf("unit name is %d bytes, at most %d allowed", l, MaxUnitNameLen)
	}
	if l := len(p.AssetName); l > MaxAssetNameLen {
		return fmt.Errorf("asset name is %d bytes, at most %d allowed", l, MaxAssetNameLen)
	}
	if l := len(p.URL); l > MaxURLLen {
		return fmt.Errorf("url is %d bytes, at most %d allowed", l, MaxURLLen)
	}
	return nil
}
