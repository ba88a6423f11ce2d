package proto

import (
	"math/bits"

	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/ccoveille/go-safecast"
	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/assetnote/assetnote/pkg/crypto"
)

const (
	AssetConfigTxType = string(types.AssetConfigTx)

	signPrefix       = "TX"
	maxFeeIterations = 4
)

// sizingSignature stands in for the signature while the fee is computed. The encoder omits zero values,
// so a zero signature would make the estimate short.
var sizingSignature = func() (s types.Signature) {
	for i := range s {
		s[i] = 0xff
	}
	return s
}()

// AssetConfigTx creates an asset when ConfigAsset is zero.
type AssetConfigTx struct {
	Type        string
	Sender      Address
	Fee         uint64
	FirstValid  Round
	LastValid   Round
	GenesisID   string
	GenesisHash crypto.Digest
	Note        []byte
	ConfigAsset AssetID
	Params      AssetParams
}

func NewUnsignedAssetCreateTx(sender Address, params AssetParams, note []byte, sp SuggestedParams) *AssetConfigTx {
	return &AssetConfigTx{
		Type:        AssetConfigTxType,
		Sender:      sender,
		Fee:         sp.MinFee,
		FirstValid:  sp.LastRound,
		LastValid:   sp.LastRound + ValidityWindow,
		GenesisID:   sp.GenesisID,
		GenesisHash: sp.GenesisHash,
		Note:        note,
		Params:      params,
	}
}

func (tx *AssetConfigTx) wire() types.Transaction {
	p := tx.Params
	return types.Transaction{
		Type: types.TxType(tx.Type),
		Header: types.Header{
			Sender:      types.Address(tx.Sender),
			Fee:         types.MicroAlgos(tx.Fee),
			FirstValid:  types.Round(tx.FirstValid),
			LastValid:   types.Round(tx.LastValid),
			Note:        tx.Note,
			GenesisID:   tx.GenesisID,
			GenesisHash: types.Digest(tx.GenesisHash),
		},
		AssetConfigTxnFields: types.AssetConfigTxnFields{
			ConfigAsset: types.AssetIndex(tx.ConfigAsset),
			AssetParams: types.AssetParams{
				Total:         p.Total,
				Decimals:      p.Decimals,
				DefaultFrozen: p.DefaultFrozen,
				UnitName:      p.UnitName,
				AssetName:     p.AssetName,
				URL:           p.URL,
				Manager:       types.Address(p.Manager),
				Reserve:       types.Address(p.Reserve),
				Freeze:        types.Address(p.Freeze),
				Clawback:      types.Address(p.Clawback),
			},
		},
	}
}

func assetConfigTxFromWire(t types.Transaction) (AssetConfigTx, error) {
	if t.Type != types.AssetConfigTx {
		return AssetConfigTx{}, errors.Errorf("unexpected transaction type %q", t.Type)
	}
	p := t.AssetParams
	return AssetConfigTx{
		Type:        string(t.Type),
		Sender:      Address(t.Sender),
		Fee:         uint64(t.Fee),
		FirstValid:  Round(t.FirstValid),
		LastValid:   Round(t.LastValid),
		GenesisID:   t.GenesisID,
		GenesisHash: crypto.Digest(t.GenesisHash),
		Note:        t.Note,
		ConfigAsset: AssetID(t.ConfigAsset),
		Params: AssetParams{
			Total:         p.Total,
			Decimals:      p.Decimals,
			DefaultFrozen: p.DefaultFrozen,
			UnitName:      p.UnitName,
			AssetName:     p.AssetName,
			URL:           p.URL,
			Manager:       Address(p.Manager),
			Reserve:       Address(p.Reserve),
			Freeze:        Address(p.Freeze),
			Clawback:      Address(p.Clawback),
		},
	}, nil
}

// BodyBytes returns the canonical msgpack encoding of the unsigned transaction.
func (tx *AssetConfigTx) BodyBytes() []byte {
	return msgpack.Encode(tx.wire())
}

// withSigningMessage calls fn with "TX" followed by the body. msg is only valid during the call.
func (tx *AssetConfigTx) withSigningMessage(fn func(msg []byte)) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.B = append(buf.B, signPrefix...)
	buf.B = append(buf.B, tx.BodyBytes()...)
	fn(buf.B)
}

// ID is the base32 SHA-512/256 of the signing message. It does not depend on the signature.
func (tx *AssetConfigTx) ID() string {
	var d crypto.Digest
	tx.withSigningMessage(func(msg []byte) {
		d = crypto.Hash(msg)
	})
	return d.String()
}

// EstimateSize returns the size of the signed encoding with the current fee.
func (tx *AssetConfigTx) EstimateSize() (uint64, error) {
	b := msgpack.Encode(types.SignedTxn{Sig: sizingSignature, Txn: tx.wire()})
	return safecast.ToUint64(len(b))
}

// ApplyFee sets fee to max(minFee, feePerByte*size). The fee field takes part in the size, so the
// computation repeats until the fee stops changing.
func (tx *AssetConfigTx) ApplyFee(feePerByte, minFee uint64) error {
	tx.Fee = minFee
	for range maxFeeIterations {
		size, err := tx.EstimateSize()
		if err != nil {
			return err
		}
		hi, fee := bits.Mul64(feePerByte, size)
		if hi != 0 {
			return errors.Errorf("fee overflow: %d per byte for %d bytes", feePerByte, size)
		}
		fee = max(fee, minFee)
		if fee == tx.Fee {
			return nil
		}
		tx.Fee = fee
	}
	return nil
}

func (tx *AssetConfigTx) Sign(secretKey crypto.SecretKey) (*SignedTx, error) {
	var (
		sig crypto.Signature
		err error
	)
	tx.withSigningMessage(func(msg []byte) {
		sig, err = crypto.Sign(secretKey, msg)
	})
	if err != nil {
		return nil, err
	}
	return &SignedTx{Signature: sig, Tx: *tx}, nil
}

type SignedTx struct {
	Signature crypto.Signature
	Tx        AssetConfigTx
}

func (s *SignedTx) MarshalBinary() ([]byte, error) {
	return msgpack.Encode(types.SignedTxn{Sig: types.Signature(s.Signature), Txn: s.Tx.wire()}), nil
}

func (s *SignedTx) UnmarshalBinary(data []byte) error {
	var st types.SignedTxn
	if err := msgpack.Decode(data, &st); err != nil {
		return errors.Wrap(err, "failed to unmarshal signed transaction")
	}
	tx, err := assetConfigTxFromWire(st.Txn)
	if err != nil {
		return err
	}
	s.Signature = crypto.Signature(st.Sig)
	s.Tx = tx
	return nil
}

func (s *SignedTx) ID() string {
	return s.Tx.ID()
}

// Verify checks the signature against the sender.
func (s *SignedTx) Verify() bool {
	var ok bool
	s.Tx.withSigningMessage(func(msg []byte) {
		ok = crypto.Verify(s.Tx.Sender.PublicKey(), s.Signature, msg)
	})
	return ok
}
