// Package issuance builds signed asset creation transactions.
package issuance

import (
	"context"

	"go.uber.org/zap"

	"github.com/assetnote/assetnote/pkg/client"
	"github.com/assetnote/assetnote/pkg/errs"
	"github.com/assetnote/assetnote/pkg/metadata"
	"github.com/assetnote/assetnote/pkg/proto"
)

//go:generate mockgen -destination=../mock/params_provider.go -package=mock github.com/assetnote/assetnote/pkg/issuance ParamsProvider

type ParamsProvider interface {
	SuggestedParams(ctx context.Context) (*client.TransactionParams, *client.Response, error)
}

type Signer interface {
	Address() proto.Address
	Sign(tx *proto.AssetConfigTx) (*proto.SignedTx, error)
}

// Intent is a signed transaction ready for submission. It lives for one create call.
type Intent struct {
	Signed *proto.SignedTx
	// Raw is the wire encoding of Signed, submitted as is.
	Raw  []byte
	TxID string
}

type Builder struct {
	params ParamsProvider
	signer Signer
	logger *zap.Logger
}

func NewBuilder(params ParamsProvider, signer Signer, logger *zap.Logger) *Builder {
	return &Builder{params: params, signer: signer, logger: logger.Named("builder")}
}

// Build validates the model and encodes its metadata before touching the network.
func (b *Builder) Build(ctx context.Context, model *AssetModel) (*Intent, error) {
	issuer := b.signer.Address()
	params := model.AssetParams(issuer)
	if err := params.Validate(); err != nil {
		return nil, errs.NewInvalidAssetParams(err.Error())
	}
	md := model.Metadata
	if md == nil {
		md = metadata.Metadata{}
	}
	note, err := metadata.Encode(md)
	if err != nil {
		return nil, errs.Extend(err, "encode metadata")
	}
	if len(note) > proto.MaxNoteSize {
		return nil, errs.NewPayloadTooLarge(len(note), proto.MaxNoteSize)
	}

	tp, _, err := b.params.SuggestedParams(ctx)
	if err != nil {
		return nil, errs.NewNetworkUnavailable("suggested params: " + err.Error())
	}
	sp, err := tp.ToSuggestedParams()
	if err != nil {
		return nil, errs.NewNetworkUnavailable("suggested params: " + err.Error())
	}
	if err := sp.Validate(); err != nil {
		return nil, errs.NewNetworkUnavailable("stale suggested params: " + err.Error())
	}

	tx := proto.NewUnsignedAssetCreateTx(issuer, params, note, sp)
	if err := tx.ApplyFee(sp.FeePerByte, sp.MinFee); err != nil {
		return nil, errs.NewNetworkUnavailable("fee parameters: " + err.Error())
	}
	signed, err := b.signer.Sign(tx)
	if err != nil {
		return nil, errs.NewSigningError(err.Error())
	}
	raw, err := signed.MarshalBinary()
	if err != nil {
		return nil, errs.NewSigningError(err.Error())
	}
	txID := signed.ID()
	b.logger.Debug("Transaction built",
		zap.String("tx_id", txID),
		zap.Uint64("fee", tx.Fee),
		zap.Int("note_size", len(note)),
		zap.Stringer("first_valid", tx.FirstValid),
		zap.Stringer("last_valid", tx.LastValid),
	)
	return &Intent{Signed: signed, Raw: raw, TxID: txID}, nil
}
