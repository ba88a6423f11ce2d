// Package service is the single entry point of the HTTP layer into the issuance workflow.
package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/assetnote/assetnote/pkg/confirm"
	"github.com/assetnote/assetnote/pkg/errs"
	"github.com/assetnote/assetnote/pkg/issuance"
	"github.com/assetnote/assetnote/pkg/metadata"
	"github.com/assetnote/assetnote/pkg/metrics"
	"github.com/assetnote/assetnote/pkg/proto"
)

var (
	// ErrTransactionNotAccepted is the only failure CreateAsset reports. Details are logged.
	ErrTransactionNotAccepted = errors.New("transaction not accepted")
	ErrMetadataNotFound       = errors.New("metadata not found")
)

//go:generate mockgen -destination=../mock/service.go -package=mock github.com/assetnote/assetnote/pkg/service TxBuilder,Confirmer,MetadataResolver

type TxBuilder interface {
	Build(ctx context.Context, model *issuance.AssetModel) (*issuance.Intent, error)
}

type Confirmer interface {
	SubmitAndConfirm(ctx context.Context, raw []byte, txID string, timeoutRounds uint64) (confirm.Confirmation, error)
}

type MetadataResolver interface {
	Resolve(ctx context.Context, assetID proto.AssetID) (metadata.Metadata, bool)
}

type Service struct {
	builder       TxBuilder
	confirmer     Confirmer
	resolver      MetadataResolver
	timeoutRounds uint64
	logger        *zap.Logger
}

func NewService(
	builder TxBuilder, confirmer Confirmer, resolver MetadataResolver, timeoutRounds uint64, logger *zap.Logger,
) *Service {
	if timeoutRounds == 0 {
		timeoutRounds = confirm.DefaultTimeoutRounds
	}
	return &Service{
		builder:       builder,
		confirmer:     confirmer,
		resolver:      resolver,
		timeoutRounds: timeoutRounds,
		logger:        logger.Named("service"),
	}
}

// CreateAsset issues the asset and stamps the model with the transaction id.
// Submission and confirmation are not bound to ctx cancellation: once the transaction is sent
// the round budget is the only way to stop waiting.
func (s *Service) CreateAsset(ctx context.Context, model *issuance.AssetModel) (*issuance.AssetModel, error) {
	if model.TxID != "" {
		return nil, s.fail(errs.NewInvalidAssetParams("transaction id must not be set on request"), "")
	}
	intent, err := s.builder.Build(ctx, model)
	if err != nil {
		return nil, s.fail(err, "")
	}
	c, err := s.confirmer.SubmitAndConfirm(context.WithoutCancel(ctx), intent.Raw, intent.TxID, s.timeoutRounds)
	if err != nil {
		return nil, s.fail(err, intent.TxID)
	}
	if err := model.SetTxID(c.TxID); err != nil {
		return nil, s.fail(err, c.TxID)
	}
	if c.AssetIndex != 0 {
		model.AssetID = c.AssetIndex
	}
	metrics.Issuance(metrics.OutcomeConfirmed)
	metrics.ConfirmationPolls(c.Polls)
	s.logger.Info("Asset created",
		zap.String("tx_id", c.TxID),
		zap.Stringer("asset_id", c.AssetIndex),
		zap.Stringer("round", c.ConfirmedRound),
	)
	return model, nil
}

func (s *Service) fail(err error, txID string) error {
	kind := errs.Kind(err)
	metrics.Issuance(kind)
	fields := []zap.Field{
		zap.String("kind", kind),
		zap.Bool("invalid_input", errs.IsValidationError(err)),
		zap.Error(err),
	}
	if txID != "" {
		fields = append(fields, zap.String("tx_id", txID))
	}
	s.logger.Error("Asset creation failed", fields...)
	return ErrTransactionNotAccepted
}

func (s *Service) GetAssetMetadata(ctx context.Context, assetID proto.AssetID) (metadata.Metadata, error) {
	md, ok := s.resolver.Resolve(ctx, assetID)
	metrics.MetadataLookup(ok)
	if !ok {
		return nil, ErrMetadataNotFound
	}
	return md, nil
}
