package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	apiErrs "github.com/assetnote/assetnote/pkg/api/errors"
	"github.com/assetnote/assetnote/pkg/issuance"
	"github.com/assetnote/assetnote/pkg/metadata"
	"github.com/assetnote/assetnote/pkg/proto"
)

//go:generate mockgen -destination=../mock/asset_service.go -package=mock github.com/assetnote/assetnote/pkg/api AssetService

type AssetService interface {
	CreateAsset(ctx context.Context, model *issuance.AssetModel) (*issuance.AssetModel, error)
	GetAssetMetadata(ctx context.Context, assetID proto.AssetID) (metadata.Metadata, error)
}

// CreateAssetRequest is the body of POST /asa. Result fields of the model cannot be supplied by a caller.
type CreateAssetRequest struct {
	AssetTotal    uint64            `json:"assetTotal"`
	AssetDecimals uint32            `json:"assetDecimals"`
	UnitName      string            `json:"unitName"`
	AssetName     string            `json:"assetName"`
	URL           string            `json:"url"`
	DefaultFrozen bool              `json:"defaultFrozen"`
	Metadata      metadata.Metadata `json:"metadata"`
}

type AssetApi struct {
	service AssetService
}

func NewAssetApi(service AssetService) *AssetApi {
	return &AssetApi{service: service}
}

func (a *AssetApi) CreateAsset(w http.ResponseWriter, r *http.Request) error {
	req := new(CreateAssetRequest)
	if err := tryParseJson(r.Body, req); err != nil {
		return errors.Wrap(err, "CreateAsset: malformed request")
	}
	model := new(issuance.AssetModel)
	if err := copier.Copy(model, req); err != nil {
		return errors.Wrap(err, "CreateAsset: failed to copy request")
	}
	created, err := a.service.CreateAsset(r.Context(), model)
	if err != nil {
		return errors.Wrap(apiErrs.TransactionNotAccepted, err.Error())
	}
	if err := trySendJson(w, http.StatusCreated, created); err != nil {
		return errors.Wrap(err, "CreateAsset")
	}
	return nil
}

func (a *AssetApi) AssetProperties(w http.ResponseWriter, r *http.Request) error {
	assetID, err := proto.NewAssetIDFromString(chi.URLParam(r, "assetId"))
	if err != nil {
		return errors.Wrap(apiErrs.InvalidAssetId, err.Error())
	}
	md, err := a.service.GetAssetMetadata(r.Context(), assetID)
	if err != nil {
		return errors.Wrapf(apiErrs.TransactionNotAccepted, "asset %s: %s", assetID, err.Error())
	}
	if err := trySendJson(w, http.StatusOK, md); err != nil {
		return errors.Wrap(err, "AssetProperties")
	}
	return nil
}
