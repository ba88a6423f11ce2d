package errors

import (
	"net/http"
)

type assetError struct {
	genericError
}

type (
	InvalidAssetIdError         assetError
	TransactionNotAcceptedError assetError
)

var (
	InvalidAssetId = &InvalidAssetIdError{
		genericError: genericError{
			ID:       InvalidAssetIdErrorID,
			HttpCode: http.StatusBadRequest,
			Message:  "Invalid asset id",
		},
	}
	// TransactionNotAccepted is the only answer for a failed asset operation. Failure kinds are not disclosed.
	TransactionNotAccepted = &TransactionNotAcceptedError{
		genericError: genericError{
			ID:       TransactionNotAcceptedErrorID,
			HttpCode: http.StatusInternalServerError,
			Message:  "Transaction not accepted",
		},
	}
)
