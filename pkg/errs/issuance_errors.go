package errs

import (
	"fmt"
)

type EncodingError struct {
	ValidationErrorImpl
	message string
}

func NewEncodingError(message string) *EncodingError {
	return &EncodingError{message: message}
}

func (a EncodingError) Error() string {
	return a.message
}

func (a EncodingError) withMessage(message string) error {
	return NewEncodingError(message)
}

func (a EncodingError) Is(target error) bool {
	_, ok := target.(EncodingError)
	return ok
}

type DecodingError struct {
	message string
}

func NewDecodingError(message string) *DecodingError {
	return &DecodingError{message: message}
}

func (a DecodingError) Error() string {
	return a.message
}

func (a DecodingError) withMessage(message string) error {
	return NewDecodingError(message)
}

func (a DecodingError) Is(target error) bool {
	_, ok := target.(DecodingError)
	return ok
}

type PayloadTooLarge struct {
	ValidationErrorImpl
	size  int
	limit int
}

func NewPayloadTooLarge(size, limit int) *PayloadTooLarge {
	return &PayloadTooLarge{size: size, limit: limit}
}

func (a PayloadTooLarge) Error() string {
	return fmt.Sprintf("encoded metadata is %d bytes, note limit is %d", a.size, a.limit)
}

func (a PayloadTooLarge) Is(target error) bool {
	_, ok := target.(PayloadTooLarge)
	return ok
}

type NetworkUnavailable struct {
	message string
}

func NewNetworkUnavailable(message string) *NetworkUnavailable {
	return &NetworkUnavailable{message: message}
}

func (a NetworkUnavailable) Error() string {
	return a.message
}

func (a NetworkUnavailable) withMessage(message string) error {
	return NewNetworkUnavailable(message)
}

func (a NetworkUnavailable) Is(target error) bool {
	_, ok := target.(NetworkUnavailable)
	return ok
}

type SubmissionRejected struct {
	message string
}

func NewSubmissionRejected(message string) *SubmissionRejected {
	return &SubmissionRejected{message: message}
}

func (a SubmissionRejected) Error() string {
	return a.message
}

func (a SubmissionRejected) withMessage(message string) error {
	return NewSubmissionRejected(message)
}

func (a SubmissionRejected) Is(target error) bool {
	_, ok := target.(SubmissionRejected)
	return ok
}

type ConfirmationQueryFailed struct {
	message string
}

func NewConfirmationQueryFailed(message string) *ConfirmationQueryFailed {
	return &ConfirmationQueryFailed{message: message}
}

func (a ConfirmationQueryFailed) Error() string {
	return a.message
}

func (a ConfirmationQueryFailed) withMessage(message string) error {
	return NewConfirmationQueryFailed(message)
}

func (a ConfirmationQueryFailed) Is(target error) bool {
	_, ok := target.(ConfirmationQueryFailed)
	return ok
}

// ConfirmationTimeout is returned when the round budget is spent. The transaction may still be confirmed later.
type ConfirmationTimeout struct {
	txID   string
	Rounds uint64
}

func NewConfirmationTimeout(txID string, rounds uint64) *ConfirmationTimeout {
	return &ConfirmationTimeout{txID: txID, Rounds: rounds}
}

func (a ConfirmationTimeout) Error() string {
	return fmt.Sprintf("transaction %s not confirmed after %d rounds", a.txID, a.Rounds)
}

func (a ConfirmationTimeout) Is(target error) bool {
	_, ok := target.(ConfirmationTimeout)
	return ok
}

type SigningError struct {
	message string
}

func NewSigningError(message string) *SigningError {
	return &SigningError{message: message}
}

func (a SigningError) Error() string {
	return a.message
}

func (a SigningError) withMessage(message string) error {
	return NewSigningError(message)
}

func (a SigningError) Is(target error) bool {
	_, ok := target.(SigningError)
	return ok
}

type InvalidAssetParams struct {
	ValidationErrorImpl
	message string
}

func NewInvalidAssetParams(message string) *InvalidAssetParams {
	return &InvalidAssetParams{message: message}
}

func (a InvalidAssetParams) Error() string {
	return a.message
}

func (a InvalidAssetParams) withMessage(message string) error {
	return NewInvalidAssetParams(message)
}

func (a InvalidAssetParams) Is(target error) bool {
	_, ok := target.(InvalidAssetParams)
	return ok
}
