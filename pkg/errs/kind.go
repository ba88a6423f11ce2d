package errs

import (
	"github.com/pkg/errors"
)

// ValidationError marks failures caused by the caller's input rather than by the ledger or the service.
type ValidationError interface {
	ValidationError()
}

type ValidationErrorImpl struct {
}

func (ValidationErrorImpl) ValidationError() {
}

// IsValidationError looks through the whole chain, so wrapped input failures still count.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// messageKind is an error kind whose text is free-form.
type messageKind interface {
	error
	withMessage(message string) error
}

// Extend prefixes err with message. If a kind that carries free-form text is found anywhere in the chain,
// the result is a new error of that kind holding the combined text. Other errors are wrapped, which keeps
// fixed-format kinds such as PayloadTooLarge reachable through errors.Is and errors.As.
func Extend(err error, message string) error {
	if err == nil {
		return nil
	}
	var k messageKind
	if errors.As(err, &k) {
		return k.withMessage(message + ": " + err.Error())
	}
	return errors.Wrap(err, message)
}

var kinds = []struct {
	target error
	name   string
}{
	{EncodingError{}, "encoding_error"},
	{DecodingError{}, "decoding_error"},
	{PayloadTooLarge{}, "payload_too_large"},
	{InvalidAssetParams{}, "invalid_asset_params"},
	{NetworkUnavailable{}, "network_unavailable"},
	{SubmissionRejected{}, "submission_rejected"},
	{ConfirmationQueryFailed{}, "confirmation_query_failed"},
	{ConfirmationTimeout{}, "confirmation_timeout"},
	{SigningError{}, "signing_error"},
}

// Kind returns a stable name of the error kind for logs and metrics, "internal" for untyped errors.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.target) {
			return k.name
		}
	}
	return "internal"
}
