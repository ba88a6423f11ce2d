package errors

import (
	"fmt"
	"net/http"
)

type ApiError interface {
	error
	GetID() Identifier
	GetHttpCode() int
	GetMessage() string
}

type genericError struct {
	ID       Identifier `json:"error"`
	HttpCode int        `json:"-"`
	Message  string     `json:"message"`
}

func (g *genericError) GetID() Identifier {
	return g.ID
}

func (g *genericError) GetHttpCode() int {
	return g.HttpCode
}

func (g *genericError) GetMessage() string {
	return g.Message
}

func (g *genericError) Error() string {
	return fmt.Sprintf("ApiError #%d: %s", g.ID, g.Message)
}

// UnknownError wraps an error that has no API representation. The inner error is logged, never sent.
type UnknownError struct {
	genericError
	inner error
}

func (u *UnknownError) Unwrap() error {
	return u.inner
}

func (u *UnknownError) Error() string {
	if u.inner != nil {
		return fmt.Sprintf("%s; inner error: %s", u.genericError.Error(), u.inner.Error())
	}
	return u.genericError.Error()
}

func NewUnknownError(inner error) *UnknownError {
	return &UnknownError{
		genericError: genericError{
			ID:       UnknownErrorID,
			HttpCode: http.StatusInternalServerError,
			Message:  "Error is unknown",
		},
		inner: inner,
	}
}

type WrongJsonError struct {
	genericError
	inner error
}

func (e *WrongJsonError) Unwrap() error {
	return e.inner
}

func NewWrongJsonError(inner error) *WrongJsonError {
	return &WrongJsonError{
		genericError: genericError{
			ID:       WrongJsonErrorID,
			HttpCode: http.StatusBadRequest,
			Message:  "failed to parse json message",
		},
		inner: inner,
	}
}
