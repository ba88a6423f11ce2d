package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	apiErrs "github.com/assetnote/assetnote/pkg/api/errors"
)

const maxRequestBodySize = 64 * 1024

func tryParseJson(r io.Reader, v any) error {
	dec := json.NewDecoder(io.LimitReader(r, maxRequestBodySize))
	if err := dec.Decode(v); err != nil {
		return apiErrs.NewWrongJsonError(err)
	}
	return nil
}

func trySendJson(w http.ResponseWriter, code int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %T to JSON", v)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "failed to write response")
	}
	return nil
}
