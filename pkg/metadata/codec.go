// Package metadata implements the binary form of application metadata carried in a transaction note.
package metadata

import (
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/assetnote/assetnote/pkg/errs"
)

const maxNestedLevels = 32

// Metadata is an application-defined record. Values follow the JSON value model:
// nil, bool, string, float64, []any and map[string]any.
type Metadata map[string]any

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		IndefLength:     cbor.IndefLengthForbidden,
		TagsMd:          cbor.TagsForbidden,
		MaxNestedLevels: maxNestedLevels,
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Encode returns deterministic bytes for m. Equal records always produce equal bytes.
func Encode(m Metadata) ([]byte, error) {
	if m == nil {
		return nil, errs.NewEncodingError("metadata is nil")
	}
	if err := Validate(m); err != nil {
		return nil, err
	}
	b, err := encMode.Marshal(map[string]any(m))
	if err != nil {
		return nil, errs.NewEncodingError(err.Error())
	}
	return b, nil
}

// Decode restores a record produced by Encode.
func Decode(data []byte) (Metadata, error) {
	if len(data) == 0 {
		return nil, errs.NewDecodingError("empty metadata payload")
	}
	var v any
	if err := decMode.Unmarshal(data, &v); err != nil {
		return nil, errs.NewDecodingError(err.Error())
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errs.NewDecodingError(errors.Errorf("top level value is %T, expected map", v).Error())
	}
	for k, val := range m {
		nv, err := normalize(val, k)
		if err != nil {
			return nil, err
		}
		m[k] = nv
	}
	return m, nil
}

// Validate reports an EncodingError if m holds a value outside the JSON value model.
func Validate(m Metadata) error {
	for k, v := range m {
		if err := validateValue(v, k, 1); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(v any, path string, depth int) error {
	if depth > maxNestedLevels {
		return errs.NewEncodingError(errors.Errorf("value at %q is nested too deep", path).Error())
	}
	switch t := v.(type) {
	case nil, bool:
		return nil
	case string:
		if !utf8.ValidString(t) {
			return errs.NewEncodingError(errors.Errorf("string at %q is not valid UTF-8", path).Error())
		}
		return nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return errs.NewEncodingError(errors.Errorf("number at %q is not finite", path).Error())
		}
		return nil
	case []any:
		for i, e := range t {
			if err := validateValue(e, path+"["+strconv.Itoa(i)+"]", depth+1); err != nil {
				return err
			}
		}
		return nil
	case map[string]any:
		for k, e := range t {
			if !utf8.ValidString(k) {
				return errs.NewEncodingError(errors.Errorf("key in %q is not valid UTF-8", path).Error())
			}
			if err := validateValue(e, path+"."+k, depth+1); err != nil {
				return err
			}
		}
		return nil
	case Metadata:
		return validateValue(map[string]any(t), path, depth)
	default:
		return errs.NewEncodingError(errors.Errorf("unsupported value of type %T at %q", v, path).Error())
	}
}

// normalize maps decoded values back onto the JSON value model. Integers written by other encoders become float64.
func normalize(v any, path string) (any, error) {
	switch t := v.(type) {
	case nil, bool, string, float64:
		return t, nil
	case uint64:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case []any:
		for i, e := range t {
			ne, err := normalize(e, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			t[i] = ne
		}
		return t, nil
	case map[string]any:
		for k, e := range t {
			ne, err := normalize(e, path+"."+k)
			if err != nil {
				return nil, err
			}
			t[k] = ne
		}
		return t, nil
	default:
		return nil, errs.NewDecodingError(errors.Errorf("unexpected value of type %T at %q", v, path).Error())
	}
}
