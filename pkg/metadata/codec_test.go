package metadata

import (
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetnote/assetnote/pkg/errs"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, test := range []Metadata{
		{"desc": "demo"},
		{},
		{"nil": nil, "flag": true, "off": false},
		{"n": 1000.0, "neg": -12.5, "small": 1e-9, "big": 1.7976931348623157e308},
		{"list": []any{"a", 1.0, nil, []any{true}}},
		{"nested": map[string]any{"a": map[string]any{"b": []any{map[string]any{"c": "d"}}}}},
		{"unicode": "Привет, 世界"},
	} {
		b, err := Encode(test)
		require.NoError(t, err)
		m, err := Decode(b)
		require.NoError(t, err)
		if diff := deep.Equal(test, m); diff != nil {
			t.Errorf("round trip of %v: %v", test, diff)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a := Metadata{}
	b := Metadata{}
	keys := []string{"zeta", "alpha", "mid", "a", "bb"}
	for i, k := range keys {
		a[k] = float64(i)
	}
	for i := len(keys) - 1; i >= 0; i-- {
		b[keys[i]] = float64(i)
	}
	ea, err := Encode(a)
	require.NoError(t, err)
	for range 10 {
		eb, err := Encode(b)
		require.NoError(t, err)
		assert.Equal(t, ea, eb)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	for _, test := range []struct {
		name string
		m    Metadata
	}{
		{"nil record", nil},
		{"int", Metadata{"a": 1}},
		{"bytes", Metadata{"a": []byte{1}}},
		{"struct", Metadata{"a": struct{}{}}},
		{"NaN", Metadata{"a": math.NaN()}},
		{"Inf", Metadata{"a": math.Inf(1)}},
		{"nested Inf", Metadata{"a": []any{map[string]any{"b": math.Inf(-1)}}}},
		{"invalid UTF-8", Metadata{"a": string([]byte{0xff, 0xfe})}},
		{"invalid UTF-8 key", Metadata{"a": map[string]any{string([]byte{0xff}): "x"}}},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Encode(test.m)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.EncodingError{})
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	valid, err := Encode(Metadata{"desc": "demo", "list": []any{1.0, 2.0}})
	require.NoError(t, err)
	topArray, err := cbor.Marshal([]any{"a"})
	require.NoError(t, err)
	intKeys, err := cbor.Marshal(map[int]string{1: "a"})
	require.NoError(t, err)
	byteString, err := cbor.Marshal(map[string]any{"a": []byte{1, 2}})
	require.NoError(t, err)
	tagged, err := cbor.Marshal(map[string]any{"a": cbor.Tag{Number: 100, Content: "x"}})
	require.NoError(t, err)

	for _, test := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", valid[:len(valid)-3]},
		{"trailing bytes", append(append([]byte{}, valid...), 0x00)},
		{"garbage", []byte{0xff, 0x00, 0x13}},
		{"top level array", topArray},
		{"integer keys", intKeys},
		{"byte string", byteString},
		{"tag", tagged},
		{"duplicate keys", []byte{0xa2, 0x61, 0x61, 0x01, 0x61, 0x61, 0x02}},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode(test.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.DecodingError{})
		})
	}
}

func TestDecodeIntegersAsNumbers(t *testing.T) {
	data, err := cbor.Marshal(map[string]any{"n": 5, "neg": -3, "list": []any{uint64(7)}})
	require.NoError(t, err)
	m, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, Metadata{"n": 5.0, "neg": -3.0, "list": []any{7.0}}, m)
}

func TestValidateMetadataValue(t *testing.T) {
	require.NoError(t, Validate(Metadata{"inner": Metadata{"a": "b"}}))
}
