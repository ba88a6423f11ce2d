package proto

import (
	"crypto/ed25519"
	"strings"
	"testing"

	sdkcrypto "github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetnote/assetnote/pkg/crypto"
)

func testKeys(t *testing.T) (crypto.SecretKey, Address) {
	seed := make([]byte, crypto.SeedSize)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	sk, pk, err := crypto.GenerateKeyPair(seed)
	require.NoError(t, err)
	return sk, NewAddressFromPublicKey(pk)
}

func testParams() SuggestedParams {
	return SuggestedParams{
		ConsensusVersion: "v1",
		FeePerByte:       10,
		MinFee:           1000,
		GenesisID:        "testnet-v1.0",
		GenesisHash:      crypto.Hash([]byte("genesis")),
		LastRound:        100,
	}
}

func TestAddressString(t *testing.T) {
	_, addr := testKeys(t)
	s := addr.String()
	assert.Len(t, s, 58)
	r, err := NewAddressFromString(s)
	require.NoError(t, err)
	assert.Equal(t, addr, r)

	b, err := addr.MarshalText()
	require.NoError(t, err)
	var u Address
	require.NoError(t, u.UnmarshalText(b))
	assert.Equal(t, addr, u)
}

func TestAddressFromStringErrors(t *testing.T) {
	_, addr := testKeys(t)
	s := addr.String()
	for _, test := range []string{
		"",
		"0OIl",
		s[:len(s)-2],
		s[:52] + nextB32(s[52]) + s[53:],
	} {
		_, err := NewAddressFromString(test)
		assert.Error(t, err, test)
	}
}

func nextB32(c byte) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	i := strings.IndexByte(alphabet, c)
	return string(alphabet[(i+1)%len(alphabet)])
}

func TestAssetIDFromString(t *testing.T) {
	id, err := NewAssetIDFromString("12345")
	require.NoError(t, err)
	assert.Equal(t, AssetID(12345), id)
	assert.Equal(t, "12345", id.String())
	for _, s := range []string{"", "-1", "abc", "18446744073709551616"} {
		_, err := NewAssetIDFromString(s)
		assert.Error(t, err, s)
	}
}

func TestSuggestedParamsValidate(t *testing.T) {
	require.NoError(t, testParams().Validate())
	p := testParams()
	p.LastRound = 0
	assert.Error(t, p.Validate())
	p = testParams()
	p.MinFee = 0
	assert.Error(t, p.Validate())
	p = testParams()
	p.GenesisHash = crypto.Digest{}
	assert.Error(t, p.Validate())
}

func TestAssetParamsValidate(t *testing.T) {
	valid := AssetParams{Total: 1000, UnitName: "TKN", AssetName: "Token", URL: "https://example.com"}
	require.NoError(t, valid.Validate())
	for _, mutate := range []func(p *AssetParams){
		func(p *AssetParams) { p.Total = 0 },
		func(p *AssetParams) { p.Decimals = 20 },
		func(p *AssetParams) { p.UnitName = "TOOLONGNAME" },
		func(p *AssetParams) { p.AssetName = strings.Repeat("a", 33) },
		func(p *AssetParams) { p.URL = strings.Repeat("u", 97) },
	} {
		p := valid
		mutate(&p)
		assert.Error(t, p.Validate())
	}
}

func TestSignAndID(t *testing.T) {
	sk, addr := testKeys(t)
	params := AssetParams{Total: 1000, UnitName: "TKN", Manager: addr, Reserve: addr, Freeze: addr, Clawback: addr}
	tx := NewUnsignedAssetCreateTx(addr, params, []byte{0xa0}, testParams())
	assert.Equal(t, Round(100), tx.FirstValid)
	assert.Equal(t, Round(1100), tx.LastValid)

	stx, err := tx.Sign(sk)
	require.NoError(t, err)
	assert.True(t, stx.Verify())

	id := stx.ID()
	assert.Len(t, id, 52)
	assert.Equal(t, id, tx.ID())

	b, err := stx.MarshalBinary()
	require.NoError(t, err)
	var decoded SignedTx
	require.NoError(t, decoded.UnmarshalBinary(b))
	assert.Equal(t, *stx, decoded)

	var raw map[string]any
	require.NoError(t, msgpack.Decode(b, &raw))
	assert.Contains(t, raw, "sig")
	assert.Contains(t, raw, "txn")

	stx.Signature[0] ^= 1
	assert.False(t, stx.Verify())
}

func TestWireFormatMatchesLedgerSDK(t *testing.T) {
	sk, addr := testKeys(t)
	params := AssetParams{Total: 1000, Decimals: 2, UnitName: "TKN", AssetName: "Token", Manager: addr}
	tx := NewUnsignedAssetCreateTx(addr, params, []byte(`{"desc":"demo"}`), testParams())
	require.NoError(t, tx.ApplyFee(10, 1000))

	assert.Equal(t, sdkcrypto.GetTxID(tx.wire()), tx.ID())

	sdkID, sdkBytes, err := sdkcrypto.SignTransaction(ed25519.PrivateKey(sk[:]), tx.wire())
	require.NoError(t, err)
	stx, err := tx.Sign(sk)
	require.NoError(t, err)
	b, err := stx.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, sdkBytes, b)
	assert.Equal(t, sdkID, stx.ID())

	size, err := tx.EstimateSize()
	require.NoError(t, err)
	assert.Equal(t, uint64(len(b)), size)
}

func TestUnmarshalRejectsOtherTxTypes(t *testing.T) {
	_, addr := testKeys(t)
	tx := NewUnsignedAssetCreateTx(addr, AssetParams{Total: 1}, nil, testParams())
	w := tx.wire()
	w.Type = "pay"
	b := msgpack.Encode(types.SignedTxn{Txn: w})
	var s SignedTx
	assert.Error(t, s.UnmarshalBinary(b))
}

func TestApplyFee(t *testing.T) {
	_, addr := testKeys(t)
	sp := testParams()
	tx := NewUnsignedAssetCreateTx(addr, AssetParams{Total: 1}, make([]byte, 500), sp)
	require.NoError(t, tx.ApplyFee(sp.FeePerByte, sp.MinFee))
	size, err := tx.EstimateSize()
	require.NoError(t, err)
	assert.Equal(t, sp.FeePerByte*size, tx.Fee)

	small := NewUnsignedAssetCreateTx(addr, AssetParams{Total: 1}, nil, sp)
	require.NoError(t, small.ApplyFee(1, sp.MinFee))
	assert.Equal(t, sp.MinFee, small.Fee)

	overflow := NewUnsignedAssetCreateTx(addr, AssetParams{Total: 1}, nil, sp)
	assert.Error(t, overflow.ApplyFee(1<<62, sp.MinFee))
}

func TestSignMismatchedKey(t *testing.T) {
	sk, addr := testKeys(t)
	sk[crypto.SecretKeySize-1] ^= 1
	tx := NewUnsignedAssetCreateTx(addr, AssetParams{Total: 1}, nil, testParams())
	_, err := tx.Sign(sk)
	assert.Error(t, err)
}
