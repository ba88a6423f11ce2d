package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/phayes/freeport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/assetnote/assetnote/pkg/issuance"
	"github.com/assetnote/assetnote/pkg/mock"
)

func TestRun_ServesUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mock.NewMockAssetService(ctrl)
	service.EXPECT().CreateAsset(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *issuance.AssetModel) (*issuance.AssetModel, error) {
			require.NoError(t, m.SetTxID("TXID"))
			return m, nil
		})

	router, err := NewAssetApi(service).Routes(testRunOptions(), zap.NewNop())
	require.NoError(t, err)

	port, err := freeport.GetFreePort()
	require.NoError(t, err)
	base := fmt.Sprintf("http://127.0.0.1:%d", port)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, fmt.Sprintf("127.0.0.1:%d", port), router, zap.NewNop())
	}()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: time.Second}
	require.Eventually(t, func() bool {
		resp, err := client.Get(base + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	resp, err := client.Post(base+"/asa", "application/json", strings.NewReader(`{"assetTotal":5,"unitName":"U"}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(body), `"txId":"TXID"`)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
	client.CloseIdleConnections()
}

func TestRun_ListenFailure(t *testing.T) {
	err := Run(context.Background(), "256.0.0.1:0", http.NotFoundHandler(), zap.NewNop())
	assert.Error(t, err)
}
