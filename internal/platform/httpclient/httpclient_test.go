package httpclient

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"livestock-registry/internal/platform/logger"
)

func TestClient_LogsWithoutQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	core, logs := observer.New(zap.DebugLevel)
	c := New(0, logger.FromZap(zap.New(core)))
	assert.Equal(t, DefaultTimeout, c.Timeout)

	resp, err := c.Get(srv.URL + "/v1/models?key=secret")
	require.NoError(t, err)
	_ = resp.Body.Close()

	entries := logs.FilterMessage("outbound request").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "/v1/models", ctx["path"])
	assert.EqualValues(t, http.StatusBadGateway, ctx["status"])
	for _, v := range ctx {
		assert.NotContains(t, fmt.Sprint(v), "secret")
	}
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial refused")
}

func TestClient_TransportError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := NewWithTransport(0, failingTransport{}, logger.FromZap(zap.New(core)))

	_, err := c.Get("http://example.invalid/")
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("outbound request failed").Len())
}
