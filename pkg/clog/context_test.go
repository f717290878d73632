package clog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes(t *testing.T) {
	ctx := ContextWithSlog(context.Background())
	AddAttributes(ctx, map[string]any{"a": 1, "nested": map[string]any{"x": "1"}})
	AddAttributes(ctx, map[string]any{"nested": map[string]any{"y": "2"}})
	AddError(ctx, errors.New("boom"))

	attrs := GetAttributes(ctx)
	assert.Equal(t, 1, attrs["a"])
	assert.Equal(t, map[string]any{"x": "1", "y": "2"}, attrs["nested"])
	assert.EqualError(t, GetError(ctx), "boom")

	// Without ContextWithSlog everything is a no-op.
	plain := context.Background()
	AddAttribute(plain, "a", 1)
	assert.Nil(t, GetAttributes(plain))
	assert.Equal(t, "", GetStack(plain))
}

func TestHTTPStatusToLevel(t *testing.T) {
	assert.Equal(t, LevelInfo, HTTPStatusToLevel(http.StatusOK))
	assert.Equal(t, LevelInfo, HTTPStatusToLevel(499))
	assert.Equal(t, LevelWarn, HTTPStatusToLevel(http.StatusNotFound))
	assert.Equal(t, LevelError, HTTPStatusToLevel(http.StatusServiceUnavailable))
	assert.Equal(t, LevelError, HTTPStatusToLevel(0))
}

func TestSlogChiMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewAttributesHandler(slog.NewJSONHandler(&buf, nil)))
	prev := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(prev)

	h := SlogChiMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		AddAttribute(r.Context(), RPCMethodAttributeKey, "bounties.list")
		w.WriteHeader(http.StatusNotFound)
	}))
	req := httptest.NewRequest(http.MethodPost, "/api/mcp", nil)
	req.Header.Set("X-Request-Id", "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"rpc.method":"bounties.list"`)
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"status":404`)
}
