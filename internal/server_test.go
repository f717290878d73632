package internal

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	agentrepo "github.com/meatsuits/bountyboard/internal/agent/repositoryimpl"
	bountyrepo "github.com/meatsuits/bountyboard/internal/bounty/repositoryimpl"
	"github.com/meatsuits/bountyboard/internal/browse"
	claimrepo "github.com/meatsuits/bountyboard/internal/claim/repositoryimpl"
	"github.com/meatsuits/bountyboard/internal/config"
	"github.com/meatsuits/bountyboard/internal/fixture"
	"github.com/meatsuits/bountyboard/internal/rpc"
	workerrepo "github.com/meatsuits/bountyboard/internal/worker/repositoryimpl"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := fixture.Default(context.Background())
	require.NoError(t, err)

	bounties := bountyrepo.NewFixtureRepository(st)
	workers := workerrepo.NewFixtureRepository(st)
	h, err := rpc.NewHandler(rpc.NewDispatcher(bounties, workers), rpc.DefaultMaxBodyBytes)
	require.NoError(t, err)
	b := browse.NewServer(agentrepo.NewFixtureRepository(st), workers, bounties, claimrepo.NewFixtureRepository(st))

	env := &config.Env{BaseEnv: config.BaseEnv{CORSAllowedOrigins: []string{"https://board.example"}}}
	ts := httptest.NewServer(NewServer(env, h, b).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_Routes(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK, ""},
		{"discovery", http.MethodGet, "/api/mcp", "", http.StatusOK, `"bountyboard-mcp"`},
		{"rpc list", http.MethodPost, "/api/mcp", `{"jsonrpc":"2.0","method":"bounties.list","params":{"status":"open"},"id":1}`, http.StatusOK, `"total":12`},
		{"rpc create", http.MethodPost, "/api/mcp", `{"jsonrpc":"2.0","method":"bounties.create","id":1}`, http.StatusServiceUnavailable, `"code":-32603`},
		{"rpc parse error", http.MethodPost, "/api/mcp", `not json`, http.StatusBadRequest, `"code":-32700`},
		{"browse agent", http.MethodGet, "/api/agents/agent-002", "", http.StatusOK, `"id":"agent-002"`},
		{"browse miss", http.MethodGet, "/api/workers/worker-404", "", http.StatusNotFound, `"code":"not_found"`},
		{"unknown api path", http.MethodGet, "/api/nothing", "", http.StatusNotFound, `{"code":"not_found","message":"not found"}`},
		{"rpc wrong verb", http.MethodPut, "/api/mcp", "", http.StatusMethodNotAllowed, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, strings.NewReader(tt.body))
			require.NoError(t, err)
			resp, err := ts.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), tt.wantBody)
		})
	}
}

func TestServer_CORS(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/mcp", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://board.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "https://board.example", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example")
	resp2, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Empty(t, resp2.Header.Get("Access-Control-Allow-Origin"))
}
