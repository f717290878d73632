package browse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	agentrepo "github.com/meatsuits/bountyboard/internal/agent/repositoryimpl"
	bountyrepo "github.com/meatsuits/bountyboard/internal/bounty/repositoryimpl"
	claimrepo "github.com/meatsuits/bountyboard/internal/claim/repositoryimpl"
	"github.com/meatsuits/bountyboard/internal/fixture"
	workerrepo "github.com/meatsuits/bountyboard/internal/worker/repositoryimpl"
	"github.com/meatsuits/bountyboard/pkg/cerr"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	st, err := fixture.Default(context.Background())
	require.NoError(t, err)
	srv := NewServer(
		agentrepo.NewFixtureRepository(st),
		workerrepo.NewFixtureRepository(st),
		bountyrepo.NewFixtureRepository(st),
		claimrepo.NewFixtureRepository(st),
	)
	r := chi.NewRouter()
	r.Use(cerr.NewJSONResponseChiMiddleware())
	srv.Routes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func TestServer_Lists(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		target    string
		key       string
		wantTotal int
	}{
		{"/agents", "agents", 6},
		{"/agents/agent-001/bounties", "bounties", 5},
		{"/workers", "workers", 10},
		{"/workers?status=available", "workers", 5},
		{"/workers?status=offline", "workers", 2},
		{"/workers?status=available&sector=sector-1", "workers", 1},
		{"/workers?sector=sector-1", "workers", 2},
		{"/workers/worker-005/claims", "claims", 3},
		{"/bounties/bounty-002/claims", "claims", 1},
		{"/bounties/bounty-001/claims", "claims", 0},
		{"/claims", "claims", 11},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			status, body := get(t, h, tt.target)
			assert.Equal(t, http.StatusOK, status)
			assert.EqualValues(t, tt.wantTotal, body["total"])
			items, ok := body[tt.key].([]any)
			require.True(t, ok, "%s must be an array", tt.key)
			assert.Len(t, items, tt.wantTotal)
		})
	}
}

func TestServer_Get(t *testing.T) {
	h := newTestRouter(t)

	status, body := get(t, h, "/agents/agent-001")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "agent-001", body["id"])

	status, body = get(t, h, "/workers/worker-009")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "worker-009", body["id"])
	assert.Equal(t, "available", body["status"])
}

func TestServer_Errors(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		target     string
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"/agents/agent-999", http.StatusNotFound, "not_found", "Agent not found: agent-999"},
		{"/agents/agent-999/bounties", http.StatusNotFound, "not_found", "Agent not found: agent-999"},
		{"/workers/worker-999", http.StatusNotFound, "not_found", "Worker not found: worker-999"},
		{"/workers/worker-999/claims", http.StatusNotFound, "not_found", "Worker not found: worker-999"},
		{"/bounties/bounty-999/claims", http.StatusNotFound, "not_found", "Bounty not found: bounty-999"},
		{"/workers?status=asleep", http.StatusBadRequest, "invalid_argument", "unknown worker status: asleep"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			status, body := get(t, h, tt.target)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}
