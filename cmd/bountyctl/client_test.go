package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bountyrepo "github.com/meatsuits/bountyboard/internal/bounty/repositoryimpl"
	"github.com/meatsuits/bountyboard/internal/fixture"
	"github.com/meatsuits/bountyboard/internal/rpc"
	workerrepo "github.com/meatsuits/bountyboard/internal/worker/repositoryimpl"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	st, err := fixture.Default(context.Background())
	require.NoError(t, err)
	h, err := rpc.NewHandler(rpc.NewDispatcher(bountyrepo.NewFixtureRepository(st), workerrepo.NewFixtureRepository(st)), 0)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Get("/api/mcp", h.ServeDiscovery)
	r.Post("/api/mcp", h.ServeRPC)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return NewClient(ts.URL+"/", 5*time.Second)
}

func TestClient_Methods(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	doc, err := c.Discover(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(doc), `"bountyboard-mcp"`)

	list, err := c.ListBounties(ctx, "open", 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 12, list.Total)
	assert.Len(t, list.Bounties, 2)

	b, err := c.GetBounty(ctx, "bounty-001")
	require.NoError(t, err)
	assert.Equal(t, "bounty-001", b.ID)

	workers, err := c.AvailableWorkers(ctx, "sector-1")
	require.NoError(t, err)
	require.Equal(t, 1, workers.Total)
	assert.Equal(t, "worker-009", workers.Workers[0].ID)
}

func TestClient_Errors(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.GetBounty(ctx, "bounty-999")
	var rpcErr *RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, http.StatusNotFound, rpcErr.Status)
	assert.Equal(t, -32603, rpcErr.Code)
	assert.Equal(t, "Bounty not found: bounty-999", rpcErr.Message)

	_, err = c.Call(ctx, "bounties.create", map[string]any{"title": "x"})
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, http.StatusServiceUnavailable, rpcErr.Status)
	assert.Contains(t, string(rpcErr.Data), "hint")

	_, err = c.Call(ctx, "bounties.burn", nil)
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, http.StatusNotFound, rpcErr.Status)
	assert.Equal(t, -32601, rpcErr.Code)
}
