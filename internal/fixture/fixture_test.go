package fixture

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meatsuits/bountyboard/internal/bounty"
	"github.com/meatsuits/bountyboard/internal/worker"
	"github.com/meatsuits/bountyboard/pkg/cerr"
	"github.com/meatsuits/bountyboard/pkg/storage"
)

func TestDefault(t *testing.T) {
	st, err := Default(context.Background())
	require.NoError(t, err)

	assert.Len(t, st.Agents(), 6)
	assert.Len(t, st.Workers(), 10)
	assert.Len(t, st.Bounties(), 25)
	assert.Len(t, st.Claims(), 11)

	// Document order is preserved.
	assert.Equal(t, "bounty-001", st.Bounties()[0].ID)
	assert.Equal(t, "bounty-025", st.Bounties()[24].ID)

	b, ok := st.BountyByID("bounty-002")
	require.True(t, ok)
	assert.Equal(t, bounty.StatusClaimed, b.Status)
	require.NotNil(t, b.ClaimedBy)
	assert.Equal(t, "worker-005", *b.ClaimedBy)
	assert.Equal(t, "2026-01-30T12:00:00Z", b.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"))

	a, ok := st.AgentByID("agent-006")
	require.True(t, ok)
	assert.Equal(t, "BLACKBOX", a.Name)
	assert.EqualValues(t, 67400, a.WalletBalance)

	w, ok := st.WorkerByID("worker-003")
	require.True(t, ok)
	assert.InDelta(t, 4.9, w.Rating, 0.001)
	assert.Equal(t, []string{"electronics", "repair", "hacking"}, w.Skills)
}

func TestStoreQueries(t *testing.T) {
	st, err := Default(context.Background())
	require.NoError(t, err)

	open := st.BountiesByStatus(bounty.StatusOpen)
	assert.Len(t, open, 12)
	for _, b := range open {
		assert.Equal(t, bounty.StatusOpen, b.Status)
		assert.Nil(t, b.ClaimedBy)
	}

	assert.Len(t, st.BountiesByStatus(bounty.StatusExpired), 2)
	assert.NotNil(t, st.BountiesByStatus("bogus"))
	assert.Empty(t, st.BountiesByStatus("bogus"))

	byAgent := st.BountiesByAgent("agent-001")
	ids := make([]string, len(byAgent))
	for i, b := range byAgent {
		ids[i] = b.ID
	}
	assert.Equal(t, []string{"bounty-001", "bounty-006", "bounty-013", "bounty-019", "bounty-023"}, ids)

	available := st.WorkersByStatus(worker.StatusAvailable)
	assert.Len(t, available, 5)

	assert.Len(t, st.ClaimsByWorker("worker-005"), 3)
	assert.Len(t, st.ClaimsByBounty("bounty-009"), 1)
	assert.Empty(t, st.ClaimsByBounty("bounty-001"))

	_, ok := st.BountyByID("bounty-999")
	assert.False(t, ok)

	// Accessors hand out copies; reordering them leaves the store intact.
	all := st.Bounties()
	all[0], all[1] = all[1], all[0]
	assert.Equal(t, "bounty-001", st.Bounties()[0].ID)
}

func TestPage(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}
	tests := []struct {
		name          string
		offset, limit int
		want          []int
	}{
		{"all", 0, 0, []int{0, 1, 2, 3, 4}},
		{"limit", 0, 2, []int{0, 1}},
		{"offset", 3, 0, []int{3, 4}},
		{"offset and limit", 1, 3, []int{1, 2, 3}},
		{"limit past end", 4, 10, []int{4}},
		{"offset at end", 5, 1, []int{}},
		{"offset past end", 9, 0, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Page(items, tt.offset, tt.limit))
		})
	}
}

const (
	validAgents   = "- {id: agent-1, name: A, role: oracle, wallet_balance: 1, bounties_posted: 1, reputation: 50, created_at: 2026-01-01T00:00:00Z}\n"
	validWorkers  = "- {id: worker-1, callsign: W, status: available, sector: sector-1, rating: 4.5, created_at: 2026-01-01T00:00:00Z}\n"
	validBounties = "- {id: bounty-1, title: T, sector: sector-1, reward_amount: 10, status: claimed, agent_id: agent-1, claimed_by: worker-1, difficulty: trivial, expires_at: 2026-02-01T00:00:00Z, created_at: 2026-01-01T00:00:00Z}\n"
	validClaims   = "- {id: claim-1, bounty_id: bounty-1, worker_id: worker-1, status: accepted, claimed_at: 2026-01-02T00:00:00Z, completed_at: null}\n"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fsys := fstest.MapFS{
		"custom/agents.yaml":   {Data: []byte(validAgents)},
		"custom/workers.yaml":  {Data: []byte(validWorkers)},
		"custom/bounties.yaml": {Data: []byte(validBounties)},
		"custom/claims.yaml":   {Data: []byte(validClaims)},
	}

	st, err := Load(ctx, storage.NewFSStorage(fsys), "custom")
	require.NoError(t, err)
	assert.Len(t, st.Bounties(), 1)
	assert.Len(t, st.Claims(), 1)

	t.Run("missing document", func(t *testing.T) {
		_, err := Load(ctx, storage.NewFSStorage(fsys), "elsewhere")
		require.Error(t, err)
		assert.True(t, cerr.IsCode(err, cerr.NotFound))
	})

	t.Run("malformed document", func(t *testing.T) {
		broken := fstest.MapFS{
			"agents.yaml":   {Data: []byte("{not: [a list")},
			"workers.yaml":  {Data: []byte(validWorkers)},
			"bounties.yaml": {Data: []byte(validBounties)},
			"claims.yaml":   {Data: []byte(validClaims)},
		}
		_, err := Load(ctx, storage.NewFSStorage(broken), "")
		require.Error(t, err)
		assert.True(t, cerr.IsCode(err, cerr.Internal))
	})

	t.Run("invariant violation", func(t *testing.T) {
		inconsistent := fstest.MapFS{
			"agents.yaml":   {Data: []byte(validAgents)},
			"workers.yaml":  {Data: []byte(validWorkers)},
			"bounties.yaml": {Data: []byte("- {id: bounty-1, title: T, reward_amount: 10, status: claimed, agent_id: agent-1, claimed_by: null, difficulty: trivial}\n")},
			"claims.yaml":   {Data: []byte("[]\n")},
		}
		_, err := Load(ctx, storage.NewFSStorage(inconsistent), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires claimed_by")
	})
}

func TestValidateReferences(t *testing.T) {
	ghost := "worker-404"
	st := New(nil, nil, []*bounty.Bounty{{
		ID:           "bounty-1",
		Status:       bounty.StatusClaimed,
		Difficulty:   bounty.DifficultyTrivial,
		RewardAmount: 1,
		AgentID:      "agent-404",
		ClaimedBy:    &ghost,
	}}, nil)
	err := st.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown agent agent-404")
	assert.Contains(t, err.Error(), "unknown worker worker-404")
}

func TestExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	st, err := Default(ctx)
	require.NoError(t, err)

	dst, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, Export(ctx, st, dst, "fixture"))

	reloaded, err := Load(ctx, dst, "fixture")
	require.NoError(t, err)
	assert.Equal(t, st.Bounties(), reloaded.Bounties())
	assert.Equal(t, st.Claims(), reloaded.Claims())
	assert.Equal(t, st.Agents(), reloaded.Agents())
	assert.Equal(t, st.Workers(), reloaded.Workers())

	err = Export(ctx, st, EmbeddedStorage(), "")
	assert.True(t, cerr.IsCode(err, cerr.Unavailable))
}
