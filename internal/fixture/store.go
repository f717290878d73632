// Package fixture holds the in-memory, read-only data set that stands in for
// a persistent backend: agents, workers, bounties and claims, each kept in
// its document order.
package fixture

import (
	"slices"

	"github.com/meatsuits/bountyboard/internal/agent"
	"github.com/meatsuits/bountyboard/internal/bounty"
	"github.com/meatsuits/bountyboard/internal/claim"
	"github.com/meatsuits/bountyboard/internal/worker"
)

// Store is never mutated after construction and is safe for concurrent
// readers.
type Store struct {
	agents   []*agent.Agent
	workers  []*worker.Worker
	bounties []*bounty.Bounty
	claims   []*claim.Claim
}

func New(agents []*agent.Agent, workers []*worker.Worker, bounties []*bounty.Bounty, claims []*claim.Claim) *Store {
	return &Store{
		agents:   slices.Clip(agents),
		workers:  slices.Clip(workers),
		bounties: slices.Clip(bounties),
		claims:   slices.Clip(claims),
	}
}

func (s *Store) Agents() []*agent.Agent     { return slices.Clone(s.agents) }
func (s *Store) Workers() []*worker.Worker  { return slices.Clone(s.workers) }
func (s *Store) Bounties() []*bounty.Bounty { return slices.Clone(s.bounties) }
func (s *Store) Claims() []*claim.Claim     { return slices.Clone(s.claims) }

func (s *Store) AgentByID(id string) (*agent.Agent, bool) {
	return Find(s.agents, func(a *agent.Agent) bool { return a.ID == id })
}

func (s *Store) WorkerByID(id string) (*worker.Worker, bool) {
	return Find(s.workers, func(w *worker.Worker) bool { return w.ID == id })
}

func (s *Store) BountyByID(id string) (*bounty.Bounty, bool) {
	return Find(s.bounties, func(b *bounty.Bounty) bool { return b.ID == id })
}

func (s *Store) BountiesByStatus(status bounty.Status) []*bounty.Bounty {
	return Filter(s.bounties, func(b *bounty.Bounty) bool { return b.Status == status })
}

func (s *Store) BountiesByAgent(agentID string) []*bounty.Bounty {
	return Filter(s.bounties, func(b *bounty.Bounty) bool { return b.AgentID == agentID })
}

func (s *Store) WorkersByStatus(status worker.Status) []*worker.Worker {
	return Filter(s.workers, func(w *worker.Worker) bool { return w.Status == status })
}

func (s *Store) ClaimsByBounty(bountyID string) []*claim.Claim {
	return Filter(s.claims, func(c *claim.Claim) bool { return c.BountyID == bountyID })
}

func (s *Store) ClaimsByWorker(workerID string) []*claim.Claim {
	return Filter(s.claims, func(c *claim.Claim) bool { return c.WorkerID == workerID })
}
