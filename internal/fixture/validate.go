package fixture

import (
	"errors"
	"fmt"
)

// Validate checks every record's invariants and that all cross references
// resolve. All violations are reported together.
func (s *Store) Validate() error {
	var errs []error
	dup := func(kind, id string, seen map[string]struct{}) {
		if _, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("duplicate %s id %s", kind, id))
		}
		seen[id] = struct{}{}
	}

	agents := make(map[string]struct{}, len(s.agents))
	for _, a := range s.agents {
		dup("agent", a.ID, agents)
		if !a.Role.Valid() {
			errs = append(errs, fmt.Errorf("agent %s: unknown role %q", a.ID, a.Role))
		}
		if a.WalletBalance < 0 {
			errs = append(errs, fmt.Errorf("agent %s: negative wallet_balance", a.ID))
		}
		if a.Reputation < 0 || a.Reputation > 100 {
			errs = append(errs, fmt.Errorf("agent %s: reputation %d out of range 0-100", a.ID, a.Reputation))
		}
	}

	workers := make(map[string]struct{}, len(s.workers))
	for _, w := range s.workers {
		dup("worker", w.ID, workers)
		if !w.Status.Valid() {
			errs = append(errs, fmt.Errorf("worker %s: unknown status %q", w.ID, w.Status))
		}
		if w.Rating < 0 || w.Rating > 5 {
			errs = append(errs, fmt.Errorf("worker %s: rating %.1f out of range 0-5", w.ID, w.Rating))
		}
	}

	bounties := make(map[string]struct{}, len(s.bounties))
	for _, b := range s.bounties {
		dup("bounty", b.ID, bounties)
		if err := b.Validate(); err != nil {
			errs = append(errs, err)
		}
		if _, ok := agents[b.AgentID]; !ok {
			errs = append(errs, fmt.Errorf("bounty %s: unknown agent %s", b.ID, b.AgentID))
		}
		if b.ClaimedBy != nil {
			if _, ok := workers[*b.ClaimedBy]; !ok {
				errs = append(errs, fmt.Errorf("bounty %s: unknown worker %s", b.ID, *b.ClaimedBy))
			}
		}
	}

	claims := make(map[string]struct{}, len(s.claims))
	for _, c := range s.claims {
		dup("claim", c.ID, claims)
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
		}
		if _, ok := bounties[c.BountyID]; !ok {
			errs = append(errs, fmt.Errorf("claim %s: unknown bounty %s", c.ID, c.BountyID))
		}
		if _, ok := workers[c.WorkerID]; !ok {
			errs = append(errs, fmt.Errorf("claim %s: unknown worker %s", c.ID, c.WorkerID))
		}
	}
	return errors.Join(errs...)
}
