package repositoryimpl

import (
	"context"
	"fmt"

	"github.com/meatsuits/bountyboard/internal/bounty"
	"github.com/meatsuits/bountyboard/internal/fixture"
	"github.com/meatsuits/bountyboard/pkg/cerr"
)

var _ bounty.Repository = (*FixtureRepository)(nil)

type FixtureRepository struct {
	store *fixture.Store
}

func NewFixtureRepository(s *fixture.Store) *FixtureRepository {
	return &FixtureRepository{store: s}
}

func (r *FixtureRepository) Get(_ context.Context, id string) (*bounty.Bounty, error) {
	b, ok := r.store.BountyByID(id)
	if !ok {
		return nil, cerr.NewError(cerr.NotFound, fmt.Sprintf("Bounty not found: %s", id), nil)
	}
	return b, nil
}

func (r *FixtureRepository) List(_ context.Context, f bounty.Filter) ([]*bounty.Bounty, int, error) {
	all := r.store.Bounties()
	if f.Status != "" {
		all = r.store.BountiesByStatus(f.Status)
	}
	return fixture.Page(all, f.Offset, f.Limit), len(all), nil
}

func (r *FixtureRepository) ListByAgent(_ context.Context, agentID string) ([]*bounty.Bounty, error) {
	return r.store.BountiesByAgent(agentID), nil
}

func (r *FixtureRepository) Create(context.Context, *bounty.Bounty) error {
	return fixture.ErrReadOnly("create")
}
