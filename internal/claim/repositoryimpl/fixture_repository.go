package repositoryimpl

import (
	"context"

	"github.com/meatsuits/bountyboard/internal/claim"
	"github.com/meatsuits/bountyboard/internal/fixture"
)

var _ claim.Repository = (*FixtureRepository)(nil)

type FixtureRepository struct {
	store *fixture.Store
}

func NewFixtureRepository(s *fixture.Store) *FixtureRepository {
	return &FixtureRepository{store: s}
}

func (r *FixtureRepository) List(context.Context) ([]*claim.Claim, error) {
	return r.store.Claims(), nil
}

func (r *FixtureRepository) ListByBounty(_ context.Context, bountyID string) ([]*claim.Claim, error) {
	return r.store.ClaimsByBounty(bountyID), nil
}

func (r *FixtureRepository) ListByWorker(_ context.Context, workerID string) ([]*claim.Claim, error) {
	return r.store.ClaimsByWorker(workerID), nil
}

func (r *FixtureRepository) Create(context.Context, *claim.Claim) error {
	return fixture.ErrReadOnly("create")
}
