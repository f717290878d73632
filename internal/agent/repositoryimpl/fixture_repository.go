package repositoryimpl

import (
	"context"
	"fmt"

	"github.com/meatsuits/bountyboard/internal/agent"
	"github.com/meatsuits/bountyboard/internal/fixture"
	"github.com/meatsuits/bountyboard/pkg/cerr"
)

var _ agent.Repository = (*FixtureRepository)(nil)

type FixtureRepository struct {
	store *fixture.Store
}

func NewFixtureRepository(s *fixture.Store) *FixtureRepository {
	return &FixtureRepository{store: s}
}

func (r *FixtureRepository) Get(_ context.Context, id string) (*agent.Agent, error) {
	a, ok := r.store.AgentByID(id)
	if !ok {
		return nil, cerr.NewError(cerr.NotFound, fmt.Sprintf("Agent not found: %s", id), nil)
	}
	return a, nil
}

func (r *FixtureRepository) List(context.Context) ([]*agent.Agent, error) {
	return r.store.Agents(), nil
}

func (r *FixtureRepository) Create(context.Context, *agent.Agent) error {
	return fixture.ErrReadOnly("create")
}
