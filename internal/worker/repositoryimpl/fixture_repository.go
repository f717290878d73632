package repositoryimpl

import (
	"context"
	"fmt"

	"github.com/meatsuits/bountyboard/internal/fixture"
	"github.com/meatsuits/bountyboard/internal/worker"
	"github.com/meatsuits/bountyboard/pkg/cerr"
)

var _ worker.Repository = (*FixtureRepository)(nil)

type FixtureRepository struct {
	store *fixture.Store
}

func NewFixtureRepository(s *fixture.Store) *FixtureRepository {
	return &FixtureRepository{store: s}
}

func (r *FixtureRepository) Get(_ context.Context, id string) (*worker.Worker, error) {
	w, ok := r.store.WorkerByID(id)
	if !ok {
		return nil, cerr.NewError(cerr.NotFound, fmt.Sprintf("Worker not found: %s", id), nil)
	}
	return w, nil
}

func (r *FixtureRepository) List(context.Context) ([]*worker.Worker, error) {
	return r.store.Workers(), nil
}

func (r *FixtureRepository) ListByStatus(_ context.Context, status worker.Status, sector string) ([]*worker.Worker, error) {
	workers := r.store.WorkersByStatus(status)
	if sector != "" {
		workers = fixture.Filter(workers, func(w *worker.Worker) bool { return w.Sector == sector })
	}
	return workers, nil
}

func (r *FixtureRepository) Create(context.Context, *worker.Worker) error {
	return fixture.ErrReadOnly("create")
}
