package worker

import "context"

type Repository interface {
	Get(ctx context.Context, id string) (*Worker, error)
	List(ctx context.Context) ([]*Worker, error)
	// ListByStatus returns workers with the given presence status, narrowed
	// to sector when sector is non-empty.
	ListByStatus(ctx context.Context, status Status, sector string) ([]*Worker, error)
	Create(ctx context.Context, w *Worker) error
}
