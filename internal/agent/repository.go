package agent

import "context"

// Repository is read-only in fixture mode: Create always fails.
type Repository interface {
	Get(ctx context.Context, id string) (*Agent, error)
	List(ctx context.Context) ([]*Agent, error)
	Create(ctx context.Context, a *Agent) error
}
