package claim

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Claim, error)
	ListByBounty(ctx context.Context, bountyID string) ([]*Claim, error)
	ListByWorker(ctx context.Context, workerID string) ([]*Claim, error)
	Create(ctx context.Context, c *Claim) error
}
