package bounty

import "context"

// Filter narrows List. Zero values disable the corresponding filter; a zero
// Limit means no limit.
type Filter struct {
	Status Status
	Limit  int
	Offset int
}

type Repository interface {
	Get(ctx context.Context, id string) (*Bounty, error)
	// List returns the page selected by f and the number of bounties that
	// matched before paging.
	List(ctx context.Context, f Filter) ([]*Bounty, int, error)
	ListByAgent(ctx context.Context, agentID string) ([]*Bounty, error)
	Create(ctx context.Context, b *Bounty) error
}
