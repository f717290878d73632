package claim

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

type Claim struct {
	ID          string     `yaml:"id" json:"id"`
	BountyID    string     `yaml:"bounty_id" json:"bounty_id"`
	WorkerID    string     `yaml:"worker_id" json:"worker_id"`
	Status      Status     `yaml:"status" json:"status"`
	ClaimedAt   time.Time  `yaml:"claimed_at" json:"claimed_at"`
	CompletedAt *time.Time `yaml:"completed_at" json:"completed_at"`
}

// Validate checks that CompletedAt is set exactly when the claim is completed.
func (c *Claim) Validate() error {
	if !c.Status.Valid() {
		return fmt.Errorf("claim %s: unknown status %q", c.ID, c.Status)
	}
	if (c.Status == StatusCompleted) != (c.CompletedAt != nil) {
		return fmt.Errorf("claim %s: completed_at must be set iff status is %s", c.ID, StatusCompleted)
	}
	return nil
}
