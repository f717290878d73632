package bounty

import (
	"fmt"
	"time"
)

type Difficulty string

const (
	DifficultyTrivial  Difficulty = "trivial"
	DifficultyStandard Difficulty = "standard"
	DifficultyComplex  Difficulty = "complex"
	DifficultyCritical Difficulty = "critical"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyTrivial, DifficultyStandard, DifficultyComplex, DifficultyCritical:
		return true
	}
	return false
}

type Bounty struct {
	ID           string     `yaml:"id" json:"id"`
	Title        string     `yaml:"title" json:"title"`
	Description  string     `yaml:"description" json:"description"`
	Sector       string     `yaml:"sector" json:"sector"`
	RewardAmount int64      `yaml:"reward_amount" json:"reward_amount"`
	Status       Status     `yaml:"status" json:"status"`
	AgentID      string     `yaml:"agent_id" json:"agent_id"`
	ClaimedBy    *string    `yaml:"claimed_by" json:"claimed_by"`
	Difficulty   Difficulty `yaml:"difficulty" json:"difficulty"`
	Requirements []string   `yaml:"requirements" json:"requirements"`
	ExpiresAt    time.Time  `yaml:"expires_at" json:"expires_at"`
	CreatedAt    time.Time  `yaml:"created_at" json:"created_at"`
}

// Validate checks the record-level invariants: a known status and
// difficulty, a positive reward, and ClaimedBy set exactly when the status
// has a claimant.
func (b *Bounty) Validate() error {
	if !b.Status.Valid() {
		return fmt.Errorf("bounty %s: unknown status %q", b.ID, b.Status)
	}
	if !b.Difficulty.Valid() {
		return fmt.Errorf("bounty %s: unknown difficulty %q", b.ID, b.Difficulty)
	}
	if b.RewardAmount <= 0 {
		return fmt.Errorf("bounty %s: reward_amount must be positive, got %d", b.ID, b.RewardAmount)
	}
	if b.Status.HasClaimant() != (b.ClaimedBy != nil) {
		if b.ClaimedBy == nil {
			return fmt.Errorf("bounty %s: status %s requires claimed_by", b.ID, b.Status)
		}
		return fmt.Errorf("bounty %s: status %s must not have claimed_by", b.ID, b.Status)
	}
	return nil
}

// IsExpired reports whether an open bounty has passed its expiry at now.
func (b *Bounty) IsExpired(now time.Time) bool {
	return b.Status == StatusOpen && !now.Before(b.ExpiresAt)
}
