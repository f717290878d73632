package bounty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	happy := []Status{StatusOpen, StatusClaimed, StatusInProgress, StatusVerification, StatusCompleted}
	for i := 0; i+1 < len(happy); i++ {
		assert.True(t, happy[i].CanTransitionTo(happy[i+1]), "%s -> %s", happy[i], happy[i+1])
	}
	assert.True(t, StatusOpen.CanTransitionTo(StatusExpired))

	assert.False(t, StatusOpen.CanTransitionTo(StatusInProgress), "skipping a state")
	assert.False(t, StatusClaimed.CanTransitionTo(StatusExpired))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusOpen))
	assert.False(t, StatusExpired.CanTransitionTo(StatusOpen))
	assert.False(t, Status("bogus").CanTransitionTo(StatusOpen))

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusExpired.Terminal())
	assert.False(t, StatusVerification.Terminal())
}

func TestBountyValidate(t *testing.T) {
	worker := "worker-001"
	base := func() *Bounty {
		return &Bounty{
			ID:           "bounty-x",
			Status:       StatusOpen,
			Difficulty:   DifficultyStandard,
			RewardAmount: 100,
		}
	}

	assert.NoError(t, base().Validate())

	b := base()
	b.ClaimedBy = &worker
	assert.Error(t, b.Validate(), "open bounty with a claimant")

	for _, s := range []Status{StatusClaimed, StatusInProgress, StatusVerification, StatusCompleted} {
		b = base()
		b.Status = s
		assert.Error(t, b.Validate(), "%s without claimant", s)
		b.ClaimedBy = &worker
		assert.NoError(t, b.Validate(), "%s with claimant", s)
	}

	b = base()
	b.Status = StatusExpired
	assert.NoError(t, b.Validate())

	b = base()
	b.RewardAmount = 0
	assert.Error(t, b.Validate())

	b = base()
	b.Difficulty = "impossible"
	assert.Error(t, b.Validate())

	b = base()
	b.Status = "lost"
	assert.Error(t, b.Validate())
}

func TestIsExpired(t *testing.T) {
	expiry := time.Date(2026, 2, 1, 18, 0, 0, 0, time.UTC)
	b := &Bounty{Status: StatusOpen, ExpiresAt: expiry}
	assert.False(t, b.IsExpired(expiry.Add(-time.Minute)))
	assert.True(t, b.IsExpired(expiry))

	b.Status = StatusClaimed
	assert.False(t, b.IsExpired(expiry.Add(time.Hour)))
}
