package bounty

type Status string

const (
	StatusOpen         Status = "open"
	StatusClaimed      Status = "claimed"
	StatusInProgress   Status = "in_progress"
	StatusVerification Status = "verification"
	StatusCompleted    Status = "completed"
	StatusExpired      Status = "expired"
)

// transitions is the happy-path lifecycle. Expiry is only reachable from open.
var transitions = map[Status][]Status{
	StatusOpen:         {StatusClaimed, StatusExpired},
	StatusClaimed:      {StatusInProgress},
	StatusInProgress:   {StatusVerification},
	StatusVerification: {StatusCompleted},
}

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusClaimed, StatusInProgress, StatusVerification, StatusCompleted, StatusExpired:
		return true
	}
	return false
}

// HasClaimant reports whether a bounty in this status carries claimed_by.
func (s Status) HasClaimant() bool {
	switch s {
	case StatusClaimed, StatusInProgress, StatusVerification, StatusCompleted:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusExpired
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, n := range transitions[s] {
		if n == next {
			return true
		}
	}
	return false
}
