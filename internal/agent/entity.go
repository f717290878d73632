package agent

import "time"

type Role string

const (
	RoleTriage    Role = "triage"
	RoleGeofencer Role = "geofencer"
	RoleOracle    Role = "oracle"
	RoleClerk     Role = "clerk"
)

func (r Role) Valid() bool {
	switch r {
	case RoleTriage, RoleGeofencer, RoleOracle, RoleClerk:
		return true
	}
	return false
}

type Agent struct {
	ID             string    `yaml:"id" json:"id"`
	Name           string    `yaml:"name" json:"name"`
	Role           Role      `yaml:"role" json:"role"`
	Avatar         string    `yaml:"avatar" json:"avatar"`
	WalletBalance  int64     `yaml:"wallet_balance" json:"wallet_balance"`
	BountiesPosted int       `yaml:"bounties_posted" json:"bounties_posted"`
	Reputation     int       `yaml:"reputation" json:"reputation"`
	CreatedAt      time.Time `yaml:"created_at" json:"created_at"`
}
