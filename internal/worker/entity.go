package worker

import "time"

type Status string

const (
	StatusAvailable Status = "available"
	StatusEngaged   Status = "engaged"
	StatusOffline   Status = "offline"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusEngaged, StatusOffline:
		return true
	}
	return false
}

type Worker struct {
	ID             string    `yaml:"id" json:"id"`
	Callsign       string    `yaml:"callsign" json:"callsign"`
	Status         Status    `yaml:"status" json:"status"`
	Sector         string    `yaml:"sector" json:"sector"`
	Skills         []string  `yaml:"skills" json:"skills"`
	Rating         float64   `yaml:"rating" json:"rating"`
	CompletedTasks int       `yaml:"completed_tasks" json:"completed_tasks"`
	Earnings       int64     `yaml:"earnings" json:"earnings"`
	CreatedAt      time.Time `yaml:"created_at" json:"created_at"`
}
