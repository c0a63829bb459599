package season

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

// Season partitions all game and roster data. At most one season is active
// league-wide, but that rule lives in the admin layer; everything here just
// filters by whatever season id it is handed.
type Season struct {
	ID        string
	Name      string
	Year      int
	StartDate time.Time
	EndDate   time.Time
	Status    string
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusUpcoming
	}
	return status
}

func IsKnownStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusUpcoming, StatusActive, StatusCompleted, StatusArchived:
		return true
	default:
		return false
	}
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("season name is required")
	}
	if !IsKnownStatus(s.Status) {
		return fmt.Errorf("invalid season status: %s", s.Status)
	}

	return nil
}
