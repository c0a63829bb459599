package player

import (
	"fmt"
	"strings"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusAlumni   = "alumni"
)

// Player is a league member. Team attachment is season-scoped and lives in
// the roster package, not here.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	Nickname  string
	Status    string
}

// DisplayName renders `first "nickname" last` when a nickname exists,
// else `first last`.
func (p Player) DisplayName() string {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	nickname := strings.TrimSpace(p.Nickname)

	if nickname != "" {
		return strings.TrimSpace(fmt.Sprintf("%s %q %s", first, nickname, last))
	}
	return strings.TrimSpace(first + " " + last)
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusActive
	}
	return status
}

func (p Player) IsActive() bool {
	return NormalizeStatus(p.Status) == StatusActive
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.FirstName) == "" && strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player name is required")
	}
	switch NormalizeStatus(p.Status) {
	case StatusActive, StatusInactive, StatusAlumni:
	default:
		return fmt.Errorf("invalid player status: %s", p.Status)
	}

	return nil
}
