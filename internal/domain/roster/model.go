package roster

import (
	"fmt"
	"strings"
)

const (
	RoleStarter1 = "starter_1"
	RoleStarter2 = "starter_2"
	RoleSub      = "sub"

	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusIR       = "ir"
)

// Membership is the season-scoped link between a player and a team.
// Only active rows count as "on the team" for aggregation. The roster admin
// layer enforces the at-most-two-starters rule; readers here must tolerate
// violations by never double-counting a (player, team) pair.
type Membership struct {
	PlayerID  string
	TeamID    string
	SeasonID  string
	Role      string
	Status    string
	IsCaptain bool
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusInactive
	}
	return status
}

func (m Membership) IsActive() bool {
	return NormalizeStatus(m.Status) == StatusActive
}

func (m Membership) Validate() error {
	if m.PlayerID == "" {
		return fmt.Errorf("roster player id is required")
	}
	if m.TeamID == "" {
		return fmt.Errorf("roster team id is required")
	}
	if m.SeasonID == "" {
		return fmt.Errorf("roster season id is required")
	}
	switch m.Role {
	case RoleStarter1, RoleStarter2, RoleSub:
	default:
		return fmt.Errorf("invalid roster role: %s", m.Role)
	}

	return nil
}

// ActiveTeamIDs resolves the distinct team ids the player is actively
// rostered on for the season, in first-seen order. Duplicate active rows
// for the same team collapse to one entry.
func ActiveTeamIDs(memberships []Membership, playerID, seasonID string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 2)
	for _, m := range memberships {
		if m.PlayerID != playerID || m.SeasonID != seasonID || !m.IsActive() {
			continue
		}
		if m.TeamID == "" {
			continue
		}
		if _, ok := seen[m.TeamID]; ok {
			continue
		}
		seen[m.TeamID] = struct{}{}
		out = append(out, m.TeamID)
	}
	return out
}
