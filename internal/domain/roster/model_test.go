package roster

import "testing"

func TestActiveTeamIDs_DeduplicatesAndFilters(t *testing.T) {
	t.Parallel()

	memberships := []Membership{
		{PlayerID: "p1", TeamID: "team-a", SeasonID: "s1", Role: RoleStarter1, Status: StatusActive},
		// Duplicate active starter role on the same team must not double-count.
		{PlayerID: "p1", TeamID: "team-a", SeasonID: "s1", Role: RoleStarter2, Status: StatusActive},
		{PlayerID: "p1", TeamID: "team-b", SeasonID: "s1", Role: RoleSub, Status: StatusInactive},
		{PlayerID: "p1", TeamID: "team-c", SeasonID: "s2", Role: RoleStarter1, Status: StatusActive},
		{PlayerID: "p2", TeamID: "team-d", SeasonID: "s1", Role: RoleStarter1, Status: StatusActive},
	}

	got := ActiveTeamIDs(memberships, "p1", "s1")
	if len(got) != 1 || got[0] != "team-a" {
		t.Fatalf("expected exactly [team-a], got %v", got)
	}

	if got := ActiveTeamIDs(memberships, "p1", "s2"); len(got) != 1 || got[0] != "team-c" {
		t.Fatalf("season filter broken: %v", got)
	}
	if got := ActiveTeamIDs(nil, "p1", "s1"); len(got) != 0 {
		t.Fatalf("nil memberships must yield nothing, got %v", got)
	}
}

func TestActiveTeamIDs_MultipleTeams(t *testing.T) {
	t.Parallel()

	memberships := []Membership{
		{PlayerID: "p1", TeamID: "team-a", SeasonID: "s1", Role: RoleStarter1, Status: StatusActive},
		{PlayerID: "p1", TeamID: "team-b", SeasonID: "s1", Role: RoleSub, Status: StatusActive},
	}

	got := ActiveTeamIDs(memberships, "p1", "s1")
	if len(got) != 2 || got[0] != "team-a" || got[1] != "team-b" {
		t.Fatalf("expected [team-a team-b] in first-seen order, got %v", got)
	}
}

func TestMembershipStatusHelpers(t *testing.T) {
	t.Parallel()

	m := Membership{PlayerID: "p1", TeamID: "t1", SeasonID: "s1", Role: RoleSub, Status: " Active "}
	if !m.IsActive() {
		t.Fatalf("status normalization should accept padded case variants")
	}
	if (Membership{Status: StatusIR}).IsActive() {
		t.Fatalf("ir membership is not active")
	}
}
