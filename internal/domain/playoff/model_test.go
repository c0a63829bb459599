package playoff

import "testing"

func TestBracketSize(t *testing.T) {
	t.Parallel()

	cases := map[int]int{
		2: 2, 3: 4, 4: 4, 5: 8, 8: 8, 9: 16, 16: 16, 17: 32, 32: 32,
	}
	for teams, want := range cases {
		if got := BracketSize(teams); got != want {
			t.Fatalf("BracketSize(%d)=%d want=%d", teams, got, want)
		}
	}

	// Every legal team count maps to the smallest power of two that fits.
	for teams := MinTeams; teams <= MaxTeams; teams++ {
		size := BracketSize(teams)
		if size < teams {
			t.Fatalf("BracketSize(%d)=%d is too small", teams, size)
		}
		if size > MinTeams && size/2 >= teams {
			t.Fatalf("BracketSize(%d)=%d is not minimal", teams, size)
		}
		if byes := size - teams; byes < 0 {
			t.Fatalf("negative bye count for %d teams", teams)
		}
	}
}

func TestTotalRounds(t *testing.T) {
	t.Parallel()

	cases := map[int]int{2: 1, 4: 2, 8: 3, 16: 4, 32: 5}
	for size, want := range cases {
		if got := TotalRounds(size); got != want {
			t.Fatalf("TotalRounds(%d)=%d want=%d", size, got, want)
		}
	}
}

func TestRoundName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		round, total int
		want         string
	}{
		{1, 1, "Finals"},
		{1, 2, "Semifinals"},
		{2, 2, "Finals"},
		{1, 3, "Quarterfinals"},
		{2, 3, "Semifinals"},
		{3, 3, "Finals"},
		{1, 4, "First Round"},
		{2, 4, "Quarterfinals"},
		{1, 5, "First Round"},
		{2, 5, "Round 2"},
		{3, 5, "Quarterfinals"},
	}
	for _, tc := range cases {
		if got := RoundName(tc.round, tc.total); got != tc.want {
			t.Fatalf("RoundName(%d,%d)=%q want=%q", tc.round, tc.total, got, tc.want)
		}
	}
}

func TestMatchIsReady(t *testing.T) {
	t.Parallel()

	m := Match{Status: MatchStatusPending, Team1ID: "t1"}
	if m.IsReady() {
		t.Fatalf("one empty slot means not ready")
	}
	m.Team2ID = "t2"
	if !m.IsReady() {
		t.Fatalf("both slots filled and pending means ready")
	}
	m.Status = MatchStatusCompleted
	if m.IsReady() {
		t.Fatalf("completed match is not ready")
	}
}

func TestHighestRound(t *testing.T) {
	t.Parallel()

	matches := []Match{
		{RoundNumber: 1}, {RoundNumber: 3}, {RoundNumber: 2},
	}
	if got := HighestRound(matches); got != 3 {
		t.Fatalf("HighestRound=%d want=3", got)
	}
	if got := HighestRound(nil); got != 0 {
		t.Fatalf("empty bracket has no rounds, got %d", got)
	}
}
