package player

import "testing"

func TestDisplayName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   Player
		want string
	}{
		{
			name: "plain",
			in:   Player{FirstName: "Danny", LastName: "Ocean"},
			want: "Danny Ocean",
		},
		{
			name: "nickname",
			in:   Player{FirstName: "Danny", LastName: "Ocean", Nickname: "The Arm"},
			want: `Danny "The Arm" Ocean`,
		},
		{
			name: "first only",
			in:   Player{FirstName: "Danny"},
			want: "Danny",
		},
		{
			name: "whitespace nickname ignored",
			in:   Player{FirstName: "Danny", LastName: "Ocean", Nickname: "   "},
			want: "Danny Ocean",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.in.DisplayName(); got != tc.want {
				t.Fatalf("DisplayName=%q want=%q", got, tc.want)
			}
		})
	}
}

func TestPlayerValidate(t *testing.T) {
	t.Parallel()

	ok := Player{ID: "p1", FirstName: "Danny", Status: StatusActive}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid player rejected: %v", err)
	}

	bad := Player{ID: "p2", FirstName: "Danny", Status: "retired"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("unknown status must be rejected")
	}
}
