package memory

import (
	"time"

	"github.com/openbeerdie/leaguecore/internal/domain/game"
	"github.com/openbeerdie/leaguecore/internal/domain/player"
	"github.com/openbeerdie/leaguecore/internal/domain/playerstats"
	"github.com/openbeerdie/leaguecore/internal/domain/roster"
	"github.com/openbeerdie/leaguecore/internal/domain/season"
	"github.com/openbeerdie/leaguecore/internal/domain/team"
)

const (
	SeasonIDSummer2026 = "summer-2026"
	SeasonIDSpring2026 = "spring-2026"
)

func SeedSeasons() []season.Season {
	return []season.Season{
		{
			ID:        SeasonIDSummer2026,
			Name:      "Summer 2026",
			Year:      2026,
			StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
			Status:    season.StatusActive,
		},
		{
			ID:        SeasonIDSpring2026,
			Name:      "Spring 2026",
			Year:      2026,
			StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 5, 24, 0, 0, 0, 0, time.UTC),
			Status:    season.StatusCompleted,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "team-rippers", Name: "Rail Rippers", Abbreviation: "RIP", Color: "#c0392b", Icon: "skull"},
		{ID: "team-dialed", Name: "Dialed In", Abbreviation: "DLD", Color: "#2980b9", Icon: "target"},
		{ID: "team-toss", Name: "Toss Monsters", Abbreviation: "TOS", Color: "#27ae60", Icon: "dice"},
		{ID: "team-sinkers", Name: "Splash Sinkers", Abbreviation: "SNK", Color: "#8e44ad", Icon: "wave"},
		{ID: "team-lobbers", Name: "Low Lobbers", Abbreviation: "LOB", Color: "#f39c12", Icon: "arc"},
		{ID: "team-chuckers", Name: "Corner Chuckers", Abbreviation: "CHK", Color: "#16a085", Icon: "anchor"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "player-01", FirstName: "Danny", LastName: "Okafor", Nickname: "Dice", Status: player.StatusActive},
		{ID: "player-02", FirstName: "Mia", LastName: "Strand", Nickname: "Snipes", Status: player.StatusActive},
		{ID: "player-03", FirstName: "Cole", LastName: "Bryant", Nickname: "Rocket", Status: player.StatusActive},
		{ID: "player-04", FirstName: "Jess", LastName: "Vaughn", Nickname: "Clutch", Status: player.StatusActive},
		{ID: "player-05", FirstName: "Theo", LastName: "Marsh", Nickname: "Lowball", Status: player.StatusActive},
		{ID: "player-06", FirstName: "Rina", LastName: "Kato", Nickname: "Edge", Status: player.StatusActive},
		{ID: "player-07", FirstName: "Owen", LastName: "Pratt", Nickname: "Sauce", Status: player.StatusInactive},
		{ID: "player-08", FirstName: "Liv", LastName: "Sandoval", Nickname: "Splash", Status: player.StatusAlumni},
	}
}

func SeedRosters() []roster.Membership {
	return []roster.Membership{
		{PlayerID: "player-01", TeamID: "team-rippers", SeasonID: SeasonIDSummer2026, Role: roster.RoleStarter1, Status: roster.StatusActive, IsCaptain: true},
		{PlayerID: "player-02", TeamID: "team-rippers", SeasonID: SeasonIDSummer2026, Role: roster.RoleStarter2, Status: roster.StatusActive},
		{PlayerID: "player-03", TeamID: "team-dialed", SeasonID: SeasonIDSummer2026, Role: roster.RoleStarter1, Status: roster.StatusActive, IsCaptain: true},
		{PlayerID: "player-04", TeamID: "team-dialed", SeasonID: SeasonIDSummer2026, Role: roster.RoleStarter2, Status: roster.StatusActive},
		{PlayerID: "player-05", TeamID: "team-toss", SeasonID: SeasonIDSummer2026, Role: roster.RoleStarter1, Status: roster.StatusActive, IsCaptain: true},
		{PlayerID: "player-06", TeamID: "team-sinkers", SeasonID: SeasonIDSummer2026, Role: roster.RoleStarter1, Status: roster.StatusActive, IsCaptain: true},
		// player-06 also subs for a second squad this season.
		{PlayerID: "player-06", TeamID: "team-toss", SeasonID: SeasonIDSummer2026, Role: roster.RoleSub, Status: roster.StatusActive},
		{PlayerID: "player-07", TeamID: "team-lobbers", SeasonID: SeasonIDSummer2026, Role: roster.RoleStarter1, Status: roster.StatusIR},
		{PlayerID: "player-08", TeamID: "team-chuckers", SeasonID: SeasonIDSpring2026, Role: roster.RoleStarter1, Status: roster.StatusActive},
	}
}

func SeedGames() []game.Game {
	return []game.Game{
		{
			ID:         "game-su26-001",
			SeasonID:   SeasonIDSummer2026,
			HomeTeamID: "team-rippers",
			AwayTeamID: "team-dialed",
			HomeScore:  11,
			AwayScore:  9,
			Status:     game.StatusCompleted,
			GameDate:   time.Date(2026, 6, 6, 18, 0, 0, 0, time.UTC),
			Week:       1,
		},
		{
			ID:         "game-su26-002",
			SeasonID:   SeasonIDSummer2026,
			HomeTeamID: "team-toss",
			AwayTeamID: "team-sinkers",
			HomeScore:  11,
			AwayScore:  0,
			Status:     game.StatusCompleted,
			GameDate:   time.Date(2026, 6, 6, 19, 0, 0, 0, time.UTC),
			Week:       1,
		},
		{
			ID:         "game-su26-003",
			SeasonID:   SeasonIDSummer2026,
			HomeTeamID: "team-lobbers",
			AwayTeamID: "team-chuckers",
			HomeScore:  12,
			AwayScore:  10,
			Status:     game.StatusCompleted,
			GameDate:   time.Date(2026, 6, 7, 17, 0, 0, 0, time.UTC),
			Week:       1,
		},
		{
			ID:         "game-su26-004",
			SeasonID:   SeasonIDSummer2026,
			HomeTeamID: "team-dialed",
			AwayTeamID: "team-toss",
			HomeScore:  11,
			AwayScore:  4,
			Status:     game.StatusCompleted,
			GameDate:   time.Date(2026, 6, 13, 18, 0, 0, 0, time.UTC),
			Week:       2,
		},
		{
			ID:         "game-su26-005",
			SeasonID:   SeasonIDSummer2026,
			HomeTeamID: "team-rippers",
			AwayTeamID: "team-lobbers",
			HomeScore:  11,
			AwayScore:  7,
			Status:     game.StatusCompleted,
			GameDate:   time.Date(2026, 6, 13, 19, 0, 0, 0, time.UTC),
			Week:       2,
		},
		{
			ID:         "game-su26-006",
			SeasonID:   SeasonIDSummer2026,
			HomeTeamID: "team-sinkers",
			AwayTeamID: "team-chuckers",
			HomeScore:  8,
			AwayScore:  11,
			Status:     game.StatusCompleted,
			GameDate:   time.Date(2026, 6, 14, 17, 0, 0, 0, time.UTC),
			Week:       2,
		},
		{
			ID:         "game-su26-007",
			SeasonID:   SeasonIDSummer2026,
			HomeTeamID: "team-rippers",
			AwayTeamID: "team-toss",
			HomeScore:  9,
			AwayScore:  11,
			Status:     game.StatusCompleted,
			GameDate:   time.Date(2026, 6, 20, 18, 0, 0, 0, time.UTC),
			Week:       3,
		},
		{
			ID:         "game-su26-008",
			SeasonID:   SeasonIDSummer2026,
			HomeTeamID: "team-dialed",
			AwayTeamID: "team-sinkers",
			HomeScore:  11,
			AwayScore:  2,
			Status:     game.StatusCompleted,
			GameDate:   time.Date(2026, 6, 20, 19, 0, 0, 0, time.UTC),
			Week:       3,
		},
		{
			ID:         "game-su26-009",
			SeasonID:   SeasonIDSummer2026,
			HomeTeamID: "team-lobbers",
			AwayTeamID: "team-dialed",
			Status:     game.StatusScheduled,
			GameDate:   time.Date(2026, 6, 27, 18, 0, 0, 0, time.UTC),
			Week:       4,
		},
		{
			ID:         "game-su26-010",
			SeasonID:   SeasonIDSummer2026,
			HomeTeamID: "team-chuckers",
			AwayTeamID: "team-rippers",
			Status:     game.StatusScheduled,
			GameDate:   time.Date(2026, 6, 27, 19, 0, 0, 0, time.UTC),
			Week:       4,
		},
		{
			ID:         "game-sp26-001",
			SeasonID:   SeasonIDSpring2026,
			HomeTeamID: "team-chuckers",
			AwayTeamID: "team-rippers",
			HomeScore:  11,
			AwayScore:  5,
			Status:     game.StatusCompleted,
			GameDate:   time.Date(2026, 4, 11, 18, 0, 0, 0, time.UTC),
			Week:       1,
		},
	}
}

func SeedThrowLines() []playerstats.GameLine {
	return []playerstats.GameLine{
		{PlayerID: "player-01", GameID: "game-su26-001", SeasonID: SeasonIDSummer2026, TableHits: 14, ThrowsMissed: 6, CupsHit: 3},
		{PlayerID: "player-02", GameID: "game-su26-001", SeasonID: SeasonIDSummer2026, TableHits: 11, ThrowsMissed: 9, CupsHit: 2},
		{PlayerID: "player-03", GameID: "game-su26-001", SeasonID: SeasonIDSummer2026, TableHits: 12, ThrowsMissed: 8, CupsHit: 1},
		{PlayerID: "player-04", GameID: "game-su26-001", SeasonID: SeasonIDSummer2026, TableHits: 10, ThrowsMissed: 10, CupsHit: 2},
		{PlayerID: "player-05", GameID: "game-su26-002", SeasonID: SeasonIDSummer2026, TableHits: 16, ThrowsMissed: 4, CupsHit: 4},
		{PlayerID: "player-06", GameID: "game-su26-002", SeasonID: SeasonIDSummer2026, TableHits: 7, ThrowsMissed: 13, CupsHit: 0},
		{PlayerID: "player-03", GameID: "game-su26-004", SeasonID: SeasonIDSummer2026, TableHits: 15, ThrowsMissed: 5, CupsHit: 3},
		{PlayerID: "player-05", GameID: "game-su26-004", SeasonID: SeasonIDSummer2026, TableHits: 9, ThrowsMissed: 11, CupsHit: 1},
		{PlayerID: "player-01", GameID: "game-su26-007", SeasonID: SeasonIDSummer2026, TableHits: 13, ThrowsMissed: 7, CupsHit: 2},
		{PlayerID: "player-05", GameID: "game-su26-007", SeasonID: SeasonIDSummer2026, TableHits: 14, ThrowsMissed: 6, CupsHit: 3},
	}
}

// SeedRepositories wires every seed list into fresh memory repositories,
// mirroring what LoadSnapshot does for an exported bundle.
func SeedRepositories() Repositories {
	return Repositories{
		Seasons:     NewSeasonRepository(SeedSeasons()),
		Teams:       NewTeamRepository(SeedTeams()),
		Players:     NewPlayerRepository(SeedPlayers()),
		Rosters:     NewRosterRepository(SeedRosters()),
		Games:       NewGameRepository(SeedGames()),
		PlayerStats: NewPlayerStatsRepository(SeedThrowLines()),
	}
}
