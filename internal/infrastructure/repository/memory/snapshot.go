package memory

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/openbeerdie/leaguecore/internal/domain/game"
	"github.com/openbeerdie/leaguecore/internal/domain/player"
	"github.com/openbeerdie/leaguecore/internal/domain/playerstats"
	"github.com/openbeerdie/leaguecore/internal/domain/roster"
	"github.com/openbeerdie/leaguecore/internal/domain/season"
	"github.com/openbeerdie/leaguecore/internal/domain/team"
)

// Snapshot is the JSON bundle the persistence layer exports for the core:
// one self-contained read-only copy of league state.
type Snapshot struct {
	Seasons     []seasonRow     `json:"seasons"`
	Teams       []teamRow       `json:"teams"`
	Players     []playerRow     `json:"players"`
	Memberships []membershipRow `json:"playerTeams"`
	Games       []gameRow       `json:"games"`
	ThrowLines  []throwLineRow  `json:"throwLines"`
}

type seasonRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Year      int    `json:"year"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

type teamRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Color        string `json:"color"`
	Icon         string `json:"icon"`
	LogoURL      string `json:"logoUrl"`
}

type playerRow struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Nickname  string `json:"nickname"`
	Status    string `json:"status"`
}

type membershipRow struct {
	PlayerID  string `json:"playerId"`
	TeamID    string `json:"teamId"`
	SeasonID  string `json:"seasonId"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	IsCaptain bool   `json:"isCaptain"`
}

type gameRow struct {
	ID            string `json:"id"`
	SeasonID      string `json:"seasonId"`
	HomeTeamID    string `json:"homeTeamId"`
	AwayTeamID    string `json:"awayTeamId"`
	HomeScore     int    `json:"homeScore"`
	AwayScore     int    `json:"awayScore"`
	Status        string `json:"status"`
	GameDate      string `json:"gameDate"`
	Week          int    `json:"week"`
	WinningTeamID string `json:"winningTeamId"`
}

type throwLineRow struct {
	PlayerID     string `json:"playerId"`
	GameID       string `json:"gameId"`
	SeasonID     string `json:"seasonId"`
	TableHits    int    `json:"tableHits"`
	ThrowsMissed int    `json:"throwsMissed"`
	CupsHit      int    `json:"cupsHit"`
}

// Repositories bundles one memory repository per entity, all backed by the
// same snapshot.
type Repositories struct {
	Seasons     *SeasonRepository
	Teams       *TeamRepository
	Players     *PlayerRepository
	Rosters     *RosterRepository
	Games       *GameRepository
	PlayerStats *PlayerStatsRepository
}

// LoadSnapshot decodes a JSON snapshot and wires up memory repositories
// over it. Date fields accept RFC 3339 or bare dates; anything else is
// treated as unknown rather than failing the whole load.
func LoadSnapshot(raw []byte) (Repositories, error) {
	var snapshot Snapshot
	if err := sonic.Unmarshal(raw, &snapshot); err != nil {
		return Repositories{}, fmt.Errorf("decode snapshot: %w", err)
	}

	seasons := make([]season.Season, 0, len(snapshot.Seasons))
	for _, row := range snapshot.Seasons {
		seasons = append(seasons, season.Season{
			ID:        row.ID,
			Name:      row.Name,
			Year:      row.Year,
			StartDate: parseSnapshotDate(row.StartDate),
			EndDate:   parseSnapshotDate(row.EndDate),
			Status:    season.NormalizeStatus(row.Status),
		})
	}

	teams := make([]team.Team, 0, len(snapshot.Teams))
	for _, row := range snapshot.Teams {
		teams = append(teams, team.Team{
			ID:           row.ID,
			Name:         row.Name,
			Abbreviation: row.Abbreviation,
			Color:        row.Color,
			Icon:         row.Icon,
			LogoURL:      row.LogoURL,
		})
	}

	players := make([]player.Player, 0, len(snapshot.Players))
	for _, row := range snapshot.Players {
		players = append(players, player.Player{
			ID:        row.ID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Nickname:  row.Nickname,
			Status:    player.NormalizeStatus(row.Status),
		})
	}

	memberships := make([]roster.Membership, 0, len(snapshot.Memberships))
	for _, row := range snapshot.Memberships {
		memberships = append(memberships, roster.Membership{
			PlayerID:  row.PlayerID,
			TeamID:    row.TeamID,
			SeasonID:  row.SeasonID,
			Role:      row.Role,
			Status:    roster.NormalizeStatus(row.Status),
			IsCaptain: row.IsCaptain,
		})
	}

	games := make([]game.Game, 0, len(snapshot.Games))
	for _, row := range snapshot.Games {
		games = append(games, game.Game{
			ID:            row.ID,
			SeasonID:      row.SeasonID,
			HomeTeamID:    row.HomeTeamID,
			AwayTeamID:    row.AwayTeamID,
			HomeScore:     row.HomeScore,
			AwayScore:     row.AwayScore,
			Status:        game.NormalizeStatus(row.Status),
			GameDate:      parseSnapshotDate(row.GameDate),
			Week:          row.Week,
			WinningTeamID: row.WinningTeamID,
		})
	}

	lines := make([]playerstats.GameLine, 0, len(snapshot.ThrowLines))
	for _, row := range snapshot.ThrowLines {
		lines = append(lines, playerstats.GameLine{
			PlayerID:     row.PlayerID,
			GameID:       row.GameID,
			SeasonID:     row.SeasonID,
			TableHits:    row.TableHits,
			ThrowsMissed: row.ThrowsMissed,
			CupsHit:      row.CupsHit,
		})
	}

	return Repositories{
		Seasons:     NewSeasonRepository(seasons),
		Teams:       NewTeamRepository(teams),
		Players:     NewPlayerRepository(players),
		Rosters:     NewRosterRepository(memberships),
		Games:       NewGameRepository(games),
		PlayerStats: NewPlayerStatsRepository(lines),
	}, nil
}

func parseSnapshotDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
