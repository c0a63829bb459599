package usecase

import (
	"context"
	"fmt"

	"github.com/openbeerdie/leaguecore/internal/domain/game"
	"github.com/openbeerdie/leaguecore/internal/domain/player"
	"github.com/openbeerdie/leaguecore/internal/domain/playerstats"
	"github.com/openbeerdie/leaguecore/internal/domain/playoff"
	"github.com/openbeerdie/leaguecore/internal/domain/roster"
	"github.com/openbeerdie/leaguecore/internal/domain/team"
	"github.com/openbeerdie/leaguecore/internal/domain/teamstats"
)

type stubGameRepository struct {
	games []game.Game
	err   error
}

func (r *stubGameRepository) GetByID(_ context.Context, gameID string) (game.Game, bool, error) {
	if r.err != nil {
		return game.Game{}, false, r.err
	}
	for _, g := range r.games {
		if g.ID == gameID {
			return g, true, nil
		}
	}
	return game.Game{}, false, nil
}

func (r *stubGameRepository) ListBySeason(_ context.Context, seasonID string) ([]game.Game, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]game.Game, 0, len(r.games))
	for _, g := range r.games {
		if g.SeasonID == seasonID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *stubGameRepository) List(_ context.Context) ([]game.Game, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]game.Game(nil), r.games...), nil
}

type stubTeamRepository struct {
	teams []team.Team
	err   error
}

func (r *stubTeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	if r.err != nil {
		return team.Team{}, false, r.err
	}
	for _, item := range r.teams {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *stubTeamRepository) List(_ context.Context) ([]team.Team, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]team.Team(nil), r.teams...), nil
}

type stubPlayerRepository struct {
	players []player.Player
	err     error
}

func (r *stubPlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	if r.err != nil {
		return player.Player{}, false, r.err
	}
	for _, item := range r.players {
		if item.ID == playerID {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *stubPlayerRepository) List(_ context.Context) ([]player.Player, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]player.Player(nil), r.players...), nil
}

type stubRosterRepository struct {
	memberships []roster.Membership
	err         error
}

func (r *stubRosterRepository) ListBySeason(_ context.Context, seasonID string) ([]roster.Membership, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]roster.Membership, 0, len(r.memberships))
	for _, m := range r.memberships {
		if m.SeasonID == seasonID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubRosterRepository) ListByPlayer(_ context.Context, playerID string) ([]roster.Membership, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]roster.Membership, 0, len(r.memberships))
	for _, m := range r.memberships {
		if m.PlayerID == playerID {
			out = append(out, m)
		}
	}
	return out, nil
}

type stubLineRepository struct {
	lines []playerstats.GameLine
	err   error
}

func (r *stubLineRepository) ListLinesBySeason(_ context.Context, seasonID string) ([]playerstats.GameLine, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]playerstats.GameLine, 0, len(r.lines))
	for _, line := range r.lines {
		if line.SeasonID == seasonID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (r *stubLineRepository) ListLinesByPlayer(_ context.Context, seasonID, playerID string) ([]playerstats.GameLine, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]playerstats.GameLine, 0, len(r.lines))
	for _, line := range r.lines {
		if line.SeasonID == seasonID && line.PlayerID == playerID {
			out = append(out, line)
		}
	}
	return out, nil
}

type stubPlayoffRepository struct {
	matches map[string]playoff.Match
	order   []string
	saveErr error
}

func newStubPlayoffRepository() *stubPlayoffRepository {
	return &stubPlayoffRepository{matches: make(map[string]playoff.Match)}
}

func (r *stubPlayoffRepository) GetMatch(_ context.Context, playoffID, matchID string) (playoff.Match, bool, error) {
	m, ok := r.matches[matchID]
	if !ok || m.PlayoffID != playoffID {
		return playoff.Match{}, false, nil
	}
	return m, true, nil
}

func (r *stubPlayoffRepository) ListByPlayoff(_ context.Context, playoffID string) ([]playoff.Match, error) {
	out := make([]playoff.Match, 0, len(r.order))
	for _, matchID := range r.order {
		if m := r.matches[matchID]; m.PlayoffID == playoffID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubPlayoffRepository) SaveMatches(_ context.Context, matches []playoff.Match) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for _, m := range matches {
		if _, ok := r.matches[m.ID]; !ok {
			r.order = append(r.order, m.ID)
		}
		r.matches[m.ID] = m
	}
	return nil
}

func (r *stubPlayoffRepository) UpdateMatch(_ context.Context, match playoff.Match) error {
	if _, ok := r.matches[match.ID]; !ok {
		return fmt.Errorf("match %s not stored", match.ID)
	}
	r.matches[match.ID] = match
	return nil
}

type stubStatsProvider struct {
	teamRows   []teamstats.SeasonStats
	playerRows []playerstats.SeasonStats
	err        error
}

func (p *stubStatsProvider) AllTeamSeasons(_ context.Context, _ string) ([]teamstats.SeasonStats, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.teamRows, nil
}

func (p *stubStatsProvider) AllPlayerSeasons(_ context.Context, _ string) ([]playerstats.SeasonStats, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.playerRows, nil
}
