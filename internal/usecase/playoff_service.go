package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/openbeerdie/leaguecore/internal/domain/playoff"
	"github.com/openbeerdie/leaguecore/internal/domain/teamstats"
	"github.com/openbeerdie/leaguecore/internal/platform/id"
	"github.com/openbeerdie/leaguecore/internal/platform/logging"
)

// CreateBracketInput carries a seeded team list plus series metadata. The
// series fields describe how matches are played and never affect bracket
// math.
type CreateBracketInput struct {
	PlayoffID    string   `validate:"required"`
	TeamIDs      []string `validate:"required,min=2,max=32,dive,required"`
	SeriesFormat string   `validate:"omitempty,oneof=single best_of_3 best_of_5"`
	PointTarget  int      `validate:"omitempty,gt=0"`
}

type PlayoffService struct {
	playoffRepo playoff.Repository
	idGen       id.Generator
	validate    *validator.Validate
	logger      *logging.Logger
}

func NewPlayoffService(playoffRepo playoff.Repository, idGen id.Generator, logger *logging.Logger) *PlayoffService {
	if idGen == nil {
		idGen = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayoffService{
		playoffRepo: playoffRepo,
		idGen:       idGen,
		validate:    validator.New(),
		logger:      logger,
	}
}

// SeedTeams orders teams for bracket entry: win percentage descending, then
// points for descending, then points against ascending. Teams without any
// recorded game sort after every team with one, keeping their input order.
func SeedTeams(stats []teamstats.SeasonStats) []string {
	ranked := append([]teamstats.SeasonStats(nil), stats...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.HasRecord() != b.HasRecord() {
			return a.HasRecord()
		}
		if !a.HasRecord() {
			return false
		}
		if a.WinPct != b.WinPct {
			return a.WinPct > b.WinPct
		}
		if a.PointsFor != b.PointsFor {
			return a.PointsFor > b.PointsFor
		}
		return a.PointsAgainst < b.PointsAgainst
	})

	out := make([]string, 0, len(ranked))
	for _, row := range ranked {
		out = append(out, row.TeamID)
	}
	return out
}

// CreateBracket builds the full single-elimination match graph for an
// already seeded team list and persists it atomically. Seeds are placed in
// standard bracket positions (1 vs lowest seed in slot 0, 2 vs
// second-lowest in the opposite half), so byes land on the top seeds and
// the top two can only meet in the finals.
func (s *PlayoffService) CreateBracket(ctx context.Context, input CreateBracketInput) ([]playoff.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.CreateBracket")
	defer span.End()

	input.PlayoffID = strings.TrimSpace(input.PlayoffID)
	if err := s.validate.Struct(input); err != nil {
		if len(input.TeamIDs) < playoff.MinTeams || len(input.TeamIDs) > playoff.MaxTeams {
			return nil, crerr.Wrapf(ErrInvalidSetup, "team count must be between %d and %d, got %d",
				playoff.MinTeams, playoff.MaxTeams, len(input.TeamIDs))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateDistinctTeams(input.TeamIDs); err != nil {
		return nil, err
	}

	matches, err := s.buildBracket(input.PlayoffID, input.TeamIDs)
	if err != nil {
		return nil, err
	}

	if s.playoffRepo != nil {
		if err := s.playoffRepo.SaveMatches(ctx, matches); err != nil {
			return nil, fmt.Errorf("save bracket matches: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "playoff bracket created",
		"playoff_id", input.PlayoffID,
		"teams", len(input.TeamIDs),
		"matches", len(matches),
		"rounds", playoff.HighestRound(matches),
	)
	return matches, nil
}

func (s *PlayoffService) buildBracket(playoffID string, seeded []string) ([]playoff.Match, error) {
	bracketSize := playoff.BracketSize(len(seeded))
	totalRounds := playoff.TotalRounds(bracketSize)
	positions := bracketPositions(bracketSize)

	// Later-round matches first so round 1 can link forward by id.
	idByRoundMatch := make(map[[2]int]string)
	matches := make([]playoff.Match, 0, bracketSize-1)
	for round := totalRounds; round >= 2; round-- {
		count := bracketSize >> round
		for number := 0; number < count; number++ {
			matchID, err := s.idGen.NewID()
			if err != nil {
				return nil, fmt.Errorf("generate match id: %w", err)
			}
			idByRoundMatch[[2]int{round, number}] = matchID
			matches = append(matches, playoff.Match{
				ID:          matchID,
				PlayoffID:   playoffID,
				RoundNumber: round,
				MatchNumber: number,
				Status:      playoff.MatchStatusPending,
				NextMatchID: idByRoundMatch[[2]int{round + 1, number / 2}],
			})
		}
	}

	round1 := make([]playoff.Match, 0, bracketSize/2)
	for number := 0; number < bracketSize/2; number++ {
		team1 := teamAt(seeded, positions[2*number])
		team2 := teamAt(seeded, positions[2*number+1])
		if team1 == "" && team2 == "" {
			// Cannot happen with minimal sizing; tolerate oversize input.
			continue
		}

		matchID, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate match id: %w", err)
		}
		m := playoff.Match{
			ID:          matchID,
			PlayoffID:   playoffID,
			RoundNumber: 1,
			MatchNumber: number,
			Team1ID:     team1,
			Team2ID:     team2,
			Status:      playoff.MatchStatusPending,
			NextMatchID: idByRoundMatch[[2]int{2, number / 2}],
		}
		if team1 == "" || team2 == "" {
			m.Status = playoff.MatchStatusBye
			if team1 != "" {
				m.WinnerID = team1
			} else {
				m.WinnerID = team2
			}
		}
		round1 = append(round1, m)
	}

	all := append(round1, matches...)
	sort.SliceStable(all, func(i, j int) bool {
		return playoff.SortKey(all[i]) < playoff.SortKey(all[j])
	})

	// A bye is resolved the moment it exists: push its winner forward.
	byID := make(map[string]int, len(all))
	for idx, m := range all {
		byID[m.ID] = idx
	}
	for _, m := range all {
		if m.Status != playoff.MatchStatusBye || m.NextMatchID == "" {
			continue
		}
		next, ok := byID[m.NextMatchID]
		if !ok {
			continue
		}
		assignAdvancementSlot(&all[next], m.MatchNumber, m.WinnerID)
	}

	return all, nil
}

// ResolveMatch records a final score, derives the winner by the same
// comparison rule games use, and advances the winner into the linked match.
func (s *PlayoffService) ResolveMatch(ctx context.Context, playoffID, matchID string, team1Score, team2Score int) (playoff.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.ResolveMatch")
	defer span.End()

	playoffID = strings.TrimSpace(playoffID)
	matchID = strings.TrimSpace(matchID)
	if playoffID == "" || matchID == "" {
		return playoff.Match{}, fmt.Errorf("%w: playoff id and match id are required", ErrInvalidInput)
	}
	if team1Score < 0 || team2Score < 0 {
		return playoff.Match{}, fmt.Errorf("%w: scores must not be negative", ErrInvalidInput)
	}
	if team1Score == team2Score {
		return playoff.Match{}, fmt.Errorf("%w: a playoff match cannot end tied", ErrInvalidInput)
	}

	match, exists, err := s.playoffRepo.GetMatch(ctx, playoffID, matchID)
	if err != nil {
		return playoff.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return playoff.Match{}, fmt.Errorf("%w: match=%s playoff=%s", ErrNotFound, matchID, playoffID)
	}
	if match.Status == playoff.MatchStatusCompleted || match.Status == playoff.MatchStatusBye {
		return playoff.Match{}, fmt.Errorf("%w: match=%s is already resolved", ErrInvalidInput, matchID)
	}
	if !match.IsReady() {
		return playoff.Match{}, fmt.Errorf("%w: match=%s is missing a participant", ErrInvalidInput, matchID)
	}

	match.Team1Score = team1Score
	match.Team2Score = team2Score
	if team1Score > team2Score {
		match.WinnerID = match.Team1ID
	} else {
		match.WinnerID = match.Team2ID
	}
	match.Status = playoff.MatchStatusCompleted

	if err := s.playoffRepo.UpdateMatch(ctx, match); err != nil {
		return playoff.Match{}, fmt.Errorf("update match: %w", err)
	}

	if match.NextMatchID != "" {
		next, exists, err := s.playoffRepo.GetMatch(ctx, playoffID, match.NextMatchID)
		if err != nil {
			return playoff.Match{}, fmt.Errorf("get next match: %w", err)
		}
		if !exists {
			return playoff.Match{}, fmt.Errorf("%w: next match=%s playoff=%s", ErrNotFound, match.NextMatchID, playoffID)
		}
		assignAdvancementSlot(&next, match.MatchNumber, match.WinnerID)
		if err := s.playoffRepo.UpdateMatch(ctx, next); err != nil {
			return playoff.Match{}, fmt.Errorf("advance winner into next match: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "playoff match resolved",
		"playoff_id", playoffID,
		"match_id", matchID,
		"winner_id", match.WinnerID,
	)
	return match, nil
}

// Bracket lists a playoff's matches in bracket order.
func (s *PlayoffService) Bracket(ctx context.Context, playoffID string) ([]playoff.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.Bracket")
	defer span.End()

	playoffID = strings.TrimSpace(playoffID)
	if playoffID == "" {
		return nil, fmt.Errorf("%w: playoff id is required", ErrInvalidInput)
	}

	matches, err := s.playoffRepo.ListByPlayoff(ctx, playoffID)
	if err != nil {
		return nil, fmt.Errorf("list playoff matches: %w", err)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return playoff.SortKey(matches[i]) < playoff.SortKey(matches[j])
	})
	return matches, nil
}

// IsComplete reports whether every match of the highest round is completed.
func (s *PlayoffService) IsComplete(ctx context.Context, playoffID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.IsComplete")
	defer span.End()

	matches, err := s.Bracket(ctx, playoffID)
	if err != nil {
		return false, err
	}

	highest := playoff.HighestRound(matches)
	if highest == 0 {
		return false, nil
	}
	for _, m := range playoff.FindByRound(matches, highest) {
		if m.Status != playoff.MatchStatusCompleted {
			return false, nil
		}
	}
	return true, nil
}

// Winner returns the champion once the finals match is completed.
func (s *PlayoffService) Winner(ctx context.Context, playoffID string) (string, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayoffService.Winner")
	defer span.End()

	matches, err := s.Bracket(ctx, playoffID)
	if err != nil {
		return "", false, err
	}

	highest := playoff.HighestRound(matches)
	if highest == 0 {
		return "", false, nil
	}
	finals := playoff.FindByRound(matches, highest)
	if len(finals) != 1 {
		return "", false, nil
	}
	if finals[0].Status != playoff.MatchStatusCompleted || finals[0].WinnerID == "" {
		return "", false, nil
	}
	return finals[0].WinnerID, true, nil
}

// bracketPositions expands a rank-ordered seed list into standard bracket
// slots: for size 8 the order is seeds 1,8,4,5,2,7,3,6, so slot pairs give
// 1v8, 4v5, 2v7, 3v6 and byes fall on the highest seeds.
func bracketPositions(bracketSize int) []int {
	positions := []int{0}
	for size := 2; size <= bracketSize; size *= 2 {
		grown := make([]int, 0, size)
		for _, seed := range positions {
			grown = append(grown, seed, size-1-seed)
		}
		positions = grown
	}
	return positions
}

func teamAt(seeded []string, position int) string {
	if position < 0 || position >= len(seeded) {
		return ""
	}
	return seeded[position]
}

// assignAdvancementSlot places a winner into the fed match: even feeder
// match numbers fill team1, odd fill team2. The match stays pending and
// becomes playable once both slots are set.
func assignAdvancementSlot(next *playoff.Match, feederMatchNumber int, winnerID string) {
	if next == nil || winnerID == "" {
		return
	}
	if feederMatchNumber%2 == 0 {
		next.Team1ID = winnerID
	} else {
		next.Team2ID = winnerID
	}
}

func validateDistinctTeams(teamIDs []string) error {
	seen := make(map[string]struct{}, len(teamIDs))
	for _, teamID := range teamIDs {
		if _, ok := seen[teamID]; ok {
			return crerr.Wrapf(ErrInvalidSetup, "duplicate team id %s", teamID)
		}
		seen[teamID] = struct{}{}
	}
	return nil
}
