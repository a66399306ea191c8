package service

import (
	"fmt"

	"league-results-backend/internal/config"
)

// PositionSource tells where a resolved final position came from
type PositionSource string

const (
	PositionExplicit         PositionSource = "explicit"
	PositionRaceNumber       PositionSource = "race_number"
	PositionLeaderboardOrder PositionSource = "leaderboard_order"
	PositionNone             PositionSource = "none"
)

// ResolvedPosition is a final position together with its source
type ResolvedPosition struct {
	Value  int
	Source PositionSource
}

// PositionResolver picks the final position of a leaderboard entry
type PositionResolver interface {
	Resolve(entry *LeaderboardEntry) ResolvedPosition
}

// NewPositionResolver returns the resolver configured by name
func NewPositionResolver(strategy string) (PositionResolver, error) {
	switch strategy {
	case "", config.PositionStrategyRaceNumberFallback:
		return RaceNumberFallbackResolver{}, nil
	case config.PositionStrategyLeaderboardOrder:
		return LeaderboardOrderResolver{}, nil
	default:
		return nil, fmt.Errorf("unknown position strategy %q", strategy)
	}
}

// RaceNumberFallbackResolver uses the entry's position field and falls back to the
// car's race number. Race numbers are not positions; files without a position field
// get whatever number the car carried.
type RaceNumberFallbackResolver struct{}

func (RaceNumberFallbackResolver) Resolve(entry *LeaderboardEntry) ResolvedPosition {
	if p, ok := nonNegative(entry.Position); ok {
		return ResolvedPosition{Value: p, Source: PositionExplicit}
	}
	if p, ok := nonNegative(entry.RaceNumber); ok {
		return ResolvedPosition{Value: p, Source: PositionRaceNumber}
	}
	return ResolvedPosition{Source: PositionNone}
}

// LeaderboardOrderResolver uses the entry's position field and falls back to the
// 1-based index of the entry, since leaderBoardLines is written in finishing order.
type LeaderboardOrderResolver struct{}

func (LeaderboardOrderResolver) Resolve(entry *LeaderboardEntry) ResolvedPosition {
	if p, ok := nonNegative(entry.Position); ok {
		return ResolvedPosition{Value: p, Source: PositionExplicit}
	}
	if entry.Index >= 0 {
		return ResolvedPosition{Value: entry.Index + 1, Source: PositionLeaderboardOrder}
	}
	return ResolvedPosition{Source: PositionNone}
}

func nonNegative(v *int64) (int, bool) {
	if v == nil || *v < 0 || *v > int64(maxPosition) {
		return 0, false
	}
	return int(*v), true
}

// maxPosition keeps positions inside a 32-bit integer column
const maxPosition = 1<<31 - 1
