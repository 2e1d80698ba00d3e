package extractor

import (
	"context"
	leaguefetcher "soloq/pipeline/data/league"
	queuevalues "soloq/pkg/riotvalues/queue"
	tiervalues "soloq/pkg/riotvalues/tier"
	"strings"
)

// LeagueSource is the capability needed to look up a player rank.
type LeagueSource interface {
	GetLeagueByPuuid(ctx context.Context, puuid string) ([]leaguefetcher.LeagueEntry, error)
}

// RankResolver resolves the current solo queue tier and division of a player.
type RankResolver struct {
	source LeagueSource
}

// NewRankResolver creates a rank resolver on top of a league source.
func NewRankResolver(source LeagueSource) *RankResolver {
	return &RankResolver{
		source: source,
	}
}

// Resolve returns the tier and the division (1-4) of a player.
// An unranked player, or one with a label outside the recognized set,
// returns (nil, nil, nil). That is an expected outcome, not an error.
// A failing source is propagated untouched.
func (r *RankResolver) Resolve(ctx context.Context, puuid string) (*string, *int, error) {
	entries, err := r.source.GetLeagueByPuuid(ctx, puuid)
	if err != nil {
		return nil, nil, err
	}

	for _, entry := range entries {
		// Only the solo queue entry matters, flex ranks are ignored.
		if entry.QueueType == nil || *entry.QueueType != queuevalues.RankedSoloQueue {
			continue
		}

		if entry.Tier == nil || entry.Rank == nil {
			return nil, nil, nil
		}

		tier := strings.ToUpper(strings.TrimSpace(*entry.Tier))
		if !tiervalues.IsTracked(tier) {
			return nil, nil, nil
		}

		division, ok := tiervalues.DivisionValue(*entry.Rank)
		if !ok {
			return nil, nil, nil
		}

		return &tier, &division, nil
	}

	return nil, nil, nil
}
