package extractor

import (
	"context"
	"fmt"
	matchfetcher "soloq/pipeline/data/match"
	"soloq/pkg/database/models"
	lanevalues "soloq/pkg/riotvalues/lane"
)

// MalformedInputError aborts the processing of a single match without
// touching anything already persisted.
type MalformedInputError struct {
	MatchId string
	Reason  string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed match %s: %s", e.MatchId, e.Reason)
}

// Normalizer converts one raw participant into a player_data record.
type Normalizer struct {
	ranks *RankResolver
}

// NewNormalizer creates a normalizer with its rank resolver.
func NewNormalizer(ranks *RankResolver) *Normalizer {
	return &Normalizer{
		ranks: ranks,
	}
}

// NormalizeParticipant converts the cumulative counters of a participant
// into per minute rates and maps the lane into the canonical vocabulary.
// Rates are plain floating point divisions, rounding belongs to the column type.
// A rank lookup failure propagates: a participant set must never be partial.
func (n *Normalizer) NormalizeParticipant(
	ctx context.Context,
	participant matchfetcher.MatchPlayer,
	durationMinutes float64,
	matchId string,
) (*models.PlayerData, error) {
	// Guard the divisions below.
	if durationMinutes <= 0 {
		return nil, &MalformedInputError{MatchId: matchId, Reason: "game duration must be positive"}
	}

	lane, ok := lanevalues.CanonicalLane[participant.TeamPosition]
	if !ok {
		return nil, &MalformedInputError{
			MatchId: matchId,
			Reason:  fmt.Sprintf("unmapped lane %q", participant.TeamPosition),
		}
	}

	tier, division, err := n.ranks.Resolve(ctx, participant.Puuid)
	if err != nil {
		return nil, err
	}

	firstBlood := 0
	if participant.FirstBloodKill {
		firstBlood = 1
	}

	creepScore := participant.TotalMinionsKilled + participant.NeutralMinionsKilled

	return &models.PlayerData{
		MatchId:    matchId,
		TeamId:     participant.TeamId,
		Lane:       lane,
		Rank:       tier,
		Division:   division,
		ChampionId: participant.ChampionId,

		FirstBlood:        firstBlood,
		Kills:             participant.Kills,
		Deaths:            participant.Deaths,
		Assists:           participant.Assists,
		DmgPerMin:         float64(participant.TotalDamageDealtToChampions) / durationMinutes,
		DmgTakenPerMin:    float64(participant.TotalDamageTaken) / durationMinutes,
		TotalTimeDead:     participant.TotalTimeSpentDead,
		GoldPerMin:        float64(participant.GoldEarned) / durationMinutes,
		WardsPlaced:       participant.WardsPlaced,
		SightWardsBought:  participant.SightWardsBoughtInGame,
		WardsDestroyed:    participant.WardsKilled,
		VisionScorePerMin: float64(participant.VisionScore) / durationMinutes,
		DmgToTowers:       participant.DamageDealtToTurrets,
		CsPerMin:          float64(creepScore) / durationMinutes,
		MissingPings:      participant.EnemyMissingPings,
	}, nil
}
