package extractor

import (
	"context"
	"fmt"
	matchfetcher "soloq/pipeline/data/match"
	"soloq/pkg/database/models"
	queuevalues "soloq/pkg/riotvalues/queue"
)

// ParticipantsPerMatch is the exact participant count of a ranked match.
const ParticipantsPerMatch = 10

// MatchSource is the capability needed to fetch a raw match payload.
type MatchSource interface {
	GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error)
}

// AssembledMatch is the full record set of one accepted match.
// All three parts share the same match id and are persisted together.
type AssembledMatch struct {
	Match   *models.MatchData
	Players []*models.PlayerData
	Bans    *models.ChampionBans
}

// Assembler orchestrates the extraction of a whole match payload.
type Assembler struct {
	source     MatchSource
	normalizer *Normalizer
}

// NewAssembler creates a match assembler.
func NewAssembler(source MatchSource, normalizer *Normalizer) *Assembler {
	return &Assembler{
		source:     source,
		normalizer: normalizer,
	}
}

// Assemble fetches a match and produces its three record sets.
// A match on the wrong queue or without a normal conclusion returns
// (nil, nil): filtered out is a frequent outcome, not a failure.
func (a *Assembler) Assemble(ctx context.Context, matchId string) (*AssembledMatch, error) {
	match, err := a.source.GetMatchData(ctx, matchId)
	if err != nil {
		return nil, err
	}

	info := match.Info

	// Acceptance filters run before any extraction work.
	if info.QueueId != queuevalues.RankedSoloQueueId {
		return nil, nil
	}
	if info.EndOfGameResult != queuevalues.GameComplete {
		return nil, nil
	}

	blue, red, err := splitTeams(info.Teams, matchId)
	if err != nil {
		return nil, err
	}

	winner := FirstSide(blue.Win, red.Win)
	if winner == SideNone {
		return nil, &MalformedInputError{MatchId: matchId, Reason: "completed match without a winning team"}
	}

	if len(info.Participants) != ParticipantsPerMatch {
		return nil, &MalformedInputError{
			MatchId: matchId,
			Reason:  fmt.Sprintf("expected %d participants, got %d", ParticipantsPerMatch, len(info.Participants)),
		}
	}

	durationMinutes := float64(info.GameDuration) / 60

	matchRecord := &models.MatchData{
		MatchId:      matchId,
		GameDuration: durationMinutes,
		Win:          string(winner),
		FirstDrake:   string(FirstSide(blue.Objectives.Dragon.First, red.Objectives.Dragon.First)),
		DragonKills:  blue.Objectives.Dragon.Kills + red.Objectives.Dragon.Kills,
		FirstBaron:   string(FirstSide(blue.Objectives.Baron.First, red.Objectives.Baron.First)),
		Surrender:    info.Participants[0].GameEndedInSurrender,
	}

	// Keep the source participant ordering so team assignment stays interpretable.
	players := make([]*models.PlayerData, 0, ParticipantsPerMatch)
	for _, participant := range info.Participants {
		record, err := a.normalizer.NormalizeParticipant(ctx, participant, durationMinutes, matchId)
		if err != nil {
			return nil, err
		}

		players = append(players, record)
	}

	blueBans := ExtractBans(*blue)
	redBans := ExtractBans(*red)

	bans := &models.ChampionBans{
		MatchId: matchId,
		Ban1:    blueBans[0],
		Ban2:    blueBans[1],
		Ban3:    blueBans[2],
		Ban4:    blueBans[3],
		Ban5:    blueBans[4],
		Ban6:    redBans[0],
		Ban7:    redBans[1],
		Ban8:    redBans[2],
		Ban9:    redBans[3],
		Ban10:   redBans[4],
	}

	return &AssembledMatch{
		Match:   matchRecord,
		Players: players,
		Bans:    bans,
	}, nil
}

// splitTeams finds the blue and the red team by their ids.
func splitTeams(teams []matchfetcher.TeamInfo, matchId string) (*matchfetcher.TeamInfo, *matchfetcher.TeamInfo, error) {
	var blue, red *matchfetcher.TeamInfo

	for i := range teams {
		switch teams[i].TeamId {
		case BlueTeamId:
			blue = &teams[i]
		case RedTeamId:
			red = &teams[i]
		}
	}

	if blue == nil || red == nil {
		return nil, nil, &MalformedInputError{MatchId: matchId, Reason: "match is missing one of the two teams"}
	}

	return blue, red, nil
}
