package extractor

import (
	"context"
	"fmt"
	leaguefetcher "soloq/pipeline/data/league"
	matchfetcher "soloq/pipeline/data/match"
	queuevalues "soloq/pkg/riotvalues/queue"

	"github.com/stretchr/testify/mock"
)

// MatchSource mock implementation.
type MockMatchSource struct {
	mock.Mock
}

func (m *MockMatchSource) GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchData), args.Error(1)
}

// LeagueSource mock implementation.
type MockLeagueSource struct {
	mock.Mock
}

func (m *MockLeagueSource) GetLeagueByPuuid(ctx context.Context, puuid string) ([]leaguefetcher.LeagueEntry, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leaguefetcher.LeagueEntry), args.Error(1)
}

func strPtr(value string) *string {
	return &value
}

// getSoloEntry builds a ranked solo league entry for a player.
func getSoloEntry(tier string, division string) leaguefetcher.LeagueEntry {
	return leaguefetcher.LeagueEntry{
		QueueType: strPtr(queuevalues.RankedSoloQueue),
		Tier:      strPtr(tier),
		Rank:      strPtr(division),
		Puuid:     "mock-puuid",
	}
}

// Team positions in the order the source lists a team's participants.
var teamPositions = []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}

// getValidMatchData builds a completed ranked match with 10 participants.
// Participant i plays champion i+1, the blue side comes first.
func getValidMatchData() *matchfetcher.MatchData {
	participants := make([]matchfetcher.MatchPlayer, 0, 10)

	for i := 0; i < 10; i++ {
		teamId := BlueTeamId
		if i >= 5 {
			teamId = RedTeamId
		}

		participants = append(participants, matchfetcher.MatchPlayer{
			Assists:                     5,
			ChampionId:                  i + 1,
			DamageDealtToTurrets:        3000,
			Deaths:                      4,
			EnemyMissingPings:           7,
			FirstBloodKill:              i == 0,
			GoldEarned:                  12600,
			Kills:                       6,
			NeutralMinionsKilled:        40,
			Puuid:                       fmt.Sprintf("puuid-%d", i+1),
			SightWardsBoughtInGame:      2,
			TeamId:                      teamId,
			TeamPosition:                teamPositions[i%5],
			TotalDamageDealtToChampions: 21000,
			TotalDamageTaken:            12000,
			TotalMinionsKilled:          200,
			TotalTimeSpentDead:          95,
			VisionScore:                 33,
			WardsKilled:                 3,
			WardsPlaced:                 11,
		})
	}

	blueBans := []matchfetcher.Ban{
		{ChampionId: 101, PickTurn: 1},
		{ChampionId: 102, PickTurn: 2},
		{ChampionId: 103, PickTurn: 3},
		{ChampionId: 104, PickTurn: 4},
		{ChampionId: 105, PickTurn: 5},
	}
	redBans := []matchfetcher.Ban{
		{ChampionId: 201, PickTurn: 6},
		{ChampionId: -1, PickTurn: 7},
		{ChampionId: 203, PickTurn: 8},
		{ChampionId: 204, PickTurn: 9},
		{ChampionId: 205, PickTurn: 10},
	}

	return &matchfetcher.MatchData{
		Info: matchfetcher.MatchInfo{
			EndOfGameResult: queuevalues.GameComplete,
			GameDuration:    1800,
			QueueId:         queuevalues.RankedSoloQueueId,
			Participants:    participants,
			Teams: []matchfetcher.TeamInfo{
				{
					TeamId: BlueTeamId,
					Win:    true,
					Bans:   blueBans,
					Objectives: matchfetcher.Objectives{
						Dragon: matchfetcher.Objective{First: true, Kills: 3},
						Baron:  matchfetcher.Objective{First: false, Kills: 0},
					},
				},
				{
					TeamId: RedTeamId,
					Win:    false,
					Bans:   redBans,
					Objectives: matchfetcher.Objectives{
						Dragon: matchfetcher.Objective{First: false, Kills: 1},
						Baron:  matchfetcher.Objective{First: true, Kills: 1},
					},
				},
			},
		},
	}
}

// setupAssembler builds an assembler over fresh mocks.
func setupAssembler() (*Assembler, *MockMatchSource, *MockLeagueSource) {
	matchSource := new(MockMatchSource)
	leagueSource := new(MockLeagueSource)

	assembler := NewAssembler(matchSource, NewNormalizer(NewRankResolver(leagueSource)))

	return assembler, matchSource, leagueSource
}
