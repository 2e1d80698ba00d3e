package extractor

import (
	"context"
	"errors"
	leaguefetcher "soloq/pipeline/data/league"
	matchfetcher "soloq/pipeline/data/match"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNormalizeParticipant(t *testing.T) {
	source := new(MockLeagueSource)
	source.On("GetLeagueByPuuid", mock.Anything, mock.Anything).
		Return([]leaguefetcher.LeagueEntry{getSoloEntry("PLATINUM", "I")}, nil)

	normalizer := NewNormalizer(NewRankResolver(source))

	participant := getValidMatchData().Info.Participants[0]

	// 30 minute game, so every rate is the raw counter over 30.
	record, err := normalizer.NormalizeParticipant(context.Background(), participant, 30, "EUW1_0001")
	require.NoError(t, err)

	assert.Equal(t, "EUW1_0001", record.MatchId)
	assert.Equal(t, BlueTeamId, record.TeamId)
	assert.Equal(t, "TOP", record.Lane)
	assert.Equal(t, 1, record.ChampionId)

	require.NotNil(t, record.Rank)
	require.NotNil(t, record.Division)
	assert.Equal(t, "PLATINUM", *record.Rank)
	assert.Equal(t, 1, *record.Division)

	assert.Equal(t, 1, record.FirstBlood)
	assert.Equal(t, 6, record.Kills)
	assert.Equal(t, 4, record.Deaths)
	assert.Equal(t, 5, record.Assists)
	assert.Equal(t, 95, record.TotalTimeDead)
	assert.Equal(t, 11, record.WardsPlaced)
	assert.Equal(t, 2, record.SightWardsBought)
	assert.Equal(t, 3, record.WardsDestroyed)
	assert.Equal(t, 3000, record.DmgToTowers)
	assert.Equal(t, 7, record.MissingPings)

	assert.InDelta(t, 700.0, record.DmgPerMin, 1e-9)
	assert.InDelta(t, 400.0, record.DmgTakenPerMin, 1e-9)
	assert.InDelta(t, 420.0, record.GoldPerMin, 1e-9)
	assert.InDelta(t, 1.1, record.VisionScorePerMin, 1e-9)

	// Creep score includes the jungle camps.
	assert.InDelta(t, 8.0, record.CsPerMin, 1e-9)
}

func TestNormalizeParticipantLaneMapping(t *testing.T) {
	source := new(MockLeagueSource)
	source.On("GetLeagueByPuuid", mock.Anything, mock.Anything).
		Return([]leaguefetcher.LeagueEntry{}, nil)

	normalizer := NewNormalizer(NewRankResolver(source))

	lanes := map[string]string{
		"TOP":     "TOP",
		"JUNGLE":  "JNG",
		"MIDDLE":  "MID",
		"BOTTOM":  "BOT",
		"UTILITY": "SUPP",
	}

	for position, expected := range lanes {
		participant := getValidMatchData().Info.Participants[0]
		participant.TeamPosition = position

		record, err := normalizer.NormalizeParticipant(context.Background(), participant, 30, "EUW1_0001")
		require.NoError(t, err)

		assert.Equal(t, expected, record.Lane)

		// An unranked player keeps both rank columns null.
		assert.Nil(t, record.Rank)
		assert.Nil(t, record.Division)
	}
}

func TestNormalizeParticipantMalformedInput(t *testing.T) {
	source := new(MockLeagueSource)
	source.On("GetLeagueByPuuid", mock.Anything, mock.Anything).
		Return([]leaguefetcher.LeagueEntry{}, nil)

	normalizer := NewNormalizer(NewRankResolver(source))

	tests := []struct {
		name            string
		mutate          func(participant *matchfetcher.MatchPlayer)
		durationMinutes float64
	}{
		{
			name:            "ZeroDuration",
			durationMinutes: 0,
		},
		{
			name:            "NegativeDuration",
			durationMinutes: -5,
		},
		{
			name:            "UnmappedLane",
			durationMinutes: 30,
			mutate: func(m *matchfetcher.MatchPlayer) {
				m.TeamPosition = "AFK"
			},
		},
		{
			name:            "EmptyLane",
			durationMinutes: 30,
			mutate: func(m *matchfetcher.MatchPlayer) {
				m.TeamPosition = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			participant := getValidMatchData().Info.Participants[0]
			if tt.mutate != nil {
				tt.mutate(&participant)
			}

			record, err := normalizer.NormalizeParticipant(context.Background(), participant, tt.durationMinutes, "EUW1_0001")
			require.Error(t, err)

			var malformed *MalformedInputError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, "EUW1_0001", malformed.MatchId)
			assert.Nil(t, record)
		})
	}
}
