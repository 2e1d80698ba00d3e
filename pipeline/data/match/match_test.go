package matchfetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"soloq/pipeline/requests"
	"soloq/pkg/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestClient() *requests.Client {
	return requests.NewClient(&config.RiotConfiguration{
		ApiKey:            "test-key",
		BurstLimit:        100,
		BurstInterval:     time.Second,
		SustainedLimit:    100,
		SustainedInterval: time.Second,
	}, 5*time.Second)
}

const matchPayload = `{
	"info": {
		"endOfGameResult": "GameComplete",
		"gameDuration": 1908,
		"queueId": 420,
		"participants": [
			{
				"championId": 157,
				"kills": 7,
				"deaths": 2,
				"assists": 4,
				"teamId": 100,
				"teamPosition": "MIDDLE",
				"puuid": "player-1",
				"firstBloodKill": true,
				"gameEndedInSurrender": false,
				"totalMinionsKilled": 210,
				"neutralMinionsKilled": 12
			}
		],
		"teams": [
			{
				"teamId": 100,
				"win": true,
				"bans": [{"championId": 53, "pickTurn": 1}, {"championId": -1, "pickTurn": 2}],
				"objectives": {
					"baron": {"first": false, "kills": 0},
					"dragon": {"first": true, "kills": 3}
				}
			}
		]
	}
}`

func TestGetMatchData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lol/match/v5/matches/EUW1_123", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Riot-Token"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, matchPayload)
	}))
	defer server.Close()

	fetcher := NewMatchFetcher(getTestClient(), server.URL)

	match, err := fetcher.GetMatchData(context.Background(), "EUW1_123")
	require.NoError(t, err)
	require.NotNil(t, match)

	info := match.Info
	assert.Equal(t, "GameComplete", info.EndOfGameResult)
	assert.Equal(t, 1908, info.GameDuration)
	assert.Equal(t, 420, info.QueueId)

	require.Len(t, info.Participants, 1)
	participant := info.Participants[0]
	assert.Equal(t, 157, participant.ChampionId)
	assert.Equal(t, "MIDDLE", participant.TeamPosition)
	assert.True(t, participant.FirstBloodKill)
	assert.Equal(t, 210, participant.TotalMinionsKilled)
	assert.Equal(t, 12, participant.NeutralMinionsKilled)

	require.Len(t, info.Teams, 1)
	team := info.Teams[0]
	assert.True(t, team.Win)
	assert.Equal(t, []Ban{{ChampionId: 53, PickTurn: 1}, {ChampionId: -1, PickTurn: 2}}, team.Bans)
	assert.True(t, team.Objectives.Dragon.First)
	assert.Equal(t, 3, team.Objectives.Dragon.Kills)
}

func TestGetMatchDataBadStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "NotFound", statusCode: http.StatusNotFound},
		{name: "RateLimited", statusCode: http.StatusTooManyRequests},
		{name: "Forbidden", statusCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			fetcher := NewMatchFetcher(getTestClient(), server.URL)

			match, err := fetcher.GetMatchData(context.Background(), "EUW1_123")
			require.Error(t, err)
			assert.Nil(t, match)

			var sourceErr *requests.SourceError
			require.True(t, errors.As(err, &sourceErr))
			assert.Equal(t, tt.statusCode, sourceErr.StatusCode)
		})
	}
}

func TestGetMatchDataMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"info": `)
	}))
	defer server.Close()

	fetcher := NewMatchFetcher(getTestClient(), server.URL)

	match, err := fetcher.GetMatchData(context.Background(), "EUW1_123")
	require.Error(t, err)
	assert.Nil(t, match)

	var sourceErr *requests.SourceError
	require.True(t, errors.As(err, &sourceErr))
	assert.Error(t, sourceErr.Err)
}

func TestGetMatchList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lol/match/v5/matches/by-puuid/player-1/ids", r.URL.Path)

		// Only ranked solo matches are requested.
		assert.Equal(t, "420", r.URL.Query().Get("queue"))
		assert.Equal(t, "20", r.URL.Query().Get("count"))

		fmt.Fprint(w, `["EUW1_1", "EUW1_2", "EUW1_3"]`)
	}))
	defer server.Close()

	fetcher := NewMatchFetcher(getTestClient(), server.URL)

	matchIds, err := fetcher.GetMatchList(context.Background(), "player-1", 20)
	require.NoError(t, err)

	assert.Equal(t, []string{"EUW1_1", "EUW1_2", "EUW1_3"}, matchIds)
}
