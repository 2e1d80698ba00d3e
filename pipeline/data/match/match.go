package matchfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"soloq/pipeline/requests"
	"soloq/pkg/messages"
	queuevalues "soloq/pkg/riotvalues/queue"
)

// MatchFetcher reads the match_v5 endpoints of the main region routing.
type MatchFetcher struct {
	client  *requests.Client
	baseUrl string
}

// NewMatchFetcher creates a instance of the match fetcher.
func NewMatchFetcher(client *requests.Client, baseUrl string) *MatchFetcher {
	return &MatchFetcher{
		client:  client,
		baseUrl: baseUrl,
	}
}

// MatchData is the return type from the match_v5 endpoint.
type MatchData struct {
	Info MatchInfo `json:"info"`
}

// GetMatchData gets a given match data.
func (m *MatchFetcher) GetMatchData(ctx context.Context, matchId string) (*MatchData, error) {
	url := fmt.Sprintf("%s/lol/match/v5/matches/%s", m.baseUrl, matchId)

	resp, err := m.client.AuthRequest(ctx, url, http.MethodGet)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, &requests.SourceError{StatusCode: resp.StatusCode, URL: url}
	}

	// Parse the match data.
	var matchData MatchData
	if err := json.NewDecoder(resp.Body).Decode(&matchData); err != nil {
		return nil, &requests.SourceError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Err:        fmt.Errorf(messages.FailedToParseMsg+": %w", err),
		}
	}

	return &matchData, nil
}

// GetMatchList gets the most recent ranked match ids of a given player.
func (m *MatchFetcher) GetMatchList(ctx context.Context, puuid string, count int) ([]string, error) {
	url := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?queue=%d&count=%d",
		m.baseUrl, puuid, queuevalues.RankedSoloQueueId, count)

	resp, err := m.client.AuthRequest(ctx, url, http.MethodGet)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, &requests.SourceError{StatusCode: resp.StatusCode, URL: url}
	}

	// Parse the match ids.
	var matchIds []string
	if err := json.NewDecoder(resp.Body).Decode(&matchIds); err != nil {
		return nil, &requests.SourceError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Err:        fmt.Errorf(messages.FailedToParseMsg+": %w", err),
		}
	}

	return matchIds, nil
}
