package leaguefetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"soloq/pipeline/requests"
	"soloq/pkg/messages"
	queuevalues "soloq/pkg/riotvalues/queue"
	"strings"
)

// LeagueFetcher reads the league_v4 endpoints of the platform routing.
type LeagueFetcher struct {
	client  *requests.Client
	baseUrl string
}

// NewLeagueFetcher creates a instance of the league fetcher.
func NewLeagueFetcher(client *requests.Client, baseUrl string) *LeagueFetcher {
	return &LeagueFetcher{
		client:  client,
		baseUrl: baseUrl,
	}
}

// GetLeagueByPuuid gets a given player entries for each queue.
func (l *LeagueFetcher) GetLeagueByPuuid(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	url := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", l.baseUrl, puuid)

	resp, err := l.client.AuthRequest(ctx, url, http.MethodGet)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, &requests.SourceError{StatusCode: resp.StatusCode, URL: url}
	}

	// Parse the league entries.
	var entries []LeagueEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &requests.SourceError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Err:        fmt.Errorf(messages.FailedToParseMsg+": %w", err),
		}
	}

	return entries, nil
}

// GetLeagueEntries gets a given ranked solo league page.
// Riot only accepts upper case on the tier and division.
func (l *LeagueFetcher) GetLeagueEntries(ctx context.Context, tier string, division string, page int) ([]LeagueEntry, error) {
	url := fmt.Sprintf("%s/lol/league/v4/entries/%s/%s/%s?page=%d",
		l.baseUrl, queuevalues.RankedSoloQueue, strings.ToUpper(tier), strings.ToUpper(division), page)

	resp, err := l.client.AuthRequest(ctx, url, http.MethodGet)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	// Check the status code.
	if resp.StatusCode != http.StatusOK {
		return nil, &requests.SourceError{StatusCode: resp.StatusCode, URL: url}
	}

	// Parse the league entries.
	var entries []LeagueEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &requests.SourceError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Err:        fmt.Errorf(messages.FailedToParseMsg+": %w", err),
		}
	}

	return entries, nil
}
