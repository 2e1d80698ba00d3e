package ddragon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"soloq/pipeline/requests"
	"soloq/pkg/database/models"
	"soloq/pkg/messages"
	"strconv"
)

// DefaultBaseUrl is the public Data Dragon CDN.
const DefaultBaseUrl = "https://ddragon.leagueoflegends.com"

// DefaultLanguage used for the champion names.
const DefaultLanguage = "en_US"

// Client reads the static game data files.
// Data Dragon is a plain CDN, requests carry no API key.
type Client struct {
	client  *requests.Client
	baseUrl string
}

// NewClient creates a Data Dragon client.
func NewClient(client *requests.Client, baseUrl string) *Client {
	return &Client{
		client:  client,
		baseUrl: baseUrl,
	}
}

// Champion entry as present on champion.json.
// The key field is the numeric champion id, as a string.
type championEntry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type championFile struct {
	Data map[string]championEntry `json:"data"`
}

// GetLatestVersion returns the most recent game data version.
func (c *Client) GetLatestVersion(ctx context.Context) (string, error) {
	url := c.baseUrl + "/api/versions.json"

	resp, err := c.client.Request(ctx, url, http.MethodGet)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &requests.SourceError{StatusCode: resp.StatusCode, URL: url}
	}

	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return "", fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	if len(versions) == 0 {
		return "", errors.New("version list came back empty")
	}

	return versions[0], nil
}

// GetChampions returns the full champion reference set for a version.
// The result is sorted by champion id so runs are deterministic.
func (c *Client) GetChampions(ctx context.Context, version string, language string) ([]models.Champion, error) {
	url := fmt.Sprintf("%s/cdn/%s/data/%s/champion.json", c.baseUrl, version, language)

	resp, err := c.client.Request(ctx, url, http.MethodGet)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &requests.SourceError{StatusCode: resp.StatusCode, URL: url}
	}

	var file championFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	champions := make([]models.Champion, 0, len(file.Data))
	for key, entry := range file.Data {
		id, err := strconv.Atoi(entry.Key)
		if err != nil {
			return nil, fmt.Errorf("champion %s has a non numeric key %q: %w", key, entry.Key, err)
		}

		champions = append(champions, models.Champion{
			ChampionId:   id,
			ChampionName: entry.Name,
		})
	}

	slices.SortFunc(champions, func(a, b models.Champion) int {
		return a.ChampionId - b.ChampionId
	})

	return champions, nil
}
