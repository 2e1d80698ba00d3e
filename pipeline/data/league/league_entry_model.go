package leaguefetcher

// LeagueEntry defines the type returned by the league entries endpoints.
// Tier and rank come as pointers since unranked queues omit them.
type LeagueEntry struct {
	LeaguePoints int     `json:"leaguePoints"`
	Losses       int     `json:"losses"`
	Puuid        string  `json:"puuid"`
	QueueType    *string `json:"queueType,omitempty"`
	Rank         *string `json:"rank,omitempty"`
	Tier         *string `json:"tier,omitempty"`
	Wins         int     `json:"wins"`
}
