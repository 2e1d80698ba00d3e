package matchfetcher

// MatchInfo contains the match metadata returned by the match_v5 endpoint.
type MatchInfo struct {
	EndOfGameResult string        `json:"endOfGameResult"`
	GameDuration    int           `json:"gameDuration"`
	Participants    []MatchPlayer `json:"participants"`
	QueueId         int           `json:"queueId"`
	Teams           []TeamInfo    `json:"teams"`
}

// MatchPlayer contains the raw cumulative stats of one participant.
type MatchPlayer struct {
	Assists                     int    `json:"assists"`
	ChampionId                  int    `json:"championId"`
	DamageDealtToTurrets        int    `json:"damageDealtToTurrets"`
	Deaths                      int    `json:"deaths"`
	EnemyMissingPings           int    `json:"enemyMissingPings"`
	FirstBloodKill              bool   `json:"firstBloodKill"`
	GameEndedInSurrender        bool   `json:"gameEndedInSurrender"`
	GoldEarned                  int    `json:"goldEarned"`
	Kills                       int    `json:"kills"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	Puuid                       string `json:"puuid"`
	SightWardsBoughtInGame      int    `json:"sightWardsBoughtInGame"`
	TeamId                      int    `json:"teamId"`
	TeamPosition                string `json:"teamPosition"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int    `json:"totalDamageTaken"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	TotalTimeSpentDead          int    `json:"totalTimeSpentDead"`
	VisionScore                 int    `json:"visionScore"`
	WardsKilled                 int    `json:"wardsKilled"`
	WardsPlaced                 int    `json:"wardsPlaced"`
}

// TeamInfo contains the bans, objectives and if the team won.
type TeamInfo struct {
	Bans       []Ban      `json:"bans"`
	Objectives Objectives `json:"objectives"`
	TeamId     int        `json:"teamId"`
	Win        bool       `json:"win"`
}

// Objectives of a team. Only baron and dragon are stored.
type Objectives struct {
	Baron  Objective `json:"baron"`
	Dragon Objective `json:"dragon"`
}

// Objective holds the first take flag and the kill count.
type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

// Ban information. The champion id is -1 when the slot went unused.
type Ban struct {
	ChampionId int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}
