package models

// MatchData holds the team level facts of one accepted ranked match.
// The match id is the token issued by the Riot API (REGION_NUMBER).
type MatchData struct {
	MatchId      string  `gorm:"primaryKey;type:varchar(20);column:match_id"`
	GameDuration float64 `gorm:"not null"`
	Win          string  `gorm:"type:side_type;not null"`
	FirstDrake   string  `gorm:"type:objective_side_type;not null;column:first_drake"`
	DragonKills  int     `gorm:"not null"`
	FirstBaron   string  `gorm:"type:objective_side_type;not null"`
	Surrender    bool    `gorm:"not null"`
}

func (MatchData) TableName() string {
	return "match_data"
}

// PlayerData holds one participant's normalized performance in a match.
// Rate columns are already divided by the game duration in minutes.
type PlayerData struct {
	ID      uint64 `gorm:"primaryKey"`
	MatchId string `gorm:"type:varchar(20);not null;index;column:match_id"`

	TeamId     int     `gorm:"not null"`
	Lane       string  `gorm:"type:lane_type;not null"`
	Rank       *string `gorm:"type:tier_type"`
	Division   *int
	ChampionId int `gorm:"not null;index;column:champion_id"`

	FirstBlood        int     `gorm:"not null"`
	Kills             int     `gorm:"not null"`
	Deaths            int     `gorm:"not null"`
	Assists           int     `gorm:"not null"`
	DmgPerMin         float64 `gorm:"not null;column:dmg_per_min"`
	DmgTakenPerMin    float64 `gorm:"not null;column:dmg_taken_per_min"`
	TotalTimeDead     int     `gorm:"not null"`
	GoldPerMin        float64 `gorm:"not null;column:gold_per_min"`
	WardsPlaced       int     `gorm:"not null"`
	SightWardsBought  int     `gorm:"not null"`
	WardsDestroyed    int     `gorm:"not null"`
	VisionScorePerMin float64 `gorm:"not null;column:vision_score_per_min"`
	DmgToTowers       int     `gorm:"not null;column:dmg_to_towers"`
	CsPerMin          float64 `gorm:"not null;column:cs_per_min"`
	MissingPings      int     `gorm:"not null"`

	// Foreign keys.
	Match    MatchData `gorm:"foreignKey:MatchId;references:MatchId"`
	Champion Champion  `gorm:"foreignKey:ChampionId;references:ChampionId"`
}

func (PlayerData) TableName() string {
	return "player_data"
}

// ChampionBans holds the 10 positional ban slots of a match.
// Slots 1-5 are the blue side in pick order, 6-10 the red side.
// A slot without a ban carries the no-ban sentinel (0).
type ChampionBans struct {
	MatchId string `gorm:"primaryKey;type:varchar(20);column:match_id"`

	Ban1  int `gorm:"not null;column:ban_1"`
	Ban2  int `gorm:"not null;column:ban_2"`
	Ban3  int `gorm:"not null;column:ban_3"`
	Ban4  int `gorm:"not null;column:ban_4"`
	Ban5  int `gorm:"not null;column:ban_5"`
	Ban6  int `gorm:"not null;column:ban_6"`
	Ban7  int `gorm:"not null;column:ban_7"`
	Ban8  int `gorm:"not null;column:ban_8"`
	Ban9  int `gorm:"not null;column:ban_9"`
	Ban10 int `gorm:"not null;column:ban_10"`

	Match MatchData `gorm:"foreignKey:MatchId;references:MatchId"`
}

func (ChampionBans) TableName() string {
	return "champion_bans"
}
