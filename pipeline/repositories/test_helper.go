package repositories

import (
	"soloq/pkg/database/models"
)

func strPtr(value string) *string {
	return &value
}

func intPtr(value int) *int {
	return &value
}

// getTestMatch builds a finished match row.
func getTestMatch(matchId string) *models.MatchData {
	return &models.MatchData{
		MatchId:      matchId,
		GameDuration: 31.8,
		Win:          "BLUE",
		FirstDrake:   "RED",
		DragonKills:  4,
		FirstBaron:   "NONE",
		Surrender:    false,
	}
}

// getTestPlayers builds the 10 player rows of a match.
// Participant i plays champion i+1, the last two players are unranked.
func getTestPlayers(matchId string) []*models.PlayerData {
	lanes := []string{"TOP", "JNG", "MID", "BOT", "SUPP"}

	players := make([]*models.PlayerData, 0, 10)
	for i := 0; i < 10; i++ {
		teamId := 100
		if i >= 5 {
			teamId = 200
		}

		player := &models.PlayerData{
			MatchId:    matchId,
			TeamId:     teamId,
			Lane:       lanes[i%5],
			Rank:       strPtr("GOLD"),
			Division:   intPtr(2),
			ChampionId: i + 1,

			FirstBlood:        0,
			Kills:             5,
			Deaths:            3,
			Assists:           7,
			DmgPerMin:         612.5,
			DmgTakenPerMin:    415.25,
			TotalTimeDead:     84,
			GoldPerMin:        401.0,
			WardsPlaced:       9,
			SightWardsBought:  1,
			WardsDestroyed:    4,
			VisionScorePerMin: 0.9,
			DmgToTowers:       2100,
			CsPerMin:          7.4,
			MissingPings:      3,
		}

		if i >= 8 {
			player.Rank = nil
			player.Division = nil
		}

		players = append(players, player)
	}

	players[0].FirstBlood = 1

	return players
}

// getTestBans builds the ban row of a match, one slot unused.
func getTestBans(matchId string) *models.ChampionBans {
	return &models.ChampionBans{
		MatchId: matchId,
		Ban1:    11,
		Ban2:    12,
		Ban3:    13,
		Ban4:    14,
		Ban5:    15,
		Ban6:    16,
		Ban7:    0,
		Ban8:    18,
		Ban9:    19,
		Ban10:   20,
	}
}

// getTestChampions builds the reference rows the test players point at.
func getTestChampions() []models.Champion {
	champions := make([]models.Champion, 0, 10)
	for i := 1; i <= 10; i++ {
		champions = append(champions, models.Champion{
			ChampionId:   i,
			ChampionName: "Champion " + string(rune('A'+i-1)),
		})
	}

	return champions
}
