package extractor

import (
	matchfetcher "soloq/pipeline/data/match"
)

// Side is the team designation within one match.
type Side string

const (
	SideBlue Side = "BLUE"
	SideRed  Side = "RED"
	SideNone Side = "NONE"
)

// Team ids used by the Riot API.
const (
	BlueTeamId = 100
	RedTeamId  = 200
)

// NoBan is the sentinel stored for a ban slot that went unused.
const NoBan = 0

// BansPerTeam is fixed so the slot position keeps its pick order meaning.
const BansPerTeam = 5

// FirstSide resolves which side owns a boolean team fact.
// The same routine answers the match winner, the first dragon and the
// first baron, it only changes which flag pair is passed in.
// Both flags false means the fact never happened.
func FirstSide(blue bool, red bool) Side {
	if blue {
		return SideBlue
	}

	if red {
		return SideRed
	}

	return SideNone
}

// ExtractBans maps a team ban list into its 5 positional slots.
// Source order is preserved since it encodes the pick/ban sequence.
// Unused slots are kept as the no-ban sentinel, never dropped.
func ExtractBans(team matchfetcher.TeamInfo) [BansPerTeam]int {
	var bans [BansPerTeam]int
	for i := range bans {
		bans[i] = NoBan
	}

	for i, ban := range team.Bans {
		if i >= BansPerTeam {
			break
		}

		// Riot reports an unused slot as champion id -1.
		if ban.ChampionId > 0 {
			bans[i] = ban.ChampionId
		}
	}

	return bans
}
