package lanevalues

// CanonicalLane maps the team position vocabulary of the match endpoint
// into the lane vocabulary used by the player_data table.
var CanonicalLane = map[string]string{
	"TOP":     "TOP",
	"JUNGLE":  "JNG",
	"MIDDLE":  "MID",
	"BOTTOM":  "BOT",
	"UTILITY": "SUPP",
}
