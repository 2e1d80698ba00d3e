package messages

const (
	BadStatusCodeMsg = "API returned status code %d on URL %s"
	FailedToParseMsg = "failed to parse API response"
	RequestFailedMsg = "API request failed on URL %s"

	MatchSkippedMsg = "match %s skipped: %v"
	MatchStoredMsg  = "match %s written (%d players)"
)
