package queuevalues

// RankedSoloQueueId is the only queue the pipeline stores.
const RankedSoloQueueId = 420

// RankedSoloQueue is the queue label used on the league entries endpoint.
const RankedSoloQueue = "RANKED_SOLO_5x5"

// GameComplete is the end of game result of a normally concluded match.
// Anything else (remakes, aborts) is filtered out.
const GameComplete = "GameComplete"
