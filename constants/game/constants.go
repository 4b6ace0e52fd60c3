package game_constants

// Table rules
const StartingChips = 1000
const MinPlayersToStart = 2
const InitialHandSize = 2

// Scoring
const BustLimit = 21
const DealerStandScore = 17
const FaceCardScore = 10
const SoftAceScore = 11

// Seconds between the end of a round and the automatic reset. An explicit
// nextGame request short-circuits the countdown.
const ResetCountdownSeconds = 10

const DeckSize = 52
