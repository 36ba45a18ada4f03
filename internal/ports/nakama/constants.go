package nakama

const (
	// RpcQuickMatch is the RPC id clients call to find or create an
	// open match.
	RpcQuickMatch = "quick_match"

	// RpcRejoinToken is the RPC id clients call for a signed reconnect
	// token.
	RpcRejoinToken = "rejoin_token"

	// MatchNameThirtyOne is the authoritative match handler name
	// registered with Nakama.
	MatchNameThirtyOne = "thirtyone_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame   int64 = 1
	OpDrawCard    int64 = 2
	OpDiscardCard int64 = 3
	OpKnock       int64 = 4
	OpEndTurn     int64 = 5
	OpNewRound    int64 = 6

	// Server -> Client events
	OpPlayerJoined   int64 = 101
	OpPlayerLeft     int64 = 102
	OpGameStarted    int64 = 103
	OpStateChanged   int64 = 104 // sent per seat, redacted
	OpActionRejected int64 = 105 // sent privately to the actor
	OpRoundOver      int64 = 106
)
