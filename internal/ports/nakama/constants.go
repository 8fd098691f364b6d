package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameLiapTui is the authoritative match handler name registered with Nakama.
	MatchNameLiapTui = "liaptui_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame     int64 = 1
	OpDeclare       int64 = 2
	OpPlayPieces    int64 = 3
	OpRequestRedeal int64 = 4
	OpAcceptRedeal  int64 = 5
	OpDeclineRedeal int64 = 6
	OpKeepDeal      int64 = 7
	OpMarkReady     int64 = 8

	// Server -> Client events
	OpMatchSnapshot   int64 = 101
	OpPhaseChanged    int64 = 102
	OpHandDealt       int64 = 103 // send privately
	OpWeakHands       int64 = 104
	OpRedealOpened    int64 = 105
	OpRedealVote      int64 = 106
	OpRedealExecuted  int64 = 107
	OpRedealCancelled int64 = 108
	OpDealKept        int64 = 109
	OpDeclarationMade int64 = 110
	OpPiecesPlayed    int64 = 111
	OpTrickResolved   int64 = 112
	OpRoundFlagged    int64 = 113
	OpRoundScored     int64 = 114
	OpGameEnded       int64 = 115
	OpReadyRecorded   int64 = 116
	OpSeatConverted   int64 = 117
	OpSeatReclaimed   int64 = 118
	OpGameError       int64 = 120
)
