package model

type RoomCode string

const EmptyRoomCode RoomCode = ""

// MaxPlayers is the hard cap on users per room.
const MaxPlayers = 8

type Room struct {
	Code        RoomCode
	HostToken   string
	PromptOrder []PromptID

	CurrentRound int
	RoundLimit   int

	Joinable    bool
	GameStarted bool
	AnswersOpen bool

	// Snapshot of the room size taken when the game starts.
	// Round completeness is waiting-set size vs this number.
	ExpectedPlayerCount int
}

// GameComplete reports whether the round counter has walked past the
// last round. PromptOrder must not be indexed once this is true.
func (r Room) GameComplete() bool {
	return r.CurrentRound > r.RoundLimit
}
