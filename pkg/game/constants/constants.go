package constants

const (

	// EntryRollThreshold is the minimum two-dice total that brings a pawn out of the yard
	EntryRollThreshold int = 10

	// StarCount is the number of star tiles placed on the loop at session start
	StarCount int = 3
	// StarEffectCount is the number of distinct star effects chosen between uniformly
	StarEffectCount int = 3

	// MaxBonusTurns caps consecutive roll-again turns granted by stars in a single roll
	MaxBonusTurns int = 6

	// StepsPerSquare is the number of animation frames used to cross one board square
	StepsPerSquare int = 10

	// EventQueueSize is the capacity of the session event queue
	EventQueueSize int = 256
)

// DefaultPlayerNames are used when a session is created without names.
var DefaultPlayerNames = [4]string{"Player1", "Player2", "Player3", "Player4"}
