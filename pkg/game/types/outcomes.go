package types

// MoveOutcome is the result of asking a pawn to move.
type MoveOutcome uint8

const (
	MoveRejected MoveOutcome = iota
	MoveAdvanced
	MoveFinished
)

func (o MoveOutcome) String() string {
	switch o {
	case MoveRejected:
		return "rejected"
	case MoveAdvanced:
		return "advanced"
	case MoveFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// RejectReason explains why a move was refused.
type RejectReason uint8

const (
	RejectNone RejectReason = iota
	// RejectFinished means the pawn already reached home
	RejectFinished
	// RejectInYard means the pawn has not entered the board
	RejectInYard
	// RejectInactive means the pawn is not its player's active pawn
	RejectInactive
	// RejectInvalidSteps means the step count was not positive
	RejectInvalidSteps
	// RejectOvershoot means the move would pass the terminal position
	RejectOvershoot
	// RejectPawnsOnBoard means an entry was requested while pawns are already in play
	RejectPawnsOnBoard
)

func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectFinished:
		return "finished"
	case RejectInYard:
		return "in_yard"
	case RejectInactive:
		return "inactive"
	case RejectInvalidSteps:
		return "invalid_steps"
	case RejectOvershoot:
		return "overshoot"
	case RejectPawnsOnBoard:
		return "pawns_on_board"
	default:
		return "unknown"
	}
}

// StarOutcome is the effect a star had on the pawn that landed on it.
type StarOutcome uint8

const (
	StarNoEffect StarOutcome = iota
	StarRollAgain
	StarTeleported
	StarSentHome
)

func (o StarOutcome) String() string {
	switch o {
	case StarNoEffect:
		return "no_effect"
	case StarRollAgain:
		return "roll_again"
	case StarTeleported:
		return "teleported"
	case StarSentHome:
		return "sent_home"
	default:
		return "unknown"
	}
}
