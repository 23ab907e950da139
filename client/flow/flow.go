package flow

type GameMode int

const (
	GameModePlay GameMode = iota
	GameModeOver
)

func (m GameMode) String() string {
	switch m {
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	}
	return "Unknown"
}
