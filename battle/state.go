package battle

// State tracks where a battle stands.
type State int

const (
	InProgress State = iota
	PlayerWon
	OpponentWon
)

// Over reports whether the battle has ended.
func (s State) Over() bool {
	return s != InProgress
}

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case PlayerWon:
		return "player won"
	case OpponentWon:
		return "opponent won"
	}
	return "unknown"
}
