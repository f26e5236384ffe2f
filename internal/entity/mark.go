package entity

// Mark is the symbol a player places in a cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// IsPlayerMark reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayerMark() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}
