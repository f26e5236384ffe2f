package entity

import "strings"

const (
	DefaultFirstName  = "Player 1"
	DefaultSecondName = "Player 2"
)

// Player is immutable for the lifetime of a match.
type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}

// NewPlayer builds a player, falling back to defaultName when name is blank.
func NewPlayer(name string, mark Mark, defaultName string) Player {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}

	return Player{
		Name: name,
		Mark: mark,
	}
}

func (that Player) String() string {
	return that.Name + "(" + string(that.Mark) + ")"
}
