package game

import (
	"errors"
	"fmt"
)

// Reasons carried by IllegalMoveError.
const (
	ReasonOutOfRange = "out of range"
	ReasonBlocked    = "blocked"
	ReasonNoBombs    = "no bombs left"
	ReasonDirection  = "unknown direction"
)

// IllegalMoveError reports a rejected move. The game state is unchanged
// apart from the bombing flag, which every move attempt clears.
type IllegalMoveError struct {
	Dir    Direction
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("cannot move %s: %s", e.Dir, e.Reason)
}

// ErrNoBombs is returned when arming is requested without any bomb left.
var ErrNoBombs = errors.New("no bombs left")
