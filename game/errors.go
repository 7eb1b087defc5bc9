package game

import "errors"

var (
	// Recoverable: the caller picks another candidate
	ErrOutOfBounds   = errors.New("point is out of the board")
	ErrOccupied      = errors.New("ship or its surroundings are occupied")
	ErrInvalidLength = errors.New("ship length must be positive")

	ErrInvalidDirection = errors.New("direction is not left, right, up or down")

	// Contract violations
	ErrAlreadyChecked = errors.New("cell has already been checked")
	ErrAlreadySunk    = errors.New("ship is already sunk")
	ErrPointNotInShip = errors.New("point is not in this ship")
	ErrMalformedShip  = errors.New("ship is empty, bent or has gaps")

	ErrUnknownFleet = errors.New("fleet preset does not exist")
)
