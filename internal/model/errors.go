package model

import "errors"

// Contract violations. Rule violations are reported as a false result, never as one of these.
var (
	ErrMalformedSquare  = errors.New("malformed square")
	ErrOutOfRange       = errors.New("position out of range")
	ErrSquareOccupied   = errors.New("square occupied")
	ErrNotFairyPiece    = errors.New("not a fairy piece")
	ErrInvalidColor     = errors.New("invalid color")
	ErrUnknownPieceType = errors.New("unknown piece type")
)
