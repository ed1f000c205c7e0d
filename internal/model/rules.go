package model

// isLegalMove decides geometric legality for a piece of kind and color moving from -> to.
// Same-color destinations are rejected by the caller before dispatch.
func isLegalMove(kind PieceType, from, to Position, board *Board, color Color) bool {
	switch kind {
	case Pawn:
		return legalPawnMove(from, to, board, color)
	case Rook:
		return straightMoveClear(from, to, board)
	case Knight:
		return legalKnightMove(from, to)
	case Bishop:
		return diagonalMoveClear(from, to, board)
	case Queen:
		return straightMoveClear(from, to, board) || diagonalMoveClear(from, to, board)
	case King:
		return legalKingMove(from, to)
	case Falcon:
		if isForwardMove(from, to, color) {
			return diagonalMoveClear(from, to, board)
		}
		return straightMoveClear(from, to, board)
	case Hunter:
		if isForwardMove(from, to, color) {
			return straightMoveClear(from, to, board)
		}
		return diagonalMoveClear(from, to, board)
	}
	return false
}

// forward is the row step that moves a piece of color away from its own back rank.
func forward(color Color) int {
	if color == White {
		return -1
	}
	return 1
}

func pawnStartRow(color Color) int {
	if color == White {
		return 6
	}
	return 1
}

func isForwardMove(from, to Position, color Color) bool {
	return (to.Y-from.Y)*forward(color) > 0
}

func isStraightMove(from, to Position) bool {
	return (from.X == to.X) != (from.Y == to.Y)
}

func isDiagonalMove(from, to Position) bool {
	dx := abs(to.X - from.X)
	return dx != 0 && dx == abs(to.Y-from.Y)
}

func straightMoveClear(from, to Position, board *Board) bool {
	return isStraightMove(from, to) && board.IsPathClear(from, to)
}

func diagonalMoveClear(from, to Position, board *Board) bool {
	return isDiagonalMove(from, to) && board.IsPathClear(from, to)
}

func legalPawnMove(from, to Position, board *Board, color Color) bool {
	dir := forward(color)
	dx, dy := to.X-from.X, to.Y-from.Y
	target := board.at(to)

	switch {
	case dx == 0 && dy == dir:
		return target == nil
	case dx == 0 && dy == 2*dir && from.Y == pawnStartRow(color):
		return target == nil && board.at(Position{X: from.X, Y: from.Y + dir}) == nil
	case abs(dx) == 1 && dy == dir:
		return target != nil && target.Color != color
	}
	return false
}

func legalKnightMove(from, to Position) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

func legalKingMove(from, to Position) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	return max(dx, dy) == 1
}
