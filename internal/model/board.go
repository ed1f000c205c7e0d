package model

import (
	"fmt"
	"strings"
)

type PieceType string

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Falcon:
		return "F"
	case Hunter:
		return "H"
	case Pawn:
		return ""
	}
	return ""
}

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
	Falcon PieceType = "falcon"
	Hunter PieceType = "hunter"
)

// IsFairy reports whether p may only enter the board through EnterFairyPiece.
func (p PieceType) IsFairy() bool {
	return p == Falcon || p == Hunter
}

// ParsePieceType accepts the lower-case name ("falcon") or the board letter ("F", "f").
func ParsePieceType(s string) (PieceType, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "k", "king":
		return King, nil
	case "q", "queen":
		return Queen, nil
	case "r", "rook":
		return Rook, nil
	case "b", "bishop":
		return Bishop, nil
	case "n", "knight":
		return Knight, nil
	case "p", "pawn":
		return Pawn, nil
	case "f", "falcon":
		return Falcon, nil
	case "h", "hunter":
		return Hunter, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPieceType, s)
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) valid() bool {
	return c == White || c == Black
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return White, nil
	case "b", "black":
		return Black, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Piece is a value; moving it relocates it on the board and nothing else.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

// symbol is the diagram letter: upper case for White, lower case for Black.
func (p Piece) symbol() string {
	letter := p.Type.getPieceNotation()
	if p.Type == Pawn {
		letter = "P"
	}
	if p.Color == Black {
		return strings.ToLower(letter)
	}
	return letter
}

// Position is a board coordinate. X is the file (0 = a), Y the row (0 = rank 8).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ParseSquare converts algebraic notation such as "e4" into a Position.
func ParseSquare(square string) (Position, error) {
	if len(square) != 2 || square[0] < 'a' || square[0] > 'h' || square[1] < '1' || square[1] > '8' {
		return Position{}, fmt.Errorf("%w: %q", ErrMalformedSquare, square)
	}
	return Position{X: int(square[0] - 'a'), Y: 8 - int(square[1]-'0')}, nil
}

func (p Position) String() string {
	return p.getSquareNotation()
}

func (p Position) getSquareNotation() string {
	return fmt.Sprintf("%c%d", p.X+97, 8-p.Y)
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", p.X+97)
}

func boundaryCheck(position Position) bool {
	return position.X >= 0 && position.X < 8 && position.Y >= 0 && position.Y < 8
}

// Board holds piece placement. It is owned by a single Game.
type Board struct {
	grid [8][8]*Piece
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newBoard() *Board {
	board := &Board{}
	for x, kind := range backRank {
		board.grid[0][x] = &Piece{Type: kind, Color: Black}
		board.grid[1][x] = &Piece{Type: Pawn, Color: Black}
		board.grid[6][x] = &Piece{Type: Pawn, Color: White}
		board.grid[7][x] = &Piece{Type: kind, Color: White}
	}
	return board
}

// PieceAt returns the occupant of pos, or nil for an empty square.
func (b *Board) PieceAt(pos Position) (*Piece, error) {
	if !boundaryCheck(pos) {
		return nil, fmt.Errorf("%w: %+v", ErrOutOfRange, pos)
	}
	return b.at(pos), nil
}

func (b *Board) at(pos Position) *Piece {
	return b.grid[pos.Y][pos.X]
}

// MovePiece relocates the piece at from to to and returns the piece it replaced, if any.
// Callers have already rejected same-color destinations.
func (b *Board) MovePiece(from, to Position) *Piece {
	captured := b.grid[to.Y][to.X]
	b.grid[to.Y][to.X] = b.grid[from.Y][from.X]
	b.grid[from.Y][from.X] = nil
	return captured
}

func (b *Board) PlacePiece(piece Piece, pos Position) error {
	if !boundaryCheck(pos) {
		return fmt.Errorf("%w: %+v", ErrOutOfRange, pos)
	}
	if b.at(pos) != nil {
		return fmt.Errorf("%w: %s", ErrSquareOccupied, pos)
	}
	b.grid[pos.Y][pos.X] = &piece
	return nil
}

func (b *Board) HasKing(color Color) bool {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if p := b.grid[y][x]; p != nil && p.Type == King && p.Color == color {
				return true
			}
		}
	}
	return false
}

// IsPathClear reports whether every square strictly between from and to is empty.
// Only straight and diagonal lines have a path; any other pair reports false.
func (b *Board) IsPathClear(from, to Position) bool {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx != 0 && dy != 0 && abs(dx) != abs(dy) {
		return false
	}
	stepX, stepY := sign(dx), sign(dy)
	x, y := from.X+stepX, from.Y+stepY
	for x != to.X || y != to.Y {
		if b.grid[y][x] != nil {
			return false
		}
		x += stepX
		y += stepY
	}
	return true
}

// grid copy with fresh piece pointers
func (b *Board) clone() [8][8]*Piece {
	var out [8][8]*Piece
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if p := b.grid[y][x]; p != nil {
				cp := *p
				out[y][x] = &cp
			}
		}
	}
	return out
}

// String renders the board from White's side, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < 8; y++ {
		fmt.Fprintf(&sb, "%d ", 8-y)
		for x := 0; x < 8; x++ {
			cell := "."
			if p := b.grid[y][x]; p != nil {
				cell = p.symbol()
			}
			sb.WriteString(cell)
			if x < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
