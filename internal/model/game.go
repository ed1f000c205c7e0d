package model

import (
	"fmt"
	"slices"
)

type GameState int

const (
	InProgress GameState = iota
	WhiteWon
	BlackWon
)

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case WhiteWon:
		return "WhiteWon"
	case BlackWon:
		return "BlackWon"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

func (s GameState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func wonBy(color Color) GameState {
	if color == White {
		return WhiteWon
	}
	return BlackWon
}

// CapturedPieces lists, per capturing side, the kinds it has taken. Duplicates are kept.
type CapturedPieces struct {
	White []PieceType `json:"white"`
	Black []PieceType `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]PieceType, 0),
		Black: make([]PieceType, 0),
	}
}

func (c *CapturedPieces) of(color Color) []PieceType {
	if color == White {
		return c.White
	}
	return c.Black
}

func (c *CapturedPieces) add(color Color, kind PieceType) {
	if color == White {
		c.White = append(c.White, kind)
	} else {
		c.Black = append(c.Black, kind)
	}
}

// FairyPieces lists, per color, the fairy kinds not yet placed.
type FairyPieces struct {
	White []PieceType `json:"white"`
	Black []PieceType `json:"black"`
}

var fairyKinds = []PieceType{Falcon, Hunter}

func newFairyPieces() FairyPieces {
	return FairyPieces{
		White: slices.Clone(fairyKinds),
		Black: slices.Clone(fairyKinds),
	}
}

func (f *FairyPieces) of(color Color) []PieceType {
	if color == White {
		return f.White
	}
	return f.Black
}

func (f *FairyPieces) remove(color Color, kind PieceType) {
	del := func(kinds []PieceType) []PieceType {
		return slices.DeleteFunc(kinds, func(k PieceType) bool { return k == kind })
	}
	if color == White {
		f.White = del(f.White)
	} else {
		f.Black = del(f.Black)
	}
}

// pieces whose loss makes a side eligible to enter a fairy piece
var fairyEntryLosses = []PieceType{Queen, Rook, Bishop, Knight}

// Game is the rules engine for one game. It is not safe for concurrent use;
// the service layer serializes access.
type Game struct {
	board    *Board
	toMove   Color
	state    GameState
	captured CapturedPieces
	fairies  FairyPieces
	history  []Move
}

// Snapshot is a detached copy of a game's state.
type Snapshot struct {
	Board          [8][8]*Piece   `json:"board"`
	ToMove         Color          `json:"toMove"`
	State          GameState      `json:"state"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	FairyPieces    FairyPieces    `json:"fairyPieces"`
	MoveHistory    []Move         `json:"moveHistory"`
}

func NewGame() *Game {
	return &Game{
		board:    newBoard(),
		toMove:   White,
		state:    InProgress,
		captured: newCapturedPieces(),
		fairies:  newFairyPieces(),
		history:  make([]Move, 0),
	}
}

func (g *Game) State() GameState {
	return g.state
}

func (g *Game) Turn() Color {
	return g.toMove
}

// PieceAt returns a copy of the piece on square, or nil if it is empty.
func (g *Game) PieceAt(square string) (*Piece, error) {
	pos, err := ParseSquare(square)
	if err != nil {
		return nil, err
	}
	p := g.board.at(pos)
	if p == nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// Captured returns the kinds color has captured.
func (g *Game) Captured(color Color) []PieceType {
	return slices.Clone(g.captured.of(color))
}

// FairyAvailable returns the fairy kinds color has not placed yet.
func (g *Game) FairyAvailable(color Color) []PieceType {
	return slices.Clone(g.fairies.of(color))
}

func (g *Game) Board() string {
	return g.board.String()
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:  g.board.clone(),
		ToMove: g.toMove,
		State:  g.state,
		CapturedPieces: CapturedPieces{
			White: slices.Clone(g.captured.White),
			Black: slices.Clone(g.captured.Black),
		},
		FairyPieces: FairyPieces{
			White: slices.Clone(g.fairies.White),
			Black: slices.Clone(g.fairies.Black),
		},
		MoveHistory: cloneHistory(g.history),
	}
}

// MakeMove moves the piece on fromSquare to toSquare. It returns false, with no state
// change, when the move breaks a rule. An error means the squares were malformed.
func (g *Game) MakeMove(fromSquare, toSquare string) (bool, error) {
	from, err := ParseSquare(fromSquare)
	if err != nil {
		return false, err
	}
	to, err := ParseSquare(toSquare)
	if err != nil {
		return false, err
	}

	if g.state != InProgress {
		return false, nil
	}
	piece := g.board.at(from)
	if piece == nil || piece.Color != g.toMove {
		return false, nil
	}
	if target := g.board.at(to); target != nil && target.Color == piece.Color {
		return false, nil
	}
	if !isLegalMove(piece.Type, from, to, g.board, piece.Color) {
		return false, nil
	}

	ply := g.makePly(*piece, from, to)
	captured := g.board.MovePiece(from, to)
	if captured != nil {
		g.captured.add(piece.Color, captured.Type)
	}
	g.recordPly(ply)

	// only the destination is inspected for a king
	if captured != nil && captured.Type == King {
		g.state = wonBy(piece.Color)
		return true, nil
	}

	g.switchTurn()
	return true, nil
}

// EnterFairyPiece places a Falcon or Hunter of color on square. The placement consumes
// color's turn. Errors report a non-fairy kind, an invalid color or a malformed square.
func (g *Game) EnterFairyPiece(kind PieceType, square string, color Color) (bool, error) {
	if !kind.IsFairy() {
		return false, fmt.Errorf("%w: %q", ErrNotFairyPiece, kind)
	}
	if !color.valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	pos, err := ParseSquare(square)
	if err != nil {
		return false, err
	}

	if g.state != InProgress || g.toMove != color || !slices.Contains(g.fairies.of(color), kind) {
		return false, nil
	}
	if g.board.at(pos) != nil || !isHomeRank(pos, color) {
		return false, nil
	}
	if !g.canEnterFairyPiece(color) {
		return false, nil
	}

	piece := Piece{Type: kind, Color: color}
	if err := g.board.PlacePiece(piece, pos); err != nil {
		return false, err
	}
	g.fairies.remove(color, kind)
	g.recordPly(makeEntryPly(piece, pos))
	g.switchTurn()
	return true, nil
}

// isHomeRank reports whether pos is on ranks 1-2 for White or 7-8 for Black.
func isHomeRank(pos Position, color Color) bool {
	rank := 8 - pos.Y
	if color == White {
		return rank <= 2
	}
	return rank >= 7
}

// canEnterFairyPiece requires one qualifying loss per fairy piece color will have placed.
func (g *Game) canEnterFairyPiece(color Color) bool {
	placed := len(fairyKinds) - len(g.fairies.of(color))
	return g.qualifyingLosses(color) >= placed+1
}

func (g *Game) qualifyingLosses(color Color) int {
	n := 0
	for _, kind := range g.captured.of(color.Opponent()) {
		if slices.Contains(fairyEntryLosses, kind) {
			n++
		}
	}
	return n
}

func (g *Game) switchTurn() {
	g.toMove = g.toMove.Opponent()
}
