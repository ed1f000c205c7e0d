package model

import "fmt"

// Ply is one accepted action. Fairy entries have no From square.
type Ply struct {
	Piece         Piece     `json:"piece"`
	From          *Position `json:"from"`
	To            Position  `json:"to"`
	CapturedPiece *Piece    `json:"capturedPiece"`
	Entry         bool      `json:"entry"`
	Notation      string    `json:"notation"`
}

type Move struct {
	WhitePly Ply  `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

func (g *Game) makePly(piece Piece, from, to Position) Ply {
	start := from
	ply := Ply{
		Piece: piece,
		From:  &start,
		To:    to,
	}
	if target := g.board.at(to); target != nil {
		captured := *target
		ply.CapturedPiece = &captured
	}
	ply.Notation = getNotation(ply)
	return ply
}

func makeEntryPly(piece Piece, to Position) Ply {
	ply := Ply{Piece: piece, To: to, Entry: true}
	ply.Notation = getNotation(ply)
	return ply
}

// getNotation writes e4, exd5, Bxf7 for moves and F@d1 for fairy entries.
func getNotation(ply Ply) string {
	prefix := ply.Piece.Type.getPieceNotation()
	if ply.Entry {
		return fmt.Sprintf("%s@%s", prefix, ply.To.getSquareNotation())
	}
	capture := ""
	if ply.CapturedPiece != nil {
		capture = "x"
	}
	pawnFile := ""
	if ply.Piece.Type == Pawn && ply.From != nil && ply.From.X != ply.To.X {
		pawnFile = ply.From.getFileNotation()
	}
	return fmt.Sprintf("%s%s%s%s", prefix, pawnFile, capture, ply.To.getSquareNotation())
}

// recordPly appends ply for the side to move. White always opens a new Move.
func (g *Game) recordPly(ply Ply) {
	if g.toMove == White {
		g.history = append(g.history, Move{WhitePly: ply})
		return
	}
	if len(g.history) == 0 {
		g.history = append(g.history, Move{})
	}
	g.history[len(g.history)-1].BlackPly = &ply
}

func cloneHistory(history []Move) []Move {
	out := make([]Move, len(history))
	for i, m := range history {
		out[i] = Move{WhitePly: clonePly(m.WhitePly)}
		if m.BlackPly != nil {
			black := clonePly(*m.BlackPly)
			out[i].BlackPly = &black
		}
	}
	return out
}

func clonePly(p Ply) Ply {
	if p.From != nil {
		from := *p.From
		p.From = &from
	}
	if p.CapturedPiece != nil {
		captured := *p.CapturedPiece
		p.CapturedPiece = &captured
	}
	return p
}
