package board

import "fmt"

// MoveKind distinguishes normal moves from the special rules that apply
// extra side effects on Board.Apply.
type MoveKind int8

const (
	Normal MoveKind = iota
	DoublePawnPush
	EnPassant
	CastlingKingside
	CastlingQueenside
	Promotion
)

// String names the move kind.
func (k MoveKind) String() string {
	switch k {
	case Normal:
		return "Normal"
	case DoublePawnPush:
		return "DoublePawnPush"
	case EnPassant:
		return "EnPassant"
	case CastlingKingside:
		return "CastlingKingside"
	case CastlingQueenside:
		return "CastlingQueenside"
	case Promotion:
		return "Promotion"
	default:
		return "Unknown"
	}
}

// Move is a value describing one ply: origin, destination, the moving and
// (if any) captured piece as they stood before the move, the move's kind,
// and — for promotions — the chosen kind. CausesCheck/CausesCheckmate are
// set by move generation (package movegen) when it has the information cheaply
// available; they carry no weight in Move equality.
//
// Two moves are equal iff (From, To, Kind, Promotion) match: the snapshot
// fields and check flags are not part of a move's identity.
type Move struct {
	From, To  Square
	Moved     Piece
	Captured  Piece // NoPiece if the move does not capture
	Kind      MoveKind
	Promotion Kind // NoKind unless Kind == Promotion

	CausesCheck     bool
	CausesCheckmate bool
}

// IsCapture reports whether the move captures a piece, including en passant.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// Equal reports whether two moves share the same identity: origin,
// destination, kind, and (for promotions) the promotion kind.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Kind == o.Kind && m.Promotion == o.Promotion
}

// Key returns a small integer uniquely determined by (From, To, Kind,
// Promotion), suitable as a map key or an ordering/TT-move comparison token.
func (m Move) Key() uint32 {
	return uint32(m.From)<<16 | uint32(m.To)<<8 | uint32(m.Kind)<<4 | uint32(m.Promotion+1)
}

// String renders the move in UCI-like long algebraic form (e.g. "e2e4",
// "e7e8q"), primarily for debugging and log output; SAN rendering lives in
// the game package's ToAlgebraic.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion {
		s += promoLetter(m.Promotion)
	}
	return s
}

func promoLetter(k Kind) string {
	switch k {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		return ""
	}
}

// ParseUCIMove parses a long-algebraic move string ("e2e4", "e7e8q")
// against the board to recover its snapshot fields and kind. The board is
// read only, never mutated.
func ParseUCIMove(s string, b *Board) (Move, error) {
	if len(s) < 4 {
		return Move{}, fmt.Errorf("board: bad move string %q", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}

	piece := b.PieceAt(from)
	if piece.IsEmpty() {
		return Move{}, fmt.Errorf("board: no piece at %s", from)
	}
	captured := b.PieceAt(to)

	m := Move{From: from, To: to, Moved: piece, Captured: captured, Kind: Normal, Promotion: NoKind}

	if len(s) == 5 {
		switch s[4] {
		case 'q':
			m.Promotion = Queen
		case 'r':
			m.Promotion = Rook
		case 'b':
			m.Promotion = Bishop
		case 'n':
			m.Promotion = Knight
		default:
			return Move{}, fmt.Errorf("board: bad promotion letter %q", s[4:5])
		}
		m.Kind = Promotion
		return m, nil
	}

	if piece.Kind == King && abs(to.Col()-from.Col()) == 2 {
		if to.Col() == 6 {
			m.Kind = CastlingKingside
		} else {
			m.Kind = CastlingQueenside
		}
		return m, nil
	}

	if piece.Kind == Pawn {
		if abs(to.Row()-from.Row()) == 2 {
			m.Kind = DoublePawnPush
		} else if to == b.EnPassant && to.Col() != from.Col() {
			m.Kind = EnPassant
			m.Captured = Piece{Kind: Pawn, Color: piece.Color.Other(), HasMoved: true}
		}
	}

	return m, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
