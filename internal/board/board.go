package board

// Board is the 8x8 piece placement grid plus the small amount of state
// needed to apply moves and answer attack queries without rescanning every
// square: the en passant target and the cached king squares.
//
// Invariants maintained across Apply: the grid holds exactly one king per
// color, and KingSquare always agrees with the grid.
type Board struct {
	Squares    [64]Piece
	EnPassant  Square // skip square of the last double pawn push, or NoSquare
	KingSquare [2]Square
}

// New returns the standard starting position, White to move.
func New() *Board {
	b := &Board{EnPassant: NoSquare}
	for i := range b.Squares {
		b.Squares[i] = NoPiece
	}
	back :=[8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < 8; col++ {
		b.Squares[NewSquare(0, col)] = Piece{Kind: back[col], Color: White}
		b.Squares[NewSquare(1, col)] = Piece{Kind: Pawn, Color: White}
		b.Squares[NewSquare(6, col)] = Piece{Kind: Pawn, Color: Black}
		b.Squares[NewSquare(7, col)] = Piece{Kind: back[col], Color: Black}
	}
	b.KingSquare[White] = NewSquare(0, 4)
	b.KingSquare[Black] = NewSquare(7, 4)
	return b
}

// PieceAt returns the piece at sq, or NoPiece if the square is empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.Squares[sq]
}

// Copy returns an independent Board with pieces copied by value. Search
// recurses over copies; mutating a copy never affects the original.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Apply mutates the board in place according to m's kind. It does not
// validate legality — callers (movegen, game) are responsible for only
// applying pseudo-legal-then-king-safety-checked moves.
func (b *Board) Apply(m Move) {
	b.EnPassant = NoSquare

	switch m.Kind {
	case DoublePawnPush:
		b.movePiece(m.From, m.To)
		b.EnPassant, _ = m.From.Offset(m.Moved.Color.PawnDirection(), 0)

	case EnPassant:
		b.movePiece(m.From, m.To)
		capturedSq := NewSquare(m.From.Row(), m.To.Col())
		b.Squares[capturedSq] = NoPiece

	case Promotion:
		b.Squares[m.From] = NoPiece
		b.Squares[m.To] = Piece{Kind: m.Promotion, Color: m.Moved.Color, HasMoved: true}

	case CastlingKingside:
		b.movePiece(m.From, m.To)
		rookFrom := NewSquare(m.From.Row(), 7)
		rookTo := NewSquare(m.From.Row(), 5)
		b.movePiece(rookFrom, rookTo)

	case CastlingQueenside:
		b.movePiece(m.From, m.To)
		rookFrom := NewSquare(m.From.Row(), 0)
		rookTo := NewSquare(m.From.Row(), 3)
		b.movePiece(rookFrom, rookTo)

	default: // Normal
		b.movePiece(m.From, m.To)
	}

	if m.Moved.Kind == King {
		b.KingSquare[m.Moved.Color] = m.To
	}
}

// movePiece relocates the piece at from to to, marking it moved, and clears
// from. It does not special-case captures: overwriting to is correct whether
// or not an enemy piece stood there.
func (b *Board) movePiece(from, to Square) {
	p := b.Squares[from]
	p.HasMoved = true
	b.Squares[to] = p
	b.Squares[from] = NoPiece
}

// knightOffsets are the eight L-shaped knight jumps.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// kingOffsets are the eight squares adjacent to a king.
var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// bishopDirs are the four diagonal ray directions.
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// rookDirs are the four orthogonal ray directions.
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// SquareAttacked reports whether sq is attacked by any piece of color by.
// It probes, in turn: pawn-attack squares from the defender's perspective,
// the eight knight offsets, the eight king offsets, and the four bishop and
// four rook ray directions (queens match both ray families).
func (b *Board) SquareAttacked(sq Square, by Color) bool {
	for _, dc := range [2]int{-1, 1} {
		if s, ok := sq.Offset(-by.PawnDirection(), dc); ok {
			p := b.Squares[s]
			if p.Kind == Pawn && p.Color == by {
				return true
			}
		}
	}

	for _, o := range knightOffsets {
		if s, ok := sq.Offset(o[0], o[1]); ok {
			p := b.Squares[s]
			if p.Kind == Knight && p.Color == by {
				return true
			}
		}
	}

	for _, o := range kingOffsets {
		if s, ok := sq.Offset(o[0], o[1]); ok {
			p := b.Squares[s]
			if p.Kind == King && p.Color == by {
				return true
			}
		}
	}

	for _, d := range bishopDirs {
		s := sq
		for {
			next, ok := s.Offset(d[0], d[1])
			if !ok {
				break
			}
			s = next
			p := b.Squares[s]
			if p.IsEmpty() {
				continue
			}
			if p.Color == by && (p.Kind == Bishop || p.Kind == Queen) {
				return true
			}
			break
		}
	}

	for _, d := range rookDirs {
		s := sq
		for {
			next, ok := s.Offset(d[0], d[1])
			if !ok {
				break
			}
			s = next
			p := b.Squares[s]
			if p.IsEmpty() {
				continue
			}
			if p.Color == by && (p.Kind == Rook || p.Kind == Queen) {
				return true
			}
			break
		}
	}

	return false
}

// IsInCheck reports whether color's king is currently attacked.
func (b *Board) IsInCheck(color Color) bool {
	return b.SquareAttacked(b.KingSquare[color], color.Other())
}
