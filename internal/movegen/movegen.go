// Package movegen generates pseudo-legal and legal moves for a board.Board.
// Ordering within generation is unspecified; callers (search) impose their
// own ordering.
package movegen

import "chesscore/internal/board"

// PseudoLegalFrom returns the pseudo-legal moves originating at sq,
// dispatched by the piece standing there. It does not check whether the
// resulting position leaves the mover's own king in check.
func PseudoLegalFrom(b *board.Board, sq board.Square) []board.Move {
	p := b.PieceAt(sq)
	if p.IsEmpty() {
		return nil
	}
	switch p.Kind {
	case board.Pawn:
		return pawnMoves(b, sq, p)
	case board.Knight:
		return stepMoves(b, sq, p, knightOffsets)
	case board.Bishop:
		return rayMoves(b, sq, p, bishopDirs)
	case board.Rook:
		return rayMoves(b, sq, p, rookDirs)
	case board.Queen:
		moves := rayMoves(b, sq, p, bishopDirs)
		return append(moves, rayMoves(b, sq, p, rookDirs)...)
	case board.King:
		return kingMoves(b, sq, p)
	default:
		return nil
	}
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func stepMoves(b *board.Board, from board.Square, p board.Piece, offsets [8][2]int) []board.Move {
	var moves []board.Move
	for _, o := range offsets {
		to, ok := from.Offset(o[0], o[1])
		if !ok {
			continue
		}
		target := b.PieceAt(to)
		if target.IsEmpty() {
			moves = append(moves, board.Move{From: from, To: to, Moved: p, Kind: board.Normal, Promotion: board.NoKind})
		} else if target.Color != p.Color {
			moves = append(moves, board.Move{From: from, To: to, Moved: p, Captured: target, Kind: board.Normal, Promotion: board.NoKind})
		}
	}
	return moves
}

func rayMoves(b *board.Board, from board.Square, p board.Piece, dirs [4][2]int) []board.Move {
	var moves []board.Move
	for _, d := range dirs {
		sq := from
		for {
			to, ok := sq.Offset(d[0], d[1])
			if !ok {
				break
			}
			sq = to
			target := b.PieceAt(to)
			if target.IsEmpty() {
				moves = append(moves, board.Move{From: from, To: to, Moved: p, Kind: board.Normal, Promotion: board.NoKind})
				continue
			}
			if target.Color != p.Color {
				moves = append(moves, board.Move{From: from, To: to, Moved: p, Captured: target, Kind: board.Normal, Promotion: board.NoKind})
			}
			break
		}
	}
	return moves
}

var promotionKinds = [4]board.Kind{board.Queen, board.Rook, board.Bishop, board.Knight}

func pawnMoves(b *board.Board, from board.Square, p board.Piece) []board.Move {
	var moves []board.Move
	dir := p.Color.PawnDirection()
	promoRow := p.Color.PromotionRow()

	if to, ok := from.Offset(dir, 0); ok && b.PieceAt(to).IsEmpty() {
		moves = append(moves, addPawnAdvance(from, to, p, promoRow)...)

		if from.Row() == p.Color.PawnStartRow() {
			if to2, ok2 := from.Offset(2*dir, 0); ok2 && b.PieceAt(to2).IsEmpty() {
				moves = append(moves, board.Move{From: from, To: to2, Moved: p, Kind: board.DoublePawnPush, Promotion: board.NoKind})
			}
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to, ok := from.Offset(dir, dc)
		if !ok {
			continue
		}
		target := b.PieceAt(to)
		if !target.IsEmpty() && target.Color != p.Color {
			moves = append(moves, addPawnCapture(from, to, p, target, promoRow)...)
			continue
		}
		if target.IsEmpty() && to == b.EnPassant {
			capturedSq := board.NewSquare(from.Row(), to.Col())
			captured := b.PieceAt(capturedSq)
			moves = append(moves, board.Move{From: from, To: to, Moved: p, Captured: captured, Kind: board.EnPassant, Promotion: board.NoKind})
		}
	}

	return moves
}

func addPawnAdvance(from, to board.Square, p board.Piece, promoRow int) []board.Move {
	if to.Row() == promoRow {
		moves := make([]board.Move, 0, 4)
		for _, promo := range promotionKinds {
			moves = append(moves, board.Move{From: from, To: to, Moved: p, Kind: board.Promotion, Promotion: promo})
		}
		return moves
	}
	return []board.Move{{From: from, To: to, Moved: p, Kind: board.Normal, Promotion: board.NoKind}}
}

func addPawnCapture(from, to board.Square, p, captured board.Piece, promoRow int) []board.Move {
	if to.Row() == promoRow {
		moves := make([]board.Move, 0, 4)
		for _, promo := range promotionKinds {
			moves = append(moves, board.Move{From: from, To: to, Moved: p, Captured: captured, Kind: board.Promotion, Promotion: promo})
		}
		return moves
	}
	return []board.Move{{From: from, To: to, Moved: p, Captured: captured, Kind: board.Normal, Promotion: board.NoKind}}
}

func kingMoves(b *board.Board, from board.Square, p board.Piece) []board.Move {
	moves := stepMoves(b, from, p, kingOffsets)
	moves = append(moves, castlingMoves(b, from, p)...)
	return moves
}

func castlingMoves(b *board.Board, from board.Square, p board.Piece) []board.Move {
	if p.HasMoved {
		return nil
	}
	opponent := p.Color.Other()
	if b.SquareAttacked(from, opponent) {
		return nil
	}

	var moves []board.Move
	rank := p.Color.BackRank()

	// Kingside: rook on file 7, squares f/g empty, king doesn't cross an
	// attacked square on f or land on an attacked g.
	if rookOK(b, p.Color, rank, 7) {
		f := board.NewSquare(rank, 5)
		g := board.NewSquare(rank, 6)
		if b.PieceAt(f).IsEmpty() && b.PieceAt(g).IsEmpty() &&
			!b.SquareAttacked(f, opponent) && !b.SquareAttacked(g, opponent) {
			moves = append(moves, board.Move{From: from, To: g, Moved: p, Kind: board.CastlingKingside, Promotion: board.NoKind})
		}
	}

	// Queenside: rook on file 0, squares b/c/d empty (b need not be safe
	// from attack), king passes through d and lands on c, neither attacked.
	if rookOK(b, p.Color, rank, 0) {
		bSq := board.NewSquare(rank, 1)
		c := board.NewSquare(rank, 2)
		d := board.NewSquare(rank, 3)
		if b.PieceAt(bSq).IsEmpty() && b.PieceAt(c).IsEmpty() && b.PieceAt(d).IsEmpty() &&
			!b.SquareAttacked(d, opponent) && !b.SquareAttacked(c, opponent) {
			moves = append(moves, board.Move{From: from, To: c, Moved: p, Kind: board.CastlingQueenside, Promotion: board.NoKind})
		}
	}

	return moves
}

func rookOK(b *board.Board, color board.Color, rank, col int) bool {
	p := b.PieceAt(board.NewSquare(rank, col))
	return p.Kind == board.Rook && p.Color == color && !p.HasMoved
}

// GenerateLegal returns the legal moves for color, with CausesCheck set on
// each. CausesCheckmate is left false here — detecting it requires a second
// full legal-move generation on the resulting position and spec explicitly
// allows deferring it; see AnnotateCheckmate for the display-path pass that
// fills it in.
func GenerateLegal(b *board.Board, color board.Color) []board.Move {
	var legal []board.Move
	opponent := color.Other()

	for sq := board.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.Color != color {
			continue
		}
		for _, m := range PseudoLegalFrom(b, sq) {
			after := b.Copy()
			after.Apply(m)
			if after.IsInCheck(color) {
				continue
			}
			m.CausesCheck = after.IsInCheck(opponent)
			legal = append(legal, m)
		}
	}

	return legal
}

// AnnotateCheckmate fills in CausesCheckmate on each move in moves, which
// must have been produced by GenerateLegal(b, color). This performs one
// extra legal-move generation per candidate move and is intended for the
// display/API path (game.State caches its legal move list this way), not
// for search's hot loop.
func AnnotateCheckmate(b *board.Board, moves []board.Move, color board.Color) {
	opponent := color.Other()
	for i, m := range moves {
		if !m.CausesCheck {
			continue
		}
		after := b.Copy()
		after.Apply(m)
		if len(GenerateLegal(after, opponent)) == 0 {
			moves[i].CausesCheckmate = true
		}
	}
}
