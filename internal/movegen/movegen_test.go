package movegen_test

import (
	"testing"

	"chesscore/internal/board"
	"chesscore/internal/movegen"
)

func applyUCI(t *testing.T, b *board.Board, uci string) {
	t.Helper()
	m, err := board.ParseUCIMove(uci, b)
	if err != nil {
		t.Fatalf("ParseUCIMove(%q): %v", uci, err)
	}
	b.Apply(m)
}

func hasMoveKind(moves []board.Move, from, to board.Square, kind board.MoveKind) bool {
	for _, m := range moves {
		if m.From == from && m.To == to && m.Kind == kind {
			return true
		}
	}
	return false
}

func TestStartingPositionHasTwentyLegalMoves(t *testing.T) {
	moves := movegen.GenerateLegal(board.New(), board.White)
	if len(moves) != 20 {
		t.Fatalf("len(moves) = %d, want 20", len(moves))
	}
}

func TestKnightAtG1HasTwoPseudoLegalMoves(t *testing.T) {
	b := board.New()
	g1, _ := board.ParseSquare("g1")
	moves := movegen.PseudoLegalFrom(b, g1)
	if len(moves) != 2 {
		t.Fatalf("len(moves) = %d, want 2", len(moves))
	}
}

func TestEnPassantCaptureAvailableAfterDoublePush(t *testing.T) {
	b := board.New()
	applyUCI(t, b, "e2e4")
	applyUCI(t, b, "a7a6")
	applyUCI(t, b, "e4e5")
	applyUCI(t, b, "d7d5")

	d6, _ := board.ParseSquare("d6")
	if b.EnPassant != d6 {
		t.Fatalf("EnPassant = %v, want d6", b.EnPassant)
	}

	e5, _ := board.ParseSquare("e5")
	moves := movegen.GenerateLegal(b, board.White)
	if !hasMoveKind(moves, e5, d6, board.EnPassant) {
		t.Fatalf("expected e5xd6 en passant move among %d legal moves", len(moves))
	}
}

func TestEnPassantRightExpiresAfterOneMove(t *testing.T) {
	b := board.New()
	applyUCI(t, b, "e2e4")
	applyUCI(t, b, "a7a6")
	applyUCI(t, b, "e4e5")
	applyUCI(t, b, "d7d5")
	applyUCI(t, b, "a2a3") // unrelated move forfeits the en passant right
	applyUCI(t, b, "a6a5")

	if b.EnPassant != board.NoSquare {
		t.Fatalf("EnPassant = %v, want NoSquare after an intervening move", b.EnPassant)
	}
}

func TestCastlingKingsideBecomesLegalOnceSquaresClear(t *testing.T) {
	b := board.New()
	applyUCI(t, b, "e2e4")
	applyUCI(t, b, "e7e5")
	applyUCI(t, b, "g1f3")
	applyUCI(t, b, "b8c6")
	applyUCI(t, b, "f1e2")
	applyUCI(t, b, "g8f6")

	e1, _ := board.ParseSquare("e1")
	g1, _ := board.ParseSquare("g1")
	moves := movegen.GenerateLegal(b, board.White)
	if !hasMoveKind(moves, e1, g1, board.CastlingKingside) {
		t.Fatalf("expected O-O among %d legal moves", len(moves))
	}
}

func TestCastlingUnavailableBeforeSquaresClear(t *testing.T) {
	b := board.New()
	applyUCI(t, b, "e2e4")
	applyUCI(t, b, "e7e5")
	applyUCI(t, b, "g1f3")
	applyUCI(t, b, "b8c6")

	e1, _ := board.ParseSquare("e1")
	g1, _ := board.ParseSquare("g1")
	moves := movegen.GenerateLegal(b, board.White)
	if hasMoveKind(moves, e1, g1, board.CastlingKingside) {
		t.Fatalf("castling should still be unavailable: bishop f1 has not moved")
	}
}

func TestCastlingUnavailableWhenKingPasssesThroughCheck(t *testing.T) {
	b := &board.Board{EnPassant: board.NoSquare}
	for i := range b.Squares {
		b.Squares[i] = board.NoPiece
	}
	b.KingSquare[board.White] = board.NewSquare(0, 4)
	b.KingSquare[board.Black] = board.NewSquare(7, 4)
	b.Squares[board.NewSquare(0, 4)] = board.Piece{Kind: board.King, Color: board.White}
	b.Squares[board.NewSquare(0, 7)] = board.Piece{Kind: board.Rook, Color: board.White}
	b.Squares[board.NewSquare(7, 4)] = board.Piece{Kind: board.King, Color: board.Black}
	// Black rook on the f-file attacks f1, the square the king must cross.
	b.Squares[board.NewSquare(5, 5)] = board.Piece{Kind: board.Rook, Color: board.Black}

	e1, _ := board.ParseSquare("e1")
	g1, _ := board.ParseSquare("g1")
	moves := movegen.GenerateLegal(b, board.White)
	if hasMoveKind(moves, e1, g1, board.CastlingKingside) {
		t.Fatalf("castling should be blocked: f1 is attacked")
	}
}

func TestPromotionGeneratesFourChoices(t *testing.T) {
	b := &board.Board{EnPassant: board.NoSquare}
	for i := range b.Squares {
		b.Squares[i] = board.NoPiece
	}
	b.KingSquare[board.White] = board.NewSquare(0, 4)
	b.KingSquare[board.Black] = board.NewSquare(7, 4)
	b.Squares[board.NewSquare(0, 4)] = board.Piece{Kind: board.King, Color: board.White}
	b.Squares[board.NewSquare(7, 4)] = board.Piece{Kind: board.King, Color: board.Black}
	b.Squares[board.NewSquare(6, 0)] = board.Piece{Kind: board.Pawn, Color: board.White}

	a7, _ := board.ParseSquare("a7")
	moves := movegen.PseudoLegalFrom(b, a7)
	if len(moves) != 4 {
		t.Fatalf("len(moves) = %d, want 4 promotion choices", len(moves))
	}
	seen := map[board.Kind]bool{}
	for _, m := range moves {
		if m.Kind != board.Promotion {
			t.Fatalf("move %v has kind %v, want Promotion", m, m.Kind)
		}
		seen[m.Promotion] = true
	}
	for _, k := range []board.Kind{board.Queen, board.Rook, board.Bishop, board.Knight} {
		if !seen[k] {
			t.Errorf("missing promotion choice %v", k)
		}
	}
}

func TestLegalMovesNeverLeaveOwnKingInCheck(t *testing.T) {
	b := &board.Board{EnPassant: board.NoSquare}
	for i := range b.Squares {
		b.Squares[i] = board.NoPiece
	}
	b.KingSquare[board.White] = board.NewSquare(0, 4)
	b.KingSquare[board.Black] = board.NewSquare(7, 4)
	b.Squares[board.NewSquare(0, 4)] = board.Piece{Kind: board.King, Color: board.White}
	b.Squares[board.NewSquare(7, 4)] = board.Piece{Kind: board.King, Color: board.Black}
	// White rook pinned on the e-file between its king and a black rook.
	b.Squares[board.NewSquare(1, 4)] = board.Piece{Kind: board.Rook, Color: board.White}
	b.Squares[board.NewSquare(6, 4)] = board.Piece{Kind: board.Rook, Color: board.Black}

	e2, _ := board.ParseSquare("e2")
	moves := movegen.GenerateLegal(b, board.White)
	for _, m := range moves {
		if m.From == e2 && m.To.Col() != 4 {
			t.Fatalf("pinned rook produced illegal sideways move %v", m)
		}
	}
}
