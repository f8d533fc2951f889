package game_test

import (
	"strings"
	"testing"

	"chesscore/internal/board"
	"chesscore/internal/game"
)

func applyUCI(t *testing.T, s *game.State, uci string) {
	t.Helper()
	m, err := board.ParseUCIMove(uci, s.Board)
	if err != nil {
		t.Fatalf("ParseUCIMove(%q): %v", uci, err)
	}
	if err := s.Apply(m); err != nil {
		t.Fatalf("Apply(%q): %v", uci, err)
	}
}

func TestFoolsMate(t *testing.T) {
	s := game.New()
	applyUCI(t, s, "f2f3")
	applyUCI(t, s, "e7e5")
	applyUCI(t, s, "g2g4")
	applyUCI(t, s, "d8h4")

	if s.Status() != game.BlackMatesWhite {
		t.Fatalf("status = %v, want BlackMatesWhite", s.Status())
	}
	if !strings.Contains(s.StatusMessage(), "Black") {
		t.Fatalf("status message %q should mention Black winning", s.StatusMessage())
	}
}

func TestCastlingEligibilityLostAfterKingMoves(t *testing.T) {
	s := game.New()
	applyUCI(t, s, "e2e4")
	applyUCI(t, s, "e7e5")
	applyUCI(t, s, "e1e2")
	applyUCI(t, s, "a7a6")
	applyUCI(t, s, "e2e1")
	applyUCI(t, s, "a6a5")

	for _, m := range s.LegalMoves() {
		if m.Kind == board.CastlingKingside || m.Kind == board.CastlingQueenside {
			t.Fatalf("castling should not be offered after the king has moved and returned, got %v", m)
		}
	}
}

func TestCastlingOfferedOnceSquaresClearAndSafe(t *testing.T) {
	s := game.New()
	applyUCI(t, s, "e2e4")
	applyUCI(t, s, "e7e5")
	applyUCI(t, s, "g1f3")
	applyUCI(t, s, "b8c6")
	applyUCI(t, s, "f1e2")
	applyUCI(t, s, "g8f6")

	found := false
	for _, m := range s.LegalMoves() {
		if m.Kind == board.CastlingKingside {
			found = true
		}
	}
	if !found {
		t.Fatal("expected O-O to be offered")
	}
}

func TestEnPassantScenario(t *testing.T) {
	s := game.New()
	applyUCI(t, s, "e2e4")
	applyUCI(t, s, "a7a6")
	applyUCI(t, s, "e4e5")
	applyUCI(t, s, "d7d5")

	d6, _ := board.ParseSquare("d6")
	if s.Board.EnPassant != d6 {
		t.Fatalf("EnPassant = %v, want d6", s.Board.EnPassant)
	}

	d5, _ := board.ParseSquare("d5")
	applyUCI(t, s, "e5d6")

	if !s.Board.PieceAt(d5).IsEmpty() {
		t.Fatal("en passant capture should remove the pawn on d5")
	}
}

func TestThreefoldRepetition(t *testing.T) {
	s := game.New()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for rep := 0; rep < 3 && s.Status() == game.InProgress; rep++ {
		for _, m := range shuffle {
			if s.Status() != game.InProgress {
				break
			}
			applyUCI(t, s, m)
		}
	}

	if s.Status() != game.DrawThreefold {
		t.Fatalf("status = %v, want DrawThreefold", s.Status())
	}
}

func TestInsufficientMaterialKingAndBishopVsKingAndBishopSameColor(t *testing.T) {
	b := &board.Board{EnPassant: board.NoSquare}
	for i := range b.Squares {
		b.Squares[i] = board.NoPiece
	}
	b.KingSquare[board.White] = board.NewSquare(0, 4)
	b.KingSquare[board.Black] = board.NewSquare(7, 3)
	b.Squares[board.NewSquare(0, 4)] = board.Piece{Kind: board.King, Color: board.White}
	b.Squares[board.NewSquare(7, 3)] = board.Piece{Kind: board.King, Color: board.Black}
	b.Squares[board.NewSquare(0, 2)] = board.Piece{Kind: board.Bishop, Color: board.White} // c1, dark square
	b.Squares[board.NewSquare(7, 5)] = board.Piece{Kind: board.Bishop, Color: board.Black} // f8, dark square

	// NewFromBoard resolves status on construction, so the dead draw is
	// reported before any move is played.
	s := game.NewFromBoard(b, board.White)

	if s.Status() != game.DrawInsufficientMaterial {
		t.Fatalf("status = %v, want DrawInsufficientMaterial", s.Status())
	}
}

func TestResignSetsTerminalStatus(t *testing.T) {
	s := game.New()
	if err := s.Resign(board.White); err != nil {
		t.Fatalf("Resign: %v", err)
	}
	if s.Status() != game.WhiteResigned {
		t.Fatalf("status = %v, want WhiteResigned", s.Status())
	}
	if err := s.Resign(board.Black); err != game.ErrGameOver {
		t.Fatalf("Resign after game over: err = %v, want ErrGameOver", err)
	}
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	s := game.New()
	bogus := board.Move{From: board.NewSquare(1, 4), To: board.NewSquare(4, 4), Kind: board.Normal}
	if err := s.Apply(bogus); err != game.ErrIllegalMove {
		t.Fatalf("Apply(illegal) = %v, want ErrIllegalMove", err)
	}
}
