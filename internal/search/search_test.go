package search_test

import (
	"testing"

	"chesscore/internal/board"
	"chesscore/internal/movegen"
	"chesscore/internal/search"
)

func TestBestMoveFindsMateInOne(t *testing.T) {
	b := &board.Board{EnPassant: board.NoSquare}
	for i := range b.Squares {
		b.Squares[i] = board.NoPiece
	}
	b.KingSquare[board.White] = board.NewSquare(5, 6) // g6
	b.KingSquare[board.Black] = board.NewSquare(7, 7) // h8
	b.Squares[board.NewSquare(5, 6)] = board.Piece{Kind: board.King, Color: board.White}
	b.Squares[board.NewSquare(7, 7)] = board.Piece{Kind: board.King, Color: board.Black}
	b.Squares[board.NewSquare(6, 2)] = board.Piece{Kind: board.Queen, Color: board.White} // c7

	e := search.NewEngine()
	move, ok := e.BestMove(b, board.White, 2)
	if !ok {
		t.Fatal("BestMove found no move")
	}

	after := b.Copy()
	after.Apply(move)
	legalReplies := movegen.GenerateLegal(after, board.Black)
	if len(legalReplies) != 0 || !after.IsInCheck(board.Black) {
		t.Fatalf("move %v did not deliver checkmate (replies=%d, inCheck=%v)", move, len(legalReplies), after.IsInCheck(board.Black))
	}
}

func TestBestMoveReturnsFalseWithNoLegalMoves(t *testing.T) {
	// Black is stalemated: king boxed in a corner with no legal moves and
	// not in check.
	b := &board.Board{EnPassant: board.NoSquare}
	for i := range b.Squares {
		b.Squares[i] = board.NoPiece
	}
	b.KingSquare[board.White] = board.NewSquare(5, 6) // g6
	b.KingSquare[board.Black] = board.NewSquare(7, 7) // h8
	b.Squares[board.NewSquare(5, 6)] = board.Piece{Kind: board.King, Color: board.White}
	b.Squares[board.NewSquare(7, 7)] = board.Piece{Kind: board.King, Color: board.Black}
	b.Squares[board.NewSquare(6, 5)] = board.Piece{Kind: board.Queen, Color: board.White} // f7

	e := search.NewEngine()
	_, ok := e.BestMove(b, board.Black, 2)
	if ok {
		t.Fatal("BestMove should report no move on a terminal position")
	}
}

func TestNodesSearchedIsPositiveAfterABestMoveCall(t *testing.T) {
	e := search.NewEngine()
	_, ok := e.BestMove(board.New(), board.White, 2)
	if !ok {
		t.Fatal("BestMove found no move from the starting position")
	}
	if e.NodesSearched() <= 0 {
		t.Fatal("NodesSearched should be positive after a search")
	}
}
