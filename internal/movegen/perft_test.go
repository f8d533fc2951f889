package movegen_test

import (
	"fmt"
	"testing"

	"chesscore/internal/board"
	"chesscore/internal/movegen"
)

// perft counts the leaf positions reachable in exactly depth plies from b,
// with color to move. It is the standard cross-check for move generator
// correctness: known-good counts exist for the starting position at small
// depths.
func perft(b *board.Board, color board.Color, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var nodes int64
	for _, m := range movegen.GenerateLegal(b, color) {
		next := b.Copy()
		next.Apply(m)
		nodes += perft(next, color.Other(), depth-1)
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("depth%d", c.depth), func(t *testing.T) {
			got := perft(board.New(), board.White, c.depth)
			if got != c.want {
				t.Errorf("perft(%d) = %d, want %d", c.depth, got, c.want)
			}
		})
	}
}
