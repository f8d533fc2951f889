// Command chesscore-perft counts leaf positions reachable from the standard
// starting position at a fixed depth, parallelizing the count across root
// moves. It exists to validate internal/movegen against known-good perft
// counts without paying the cost of a serial walk at higher depths.
package main

import (
	"context"
	"flag"
	"log"

	"golang.org/x/sync/errgroup"

	"chesscore/internal/board"
	"chesscore/internal/movegen"
)

func main() {
	depth := flag.Int("depth", 4, "perft depth")
	workers := flag.Int("workers", 0, "concurrent root moves to search (0 = one per root move)")
	flag.Parse()

	if *depth < 1 {
		log.Fatalf("chesscore-perft: depth must be >= 1, got %d", *depth)
	}

	b := board.New()
	roots := movegen.GenerateLegal(b, board.White)

	counts := make([]int64, len(roots))

	g, _ := errgroup.WithContext(context.Background())
	if *workers > 0 {
		g.SetLimit(*workers)
	}

	for i, m := range roots {
		i, m := i, m
		g.Go(func() error {
			next := b.Copy()
			next.Apply(m)
			counts[i] = perft(next, board.Black, *depth-1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("chesscore-perft: %v", err)
	}

	var total int64
	for i, m := range roots {
		log.Printf("%s: %d", m, counts[i])
		total += counts[i]
	}
	log.Printf("depth %d total: %d", *depth, total)
}

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
