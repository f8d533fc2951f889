// Package search implements iterative-deepening negamax with alpha-beta
// pruning, a quiescence extension, a transposition table, null-move
// pruning, and killer/MVV-LVA move ordering.
package search

import (
	"chesscore/internal/board"
	"chesscore/internal/eval"
	"chesscore/internal/movegen"
)

// Mate is the score assigned to an immediate checkmate; shorter mates score
// closer to it (MATE - ply) so the search prefers the quickest win and the
// slowest loss.
const Mate = 100_000

// quiescenceDepth bounds the capture-only extension past the main search's
// horizon.
const quiescenceDepth = 4

// nullMoveReduction ("R") is the depth reduction applied to the null-move
// pruning probe.
const nullMoveReduction = 2

// Engine runs searches against its own transposition table and killer
// table. An Engine is not safe for concurrent use by multiple goroutines —
// give each concurrent best_move caller its own Engine, per the package's
// single-search-instance-per-thread rule.
type Engine struct {
	tt      *Table
	killers killerTable
	nodes   int64
}

// NewEngine returns a ready-to-use search engine with a fresh transposition
// table.
func NewEngine() *Engine {
	return &Engine{tt: NewTable()}
}

// NodesSearched returns the node count from the most recent BestMove call.
func (e *Engine) NodesSearched() int64 {
	return e.nodes
}

// BestMove runs iterative deepening from depth 1 to maxDepth and returns the
// move found at the last completed iteration, along with whether any move
// was available at all. The transposition table persists across calls;
// entries carry their own fingerprint so stale data cannot mis-answer a
// later, unrelated search.
func (e *Engine) BestMove(b *board.Board, side board.Color, maxDepth int) (board.Move, bool) {
	e.nodes = 0

	var best board.Move
	found := false

	for depth := 1; depth <= maxDepth; depth++ {
		e.killers.clear()
		move, _, ok := e.searchRoot(b, side, depth)
		if !ok {
			break
		}
		best, found = move, true
	}

	return best, found
}

// searchRoot runs one iterative-deepening iteration and returns the move
// that produced the best score at ply 0.
func (e *Engine) searchRoot(b *board.Board, side board.Color, depth int) (board.Move, int, bool) {
	moves := movegen.GenerateLegal(b, side)
	if len(moves) == 0 {
		return board.Move{}, 0, false
	}

	fp := b.Fingerprint(side)
	_, _, _, ttMove, hasTT := e.tt.Probe(fp)
	orderMoves(moves, ttMove, hasTT, &e.killers, 0)

	alpha, beta := -2*Mate, 2*Mate
	var best board.Move
	bestScore := -2 * Mate

	for i, m := range moves {
		next := b.Copy()
		next.Apply(m)
		score := -e.negamax(next, depth-1, -beta, -alpha, side.Other(), eval.IsEndgame(next), 1)
		if i == 0 || score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	e.tt.Store(fp, bestScore, depth, Exact, best)
	return best, bestScore, true
}

// negamax implements spec §4.H step for step: TT probe, depth cutoff into
// quiescence, terminal detection, null-move pruning, ordered move search,
// and a TT store on the way out.
func (e *Engine) negamax(b *board.Board, depth int, alpha, beta int, side board.Color, endgame bool, ply int) int {
	e.nodes++

	fp := b.Fingerprint(side)
	ttScore, ttDepth, ttFlag, ttMove, hasTT := e.tt.Probe(fp)
	if hasTT && ttDepth >= depth {
		switch ttFlag {
		case Exact:
			return ttScore
		case LowerBound:
			if ttScore > alpha {
				alpha = ttScore
			}
		case UpperBound:
			if ttScore < beta {
				beta = ttScore
			}
		}
		if alpha >= beta {
			return ttScore
		}
	}

	if depth <= 0 {
		return e.quiescence(b, quiescenceDepth, alpha, beta, side, endgame)
	}

	moves := movegen.GenerateLegal(b, side)
	if len(moves) == 0 {
		if b.IsInCheck(side) {
			return -Mate + ply
		}
		return 0
	}

	inCheck := b.IsInCheck(side)
	if depth >= 3 && !inCheck && !endgame {
		nullScore := -e.negamax(b, depth-1-nullMoveReduction, -beta, -beta+1, side.Other(), endgame, ply+1)
		if nullScore >= beta {
			return beta
		}
	}

	orderMoves(moves, ttMove, hasTT, &e.killers, ply)

	originalAlpha := alpha
	var best board.Move
	bestScore := -2 * Mate

	for i, m := range moves {
		next := b.Copy()
		next.Apply(m)
		score := -e.negamax(next, depth-1, -beta, -alpha, side.Other(), eval.IsEndgame(next), ply+1)

		if i == 0 || score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if !m.IsCapture() {
				e.killers.record(ply, m)
			}
			break
		}
	}

	flag := Exact
	switch {
	case bestScore <= originalAlpha:
		flag = UpperBound
	case bestScore >= beta:
		flag = LowerBound
	}
	e.tt.Store(fp, bestScore, depth, flag, best)

	return bestScore
}

// quiescence resolves tactical exchanges past the main search's horizon:
// stand-pat, then capture-only moves ordered by MVV-LVA.
func (e *Engine) quiescence(b *board.Board, depth, alpha, beta int, side board.Color, endgame bool) int {
	e.nodes++

	standPat := eval.Evaluate(b, side, endgame)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if depth <= 0 {
		return alpha
	}

	captures := capturesOnly(movegen.GenerateLegal(b, side))
	orderCaptures(captures)

	for _, m := range captures {
		next := b.Copy()
		next.Apply(m)
		score := -e.quiescence(next, depth-1, -beta, -alpha, side.Other(), eval.IsEndgame(next))
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

func capturesOnly(moves []board.Move) []board.Move {
	out := moves[:0]
	for _, m := range moves {
		if m.IsCapture() {
			out = append(out, m)
		}
	}
	return out
}
