package search

import (
	"sort"

	"chesscore/internal/board"
)

// maxPly bounds the killer-move table; no line this engine searches goes
// this deep.
const maxPly = 64

// killerTable holds two quiet killer moves per ply: moves that caused a
// beta cutoff at a sibling node at the same ply, tried early in other
// siblings. Cleared at the start of every best_move call.
type killerTable struct {
	moves [maxPly][2]board.Move
}

func (k *killerTable) clear() {
	for i := range k.moves {
		k.moves[i] = [2]board.Move{}
	}
}

// record stores m as the new first killer for ply, shifting the previous
// first killer to the second slot. Storing the same move twice is a no-op.
func (k *killerTable) record(ply int, m board.Move) {
	if ply >= maxPly {
		return
	}
	if k.moves[ply][0].Equal(m) {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

// slotOf reports which killer slot (0, 1, or none) m occupies at ply.
func (k *killerTable) slotOf(ply int, m board.Move) (slot int, ok bool) {
	if ply >= maxPly {
		return 0, false
	}
	if k.moves[ply][0] != (board.Move{}) && k.moves[ply][0].Equal(m) {
		return 0, true
	}
	if k.moves[ply][1] != (board.Move{}) && k.moves[ply][1].Equal(m) {
		return 1, true
	}
	return 0, false
}

const (
	scoreTTMove      = 1_000_000
	scoreCaptureBase = 500_000
	scoreKiller0     = 400_000
	scoreKiller1     = 399_000
)

// mvvLva scores a capture: most valuable victim, least valuable attacker.
func mvvLva(captured, mover board.Piece) int {
	return 10*captured.Kind.Value() - mover.Kind.Value()
}

// orderMoves sorts moves by descending priority: the transposition-table
// move (if any) first, then captures by MVV-LVA, then this ply's killer
// moves, then everything else left in generation order. The sort is stable
// so ties fall back to generation order exactly as specified.
func orderMoves(moves []board.Move, ttMove board.Move, hasTT bool, killers *killerTable, ply int) {
	type scored struct {
		move  board.Move
		score int
	}
	pairs := make([]scored, len(moves))
	for i, m := range moves {
		s := scored{move: m}
		switch {
		case hasTT && m.Equal(ttMove):
			s.score = scoreTTMove
		case m.IsCapture():
			s.score = scoreCaptureBase + mvvLva(m.Captured, m.Moved)
		default:
			if slot, ok := killers.slotOf(ply, m); ok {
				if slot == 0 {
					s.score = scoreKiller0
				} else {
					s.score = scoreKiller1
				}
			}
		}
		pairs[i] = s
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].score > pairs[j].score
	})

	for i, p := range pairs {
		moves[i] = p.move
	}
}

// orderCaptures sorts a capture-only move list by descending MVV-LVA, used
// by quiescence search.
func orderCaptures(moves []board.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return mvvLva(moves[i].Captured, moves[i].Moved) > mvvLva(moves[j].Captured, moves[j].Moved)
	})
}
