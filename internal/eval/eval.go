// Package eval implements the static position evaluator: material,
// piece-square tables, central-pawn control, and king pawn-shield safety.
package eval

import "chesscore/internal/board"

// Piece values in centipawns, indexed by board.Kind.
var pieceValue = [6]int{100, 320, 330, 500, 900, 0}

// pawnPST rewards central, advanced pawns and discourages the doubled
// c/d/e/f-pawn shape in front of a castled king.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMidgamePST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndgamePST = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// pst indexes the non-king piece-square tables by Kind.
var pst = [5][64]int{pawnPST, knightPST, bishopPST, rookPST, queenPST}

const (
	centerPawnBonus  = 20
	centerPieceBonus = 10
	pawnShieldBonus  = 15
	minorMajorThresh = 1000 // 10 pawn units, in centipawns
)

var centerSquares = [4]board.Square{
	board.NewSquare(3, 3), // d4
	board.NewSquare(3, 4), // e4
	board.NewSquare(4, 3), // d5
	board.NewSquare(4, 4), // e5
}

// IsEndgame reports whether the total piece count on the board is low
// enough to switch to endgame king-square and king-safety behavior.
func IsEndgame(b *board.Board) bool {
	return countPieces(b) <= 12
}

func countPieces(b *board.Board) int {
	n := 0
	for sq := board.Square(0); sq < 64; sq++ {
		if !b.PieceAt(sq).IsEmpty() {
			n++
		}
	}
	return n
}

// Evaluate scores the position in centipawn-like units from sideToMove's
// perspective: positive means sideToMove stands better. endgame should be
// eval.IsEndgame(board), computed fresh for each call rather than cached
// across a search — endgame status changes as pieces are captured.
func Evaluate(b *board.Board, sideToMove board.Color, endgame bool) int {
	score := materialAndPosition(b, endgame)
	score += centralControl(b)
	score += kingSafety(b)

	if sideToMove == board.Black {
		score = -score
	}
	return score
}

func materialAndPosition(b *board.Board, endgame bool) int {
	score := 0
	for sq := board.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		sign := 1
		if p.Color == board.Black {
			sign = -1
		}

		score += sign * pieceValue[p.Kind]

		pstSq := sq
		if p.Color == board.White {
			pstSq = mirror(sq)
		}

		if p.Kind == board.King {
			if endgame {
				score += sign * kingEndgamePST[pstSq]
			} else {
				score += sign * kingMidgamePST[pstSq]
			}
			continue
		}
		score += sign * pst[p.Kind][pstSq]
	}
	return score
}

// mirror flips a square's row so White's back rank reads row 7 of a table
// written from Black's point of view, per the spec's table-sharing rule.
func mirror(sq board.Square) board.Square {
	return board.NewSquare(7-sq.Row(), sq.Col())
}

func centralControl(b *board.Board) int {
	score := 0
	for _, sq := range centerSquares {
		p := b.PieceAt(sq)
		if p.IsEmpty() {
			continue
		}
		sign := 1
		if p.Color == board.Black {
			sign = -1
		}
		if p.Kind == board.Pawn {
			score += sign * centerPawnBonus
		} else {
			score += sign * centerPieceBonus
		}
	}
	return score
}

// kingSafety rewards an intact three-square pawn shield in front of each
// king, but only while the opponent retains enough non-pawn material to make
// an attack worth defending against.
func kingSafety(b *board.Board) int {
	score := 0
	score += shieldBonus(b, board.White)
	score -= shieldBonus(b, board.Black)
	return score
}

func shieldBonus(b *board.Board, color board.Color) int {
	if nonPawnMaterial(b, color.Other()) <= minorMajorThresh {
		return 0
	}
	king := b.KingSquare[color]
	dir := color.PawnDirection()
	total := 0
	for _, dc := range [3]int{-1, 0, 1} {
		sq, ok := king.Offset(dir, dc)
		if !ok {
			continue
		}
		p := b.PieceAt(sq)
		if p.Kind == board.Pawn && p.Color == color {
			total += pawnShieldBonus
		}
	}
	return total
}

// nonPawnMaterial sums the centipawn value of color's pieces excluding pawns
// and the king.
func nonPawnMaterial(b *board.Board, color board.Color) int {
	total := 0
	for sq := board.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.Color != color || p.Kind == board.Pawn || p.Kind == board.King {
			continue
		}
		total += pieceValue[p.Kind]
	}
	return total
}
