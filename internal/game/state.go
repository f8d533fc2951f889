// Package game implements the live game: side to move, move and position
// history, draw/mate detection, and the public surface a front-end drives
// (apply a move, resign, agree a draw, query status).
package game

import (
	"errors"

	"chesscore/internal/board"
	"chesscore/internal/movegen"
)

// Errors returned by State's mutating methods. All are recoverable: the
// state is left unchanged and the caller decides how to react.
var (
	// ErrIllegalMove is returned by Apply for a move not in the current
	// legal-move set.
	ErrIllegalMove = errors.New("game: illegal move")
	// ErrGameOver is returned by Apply, Resign, and AgreeDraw once the game
	// has already reached a terminal status.
	ErrGameOver = errors.New("game: already over")
)

// Status is the terminal (or non-terminal) state of a game.
type Status int

const (
	InProgress Status = iota
	WhiteMatesBlack
	BlackMatesWhite
	Stalemate
	DrawFiftyMove
	DrawThreefold
	DrawInsufficientMaterial
	DrawAgreement
	WhiteResigned
	BlackResigned
)

// IsTerminal reports whether the status ends the game.
func (s Status) IsTerminal() bool {
	return s != InProgress
}

// String names the status tersely; State.StatusMessage gives a prose form.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case WhiteMatesBlack:
		return "WhiteMatesBlack"
	case BlackMatesWhite:
		return "BlackMatesWhite"
	case Stalemate:
		return "Stalemate"
	case DrawFiftyMove:
		return "DrawFiftyMove"
	case DrawThreefold:
		return "DrawThreefold"
	case DrawInsufficientMaterial:
		return "DrawInsufficientMaterial"
	case DrawAgreement:
		return "DrawAgreement"
	case WhiteResigned:
		return "WhiteResigned"
	case BlackResigned:
		return "BlackResigned"
	default:
		return "Unknown"
	}
}

// State is a live game: a board, whose move it is, and everything needed to
// detect draws and present legal moves. It is mutated only by Apply, Reset,
// Resign, and AgreeDraw; callers are responsible for serializing access to a
// single State the way they would any other shared mutable value (§5 of the
// rules this module follows assumes serial access, not concurrent mutation).
type State struct {
	Board          *board.Board
	SideToMove     board.Color
	HalfMoveClock  int
	FullMoveNumber int

	moveHistory     []board.Move
	positionHistory []board.Fingerprint

	legalMoves []board.Move
	status     Status
}

// New returns a fresh game at the standard starting position, White to move.
func New() *State {
	s := &State{
		Board:          board.New(),
		SideToMove:     board.White,
		FullMoveNumber: 1,
	}
	s.refresh()
	return s
}

// NewFromBoard builds a State around an already-constructed board and side
// to move, bypassing the standard starting position. Intended for tests and
// puzzle/position-setup front-ends; the board's invariants (exactly one king
// per color, KingSquare matching the grid) are the caller's responsibility.
func NewFromBoard(b *board.Board, sideToMove board.Color) *State {
	s := &State{
		Board:          b,
		SideToMove:     sideToMove,
		FullMoveNumber: 1,
	}
	s.positionHistory = append(s.positionHistory, b.Fingerprint(sideToMove))
	s.refresh()
	return s
}

// Reset restores the state to a fresh starting position.
func (s *State) Reset() {
	*s = *New()
}

// LegalMoves returns the cached legal moves for the side to move. The slice
// is owned by the caller; mutating it does not affect State.
func (s *State) LegalMoves() []board.Move {
	out := make([]board.Move, len(s.legalMoves))
	copy(out, s.legalMoves)
	return out
}

// LegalMovesFrom returns the legal moves originating at sq.
func (s *State) LegalMovesFrom(sq board.Square) []board.Move {
	var out []board.Move
	for _, m := range s.legalMoves {
		if m.From == sq {
			out = append(out, m)
		}
	}
	return out
}

// Status returns the current terminal (or non-terminal) status.
func (s *State) Status() Status {
	return s.status
}

// CurrentTurn returns the side to move.
func (s *State) CurrentTurn() board.Color {
	return s.SideToMove
}

// MoveHistory returns the moves played so far, in order.
func (s *State) MoveHistory() []board.Move {
	out := make([]board.Move, len(s.moveHistory))
	copy(out, s.moveHistory)
	return out
}

// LastMove returns the most recently applied move and true, or the zero
// Move and false if no move has been played yet.
func (s *State) LastMove() (board.Move, bool) {
	if len(s.moveHistory) == 0 {
		return board.Move{}, false
	}
	return s.moveHistory[len(s.moveHistory)-1], true
}

// MoveNumber returns the full-move counter.
func (s *State) MoveNumber() int {
	return s.FullMoveNumber
}

// Apply validates m against the current legal-move set and, if legal,
// applies it: updates the half-move clock, delegates to Board.Apply, appends
// history, advances the full-move number and side to move, and recomputes
// legal moves and terminal status.
func (s *State) Apply(m board.Move) error {
	if s.status.IsTerminal() {
		return ErrGameOver
	}

	matched, ok := s.matchLegal(m)
	if !ok {
		return ErrIllegalMove
	}

	if matched.Moved.Kind == board.Pawn || matched.IsCapture() {
		s.HalfMoveClock = 0
	} else {
		s.HalfMoveClock++
	}

	s.Board.Apply(matched)

	s.moveHistory = append(s.moveHistory, matched)

	mover := s.SideToMove
	s.SideToMove = s.SideToMove.Other()
	s.positionHistory = append(s.positionHistory, s.Board.Fingerprint(s.SideToMove))

	if mover == board.Black {
		s.FullMoveNumber++
	}

	s.refresh()
	return nil
}

// Resign ends the game with the given color resigning.
func (s *State) Resign(color board.Color) error {
	if s.status.IsTerminal() {
		return ErrGameOver
	}
	if color == board.White {
		s.status = WhiteResigned
	} else {
		s.status = BlackResigned
	}
	return nil
}

// AgreeDraw ends the game by agreement.
func (s *State) AgreeDraw() error {
	if s.status.IsTerminal() {
		return ErrGameOver
	}
	s.status = DrawAgreement
	return nil
}

// matchLegal returns the cached legal move matching m's identity
// (From, To, Kind, Promotion) along with its full snapshot/check fields.
func (s *State) matchLegal(m board.Move) (board.Move, bool) {
	for _, cand := range s.legalMoves {
		if cand.Equal(m) {
			return cand, true
		}
	}
	return board.Move{}, false
}

// refresh recomputes the cached legal move list (with checkmate flags
// filled in for display) and the terminal status, in that order — status
// resolution rule 1 depends on the legal move count.
func (s *State) refresh() {
	s.legalMoves = movegen.GenerateLegal(s.Board, s.SideToMove)
	movegen.AnnotateCheckmate(s.Board, s.legalMoves, s.SideToMove)
	s.status = s.resolveStatus()
}

// resolveStatus applies the first matching rule from spec §4.F: no legal
// moves (mate or stalemate), fifty-move clock, threefold repetition,
// insufficient material, else in progress.
func (s *State) resolveStatus() Status {
	if len(s.legalMoves) == 0 {
		if s.Board.IsInCheck(s.SideToMove) {
			if s.SideToMove == board.White {
				return BlackMatesWhite
			}
			return WhiteMatesBlack
		}
		return Stalemate
	}

	if s.HalfMoveClock >= 100 {
		return DrawFiftyMove
	}

	if s.repetitionCount() >= 3 {
		return DrawThreefold
	}

	if insufficientMaterial(s.Board) {
		return DrawInsufficientMaterial
	}

	return InProgress
}

// repetitionCount returns how many times the current position's fingerprint
// appears in positionHistory, including the current occurrence.
func (s *State) repetitionCount() int {
	if len(s.positionHistory) == 0 {
		return 1
	}
	current := s.positionHistory[len(s.positionHistory)-1]
	count := 0
	for _, fp := range s.positionHistory {
		if fp == current {
			count++
		}
	}
	return count
}

// insufficientMaterial reports whether b is a dead-drawn position: K vs K;
// K vs K+N or K vs K+B; or K+B vs K+B with both bishops on same-colored
// squares. Any pawn, rook, queen, or a side with more than one minor piece
// disables the rule.
func insufficientMaterial(b *board.Board) bool {
	type minor struct {
		kind board.Kind
		sq   board.Square
	}
	var whiteMinors, blackMinors []minor

	for sq := board.Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p.IsEmpty() || p.Kind == board.King {
			continue
		}
		switch p.Kind {
		case board.Pawn, board.Rook, board.Queen:
			return false
		case board.Knight, board.Bishop:
			m := minor{kind: p.Kind, sq: sq}
			if p.Color == board.White {
				whiteMinors = append(whiteMinors, m)
			} else {
				blackMinors = append(blackMinors, m)
			}
		}
	}

	if len(whiteMinors) > 1 || len(blackMinors) > 1 {
		return false
	}
	if len(whiteMinors) == 0 && len(blackMinors) == 0 {
		return true
	}
	if len(whiteMinors) == 1 && len(blackMinors) == 1 {
		if whiteMinors[0].kind == board.Bishop && blackMinors[0].kind == board.Bishop {
			return whiteMinors[0].sq.IsLight() == blackMinors[0].sq.IsLight()
		}
		return false
	}
	return true // exactly one minor on one side, none on the other
}
