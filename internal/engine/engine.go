// Package engine is the façade a front-end drives to get a computer move:
// pick a difficulty, hand it a game state, get a move back.
package engine

import (
	"chesscore/internal/board"
	"chesscore/internal/game"
	"chesscore/internal/search"
)

// Difficulty selects the fixed search depth used by BestMove.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// depth maps a Difficulty to its fixed-depth search budget.
func (d Difficulty) depth() int {
	switch d {
	case Easy:
		return 2
	case Hard:
		return 5
	default:
		return 4
	}
}

// String names the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Engine wraps a search.Engine with a selectable difficulty. Each Engine
// owns its own transposition and killer tables; a program driving several
// concurrent games must give each one its own Engine instance.
type Engine struct {
	difficulty Difficulty
	search     *search.Engine
}

// New returns an Engine at Medium difficulty.
func New() *Engine {
	return &Engine{difficulty: Medium, search: search.NewEngine()}
}

// SetDifficulty changes the search depth used by subsequent BestMove calls.
func (e *Engine) SetDifficulty(level Difficulty) {
	e.difficulty = level
}

// BestMove copies the state's board and searches it at the configured
// difficulty's depth, returning the chosen move. The second return value is
// false only when the position has no legal moves, meaning the game is
// already terminal and the caller should not have asked.
func (e *Engine) BestMove(state *game.State) (board.Move, bool) {
	b := state.Board.Copy()
	return e.search.BestMove(b, state.CurrentTurn(), e.difficulty.depth())
}

// NodesSearched reports the node count from the most recent BestMove call,
// for diagnostics.
func (e *Engine) NodesSearched() int64 {
	return e.search.NodesSearched()
}
