package game

import (
	"strings"

	"chesscore/internal/board"
)

// ToAlgebraic renders m in standard algebraic notation. legalMoves must be
// the full legal-move list the position m was drawn from (as produced by
// State.LegalMoves), used to disambiguate two pieces of the same kind that
// can reach the same destination.
func ToAlgebraic(legalMoves []board.Move, m board.Move) string {
	if m.Kind == board.CastlingKingside {
		return suffix(m, "O-O")
	}
	if m.Kind == board.CastlingQueenside {
		return suffix(m, "O-O-O")
	}

	var sb strings.Builder

	if m.Moved.Kind == board.Pawn {
		if m.IsCapture() {
			sb.WriteByte(byte('a' + m.From.Col()))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Kind == board.Promotion {
			sb.WriteByte('=')
			sb.WriteString(m.Promotion.Symbol())
		}
		return suffix(m, sb.String())
	}

	sb.WriteString(m.Moved.Kind.Symbol())
	sb.WriteString(disambiguation(legalMoves, m))
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())

	return suffix(m, sb.String())
}

// disambiguation returns the file, rank, or full origin square needed to
// distinguish m from other legal moves of the same piece kind landing on
// the same destination square.
func disambiguation(legalMoves []board.Move, m board.Move) string {
	sameFile, sameRank, ambiguous := false, false, false
	for _, other := range legalMoves {
		if other.From == m.From || other.To != m.To || other.Moved.Kind != m.Moved.Kind {
			continue
		}
		ambiguous = true
		if other.From.Col() == m.From.Col() {
			sameFile = true
		}
		if other.From.Row() == m.From.Row() {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}
	switch {
	case !sameFile:
		return string(byte('a' + m.From.Col()))
	case !sameRank:
		return string(byte('1' + m.From.Row()))
	default:
		return m.From.String()
	}
}

func suffix(m board.Move, s string) string {
	switch {
	case m.CausesCheckmate:
		return s + "#"
	case m.CausesCheck:
		return s + "+"
	default:
		return s
	}
}

// StatusMessage renders the current status as a short, user-facing
// sentence.
func (s *State) StatusMessage() string {
	switch s.status {
	case InProgress:
		return "In progress."
	case WhiteMatesBlack:
		return "Checkmate! White wins."
	case BlackMatesWhite:
		return "Checkmate! Black wins."
	case Stalemate:
		return "Draw by stalemate."
	case DrawFiftyMove:
		return "Draw by fifty-move rule."
	case DrawThreefold:
		return "Draw by threefold repetition."
	case DrawInsufficientMaterial:
		return "Draw by insufficient material."
	case DrawAgreement:
		return "Draw by agreement."
	case WhiteResigned:
		return "White resigned. Black wins."
	case BlackResigned:
		return "Black resigned. White wins."
	default:
		return "Unknown status."
	}
}
