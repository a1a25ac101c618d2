package pgn

import (
	"strings"

	"github.com/stijndebels/ChessProjectCPL/internal/board"
)

// SAN returns the Standard Algebraic Notation of m, a legal move in pos.
func SAN(pos *board.Position, m board.Move) string {
	piece := pos.Piece(m.From)
	var sb strings.Builder

	switch {
	case piece.Type() == board.King && m.To.File()-m.From.File() == 2:
		sb.WriteString("O-O")
	case piece.Type() == board.King && m.From.File()-m.To.File() == 2:
		sb.WriteString("O-O-O")
	case piece.Type() == board.Pawn:
		if m.From.File() != m.To.File() {
			// Pawns only change file when capturing, en passant included.
			sb.WriteByte(m.From.String()[0])
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Promotion != board.NoPieceType {
			sb.WriteByte('=')
			sb.WriteString(strings.ToUpper(m.Promotion.String()))
		}
	default:
		sb.WriteString(strings.ToUpper(piece.Type().String()))
		sb.WriteString(disambiguation(pos, m, piece))
		if pos.Piece(m.To) != board.NoPiece {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	next := pos.Copy()
	next.MakeMove(m)
	if next.InCheck(next.Turn()) {
		if len(next.LegalMoves()) == 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

// disambiguation returns the from-square file, rank or both when another
// piece of the same kind can also reach m.To.
func disambiguation(pos *board.Position, m board.Move, piece board.Piece) string {
	var rivals, sameFile, sameRank bool
	for _, o := range pos.LegalMoves() {
		if o.To != m.To || o.From == m.From || pos.Piece(o.From) != piece {
			continue
		}
		rivals = true
		if o.From.File() == m.From.File() {
			sameFile = true
		}
		if o.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	name := m.From.String()
	switch {
	case !rivals:
		return ""
	case !sameFile:
		return name[:1]
	case !sameRank:
		return name[1:]
	default:
		return name
	}
}
