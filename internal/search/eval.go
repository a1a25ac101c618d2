package search

import (
	"cmp"
	"slices"

	"github.com/stijndebels/ChessProjectCPL/internal/board"
)

var pieceValues = [...]int{
	board.NoPieceType: 0,
	board.Pawn:        100,
	board.Knight:      320,
	board.Bishop:      330,
	board.Rook:        500,
	board.Queen:       900,
	board.King:        0,
}

// evaluate returns the material balance from the side to move's view.
func evaluate(pos *board.Position) int {
	us := pos.Turn()
	score := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		p := pos.Piece(sq)
		if p == board.NoPiece {
			continue
		}
		if p.Color() == us {
			score += pieceValues[p.Type()]
		} else {
			score -= pieceValues[p.Type()]
		}
	}
	return score
}

// captured returns the piece type m takes, NoPieceType for quiet moves.
func captured(pos *board.Position, m board.Move) board.PieceType {
	if p := pos.Piece(m.To); p != board.NoPiece {
		return p.Type()
	}
	if m.To == pos.EnPassantSquare() && pos.Piece(m.From).Type() == board.Pawn {
		return board.Pawn
	}
	return board.NoPieceType
}

// orderMoves sorts captures first, most valuable victim then least valuable
// attacker, with promotions ahead of quiet moves. first, if generated, goes
// in front; the zero Move never matches.
func orderMoves(pos *board.Position, moves []board.Move, first board.Move) {
	key := func(m board.Move) int {
		if m == first {
			return 1 << 20
		}
		k := 0
		if v := captured(pos, m); v != board.NoPieceType {
			k += 10*pieceValues[v] - pieceValues[pos.Piece(m.From).Type()]/10 + 1000
		}
		k += pieceValues[m.Promotion]
		return k
	}
	slices.SortStableFunc(moves, func(a, b board.Move) int {
		return cmp.Compare(key(b), key(a))
	})
}
