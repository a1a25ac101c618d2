package board

import "strings"

// Position is the full state of a game at one point: piece placement, side
// to move, castling rights, en passant target and the move clocks.
type Position struct {
	squares        [64]Piece
	turn           Color
	castling       CastlingRights
	enPassant      Square
	halfmoveClock  int
	fullmoveNumber int
}

// NewPosition returns an empty board with White to move and no rights.
func NewPosition() *Position {
	return &Position{
		enPassant:      NoSquare,
		fullmoveNumber: 1,
	}
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	c := *p
	return &c
}

// SetPiece places a piece on a square, replacing any occupant. NoPiece clears it.
func (p *Position) SetPiece(sq Square, piece Piece) {
	p.squares[sq] = piece
}

// Piece returns the occupant of a square, NoPiece if empty.
func (p *Position) Piece(sq Square) Piece {
	if sq < 0 || sq > 63 {
		return NoPiece
	}
	return p.squares[sq]
}

func (p *Position) SetTurn(c Color) { p.turn = c }
func (p *Position) Turn() Color { return p.turn }

func (p *Position) SetCastlingRights(cr CastlingRights) { p.castling = cr & AllCastling }
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// SetEnPassantSquare sets the en passant target; NoSquare clears it.
func (p *Position) SetEnPassantSquare(sq Square) { p.enPassant = sq }
func (p *Position) EnPassantSquare() Square { return p.enPassant }

func (p *Position) SetHalfmoveClock(n int) { p.halfmoveClock = n }
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }
func (p *Position) SetFullmoveNumber(n int) { p.fullmoveNumber = n }
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// String renders the board as an 8x8 diagram, rank 8 first.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(p.squares[rank*8+file].String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
