// Package board implements the chess position state machine: squares, pieces,
// castling rights, moves, pseudo-legal move generation and move application.
package board

import "errors"

var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidPiece  = errors.New("invalid piece")
)

// Color represents a side.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is the kind of a piece, independent of its color.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeLetters = [...]byte{NoPieceType: 0, Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}

// Letter returns the lowercase letter of the piece type, or 0 for NoPieceType.
func (t PieceType) Letter() byte {
	if int(t) >= len(pieceTypeLetters) {
		return 0
	}
	return pieceTypeLetters[t]
}

func (t PieceType) String() string {
	if l := t.Letter(); l != 0 {
		return string(l)
	}
	return ""
}

// PromotionTypes lists the piece types a pawn may promote to.
var PromotionTypes = [4]PieceType{Knight, Bishop, Rook, Queen}

// Piece is a colored piece. The zero value is NoPiece, used for empty squares.
type Piece uint8

const NoPiece Piece = 0

const (
	WhitePawn   = Piece(White)<<3 | Piece(Pawn)
	WhiteKnight = Piece(White)<<3 | Piece(Knight)
	WhiteBishop = Piece(White)<<3 | Piece(Bishop)
	WhiteRook   = Piece(White)<<3 | Piece(Rook)
	WhiteQueen  = Piece(White)<<3 | Piece(Queen)
	WhiteKing   = Piece(White)<<3 | Piece(King)
	BlackPawn   = Piece(Black)<<3 | Piece(Pawn)
	BlackKnight = Piece(Black)<<3 | Piece(Knight)
	BlackBishop = Piece(Black)<<3 | Piece(Bishop)
	BlackRook   = Piece(Black)<<3 | Piece(Rook)
	BlackQueen  = Piece(Black)<<3 | Piece(Queen)
	BlackKing   = Piece(Black)<<3 | Piece(King)
)

// NewPiece combines a color and a piece type.
func NewPiece(c Color, t PieceType) Piece {
	return Piece(c)<<3 | Piece(t)
}

// Color returns the color of the piece. It is meaningless for NoPiece.
func (p Piece) Color() Color {
	return Color(p >> 3)
}

// Type returns the piece type, NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	return PieceType(p & 7)
}

// Symbol returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Symbol() byte {
	l := p.Type().Letter()
	if l == 0 {
		return 0
	}
	if p.Color() == White {
		return l - 'a' + 'A'
	}
	return l
}

func (p Piece) String() string {
	if s := p.Symbol(); s != 0 {
		return string(s)
	}
	return "."
}

// PieceFromSymbol decodes a FEN piece letter.
func PieceFromSymbol(symbol byte) (Piece, bool) {
	color := Black
	if symbol >= 'A' && symbol <= 'Z' {
		color = White
		symbol = symbol - 'A' + 'a'
	}
	for t := Pawn; t <= King; t++ {
		if t.Letter() == symbol {
			return NewPiece(color, t), true
		}
	}
	return NoPiece, false
}
