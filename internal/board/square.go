package board

import "fmt"

// Square is a board square, index = rank*8 + file with a1 = 0 and h8 = 63.
type Square int8

// NoSquare marks the absence of a square, e.g. no en passant target.
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// SquareFromCoordinates returns the square on the given file and rank (both 0-7).
func SquareFromCoordinates(file, rank int) (Square, bool) {
	if file < 0 || file >= 8 || rank < 0 || rank >= 8 {
		return NoSquare, false
	}
	return Square(rank*8 + file), true
}

// SquareFromIndex returns the square with the given index (0-63).
func SquareFromIndex(index int) (Square, bool) {
	if index < 0 || index >= 64 {
		return NoSquare, false
	}
	return Square(index), true
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, name)
	}
	sq, ok := SquareFromCoordinates(int(name[0])-'a', int(name[1])-'1')
	if !ok {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, name)
	}
	return sq, nil
}

// File returns the file index, 0 for the a-file.
func (s Square) File() int {
	return int(s) % 8
}

// Rank returns the rank index, 0 for the first rank.
func (s Square) Rank() int {
	return int(s) / 8
}

// Index returns the 0-63 index.
func (s Square) Index() int {
	return int(s)
}

func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}
