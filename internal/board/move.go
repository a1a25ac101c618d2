package board

import (
	"cmp"
	"fmt"
)

// Move is a move from one square to another, with an optional promotion.
// Promotion is NoPieceType for ordinary moves.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// ParseMove parses long algebraic UCI notation, e.g. "e2e4" or "e7e8q".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q has length %d", ErrInvalidMove, s, len(s))
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
	}

	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			m.Promotion = Knight
		case 'b':
			m.Promotion = Bishop
		case 'r':
			m.Promotion = Rook
		case 'q':
			m.Promotion = Queen
		default:
			return Move{}, fmt.Errorf("%w: %q: bad promotion %q", ErrInvalidMove, s, s[4:])
		}
	}
	return m, nil
}

func (m Move) String() string {
	return m.From.String() + m.To.String() + m.Promotion.String()
}

// Compare orders moves by from, to, then promotion. The order carries no
// chess meaning; it exists for sorting and deduplication.
func (m Move) Compare(o Move) int {
	if c := cmp.Compare(m.From, o.From); c != 0 {
		return c
	}
	if c := cmp.Compare(m.To, o.To); c != 0 {
		return c
	}
	return cmp.Compare(m.Promotion, o.Promotion)
}
