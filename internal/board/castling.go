package board

// CastlingRights is the set of castling options still available.
type CastlingRights uint8

const NoCastling CastlingRights = 0

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

const (
	WhiteCastling = WhiteKingside | WhiteQueenside
	BlackCastling = BlackKingside | BlackQueenside
	AllCastling   = WhiteCastling | BlackCastling
)

// Has reports whether every right in o is present.
func (cr CastlingRights) Has(o CastlingRights) bool {
	return cr&o == o
}

// Complement returns the rights not in cr.
func (cr CastlingRights) Complement() CastlingRights {
	return ^cr & AllCastling
}

// ForColor returns both rights of a side.
func ForColor(c Color) CastlingRights {
	if c == White {
		return WhiteCastling
	}
	return BlackCastling
}

func (cr CastlingRights) String() string {
	if cr&AllCastling == NoCastling {
		return "-"
	}
	var buf []byte
	if cr&WhiteKingside != 0 {
		buf = append(buf, 'K')
	}
	if cr&WhiteQueenside != 0 {
		buf = append(buf, 'Q')
	}
	if cr&BlackKingside != 0 {
		buf = append(buf, 'k')
	}
	if cr&BlackQueenside != 0 {
		buf = append(buf, 'q')
	}
	return string(buf)
}

// castleRule describes one castling option: where king and rook start and
// land, which squares must be empty and which must not be attacked.
type castleRule struct {
	right  CastlingRights
	king   Square
	kingTo Square
	rook   Square
	rookTo Square
	empty  []Square
	safe   []Square
}

var castleRules = [2][2]castleRule{
	White: {
		{right: WhiteKingside, king: E1, kingTo: G1, rook: H1, rookTo: F1,
			empty: []Square{F1, G1}, safe: []Square{E1, F1, G1}},
		{right: WhiteQueenside, king: E1, kingTo: C1, rook: A1, rookTo: D1,
			empty: []Square{D1, C1, B1}, safe: []Square{E1, D1, C1}},
	},
	Black: {
		{right: BlackKingside, king: E8, kingTo: G8, rook: H8, rookTo: F8,
			empty: []Square{F8, G8}, safe: []Square{E8, F8, G8}},
		{right: BlackQueenside, king: E8, kingTo: C8, rook: A8, rookTo: D8,
			empty: []Square{D8, C8, B8}, safe: []Square{E8, D8, C8}},
	},
}

// cornerRights maps a rook home square to the right it guards.
func cornerRights(sq Square) CastlingRights {
	switch sq {
	case A1:
		return WhiteQueenside
	case H1:
		return WhiteKingside
	case A8:
		return BlackQueenside
	case H8:
		return BlackKingside
	}
	return NoCastling
}
