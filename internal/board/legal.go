package board

// KingSquare returns the square of the king of color c, NoSquare if absent.
func (p *Position) KingSquare(c Color) Square {
	king := NewPiece(c, King)
	for sq := A1; sq <= H8; sq++ {
		if p.squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// InCheck reports whether the king of color c is attacked.
func (p *Position) InCheck(c Color) bool {
	sq := p.KingSquare(c)
	if sq == NoSquare {
		return false
	}
	return p.Attacked(sq, c.Opposite())
}

// LegalMoves returns the pseudo-legal moves that do not leave the mover's
// king in check.
func (p *Position) LegalMoves() []Move {
	pseudo := p.PseudoLegalMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		if p.IsLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegal reports whether a pseudo-legal move keeps the mover's king safe.
func (p *Position) IsLegal(m Move) bool {
	next := *p
	next.MakeMove(m)
	return !next.InCheck(p.turn)
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := *p
		next.MakeMove(m)
		nodes += Perft(&next, depth-1)
	}
	return nodes
}
