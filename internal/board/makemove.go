package board

// MakeMove applies a pseudo-legal move in place. Applying a move that was not
// produced by the generator (or validated against it) leaves the position in
// an unspecified state.
func (p *Position) MakeMove(m Move) {
	piece := p.squares[m.From]
	color := piece.Color()
	captured := p.squares[m.To]

	if piece.Type() == Pawn && m.To == p.enPassant && captured == NoPiece && m.From.File() != m.To.File() {
		// The captured pawn stands beside the mover, not on the target.
		victim := Square(m.From.Rank()*8 + m.To.File())
		captured = p.squares[victim]
		p.squares[victim] = NoPiece
	}

	p.squares[m.To] = piece
	p.squares[m.From] = NoPiece

	if piece.Type() == King {
		for _, rule := range castleRules[color] {
			if m.From == rule.king && m.To == rule.kingTo {
				p.squares[rule.rookTo] = p.squares[rule.rook]
				p.squares[rule.rook] = NoPiece
			}
		}
	}

	if m.Promotion != NoPieceType {
		p.squares[m.To] = NewPiece(color, m.Promotion)
	}

	if piece.Type() == King && m.From == castleRules[color][0].king {
		p.castling &^= ForColor(color)
	}
	p.castling &^= cornerRights(m.From) | cornerRights(m.To)

	p.enPassant = NoSquare
	if piece.Type() == Pawn {
		if d := m.To.Rank() - m.From.Rank(); d == 2 || d == -2 {
			p.enPassant = Square((m.From.Rank()+m.To.Rank())/2*8 + m.From.File())
		}
	}

	if piece.Type() == Pawn || captured != NoPiece {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if color == Black {
		p.fullmoveNumber++
	}

	p.turn = color.Opposite()
}
