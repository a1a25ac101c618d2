package board

type offset struct{ file, rank int }

var (
	knightOffsets = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = []offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	bishopDirs    = []offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	rookDirs      = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	queenDirs     = append(append([]offset{}, bishopDirs...), rookDirs...)
)

func (s Square) shift(o offset) (Square, bool) {
	return SquareFromCoordinates(s.File()+o.file, s.Rank()+o.rank)
}

// pawnDirection is the rank delta of a pawn step for the color.
func pawnDirection(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

// PseudoLegalMoves returns every move of the side to move that obeys piece
// geometry and blocking. Moves that leave the own king in check are included;
// see LegalMoves for the filtered set. Castling is only generated when the
// king's start, transit and landing squares are not attacked.
func (p *Position) PseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	for sq := A1; sq <= H8; sq++ {
		moves = p.appendMovesFrom(moves, sq)
	}
	return moves
}

// PseudoLegalMovesFrom returns the pseudo-legal moves of the piece on from.
// It returns nil when the square is empty or holds a piece of the side not
// to move.
func (p *Position) PseudoLegalMovesFrom(from Square) []Move {
	return p.appendMovesFrom(nil, from)
}

func (p *Position) appendMovesFrom(moves []Move, from Square) []Move {
	piece := p.Piece(from)
	if piece == NoPiece || piece.Color() != p.turn {
		return moves
	}

	switch piece.Type() {
	case Pawn:
		moves = p.appendPawnMoves(moves, from, piece.Color())
	case Knight:
		moves = p.appendSteps(moves, from, piece.Color(), knightOffsets)
	case Bishop:
		moves = p.appendSlides(moves, from, piece.Color(), bishopDirs)
	case Rook:
		moves = p.appendSlides(moves, from, piece.Color(), rookDirs)
	case Queen:
		moves = p.appendSlides(moves, from, piece.Color(), queenDirs)
	case King:
		moves = p.appendSteps(moves, from, piece.Color(), kingOffsets)
		moves = p.appendCastles(moves, from, piece.Color())
	}
	return moves
}

func (p *Position) appendPawnMoves(moves []Move, from Square, color Color) []Move {
	dir := pawnDirection(color)
	homeRank, lastRank := 1, 7
	if color == Black {
		homeRank, lastRank = 6, 0
	}

	if one, ok := from.shift(offset{0, dir}); ok && p.squares[one] == NoPiece {
		moves = appendPawnMove(moves, from, one, lastRank)
		if from.Rank() == homeRank {
			if two, ok := from.shift(offset{0, 2 * dir}); ok && p.squares[two] == NoPiece {
				moves = append(moves, Move{From: from, To: two})
			}
		}
	}

	enemyPawn := NewPiece(color.Opposite(), Pawn)
	for _, df := range [2]int{-1, 1} {
		to, ok := from.shift(offset{df, dir})
		if !ok {
			continue
		}
		target := p.squares[to]
		switch {
		case target != NoPiece:
			if target.Color() != color {
				moves = appendPawnMove(moves, from, to, lastRank)
			}
		case to == p.enPassant:
			if beside, ok := from.shift(offset{df, 0}); ok && p.squares[beside] == enemyPawn {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// appendPawnMove adds a pawn move, expanded into one move per promotion
// piece when it reaches the last rank.
func appendPawnMove(moves []Move, from, to Square, lastRank int) []Move {
	if to.Rank() != lastRank {
		return append(moves, Move{From: from, To: to})
	}
	for _, t := range PromotionTypes {
		moves = append(moves, Move{From: from, To: to, Promotion: t})
	}
	return moves
}

func (p *Position) appendSteps(moves []Move, from Square, color Color, offsets []offset) []Move {
	for _, o := range offsets {
		to, ok := from.shift(o)
		if !ok {
			continue
		}
		if target := p.squares[to]; target == NoPiece || target.Color() != color {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func (p *Position) appendSlides(moves []Move, from Square, color Color, dirs []offset) []Move {
	for _, d := range dirs {
		for to, ok := from.shift(d); ok; to, ok = to.shift(d) {
			target := p.squares[to]
			if target != NoPiece {
				if target.Color() != color {
					moves = append(moves, Move{From: from, To: to})
				}
				break
			}
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func (p *Position) appendCastles(moves []Move, from Square, color Color) []Move {
	rook := NewPiece(color, Rook)
	for _, rule := range castleRules[color] {
		if from != rule.king || !p.castling.Has(rule.right) || p.squares[rule.rook] != rook {
			continue
		}
		if !p.allEmpty(rule.empty) || p.anyAttacked(rule.safe, color.Opposite()) {
			continue
		}
		moves = append(moves, Move{From: from, To: rule.kingTo})
	}
	return moves
}

func (p *Position) allEmpty(squares []Square) bool {
	for _, sq := range squares {
		if p.squares[sq] != NoPiece {
			return false
		}
	}
	return true
}

func (p *Position) anyAttacked(squares []Square, by Color) bool {
	for _, sq := range squares {
		if p.Attacked(sq, by) {
			return true
		}
	}
	return false
}

// Attacked reports whether any piece of color by attacks sq. Pawns attack
// diagonally whether or not the target is occupied; castling never attacks.
func (p *Position) Attacked(sq Square, by Color) bool {
	pawn := NewPiece(by, Pawn)
	dir := pawnDirection(by)
	for _, df := range [2]int{-1, 1} {
		if from, ok := sq.shift(offset{df, -dir}); ok && p.squares[from] == pawn {
			return true
		}
	}

	if p.stepAttacked(sq, NewPiece(by, Knight), knightOffsets) ||
		p.stepAttacked(sq, NewPiece(by, King), kingOffsets) {
		return true
	}

	queen := NewPiece(by, Queen)
	return p.slideAttacked(sq, NewPiece(by, Bishop), queen, bishopDirs) ||
		p.slideAttacked(sq, NewPiece(by, Rook), queen, rookDirs)
}

func (p *Position) stepAttacked(sq Square, attacker Piece, offsets []offset) bool {
	for _, o := range offsets {
		if from, ok := sq.shift(o); ok && p.squares[from] == attacker {
			return true
		}
	}
	return false
}

func (p *Position) slideAttacked(sq Square, slider, queen Piece, dirs []offset) bool {
	for _, d := range dirs {
		for from, ok := sq.shift(d); ok; from, ok = from.shift(d) {
			piece := p.squares[from]
			if piece == NoPiece {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break
		}
	}
	return false
}
