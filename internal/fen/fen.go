// Package fen provides FEN (Forsyth-Edwards Notation) parsing and generation.
package fen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stijndebels/ChessProjectCPL/internal/board"
)

// Standard starting position FEN.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fieldCount is the number of whitespace-separated FEN fields.
const fieldCount = 6

var (
	ErrInvalidFEN            = errors.New("invalid FEN string")
	ErrInvalidPiecePlacement = errors.New("invalid piece placement")
	ErrInvalidSideToMove     = errors.New("invalid side to move")
	ErrInvalidCastling       = errors.New("invalid castling rights")
	ErrInvalidEnPassant      = errors.New("invalid en passant square")
	ErrInvalidHalfmove       = errors.New("invalid halfmove clock")
	ErrInvalidFullmove       = errors.New("invalid fullmove number")
)

// Parse parses a FEN string into a Position.
func Parse(fen string) (*board.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidFEN, fieldCount, len(fields))
	}
	return fromFields(fields)
}

// Read consumes the next six whitespace-separated fields from r and parses
// them. Input after the sixth field may have been buffered and is lost.
func Read(r io.Reader) (*board.Position, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	fields := make([]string, 0, fieldCount)
	for len(fields) < fieldCount && sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}
	if len(fields) != fieldCount {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidFEN, fieldCount, len(fields))
	}
	return fromFields(fields)
}

func fromFields(fields []string) (*board.Position, error) {
	pos := board.NewPosition()

	if err := parsePiecePlacement(fields[0], pos); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		pos.SetTurn(board.White)
	case "b":
		pos.SetTurn(board.Black)
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidSideToMove, fields[1])
	}

	if err := parseCastling(fields[2], pos); err != nil {
		return nil, err
	}

	if err := parseEnPassant(fields[3], pos); err != nil {
		return nil, err
	}

	hm, err := strconv.Atoi(fields[4])
	if err != nil || hm < 0 {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidHalfmove, fields[4])
	}
	pos.SetHalfmoveClock(hm)

	fm, err := strconv.Atoi(fields[5])
	if err != nil || fm < 1 {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidFullmove, fields[5])
	}
	pos.SetFullmoveNumber(fm)

	return pos, nil
}

// parsePiecePlacement walks ranks 8 to 1 and files a to h.
func parsePiecePlacement(s string, pos *board.Position) error {
	file, rank := 0, 7
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '/':
			if file != 8 {
				return fmt.Errorf("%w: rank %d has %d files", ErrInvalidPiecePlacement, rank+1, file)
			}
			if rank == 0 {
				return fmt.Errorf("%w: more than 8 ranks", ErrInvalidPiecePlacement)
			}
			file = 0
			rank--
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > 8 {
				return fmt.Errorf("%w: too many files on rank %d", ErrInvalidPiecePlacement, rank+1)
			}
		default:
			piece, ok := board.PieceFromSymbol(c)
			if !ok {
				return fmt.Errorf("%w: unknown piece %q", ErrInvalidPiecePlacement, string(c))
			}
			sq, ok := board.SquareFromCoordinates(file, rank)
			if !ok {
				return fmt.Errorf("%w: too many pieces on rank %d", ErrInvalidPiecePlacement, rank+1)
			}
			pos.SetPiece(sq, piece)
			file++
		}
	}

	if rank != 0 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidPiecePlacement, 8-rank)
	}
	if file != 8 {
		return fmt.Errorf("%w: rank 1 has %d files", ErrInvalidPiecePlacement, file)
	}
	return nil
}

func parseCastling(s string, pos *board.Position) error {
	if s == "-" {
		pos.SetCastlingRights(board.NoCastling)
		return nil
	}

	var cr board.CastlingRights
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			cr |= board.WhiteKingside
		case 'Q':
			cr |= board.WhiteQueenside
		case 'k':
			cr |= board.BlackKingside
		case 'q':
			cr |= board.BlackQueenside
		default:
			return fmt.Errorf("%w: unknown castling flag %q", ErrInvalidCastling, string(s[i]))
		}
	}
	pos.SetCastlingRights(cr)
	return nil
}

func parseEnPassant(s string, pos *board.Position) error {
	if s == "-" {
		pos.SetEnPassantSquare(board.NoSquare)
		return nil
	}

	sq, err := board.ParseSquare(s)
	if err != nil {
		return fmt.Errorf("%w: got %q", ErrInvalidEnPassant, s)
	}
	pos.SetEnPassantSquare(sq)
	return nil
}

// Encode returns the FEN representation of the position.
func Encode(p *board.Position) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq, _ := board.SquareFromCoordinates(file, rank)
			piece := p.Piece(sq)
			if piece == board.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.Turn() == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	fmt.Fprintf(&sb, " %s %s %d %d",
		p.CastlingRights(), p.EnPassantSquare(), p.HalfmoveClock(), p.FullmoveNumber())

	return sb.String()
}

// StartingPosition returns the standard starting position.
func StartingPosition() *board.Position {
	pos, _ := Parse(StartingFEN)
	return pos
}
