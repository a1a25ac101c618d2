// Package pgn records the moves played in a session and renders them as
// PGN (Portable Game Notation).
package pgn

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/stijndebels/ChessProjectCPL/internal/board"
	"github.com/stijndebels/ChessProjectCPL/internal/fen"
)

// Standard 7-tag roster.
const (
	TagEvent  = "Event"
	TagSite   = "Site"
	TagDate   = "Date"
	TagRound  = "Round"
	TagWhite  = "White"
	TagBlack  = "Black"
	TagResult = "Result"

	TagSetUp = "SetUp"
	TagFEN   = "FEN"
)

// Game results.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultOngoing   = "*"
)

var roster = []string{TagEvent, TagSite, TagDate, TagRound, TagWhite, TagBlack, TagResult}

// Game is the record of a game from a start position.
type Game struct {
	Tags   map[string]string // Tag pairs
	Moves  *MoveNode         // Root of the move list (first move is Moves.Next)
	Result string            // Game result

	pos *board.Position // position after the last move
}

// MoveNode is one move of the main line.
type MoveNode struct {
	Move    string    // SAN notation (e.g., "e4", "Nxf7+", "O-O-O")
	Comment string    // Text annotation after the move
	Next    *MoveNode // Main line continuation
	Parent  *MoveNode // For navigation back
	Ply     int       // Half-move number counted from move 1 (1 = White's first move)
}

// NewGame creates an empty game starting at start. A start other than the
// standard starting position is recorded in the SetUp and FEN tags.
func NewGame(start *board.Position) *Game {
	g := &Game{
		Tags: map[string]string{
			TagEvent:  "?",
			TagSite:   "?",
			TagDate:   "????.??.??",
			TagRound:  "?",
			TagWhite:  "?",
			TagBlack:  "?",
			TagResult: ResultOngoing,
		},
		Moves:  &MoveNode{Ply: startPly(start)},
		Result: ResultOngoing,
		pos:    start.Copy(),
	}
	if s := fen.Encode(start); s != fen.StartingFEN {
		g.Tags[TagSetUp] = "1"
		g.Tags[TagFEN] = s
	}
	return g
}

// startPly returns the ply of the move played just before pos.
func startPly(pos *board.Position) int {
	ply := (pos.FullmoveNumber() - 1) * 2
	if pos.Turn() == board.Black {
		ply++
	}
	return ply
}

// Position returns a copy of the position after the last recorded move.
func (g *Game) Position() *board.Position {
	return g.pos.Copy()
}

// AddMove records m, played from the current end of the game, at the end of
// the main line. m must be legal there. When m ends the game the result is
// set.
func (g *Game) AddMove(m board.Move) *MoveNode {
	node := g.Moves
	for node.Next != nil {
		node = node.Next
	}

	newNode := &MoveNode{
		Move:   SAN(g.pos, m),
		Parent: node,
		Ply:    node.Ply + 1,
	}
	node.Next = newNode

	mover := g.pos.Turn()
	g.pos.MakeMove(m)
	if len(g.pos.LegalMoves()) == 0 {
		switch {
		case !g.pos.InCheck(g.pos.Turn()):
			g.setResult(ResultDraw)
		case mover == board.White:
			g.setResult(ResultWhiteWins)
		default:
			g.setResult(ResultBlackWins)
		}
	}
	return newNode
}

func (g *Game) setResult(result string) {
	g.Result = result
	g.Tags[TagResult] = result
}

// MainLine returns the moves of the main line as a slice.
func (g *Game) MainLine() []string {
	var moves []string
	for node := g.Moves.Next; node != nil; node = node.Next {
		moves = append(moves, node.Move)
	}
	return moves
}

// String returns the PGN representation of a game.
func (g *Game) String() string {
	var sb strings.Builder

	for _, tag := range roster {
		value, ok := g.Tags[tag]
		if !ok {
			value = "?"
		}
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", tag, value)
	}

	// Remaining tags in name order.
	for _, name := range slices.Sorted(maps.Keys(g.Tags)) {
		if !slices.Contains(roster, name) {
			fmt.Fprintf(&sb, "[%s \"%s\"]\n", name, g.Tags[name])
		}
	}

	sb.WriteByte('\n')
	sb.WriteString(g.Movetext())
	return sb.String()
}

// Movetext returns the numbered moves followed by the result.
func (g *Game) Movetext() string {
	var sb strings.Builder
	g.writeMoves(&sb, g.Moves.Next)
	sb.WriteString(g.Result)
	return sb.String()
}

func (g *Game) writeMoves(sb *strings.Builder, node *MoveNode) {
	needNumber := true
	for node != nil {
		if needNumber || node.Ply%2 == 1 {
			moveNum := (node.Ply + 1) / 2
			if node.Ply%2 == 1 {
				fmt.Fprintf(sb, "%d. ", moveNum)
			} else {
				fmt.Fprintf(sb, "%d... ", moveNum)
			}
			needNumber = false
		}

		sb.WriteString(node.Move)

		if node.Comment != "" {
			fmt.Fprintf(sb, " {%s}", node.Comment)
			// Black's move after a comment is numbered again.
			needNumber = true
		}

		sb.WriteByte(' ')
		node = node.Next
	}
}
