// Package uci implements the engine side of the Universal Chess Interface:
// a line-oriented command loop that owns one position and drives a search
// backend.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/stijndebels/ChessProjectCPL/internal/board"
	"github.com/stijndebels/ChessProjectCPL/internal/engine"
	"github.com/stijndebels/ChessProjectCPL/internal/fen"
	"github.com/stijndebels/ChessProjectCPL/internal/pgn"
)

// maxLineSize bounds a single command line.
const maxLineSize = 1 << 20

// UCI is the command loop.
type UCI struct {
	engine engine.Engine
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
}

// session is the state owned by one run of the loop.
type session struct {
	pos  *board.Position
	game *pgn.Game
}

func newSession(pos *board.Position) *session {
	return &session{pos: pos, game: pgn.NewGame(pos)}
}

// New creates a command loop reading commands from in and writing replies
// to out. A nil logger uses slog.Default.
func New(eng engine.Engine, in io.Reader, out io.Writer, logger *slog.Logger) *UCI {
	if logger == nil {
		logger = slog.Default()
	}
	return &UCI{
		engine: eng,
		in:     in,
		out:    out,
		logger: logger.With("component", "uci"),
	}
}

// Run processes commands until end of input or "quit", returning nil in
// both cases. A protocol error stops the loop and is returned as a
// *ProtocolError. ctx is checked between commands and passed to the
// search backend.
func (u *UCI) Run(ctx context.Context) error {
	u.logger.Info("UCI engine started")

	sc := bufio.NewScanner(u.in)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	s := newSession(fen.StartingPosition())
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := sc.Text()
		quit, err := u.runCommand(ctx, s, line)
		if err != nil {
			perr := &ProtocolError{Line: line, Err: err}
			u.logger.Error("UCI error", "err", perr)
			return perr
		}
		if quit {
			u.logger.Info("quit")
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read command: %w", err)
	}
	return nil
}

// runCommand dispatches one line. Unknown commands are ignored.
func (u *UCI) runCommand(ctx context.Context, s *session, line string) (quit bool, err error) {
	u.logger.Debug("received", "line", line)

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}

	switch parts[0] {
	case "uci":
		err = u.uciCommand()
	case "isready":
		err = u.send("readyok")
	case "ucinewgame":
		u.engine.NewGame()
		*s = *newSession(fen.StartingPosition())
	case "position":
		var next *session
		next, err = u.positionCommand(parts[1:])
		if err == nil {
			*s = *next
		}
	case "go":
		err = u.goCommand(ctx, s, parts[1:])
	case "quit":
		return true, nil
	}
	return false, err
}

func (u *UCI) uciCommand() error {
	if err := u.send("id name " + u.engine.Name() + " " + u.engine.Version()); err != nil {
		return err
	}
	if err := u.send("id author " + u.engine.Author()); err != nil {
		return err
	}
	return u.send("uciok")
}

// positionCommand builds a new session from "startpos" or "fen <fields>"
// followed by an optional "moves" list. Each move must be pseudo-legal in
// the position it is played from.
func (u *UCI) positionCommand(parts []string) (*session, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: missing", ErrUnknownPositionType)
	}

	var pos *board.Position
	rest := parts[1:]
	switch parts[0] {
	case "startpos":
		pos = fen.StartingPosition()
	case "fen":
		n := min(len(rest), 6)
		var err error
		pos, err = fen.Parse(strings.Join(rest[:n], " "))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIllegalFEN, err)
		}
		rest = rest[n:]
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPositionType, parts[0])
	}

	s := newSession(pos)
	if len(rest) > 0 && rest[0] == "moves" {
		for _, text := range rest[1:] {
			m, err := board.ParseMove(text)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrIllegalMove, err)
			}
			if _, err := s.play(m); err != nil {
				return nil, err
			}
		}
	}

	u.logger.Debug("position", "fen", fen.Encode(s.pos))
	return s, nil
}

// play applies m if it is pseudo-legal. Legal moves are also recorded in the
// game; the returned node is nil once the record has been dropped.
func (s *session) play(m board.Move) (*pgn.MoveNode, error) {
	if !slices.Contains(s.pos.PseudoLegalMoves(), m) {
		return nil, fmt.Errorf("%w: %s in %s", ErrIllegalMove, m, fen.Encode(s.pos))
	}

	var node *pgn.MoveNode
	if s.game != nil && s.pos.IsLegal(m) {
		node = s.game.AddMove(m)
	} else {
		// The record only holds legal games.
		s.game = nil
	}
	s.pos.MakeMove(m)
	return node, nil
}

func (u *UCI) goCommand(ctx context.Context, s *session, parts []string) error {
	params, err := ParseGoParams(parts)
	if err != nil {
		return err
	}

	pv, err := u.engine.PrincipalVariation(ctx, s.pos, params.TimeInfo())
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if pv.Len() == 0 {
		return ErrNoPV
	}

	u.logger.Info("PV", "pv", pv.String())
	if err := u.send(FormatInfo(pv)); err != nil {
		return err
	}

	best := pv.Moves[0]
	node, err := s.play(best)
	if err != nil {
		return err
	}
	u.logger.Debug("position", "fen", fen.Encode(s.pos))
	if node != nil {
		node.Comment = pv.ScoreString()
		u.logger.Debug("game", "pgn", s.game.Movetext())
	}

	return u.send("bestmove " + best.String())
}

func (u *UCI) send(line string) error {
	u.logger.Debug("sending", "line", line)
	if _, err := fmt.Fprintln(u.out, line); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}
	return nil
}
