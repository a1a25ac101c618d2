// Package search is the reference search backend: iterative-deepening
// negamax with alpha-beta pruning over a material evaluation.
package search

import (
	"context"
	"log/slog"
	"time"

	"github.com/stijndebels/ChessProjectCPL/internal/board"
	"github.com/stijndebels/ChessProjectCPL/internal/config"
	"github.com/stijndebels/ChessProjectCPL/internal/engine"
)

const (
	infinity  = 1 << 30
	mateScore = 1 << 20
	// Scores within mateGuard of mateScore encode a forced mate.
	mateGuard = 1000

	// nodeCheckMask sets how often the deadline is polled.
	nodeCheckMask = 1023
	// defaultMovesToGo splits the clock when "go" gives no movestogo.
	defaultMovesToGo = 30
)

// Searcher implements engine.Engine.
type Searcher struct {
	name, version, author string
	maxDepth              int
	defaultMoveTime       time.Duration

	nodes   uint64
	stopped bool

	logger *slog.Logger
}

var _ engine.Engine = (*Searcher)(nil)

// New creates a Searcher configured by cfg.
func New(cfg *config.Config) *Searcher {
	return &Searcher{
		name:            cfg.Engine.Name,
		version:         cfg.Engine.Version,
		author:          cfg.Engine.Author,
		maxDepth:        cfg.Search.MaxDepth,
		defaultMoveTime: time.Duration(cfg.Search.DefaultMoveTimeMS) * time.Millisecond,
		logger:          slog.Default().With("component", "search"),
	}
}

func (s *Searcher) Name() string    { return s.name }
func (s *Searcher) Version() string { return s.version }
func (s *Searcher) Author() string  { return s.author }

// NewGame resets the node counter.
func (s *Searcher) NewGame() {
	s.nodes = 0
}

// Nodes returns the number of nodes visited since the last NewGame.
func (s *Searcher) Nodes() uint64 {
	return s.nodes
}

// PrincipalVariation searches pos to the configured depth or until the time
// budget runs out, returning the line of the deepest completed iteration.
// The first iteration always completes so a move is returned whenever one
// exists.
func (s *Searcher) PrincipalVariation(ctx context.Context, pos *board.Position, ti *engine.TimeInfo) (engine.PrincipalVariation, error) {
	root := pos.Copy()
	moves := root.LegalMoves()
	if len(moves) == 0 {
		// Checkmate or stalemate: nothing to play.
		return engine.PrincipalVariation{Mate: root.InCheck(root.Turn())}, nil
	}

	if budget := s.budget(root.Turn(), ti); budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
		s.logger.Debug("search budget", "budget", budget)
	}

	var best engine.PrincipalVariation
	start := time.Now()
	for depth := 1; depth <= s.maxDepth; depth++ {
		iterCtx := ctx
		if depth == 1 {
			iterCtx = context.WithoutCancel(ctx)
		}

		s.stopped = false
		var first board.Move
		if len(best.Moves) > 0 {
			first = best.Moves[0]
		}
		orderMoves(root, moves, first)

		var line []board.Move
		score := s.searchRoot(iterCtx, root, moves, depth, &line)
		if s.stopped {
			s.logger.Debug("search stopped", "depth", depth)
			break
		}

		best = toPrincipalVariation(score, line)
		s.logger.Debug("depth complete",
			"depth", depth,
			"score", best.Score,
			"mate", best.Mate,
			"nodes", s.nodes,
			"elapsed", time.Since(start),
			"pv", best.String())

		if best.Mate {
			break
		}
	}

	return best, nil
}

// budget returns the time to spend on this move, 0 for depth-limited.
func (s *Searcher) budget(us board.Color, ti *engine.TimeInfo) time.Duration {
	if ti == nil {
		return s.defaultMoveTime
	}
	if ti.MoveTime > 0 {
		return ti.MoveTime
	}

	clock := ti.Player(us)
	if clock.TimeLeft <= 0 {
		return s.defaultMoveTime
	}
	movesToGo := ti.MovesToGo
	if movesToGo <= 0 {
		movesToGo = defaultMovesToGo
	}
	budget := clock.TimeLeft/time.Duration(movesToGo) + clock.Increment/2
	if budget >= clock.TimeLeft {
		budget = clock.TimeLeft / 2
	}
	return budget
}

func (s *Searcher) searchRoot(ctx context.Context, pos *board.Position, moves []board.Move, depth int, line *[]board.Move) int {
	alpha := -infinity
	for _, m := range moves {
		next := *pos
		next.MakeMove(m)

		var childLine []board.Move
		score := -s.negamax(ctx, &next, depth-1, 1, -infinity, -alpha, &childLine)
		if s.stopped {
			return 0
		}
		if score > alpha {
			alpha = score
			*line = append([]board.Move{m}, childLine...)
		}
	}
	return alpha
}

func (s *Searcher) negamax(ctx context.Context, pos *board.Position, depth, ply, alpha, beta int, line *[]board.Move) int {
	if s.poll(ctx) {
		return 0
	}
	if pos.HalfmoveClock() >= 100 {
		return 0
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.InCheck(pos.Turn()) {
			return -mateScore + ply
		}
		return 0
	}
	if depth <= 0 {
		return s.quiesce(ctx, pos, alpha, beta)
	}

	orderMoves(pos, moves, board.Move{})
	for _, m := range moves {
		next := *pos
		next.MakeMove(m)

		var childLine []board.Move
		score := -s.negamax(ctx, &next, depth-1, ply+1, -beta, -alpha, &childLine)
		if s.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
			*line = append([]board.Move{m}, childLine...)
		}
	}
	return alpha
}

// quiesce extends the search through captures so the evaluation is not
// taken in the middle of an exchange.
func (s *Searcher) quiesce(ctx context.Context, pos *board.Position, alpha, beta int) int {
	if s.poll(ctx) {
		return 0
	}

	stand := evaluate(pos)
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}

	moves := pos.PseudoLegalMoves()
	captures := moves[:0]
	for _, m := range moves {
		if captured(pos, m) != board.NoPieceType && pos.IsLegal(m) {
			captures = append(captures, m)
		}
	}
	orderMoves(pos, captures, board.Move{})

	for _, m := range captures {
		next := *pos
		next.MakeMove(m)
		score := -s.quiesce(ctx, &next, -beta, -alpha)
		if s.stopped {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// poll counts a node and reports whether the search must unwind.
func (s *Searcher) poll(ctx context.Context) bool {
	s.nodes++
	if s.nodes&nodeCheckMask == 0 && ctx.Err() != nil {
		s.stopped = true
	}
	return s.stopped
}

func toPrincipalVariation(score int, line []board.Move) engine.PrincipalVariation {
	pv := engine.PrincipalVariation{Moves: line, Score: score}
	switch {
	case score > mateScore-mateGuard:
		pv.Mate = true
		pv.Score = mateScore - score
	case score < -mateScore+mateGuard:
		pv.Mate = true
		pv.Score = -(mateScore + score)
	}
	return pv
}
