package search

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stijndebels/ChessProjectCPL/internal/board"
	"github.com/stijndebels/ChessProjectCPL/internal/config"
	"github.com/stijndebels/ChessProjectCPL/internal/engine"
	"github.com/stijndebels/ChessProjectCPL/internal/fen"
)

func newSearcher(t *testing.T, depth int) *Searcher {
	t.Helper()
	cfg := config.Default()
	cfg.Search.MaxDepth = depth
	return New(cfg)
}

func mustParse(t *testing.T, s string) *board.Position {
	t.Helper()
	pos, err := fen.Parse(s)
	if err != nil {
		t.Fatalf("fen.Parse(%q) error: %v", s, err)
	}
	return pos
}

func TestGameOver(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		mate bool
	}{
		{"mate", "4R2k/6pp/8/8/8/8/8/K7 b - - 0 1", true},
		{"mate bishops", "7k/8/8/8/1bb5/8/r7/3BK3 w - - 0 1", true},
		{"stalemate", "k7/p7/P7/8/8/8/8/KR6 b - - 0 1", false},
		{"stalemate queen", "k7/8/8/6n1/r7/4K3/2q5/8 w - - 0 1", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSearcher(t, 3)
			pv, err := s.PrincipalVariation(context.Background(), mustParse(t, tc.fen), nil)
			if err != nil {
				t.Fatalf("PrincipalVariation() error: %v", err)
			}
			if pv.Mate != tc.mate {
				t.Errorf("Mate = %v, want %v", pv.Mate, tc.mate)
			}
			if pv.Score != 0 {
				t.Errorf("Score = %d, want 0", pv.Score)
			}
			if pv.Len() != 0 {
				t.Errorf("Len() = %d, want 0", pv.Len())
			}
		})
	}
}

func TestMateInOne(t *testing.T) {
	s := newSearcher(t, 3)
	pv, err := s.PrincipalVariation(context.Background(), mustParse(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"), nil)
	if err != nil {
		t.Fatalf("PrincipalVariation() error: %v", err)
	}

	if !pv.Mate || pv.Score != 1 {
		t.Errorf("score = (mate %v, %d), want (mate true, 1)", pv.Mate, pv.Score)
	}
	if pv.MovesToMate() != 1 {
		t.Errorf("MovesToMate() = %d, want 1", pv.MovesToMate())
	}
	want := board.Move{From: board.A1, To: board.A8}
	if pv.Len() != 1 || pv.Moves[0] != want {
		t.Errorf("Moves = %v, want [%v]", pv.Moves, want)
	}
}

func TestWinsHangingQueen(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		s := newSearcher(t, depth)
		pv, err := s.PrincipalVariation(context.Background(), mustParse(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1"), nil)
		if err != nil {
			t.Fatalf("depth %d: PrincipalVariation() error: %v", depth, err)
		}
		want := board.Move{From: board.D1, To: board.D5}
		if pv.Len() == 0 || pv.Moves[0] != want {
			t.Errorf("depth %d: Moves = %v, want %v first", depth, pv.Moves, want)
		}
		if pv.Mate || pv.Score < 400 {
			t.Errorf("depth %d: score = (mate %v, %d), want a winning material score", depth, pv.Mate, pv.Score)
		}
	}
}

func TestPrincipalVariationIsPlayable(t *testing.T) {
	s := newSearcher(t, 3)
	pos := mustParse(t, fen.StartingFEN)
	pv, err := s.PrincipalVariation(context.Background(), pos, nil)
	if err != nil {
		t.Fatalf("PrincipalVariation() error: %v", err)
	}
	if pv.Len() == 0 {
		t.Fatal("PrincipalVariation() returned no moves")
	}

	for _, m := range pv.Moves {
		if !slices.Contains(pos.LegalMoves(), m) {
			t.Fatalf("PV move %v is not legal in %s", m, fen.Encode(pos))
		}
		pos.MakeMove(m)
	}

	if got := fen.Encode(mustParse(t, fen.StartingFEN)); got != fen.StartingFEN {
		t.Errorf("search mutated a copy of the input: %q", got)
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	pos := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := fen.Encode(pos)

	if _, err := newSearcher(t, 2).PrincipalVariation(context.Background(), pos, nil); err != nil {
		t.Fatalf("PrincipalVariation() error: %v", err)
	}
	if after := fen.Encode(pos); after != before {
		t.Errorf("position changed: %q -> %q", before, after)
	}
}

func TestCancelledContextStillReturnsMove(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newSearcher(t, 6)
	pos := mustParse(t, fen.StartingFEN)
	pv, err := s.PrincipalVariation(ctx, pos, nil)
	if err != nil {
		t.Fatalf("PrincipalVariation() error: %v", err)
	}
	if pv.Len() == 0 || !slices.Contains(pos.LegalMoves(), pv.Moves[0]) {
		t.Errorf("Moves = %v, want a legal first move", pv.Moves)
	}
}

func TestNewGameResetsNodes(t *testing.T) {
	s := newSearcher(t, 2)
	if _, err := s.PrincipalVariation(context.Background(), mustParse(t, fen.StartingFEN), nil); err != nil {
		t.Fatalf("PrincipalVariation() error: %v", err)
	}
	if s.Nodes() == 0 {
		t.Fatal("Nodes() = 0 after a search")
	}
	s.NewGame()
	if s.Nodes() != 0 {
		t.Errorf("Nodes() = %d after NewGame, want 0", s.Nodes())
	}
}

func TestIdentification(t *testing.T) {
	cfg := config.Default()
	cfg.Engine = config.EngineConfig{Name: "N", Version: "V", Author: "A"}
	s := New(cfg)
	if s.Name() != "N" || s.Version() != "V" || s.Author() != "A" {
		t.Errorf("identification = %q %q %q, want N V A", s.Name(), s.Version(), s.Author())
	}
}

func TestBudget(t *testing.T) {
	s := newSearcher(t, 4)
	s.defaultMoveTime = 200 * time.Millisecond

	tests := []struct {
		name string
		us   board.Color
		ti   *engine.TimeInfo
		want time.Duration
	}{
		{"no clock", board.White, nil, 200 * time.Millisecond},
		{"movetime", board.White, &engine.TimeInfo{MoveTime: time.Second}, time.Second},
		{"white clock", board.White, &engine.TimeInfo{
			White: engine.PlayerTimeInfo{TimeLeft: 60 * time.Second, Increment: 2 * time.Second},
			Black: engine.PlayerTimeInfo{TimeLeft: 30 * time.Second},
		}, 3 * time.Second},
		{"black clock with movestogo", board.Black, &engine.TimeInfo{
			White:     engine.PlayerTimeInfo{TimeLeft: 60 * time.Second},
			Black:     engine.PlayerTimeInfo{TimeLeft: 30 * time.Second},
			MovesToGo: 10,
		}, 3 * time.Second},
		{"last move", board.White, &engine.TimeInfo{
			White:     engine.PlayerTimeInfo{TimeLeft: time.Second, Increment: 4 * time.Second},
			MovesToGo: 1,
		}, 500 * time.Millisecond},
		{"empty clock", board.Black, &engine.TimeInfo{}, 200 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.budget(tc.us, tc.ti); got != tc.want {
				t.Errorf("budget() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestToPrincipalVariation(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  engine.PrincipalVariation
	}{
		{"material", 120, engine.PrincipalVariation{Score: 120}},
		{"mating in three plies", mateScore - 3, engine.PrincipalVariation{Score: 3, Mate: true}},
		{"mated in two plies", -mateScore + 2, engine.PrincipalVariation{Score: -2, Mate: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := toPrincipalVariation(tc.score, nil)
			if got.Score != tc.want.Score || got.Mate != tc.want.Mate {
				t.Errorf("toPrincipalVariation(%d) = %+v, want %+v", tc.score, got, tc.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		fen  string
		want int
	}{
		{fen.StartingFEN, 0},
		{"4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1", -400},
		{"4k3/8/8/3q4/8/8/8/3RK3 b - - 0 1", 400},
		{"4k3/pppp4/8/8/8/8/8/2NBK3 w - - 0 1", 250},
	}

	for _, tc := range tests {
		if got := evaluate(mustParse(t, tc.fen)); got != tc.want {
			t.Errorf("evaluate(%q) = %d, want %d", tc.fen, got, tc.want)
		}
	}
}
