// Package engine defines the contract between the protocol layer and a
// search backend.
package engine

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/stijndebels/ChessProjectCPL/internal/board"
)

// Engine is a search backend driven by the protocol loop.
type Engine interface {
	Name() string
	Version() string
	Author() string

	// NewGame resets any state carried between searches.
	NewGame()

	// PrincipalVariation returns the best line found for pos. A nil
	// TimeInfo means no clock was given. Implementations should return
	// their best result so far once ctx is done.
	PrincipalVariation(ctx context.Context, pos *board.Position, ti *TimeInfo) (PrincipalVariation, error)
}

// PlayerTimeInfo holds one side's clock.
type PlayerTimeInfo struct {
	TimeLeft  time.Duration
	Increment time.Duration
}

// TimeInfo carries the clocks of a "go" command.
type TimeInfo struct {
	White     PlayerTimeInfo
	Black     PlayerTimeInfo
	MovesToGo int           // 0 when not given
	MoveTime  time.Duration // fixed budget, 0 when not given
}

// Player returns the clock of color c.
func (ti *TimeInfo) Player(c board.Color) PlayerTimeInfo {
	if c == board.White {
		return ti.White
	}
	return ti.Black
}

// PrincipalVariation is a best line with its score. Score is in centipawns
// from the mover's perspective, or in plies to mate when Mate is set.
type PrincipalVariation struct {
	Moves []board.Move
	Score int
	Mate  bool
}

// Len returns the number of moves in the line.
func (pv PrincipalVariation) Len() int {
	return len(pv.Moves)
}

// MovesToMate converts a mate score in plies to full moves, negative when
// the mover is being mated.
func (pv PrincipalVariation) MovesToMate() int {
	if pv.Score > 0 {
		return (pv.Score + 1) / 2
	}
	// Go division truncates toward zero; this floors.
	return -((-pv.Score + 1) / 2)
}

// String renders the moves followed by the score, e.g. "e2e4 e7e5 (+0.35)".
func (pv PrincipalVariation) String() string {
	parts := make([]string, 0, len(pv.Moves)+1)
	for _, m := range pv.Moves {
		parts = append(parts, m.String())
	}
	parts = append(parts, "("+pv.ScoreString()+")")
	return strings.Join(parts, " ")
}

// ScoreString renders the score as pawns ("+0.35") or moves to mate ("M2").
func (pv PrincipalVariation) ScoreString() string {
	if pv.Mate {
		if n := pv.MovesToMate(); n < 0 {
			return "-M" + strconv.Itoa(-n)
		}
		return "M" + strconv.Itoa(pv.MovesToMate())
	}
	cp := pv.Score
	sign := ""
	if cp > 0 {
		sign = "+"
	} else if cp < 0 {
		sign = "-"
		cp = -cp
	}
	return sign + strconv.Itoa(cp/100) + "." + pad2(cp%100)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
