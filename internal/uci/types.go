package uci

import (
	"errors"
	"fmt"
	"time"

	"github.com/stijndebels/ChessProjectCPL/internal/engine"
)

var (
	ErrUnsupportedInfinite = errors.New("go infinite not supported")
	ErrUnknownPositionType = errors.New("illegal position type")
	ErrIllegalFEN          = errors.New("illegal FEN")
	ErrIllegalMove         = errors.New("illegal move")
	ErrNoPV                = errors.New("engine returned no PV")
)

// ProtocolError is a fatal error raised by a command.
type ProtocolError struct {
	Line string // command line that failed
	Err  error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("uci error: %v (command %q)", e.Err, e.Line)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// GoParams specifies parameters for the "go" command.
type GoParams struct {
	MoveTime  time.Duration
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
	MovesToGo int

	hasWhiteTime bool
	hasBlackTime bool
}

// TimeInfo converts the parameters for the engine. Clocks are only usable
// when both wtime and btime were given; nil means no time information.
func (p GoParams) TimeInfo() *engine.TimeInfo {
	clocks := p.hasWhiteTime && p.hasBlackTime
	if !clocks && p.MoveTime == 0 {
		return nil
	}

	ti := &engine.TimeInfo{MoveTime: p.MoveTime}
	if clocks {
		ti.White = engine.PlayerTimeInfo{TimeLeft: p.WhiteTime, Increment: p.WhiteInc}
		ti.Black = engine.PlayerTimeInfo{TimeLeft: p.BlackTime, Increment: p.BlackInc}
		ti.MovesToGo = p.MovesToGo
	}
	return ti
}
