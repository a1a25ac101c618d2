package uci

import (
	"strconv"
	"strings"
	"time"

	"github.com/stijndebels/ChessProjectCPL/internal/engine"
)

// ParseGoParams parses the arguments of a "go" command. Unknown tokens and
// values that are not non-negative integers are ignored.
func ParseGoParams(parts []string) (GoParams, error) {
	var p GoParams

	for i := 0; i < len(parts); i++ {
		switch parts[i] {
		case "infinite":
			return GoParams{}, ErrUnsupportedInfinite
		case "wtime":
			p.WhiteTime, p.hasWhiteTime = durationArg(parts, i+1)
			i++
		case "btime":
			p.BlackTime, p.hasBlackTime = durationArg(parts, i+1)
			i++
		case "winc":
			p.WhiteInc, _ = durationArg(parts, i+1)
			i++
		case "binc":
			p.BlackInc, _ = durationArg(parts, i+1)
			i++
		case "movetime":
			p.MoveTime, _ = durationArg(parts, i+1)
			i++
		case "movestogo":
			if i+1 < len(parts) {
				if n, err := strconv.Atoi(parts[i+1]); err == nil && n > 0 {
					p.MovesToGo = n
				}
				i++
			}
		}
	}

	return p, nil
}

// durationArg reads parts[i] as a millisecond count.
func durationArg(parts []string, i int) (time.Duration, bool) {
	if i >= len(parts) {
		return 0, false
	}
	ms, err := strconv.ParseUint(parts[i], 10, 32)
	if err != nil {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

// FormatInfo builds the "info" line reporting a principal variation.
func FormatInfo(pv engine.PrincipalVariation) string {
	parts := []string{"info", "score"}

	if pv.Mate {
		parts = append(parts, "mate", strconv.Itoa(pv.MovesToMate()))
	} else {
		parts = append(parts, "cp", strconv.Itoa(pv.Score))
	}

	parts = append(parts, "pv")
	for _, m := range pv.Moves {
		parts = append(parts, m.String())
	}

	return strings.Join(parts, " ")
}
