package csvfile

import (
	"math"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/match-analytics/internal/domain/match"
)

const (
	colEventName      = "Event Name"
	colEventTeam      = "Player1 Team"
	colEventPlayer    = "Player1 Name"
	colX              = "X"
	colY              = "Y"
	colTime           = "Time"
	colHalf           = "Half"
	colPossessionLoss = "Possession Loss"

	colPlayerName = "Player Name"
	colTeam       = "Team"
	colResult     = "Result"
	colGoals      = "Goals"
	colXG         = "xGoals Shot"
	colMinutes    = "Minutes Played"
	colYellow     = "Yellow Card"
	colRed        = "Red Card"
)

var (
	eventColumns = []string{
		colEventName, colEventTeam, colEventPlayer, colX, colY, colTime, colHalf, colPossessionLoss,
	}
	playerColumns = []string{
		colPlayerName, colTeam, colResult, colGoals, colXG, colMinutes, colYellow, colRed,
	}
)

// counterColumns are optional player columns; an absent column reads as zero.
var counterColumns = map[string]func(*match.PlayerRecord) *int{
	"Pass":                  func(p *match.PlayerRecord) *int { return &p.Counters.Pass },
	"Shot":                  func(p *match.PlayerRecord) *int { return &p.Counters.Shot },
	"Dribble":               func(p *match.PlayerRecord) *int { return &p.Counters.Dribble },
	"Block":                 func(p *match.PlayerRecord) *int { return &p.Counters.Block },
	"Foul":                  func(p *match.PlayerRecord) *int { return &p.Counters.Foul },
	"Tackle":                func(p *match.PlayerRecord) *int { return &p.Counters.Tackle },
	"Clearance":             func(p *match.PlayerRecord) *int { return &p.Counters.Clearance },
	"Cross":                 func(p *match.PlayerRecord) *int { return &p.Counters.Cross },
	"Touch":                 func(p *match.PlayerRecord) *int { return &p.Counters.Touch },
	"Interception":          func(p *match.PlayerRecord) *int { return &p.Counters.Interception },
	"Regain":                func(p *match.PlayerRecord) *int { return &p.Counters.Regain },
	"Goalkeeper Save":       func(p *match.PlayerRecord) *int { return &p.Goalkeeping.Save },
	"Goalkeeper Catch":      func(p *match.PlayerRecord) *int { return &p.Goalkeeping.Catch },
	"Goalkeeper Punch":      func(p *match.PlayerRecord) *int { return &p.Goalkeeping.Punch },
	"Goalkeeper Drop Catch": func(p *match.PlayerRecord) *int { return &p.Goalkeeping.DropCatch },
	"Goalkeeper Pick Up":    func(p *match.PlayerRecord) *int { return &p.Goalkeeping.PickUp },
	"Goalkeeper Kick":       func(p *match.PlayerRecord) *int { return &p.Goalkeeping.Kick },
	"Goalkeeper Throw":      func(p *match.PlayerRecord) *int { return &p.Goalkeeping.Throw },
	"Goal Kick":             func(p *match.PlayerRecord) *int { return &p.Goalkeeping.GoalKick },
}

// header maps column names to their index in a row.
type header map[string]int

func newHeader(cells []string) header {
	h := make(header, len(cells))
	for i, cell := range cells {
		name := strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff"))
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	return h
}

func (h header) require(file string, names []string) error {
	missing := make([]string, 0)
	for _, name := range names {
		if _, ok := h[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return parseErrorf("%s: missing columns %q", file, missing)
	}
	return nil
}

// row reads typed cells from one record. The first failure sticks and later
// reads return zero values.
type row struct {
	file   string
	line   int
	cells  []string
	header header
	err    error
}

func (r *row) raw(col string) (string, bool) {
	idx, ok := r.header[col]
	if !ok || idx >= len(r.cells) {
		return "", false
	}
	return strings.TrimSpace(r.cells[idx]), true
}

func (r *row) str(col string) string {
	v, _ := r.raw(col)
	return v
}

// float reads a number; an empty cell is 0 unless required.
func (r *row) float(col string, required bool) float64 {
	if r.err != nil {
		return 0
	}
	v, _ := r.raw(col)
	if v == "" {
		if required {
			r.fail(col, v, "value required")
		}
		return 0
	}
	out, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(out) || math.IsInf(out, 0) {
		r.fail(col, v, "not a number")
		return 0
	}
	return out
}

// integer accepts integral floats such as "2.0".
func (r *row) integer(col string, required bool) int {
	if r.err != nil {
		return 0
	}
	v, _ := r.raw(col)
	if v == "" {
		if required {
			r.fail(col, v, "value required")
		}
		return 0
	}
	if out, err := strconv.Atoi(v); err == nil {
		return out
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		r.fail(col, v, "not an integer")
		return 0
	}
	return int(f)
}

// boolean accepts true/false spellings and 0/1; an empty cell is false.
func (r *row) boolean(col string) bool {
	if r.err != nil {
		return false
	}
	v, _ := r.raw(col)
	if v == "" {
		return false
	}
	if out, err := strconv.ParseBool(v); err == nil {
		return out
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && (f == 0 || f == 1) {
		return f == 1
	}
	r.fail(col, v, "not a boolean")
	return false
}

func (r *row) fail(col, value, reason string) {
	r.err = parseErrorf("%s: line %d column %q value %q: %s", r.file, r.line, col, value, reason)
}

func parseErrorf(format string, args ...any) error {
	return crerr.Mark(crerr.Newf(format, args...), match.ErrParse)
}

func ioErrorf(err error, format string, args ...any) error {
	return crerr.Mark(crerr.Wrapf(err, format, args...), match.ErrIO)
}
