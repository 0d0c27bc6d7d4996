package csvfile

import "github.com/riskibarqy/match-analytics/internal/domain/match"

func decodeEvents(path string) ([]match.Event, error) {
	out := make([]match.Event, 0, 2048)
	err := readTable(path, eventColumns, func(h header, line int, cells []string) error {
		r := &row{file: path, line: line, cells: cells, header: h}
		ev := match.Event{
			Name:           r.str(colEventName),
			Team:           r.str(colEventTeam),
			Player:         r.str(colEventPlayer),
			X:              r.float(colX, false),
			Y:              r.float(colY, false),
			Time:           r.float(colTime, true),
			Half:           r.integer(colHalf, true),
			PossessionLoss: r.boolean(colPossessionLoss),
		}
		if r.err != nil {
			return r.err
		}
		if ev.Half != match.HalfFirst && ev.Half != match.HalfSecond {
			return parseErrorf("%s: line %d column %q: half must be 0 or 1, got %d", path, line, colHalf, ev.Half)
		}
		out = append(out, ev)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
