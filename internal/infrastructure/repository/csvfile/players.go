package csvfile

import "github.com/riskibarqy/match-analytics/internal/domain/match"

func decodePlayers(path string) ([]match.PlayerRecord, error) {
	out := make([]match.PlayerRecord, 0, 32)
	err := readTable(path, playerColumns, func(h header, line int, cells []string) error {
		r := &row{file: path, line: line, cells: cells, header: h}
		p := match.PlayerRecord{
			Name:        r.str(colPlayerName),
			Team:        r.str(colTeam),
			Result:      match.Result(r.str(colResult)),
			Goals:       r.integer(colGoals, false),
			XG:          r.float(colXG, false),
			Minutes:     r.integer(colMinutes, false),
			YellowCards: r.integer(colYellow, false),
			RedCards:    r.integer(colRed, false),
		}
		for col, field := range counterColumns {
			if _, ok := h[col]; ok {
				*field(&p) = r.integer(col, false)
			}
		}
		if r.err != nil {
			return r.err
		}
		if !p.Result.Valid() {
			return parseErrorf("%s: line %d column %q: result must be W, D or L, got %q", path, line, colResult, p.Result)
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
