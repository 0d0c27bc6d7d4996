package match

import (
	"regexp"
	"strings"
	"time"
)

// Identity is the metadata encoded in a match ID: "<DD>.<MM>.<YY> <home> v <away>".
type Identity struct {
	ID        string
	Home      string
	Away      string
	Date      time.Time
	Scheduled bool
}

const teamSeparator = " v "

var dateToken = regexp.MustCompile(`^\d{2}\.\d{2}\.(\d{2}|\d{4})$`)

// ParseIdentity reads home, away and date from a match ID. ok is false when the
// ID has no " v " separator or an empty side. A date token that is absent or does
// not parse leaves Scheduled false.
func ParseIdentity(id string) (Identity, bool) {
	out := Identity{ID: id}

	rest := strings.TrimSpace(id)
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = strings.TrimSpace(rest[:idx])
	}
	rest = strings.TrimSuffix(rest, " -")

	if first, tail, found := strings.Cut(rest, " "); found && dateToken.MatchString(first) {
		rest = strings.TrimSpace(tail)
		if date, ok := parseDate(first); ok {
			out.Date = date
			out.Scheduled = true
		}
	}

	home, away, found := strings.Cut(rest, teamSeparator)
	if !found {
		return Identity{}, false
	}
	out.Home = strings.TrimSpace(home)
	out.Away = strings.TrimSpace(away)
	if out.Home == "" || out.Away == "" {
		return Identity{}, false
	}

	return out, true
}

// Side reports whether team played at home or away in this match.
func (i Identity) Side(team string) (home, away bool) {
	return i.Home == team, i.Away == team
}

func parseDate(token string) (time.Time, bool) {
	layout := "02.01.06"
	if len(token) == len("02.01.2006") {
		layout = "02.01.2006"
	}
	date, err := time.Parse(layout, token)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
