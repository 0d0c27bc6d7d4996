package match

import crerr "github.com/cockroachdb/errors"

var (
	// ErrIO marks a missing or unreadable source directory or file.
	ErrIO = crerr.New("match source unavailable")
	// ErrParse marks a table with an absent required column or a value that does not coerce.
	ErrParse = crerr.New("match source malformed")
	// ErrTeamCount is returned when an event table does not carry exactly two teams.
	ErrTeamCount = crerr.Mark(crerr.New("event table must carry exactly two teams"), ErrParse)
)
