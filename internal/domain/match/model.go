package match

// Event is one row of a match event log.
type Event struct {
	Name           string
	Half           int
	Time           float64
	Player         string
	Team           string
	X              float64
	Y              float64
	PossessionLoss bool
}

const (
	HalfFirst  = 0
	HalfSecond = 1
)

// Event names with special meaning across aggregations.
const (
	EventGoal = "Goal"
)

// Result is a team's outcome in one match from a player's row.
type Result string

const (
	ResultWin  Result = "W"
	ResultDraw Result = "D"
	ResultLoss Result = "L"
)

func (r Result) Valid() bool {
	switch r {
	case ResultWin, ResultDraw, ResultLoss:
		return true
	default:
		return false
	}
}

// PlayerRecord is one row of a match's player log.
type PlayerRecord struct {
	Name        string
	Team        string
	Result      Result
	Goals       int
	XG          float64
	Minutes     int
	YellowCards int
	RedCards    int
	Counters    Counters
	Goalkeeping GoalkeeperActions
}

// Counters are the positional per-match action counts used for radar and season tables.
type Counters struct {
	Pass         int
	Shot         int
	Dribble      int
	Block        int
	Foul         int
	Tackle       int
	Clearance    int
	Cross        int
	Touch        int
	Interception int
	Regain       int
}

func (c Counters) Add(o Counters) Counters {
	return Counters{
		Pass:         c.Pass + o.Pass,
		Shot:         c.Shot + o.Shot,
		Dribble:      c.Dribble + o.Dribble,
		Block:        c.Block + o.Block,
		Foul:         c.Foul + o.Foul,
		Tackle:       c.Tackle + o.Tackle,
		Clearance:    c.Clearance + o.Clearance,
		Cross:        c.Cross + o.Cross,
		Touch:        c.Touch + o.Touch,
		Interception: c.Interception + o.Interception,
		Regain:       c.Regain + o.Regain,
	}
}

// GoalkeeperActions holds the goalkeeper-specific counters of a player row.
type GoalkeeperActions struct {
	Save      int
	Catch     int
	Punch     int
	DropCatch int
	PickUp    int
	Kick      int
	Throw     int
	GoalKick  int
}

func (g GoalkeeperActions) Add(o GoalkeeperActions) GoalkeeperActions {
	return GoalkeeperActions{
		Save:      g.Save + o.Save,
		Catch:     g.Catch + o.Catch,
		Punch:     g.Punch + o.Punch,
		DropCatch: g.DropCatch + o.DropCatch,
		PickUp:    g.PickUp + o.PickUp,
		Kick:      g.Kick + o.Kick,
		Throw:     g.Throw + o.Throw,
		GoalKick:  g.GoalKick + o.GoalKick,
	}
}

// Any reports whether the row carries at least one goalkeeper action.
func (g GoalkeeperActions) Any() bool {
	return g.Save+g.Catch+g.Punch+g.DropCatch+g.PickUp+g.Kick+g.Throw+g.GoalKick > 0
}
