package engine

// GameModeID identifies a run ruleset.
type GameModeID string

const (
	ModeClassic   GameModeID = "classic"
	ModeEndless   GameModeID = "endless"
	ModeDaily     GameModeID = "daily"
	ModeChallenge GameModeID = "challenge"
)

var AllGameModes = []GameModeID{ModeClassic, ModeEndless, ModeDaily, ModeChallenge}

func (m GameModeID) Validate() bool { return contains(AllGameModes, m) }

// GameMode describes the rules a mode factory produces. Values are built
// fresh per lookup so decorators can transform them without aliasing.
type GameMode struct {
	ID              GameModeID
	Name            string
	HasTrainers     bool
	HasShop         bool
	IsEndless       bool
	FixedSeed       bool // daily runs share one seed per calendar day
	FinalWave       int  // 0 for endless
	TrainerInterval int  // every Nth wave is a trainer battle when HasTrainers
}

// Factory functions per mode. Lookups go through modeDecorator so tests can
// compose a pure transformation over factory output; see DecorateModes.
var modeFactories = map[GameModeID]func() GameMode{
	ModeClassic: func() GameMode {
		return GameMode{ID: ModeClassic, Name: "Classic", HasTrainers: true, HasShop: true, FinalWave: 200, TrainerInterval: 10}
	},
	ModeEndless: func() GameMode {
		return GameMode{ID: ModeEndless, Name: "Endless", HasTrainers: true, HasShop: true, IsEndless: true, TrainerInterval: 10}
	},
	ModeDaily: func() GameMode {
		return GameMode{ID: ModeDaily, Name: "Daily Run", HasTrainers: true, FixedSeed: true, FinalWave: 50, TrainerInterval: 10}
	},
	ModeChallenge: func() GameMode {
		return GameMode{ID: ModeChallenge, Name: "Challenge", HasTrainers: true, FinalWave: 200, TrainerInterval: 5}
	},
}

var modeDecorator func(GameMode) GameMode

// ModeFor builds the mode for id, applying the installed decorator if any.
// Unknown IDs resolve to Classic rules under the unknown ID.
func ModeFor(id GameModeID) GameMode {
	factory, ok := modeFactories[id]
	var m GameMode
	if ok {
		m = factory()
	} else {
		m = modeFactories[ModeClassic]()
		m.ID = id
	}
	if modeDecorator != nil {
		m = modeDecorator(m)
	}
	return m
}

// DecorateModes installs fn as a transformation applied to every factory
// result. Last write wins; passing nil clears the decorator.
func DecorateModes(fn func(GameMode) GameMode) { modeDecorator = fn }

// ResetModeDecorator restores undecorated factory output. Call from test
// teardown.
func ResetModeDecorator() { modeDecorator = nil }
