// Package gametest provides test scaffolding for forcing deterministic game
// states. The Overrides fixture binds to one session and exposes one chaining
// method per tunable slot of battle generation.
package gametest

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/mossvale/wavebound/internal/dex"
	"github.com/mossvale/wavebound/internal/engine"
)

// Overrides replaces live configuration of a session for the duration of a
// test. Every method is last-write-wins, validates nothing, and returns the
// fixture for chaining. Out-of-range IDs pass through to the catalogs, which
// resolve them permissively.
type Overrides struct {
	session *engine.Session
	logger  *log.Logger
}

// New binds a fixture to session. Log lines go to stderr; see NewWithOutput.
func New(session *engine.Session) *Overrides {
	return NewWithOutput(session, os.Stderr)
}

// NewWithOutput binds a fixture logging to w.
func NewWithOutput(session *engine.Session, w io.Writer) *Overrides {
	return &Overrides{
		session: session,
		logger:  log.NewWithOptions(w, log.Options{Level: log.InfoLevel}),
	}
}

func (o *Overrides) note(format string, args ...any) {
	o.logger.Info("Overrides: " + fmt.Sprintf(format, args...))
}

// StartingBiome re-initializes the session's arena to biome immediately.
// Anything holding the previous arena pointer must re-read Session.Arena.
func (o *Overrides) StartingBiome(biome engine.Biome) *Overrides {
	o.session.NewArena(biome)
	o.note("starting biome set to %s", biome)
	return o
}

// StartingWave forces the wave the run begins on. Observed when the session
// generates its first battle.
func (o *Overrides) StartingWave(wave int) *Overrides {
	o.session.Config.Set(engine.SlotStartingWave, wave)
	o.note("starting wave set to %d", wave)
	return o
}

// StartingLevel forces the starter creature's level.
func (o *Overrides) StartingLevel(level int) *Overrides {
	o.session.Config.Set(engine.SlotStartingLevel, level)
	o.note("starting level set to %d", level)
	return o
}

// StarterSpecies forces the player's starter species.
func (o *Overrides) StarterSpecies(id dex.SpeciesID) *Overrides {
	o.session.Config.Set(engine.SlotStarterSpecies, id)
	o.note("starter species set to %s (%d)", dex.SpeciesByID(id).Name, int(id))
	return o
}

// Ability forces the starter's ability.
func (o *Overrides) Ability(id dex.AbilityID) *Overrides {
	o.session.Config.Set(engine.SlotStarterAbility, id)
	o.note("starter ability set to %s (%d)", dex.AbilityByID(id).Name, int(id))
	return o
}

// Weather forces arena weather for generated battles.
func (o *Overrides) Weather(w engine.WeatherType) *Overrides {
	o.session.Config.Set(engine.SlotWeather, w)
	o.note("weather set to %s", w)
	return o
}

// BattleType forces the type of generated battles.
func (o *Overrides) BattleType(kind engine.BattleType) *Overrides {
	o.session.Config.Set(engine.SlotBattleType, kind)
	o.note("battle type set to %s", kind)
	return o
}

// EnemySpecies forces the species of generated enemies.
func (o *Overrides) EnemySpecies(id dex.SpeciesID) *Overrides {
	o.session.Config.Set(engine.SlotEnemySpecies, id)
	o.note("enemy species set to %s (%d)", dex.SpeciesByID(id).Name, int(id))
	return o
}

// EnemyAbility forces the ability of generated enemies.
func (o *Overrides) EnemyAbility(id dex.AbilityID) *Overrides {
	o.session.Config.Set(engine.SlotEnemyAbility, id)
	o.note("enemy ability set to %s (%d)", dex.AbilityByID(id).Name, int(id))
	return o
}

// EnemyMoveset forces the exact ordered moveset of generated enemies.
// Duplicates are allowed and preserved.
func (o *Overrides) EnemyMoveset(moves []dex.MoveID) *Overrides {
	o.session.Config.Set(engine.SlotEnemyMoveset, append([]dex.MoveID{}, moves...))
	o.note("enemy moveset set to %v", moves)
	return o
}

// DisableTrainerWaves decorates the mode factory so every produced mode has
// HasTrainers forced to !disable; all other fields are preserved.
func (o *Overrides) DisableTrainerWaves(disable bool) *Overrides {
	engine.DecorateModes(func(m engine.GameMode) engine.GameMode {
		m.HasTrainers = !disable
		return m
	})
	o.note("trainer waves disabled: %t", disable)
	return o
}

// Seed replaces the session's seed-reset operation with one that ignores its
// argument, stores seed as the wave seed, reseeds the battle RNG, and zeroes
// its call counter. The reset is invoked once so the seed takes effect
// immediately; later resets keep re-applying the same seed.
func (o *Overrides) Seed(seed string) *Overrides {
	sess := o.session
	sess.ResetSeed = func(string) {
		sess.WaveSeed = seed
		sess.RNG.Reseed(seed)
	}
	sess.ResetSeed(seed)
	o.note("seed set to %q", seed)
	return o
}

// Restore reverts everything the fixture can have touched: slot providers,
// the mode decorator, and the seed-reset operation. Register it with
// t.Cleanup so overrides never leak across tests.
func (o *Overrides) Restore() {
	o.session.Config.RestoreAll()
	engine.ResetModeDecorator()
	o.session.RestoreResetSeed()
	o.note("restored")
}
