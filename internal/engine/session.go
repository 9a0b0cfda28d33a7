package engine

import (
	"fmt"
)

// Session holds run-wide state: the live arena, wave position, party, the
// counted RNG, and the config registry battle generation reads from. A
// session belongs to one goroutine; tests must not share one.
type Session struct {
	Mode     GameModeID
	Arena    *Arena
	Wave     int
	Party    []Creature
	Config   *GameConfig
	RNG      *BattleRNG
	WaveSeed string

	// ResetSeed stores a new wave seed and reseeds the RNG. Held as a field
	// so tests can substitute the whole operation; RestoreResetSeed puts the
	// default back.
	ResetSeed func(seedText string)

	Current *Battle
}

// NewSession starts a run in mode from a textual seed. The starter party and
// starting wave are materialized lazily on the first NextBattle, so slot
// overrides installed between construction and the first battle are honored.
func NewSession(mode GameModeID, seed RunSeed) *Session {
	s := &Session{
		Mode:   mode,
		Config: NewGameConfig(),
		RNG:    NewBattleRNG(seed.Text),
	}
	s.WaveSeed = seed.Text
	s.ResetSeed = s.defaultResetSeed
	s.NewArena(BiomeMeadow)
	return s
}

func (s *Session) defaultResetSeed(seedText string) {
	s.WaveSeed = seedText
	s.RNG.Reseed(seedText)
}

// RestoreResetSeed reinstalls the default seed-reset operation.
func (s *Session) RestoreResetSeed() { s.ResetSeed = s.defaultResetSeed }

// NewArena re-initializes arena state for biome immediately. Any listener
// holding the previous arena keeps a stale pointer; callers coordinating
// arena observers must re-read Session.Arena after calling this.
func (s *Session) NewArena(biome Biome) *Arena {
	s.Arena = newArena(biome, s.RNG.stream.Child(fmt.Sprintf("arena:%s:%d", biome, s.Wave)))
	return s.Arena
}

// Travel moves the run to the next biome and rebuilds the arena.
func (s *Session) Travel(biome Biome) *Arena {
	return s.NewArena(biome)
}

// ensureParty builds the starter party from the current slot values. No-op
// once a party exists.
func (s *Session) ensureParty() {
	if len(s.Party) > 0 {
		return
	}
	starter := NewCreature(s.Config.StarterSpecies(), s.Config.StartingLevel())
	if ab := s.Config.StarterAbility(); ab != 0 {
		starter.Ability = ab
	}
	s.Party = []Creature{starter}
}

// NextBattle advances to the next wave and generates its battle from the
// current config slots. All lazy overrides are observed here: the first call
// reads the starting wave and builds the starter party.
func (s *Session) NextBattle() *Battle {
	if s.Current == nil {
		s.Wave = s.Config.StartingWave()
	} else {
		s.Wave++
	}
	s.ensureParty()
	if s.Arena == nil {
		s.NewArena(BiomeMeadow)
	}
	s.Arena.WavesHere++
	b := generateBattle(s)
	s.Current = b
	return b
}

// RestParty heals every party member a quarter of its max HP during the break
// between waves. Modes without a shop offer no break; reports whether the
// party rested.
func (s *Session) RestParty() bool {
	if !ModeFor(s.Mode).HasShop {
		return false
	}
	for i := range s.Party {
		c := &s.Party[i]
		if c.Fainted() {
			continue
		}
		c.Heal(c.MaxHP / 4)
	}
	return true
}

// Lead returns the first non-fainted party member, or nil when the run is over.
func (s *Session) Lead() *Creature {
	s.ensureParty()
	for i := range s.Party {
		if !s.Party[i].Fainted() {
			return &s.Party[i]
		}
	}
	return nil
}

// Defeated reports whether every party member has fainted.
func (s *Session) Defeated() bool { return s.Lead() == nil }

// Finished reports whether a non-endless run has reached its final wave.
// Checked after a battle resolves, when Wave still holds the cleared wave.
func (s *Session) Finished() bool {
	mode := ModeFor(s.Mode)
	return !mode.IsEndless && mode.FinalWave > 0 && s.Wave >= mode.FinalWave
}
