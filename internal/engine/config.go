package engine

import (
	"github.com/mossvale/wavebound/internal/dex"
)

// Slot names one tunable aspect of battle generation. Slots are read lazily:
// a replaced provider is observed at the next read, never retroactively.
type Slot string

const (
	SlotStartingWave   Slot = "starting_wave"
	SlotStartingLevel  Slot = "starting_level"
	SlotStarterSpecies Slot = "starter_species"
	SlotStarterAbility Slot = "starter_ability"
	SlotWeather        Slot = "weather"
	SlotBattleType     Slot = "battle_type"
	SlotEnemySpecies   Slot = "enemy_species"
	SlotEnemyAbility   Slot = "enemy_ability"
	SlotEnemyMoveset   Slot = "enemy_moveset"
)

// Provider supplies the current value for a slot.
type Provider func() any

// GameConfig maps slots to provider functions with typed accessors falling
// back to built-in defaults. Replacing a provider is last-write-wins;
// Restore/RestoreAll put slots back on their defaults. No locking: a config
// belongs to exactly one session and one goroutine.
type GameConfig struct {
	providers map[Slot]Provider

	startingWave   int
	startingLevel  int
	starterSpecies dex.SpeciesID
}

// NewGameConfig returns a config with release defaults: wave 1, level 5,
// and the first starter in the catalog.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		providers:      make(map[Slot]Provider),
		startingWave:   1,
		startingLevel:  5,
		starterSpecies: dex.SpeciesCinderling,
	}
}

// Override installs a provider for slot, replacing any previous provider.
func (c *GameConfig) Override(slot Slot, p Provider) {
	if p == nil {
		c.Restore(slot)
		return
	}
	c.providers[slot] = p
}

// Set installs a constant provider for slot.
func (c *GameConfig) Set(slot Slot, v any) {
	c.Override(slot, func() any { return v })
}

// Restore removes the provider for slot so the default applies again.
func (c *GameConfig) Restore(slot Slot) { delete(c.providers, slot) }

// RestoreAll removes every provider. Intended for test teardown.
func (c *GameConfig) RestoreAll() { c.providers = make(map[Slot]Provider) }

// Overridden reports whether slot currently has a provider installed.
func (c *GameConfig) Overridden(slot Slot) bool {
	_, ok := c.providers[slot]
	return ok
}

// slotValue resolves slot through its provider when the provider yields the
// expected type; anything else falls back to def. Mis-typed providers are
// ignored rather than rejected, matching the permissive slot contract.
func slotValue[T any](c *GameConfig, slot Slot, def T) T {
	if p, ok := c.providers[slot]; ok && p != nil {
		if v, ok := p().(T); ok {
			return v
		}
	}
	return def
}

// StartingWave returns the wave index a new run begins on.
func (c *GameConfig) StartingWave() int { return slotValue(c, SlotStartingWave, c.startingWave) }

// StartingLevel returns the level of the starter creature.
func (c *GameConfig) StartingLevel() int { return slotValue(c, SlotStartingLevel, c.startingLevel) }

// StarterSpecies returns the player's starter species.
func (c *GameConfig) StarterSpecies() dex.SpeciesID {
	return slotValue(c, SlotStarterSpecies, c.starterSpecies)
}

// StarterAbility returns the starter's ability override; zero means the
// species default ability applies.
func (c *GameConfig) StarterAbility() dex.AbilityID {
	return slotValue(c, SlotStarterAbility, dex.AbilityID(0))
}

// Weather returns the forced arena weather; empty means biome-derived.
func (c *GameConfig) Weather() WeatherType { return slotValue(c, SlotWeather, WeatherType("")) }

// BattleType returns the forced battle type; empty means wave-derived.
func (c *GameConfig) BattleType() BattleType { return slotValue(c, SlotBattleType, BattleType("")) }

// EnemySpecies returns the forced enemy species; zero means spawn-table pick.
func (c *GameConfig) EnemySpecies() dex.SpeciesID {
	return slotValue(c, SlotEnemySpecies, dex.SpeciesID(0))
}

// EnemyAbility returns the forced enemy ability; zero means species default.
func (c *GameConfig) EnemyAbility() dex.AbilityID {
	return slotValue(c, SlotEnemyAbility, dex.AbilityID(0))
}

// EnemyMoveset returns the forced enemy moveset in order; nil means the
// moveset is generated from the species learnset. Duplicates are preserved.
func (c *GameConfig) EnemyMoveset() []dex.MoveID {
	return slotValue(c, SlotEnemyMoveset, []dex.MoveID(nil))
}
