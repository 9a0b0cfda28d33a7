package engine

import (
	"github.com/mossvale/wavebound/internal/dex"
)

// Creature is a live battle participant instanced from a dex template.
type Creature struct {
	Species dex.SpeciesID
	Name    string
	Level   int
	Ability dex.AbilityID
	Moves   []dex.MoveID
	MaxHP   int
	HP      int
	Atk     int
	Def     int
	Speed   int
	Status  StatusCondition // empty when healthy
}

// NewCreature instantiates species at level with its catalog ability and a
// derived moveset. Stats scale linearly with level off base stats.
func NewCreature(id dex.SpeciesID, level int) Creature {
	if level < 1 {
		level = 1
	}
	sp := dex.SpeciesByID(id)
	ability := sp.Ability
	c := Creature{
		Species: id,
		Name:    sp.Name,
		Level:   level,
		Ability: ability,
		Moves:   defaultMoveset(sp),
		MaxHP:   scaleHP(sp.BaseHP, level),
		Atk:     scaleStat(sp.BaseAtk, level),
		Def:     scaleStat(sp.BaseDef, level),
		Speed:   scaleStat(sp.BaseSpeed, level),
	}
	c.HP = c.MaxHP
	return c
}

func scaleHP(base, level int) int   { return (2*base*level)/100 + level + 10 }
func scaleStat(base, level int) int { return (2*base*level)/100 + 5 }

// defaultMoveset derives up to four moves from the species' types: one
// same-type attack per type, padded with neutral staples.
func defaultMoveset(sp dex.Species) []dex.MoveID {
	byType := map[dex.ElementType]dex.MoveID{
		dex.TypeEmber:   dex.MoveEmberJet,
		dex.TypeTide:    dex.MoveTideSurge,
		dex.TypeBramble: dex.MoveThornLash,
		dex.TypeStorm:   dex.MoveGaleCutter,
		dex.TypeFrost:   dex.MoveFrostNip,
		dex.TypeStone:   dex.MoveRockWall,
		dex.TypeShade:   dex.MoveShadowFlit,
	}
	moves := []dex.MoveID{dex.MoveTackle}
	for _, t := range sp.Types {
		if mv, ok := byType[t]; ok {
			moves = append(moves, mv)
		}
	}
	if len(moves) < 3 {
		moves = append(moves, dex.MoveGrowl)
	}
	if len(moves) > 4 {
		moves = moves[:4]
	}
	return moves
}

// Fainted reports whether the creature is out of the battle.
func (c *Creature) Fainted() bool { return c.HP <= 0 }

// ApplyDamage reduces HP, clamping at zero.
func (c *Creature) ApplyDamage(dmg int) {
	if dmg < 0 {
		dmg = 0
	}
	c.HP -= dmg
	if c.HP < 0 {
		c.HP = 0
	}
}

// Heal restores HP up to MaxHP.
func (c *Creature) Heal(amount int) {
	if amount < 0 {
		return
	}
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
}

// SetStatus applies a status condition unless one is already present.
// Returns whether the status took hold.
func (c *Creature) SetStatus(s StatusCondition) bool {
	if c.Status != "" {
		return false
	}
	c.Status = s
	return true
}

// CureStatus clears any status condition.
func (c *Creature) CureStatus() { c.Status = "" }
