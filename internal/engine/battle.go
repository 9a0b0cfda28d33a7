package engine

import (
	"fmt"

	"github.com/mossvale/wavebound/internal/dex"
)

// Battle is one wave's encounter: the enemy and the conditions it is fought
// under. Built lazily by Session.NextBattle from the live config slots.
type Battle struct {
	Wave    int
	Type    BattleType
	Biome   Biome
	Weather WeatherType
	Enemy   Creature
	// TrainerName is set for trainer and boss battles.
	TrainerName string
}

// bossInterval: every Nth wave is a boss regardless of mode.
const bossInterval = 50

// generateBattle builds the battle for the session's current wave. Config
// slots are read here, so overrides installed any time before this call are
// honored; reads after this call see nothing until the next wave.
func generateBattle(s *Session) *Battle {
	cfg := s.Config
	mode := ModeFor(s.Mode)
	wave := s.Wave

	bt := cfg.BattleType()
	if bt == "" {
		bt = derivedBattleType(mode, wave)
	}
	boss := bt == BattleBoss

	weather := cfg.Weather()
	if weather == "" {
		weather = s.Arena.Weather
	}

	species := cfg.EnemySpecies()
	if species == 0 {
		species = PickSpawn(s.RNG.stream.Child(fmt.Sprintf("spawn:%d", wave)), s.Arena.Biome, wave, boss)
	}

	enemy := NewCreature(species, enemyLevel(wave, boss))
	if ab := cfg.EnemyAbility(); ab != 0 {
		enemy.Ability = ab
	}
	if moves := cfg.EnemyMoveset(); moves != nil {
		enemy.Moves = append([]dex.MoveID{}, moves...)
	}

	b := &Battle{
		Wave:    wave,
		Type:    bt,
		Biome:   s.Arena.Biome,
		Weather: weather,
		Enemy:   enemy,
	}
	if bt == BattleTrainer || bt == BattleBoss {
		b.TrainerName = trainerNameFor(s, wave)
	}
	return b
}

func derivedBattleType(mode GameMode, wave int) BattleType {
	if wave > 0 && wave%bossInterval == 0 {
		return BattleBoss
	}
	if mode.HasTrainers && mode.TrainerInterval > 0 && wave%mode.TrainerInterval == 0 {
		return BattleTrainer
	}
	return BattleWild
}

// enemyLevel scales with wave; bosses get a flat bump.
func enemyLevel(wave int, boss bool) int {
	lvl := 3 + wave/2
	if boss {
		lvl += 5
	}
	if lvl < 1 {
		lvl = 1
	}
	return lvl
}

func trainerNameFor(s *Session, wave int) string {
	names := []string{"Ranger Iva", "Scholar Bren", "Warden Thessaly", "Drifter Koa", "Keeper Maren", "Sentinel Odo"}
	return names[s.RNG.stream.Child(fmt.Sprintf("trainer:%d", wave)).Intn(len(names))]
}

// TurnResult summarizes one resolved battle turn.
type TurnResult struct {
	PlayerMove  dex.Move
	EnemyMove   dex.Move
	DamageDealt int
	DamageTaken int
	EnemyDown   bool
	PlayerDown  bool
	Log         []string
}

// ResolveTurn plays one turn: both sides pick a move (player by index, enemy
// at random), ordered by priority then speed. Status conditions tick at end
// of turn.
func (s *Session) ResolveTurn(moveIdx int) (TurnResult, error) {
	res := TurnResult{}
	if s.Current == nil {
		return res, fmt.Errorf("no active battle")
	}
	lead := s.Lead()
	if lead == nil {
		return res, fmt.Errorf("no conscious party member")
	}
	enemy := &s.Current.Enemy
	if moveIdx < 0 || moveIdx >= len(lead.Moves) {
		return res, fmt.Errorf("move index %d out of range", moveIdx)
	}
	res.PlayerMove = dex.MoveByID(lead.Moves[moveIdx])
	// An empty moveset is a legal state; the enemy simply cannot act.
	enemyActs := len(enemy.Moves) > 0
	if enemyActs {
		res.EnemyMove = dex.MoveByID(enemy.Moves[s.RNG.Intn(len(enemy.Moves))])
	}

	playerFirst := movesFirst(res.PlayerMove, res.EnemyMove, lead.Speed, enemy.Speed, s.RNG)
	order := []bool{playerFirst, !playerFirst}
	for _, playerActs := range order {
		if playerActs {
			if lead.Fainted() {
				continue
			}
			dmg := damage(lead, enemy, res.PlayerMove, s.Current.Weather, s.RNG)
			enemy.ApplyDamage(dmg)
			res.DamageDealt += dmg
			res.Log = append(res.Log, fmt.Sprintf("%s used %s (%d damage)", lead.Name, res.PlayerMove.Name, dmg))
		} else {
			if enemy.Fainted() || !enemyActs {
				continue
			}
			dmg := damage(enemy, lead, res.EnemyMove, s.Current.Weather, s.RNG)
			lead.ApplyDamage(dmg)
			res.DamageTaken += dmg
			res.Log = append(res.Log, fmt.Sprintf("%s used %s (%d damage)", enemy.Name, res.EnemyMove.Name, dmg))
		}
	}
	tickStatus(lead, &res)
	tickStatus(enemy, &res)
	res.EnemyDown = enemy.Fainted()
	res.PlayerDown = lead.Fainted()
	return res, nil
}

func movesFirst(pm, em dex.Move, pSpeed, eSpeed int, rng *BattleRNG) bool {
	if pm.Priority != em.Priority {
		return pm.Priority > em.Priority
	}
	if pSpeed != eSpeed {
		return pSpeed > eSpeed
	}
	return rng.Intn(2) == 0
}

// damage applies a simplified level/power/stat formula with a same-type bonus
// and weather modifier, then a small random spread.
func damage(attacker, defender *Creature, mv dex.Move, weather WeatherType, rng *BattleRNG) int {
	if mv.Category == dex.CategoryStatus || mv.Power <= 0 {
		return 0
	}
	if mv.Accuracy > 0 && rng.Intn(100) >= mv.Accuracy {
		return 0
	}
	base := ((2*attacker.Level/5+2)*mv.Power*attacker.Atk/maxInt(defender.Def, 1))/50 + 2
	if sameType(attacker.Species, mv.Type) {
		base = base * 3 / 2
	}
	base = applyWeatherMod(base, mv.Type, weather)
	// 85-100% spread
	spread := 85 + rng.Intn(16)
	dmg := base * spread / 100
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

func sameType(id dex.SpeciesID, t dex.ElementType) bool {
	for _, st := range dex.SpeciesByID(id).Types {
		if st == t {
			return true
		}
	}
	return false
}

func applyWeatherMod(base int, t dex.ElementType, weather WeatherType) int {
	switch {
	case weather == WeatherRain && t == dex.TypeTide:
		return base * 3 / 2
	case weather == WeatherRain && t == dex.TypeEmber:
		return base / 2
	case weather == WeatherSunny && t == dex.TypeEmber:
		return base * 3 / 2
	case weather == WeatherSunny && t == dex.TypeTide:
		return base / 2
	}
	return base
}

func tickStatus(c *Creature, res *TurnResult) {
	if c.Fainted() {
		return
	}
	switch c.Status {
	case StatusBurn:
		tick := maxInt(c.MaxHP/16, 1)
		c.ApplyDamage(tick)
		res.Log = append(res.Log, fmt.Sprintf("%s is hurt by its burn (%d)", c.Name, tick))
	case StatusPoison:
		tick := maxInt(c.MaxHP/8, 1)
		c.ApplyDamage(tick)
		res.Log = append(res.Log, fmt.Sprintf("%s is hurt by poison (%d)", c.Name, tick))
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
