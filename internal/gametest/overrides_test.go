package gametest

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/mossvale/wavebound/internal/dex"
	"github.com/mossvale/wavebound/internal/engine"
)

func newFixture(t *testing.T) (*engine.Session, *Overrides, *bytes.Buffer) {
	t.Helper()
	seed, err := engine.NewRunSeed("fixture-seed")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	sess := engine.NewSession(engine.ModeClassic, seed)
	buf := &bytes.Buffer{}
	o := NewWithOutput(sess, buf)
	t.Cleanup(o.Restore)
	return sess, o, buf
}

func TestChainingReturnsSameFixture(t *testing.T) {
	_, o, _ := newFixture(t)
	got := o.Ability(dex.AbilityKeenEye).Weather(engine.WeatherRain).StartingWave(5)
	if got != o {
		t.Fatal("chaining returned a different fixture")
	}
}

func TestEachSlotOverrideIsReadBack(t *testing.T) {
	sess, o, _ := newFixture(t)
	o.StartingWave(17).
		StartingLevel(80).
		StarterSpecies(dex.SpeciesRimefang).
		Ability(dex.AbilityDrizzle).
		Weather(engine.WeatherSandstorm).
		BattleType(engine.BattleBoss).
		EnemySpecies(dex.SpeciesCragmaw).
		EnemyAbility(dex.AbilitySturdy)

	cfg := sess.Config
	if cfg.StartingWave() != 17 || cfg.StartingLevel() != 80 {
		t.Fatalf("wave/level: %d/%d", cfg.StartingWave(), cfg.StartingLevel())
	}
	if cfg.StarterSpecies() != dex.SpeciesRimefang || cfg.StarterAbility() != dex.AbilityDrizzle {
		t.Fatalf("starter: %d/%d", cfg.StarterSpecies(), cfg.StarterAbility())
	}
	if cfg.Weather() != engine.WeatherSandstorm || cfg.BattleType() != engine.BattleBoss {
		t.Fatalf("weather/type: %s/%s", cfg.Weather(), cfg.BattleType())
	}
	if cfg.EnemySpecies() != dex.SpeciesCragmaw || cfg.EnemyAbility() != dex.AbilitySturdy {
		t.Fatalf("enemy: %d/%d", cfg.EnemySpecies(), cfg.EnemyAbility())
	}
}

func TestLastWriteWins(t *testing.T) {
	sess, o, _ := newFixture(t)
	o.StartingWave(5)
	o.StartingWave(9)
	if got := sess.Config.StartingWave(); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
}

func TestStartingBiomeIsEager(t *testing.T) {
	sess, o, _ := newFixture(t)
	old := sess.Arena
	o.StartingBiome(engine.BiomeTundra)
	if sess.Arena == old || sess.Arena.Biome != engine.BiomeTundra {
		t.Fatalf("arena not reinitialized: %+v", sess.Arena)
	}
}

func TestEnemyMovesetOrderAndDuplicates(t *testing.T) {
	sess, o, _ := newFixture(t)
	moves := []dex.MoveID{dex.MoveGrowl, dex.MoveTackle, dex.MoveGrowl}
	o.EnemyMoveset(moves)
	if got := sess.Config.EnemyMoveset(); !reflect.DeepEqual(got, moves) {
		t.Fatalf("moveset read back %v, want %v", got, moves)
	}
	// fixture keeps its own copy
	moves[0] = dex.MoveSplash
	if got := sess.Config.EnemyMoveset(); got[0] != dex.MoveGrowl {
		t.Fatalf("moveset aliased caller slice: %v", got)
	}
}

func TestNilEnemyMovesetLeavesEnemyMoveless(t *testing.T) {
	sess, o, _ := newFixture(t)
	o.EnemyMoveset(nil)
	b := sess.NextBattle()
	if len(b.Enemy.Moves) != 0 {
		t.Fatalf("enemy still has moves: %v", b.Enemy.Moves)
	}
	res, err := sess.ResolveTurn(0)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.DamageTaken != 0 {
		t.Fatalf("moveless enemy dealt damage: %d", res.DamageTaken)
	}
}

func TestSeedTakesEffectImmediately(t *testing.T) {
	sess, o, _ := newFixture(t)
	sess.RNG.Intn(100)
	sess.RNG.Intn(100)
	o.Seed("abc")
	if sess.WaveSeed != "abc" {
		t.Fatalf("wave seed: %q", sess.WaveSeed)
	}
	if sess.RNG.Calls() != 0 {
		t.Fatalf("RNG counter not zeroed: %d", sess.RNG.Calls())
	}
	if sess.RNG.SeedText() != "abc" {
		t.Fatalf("RNG not reseeded: %q", sess.RNG.SeedText())
	}
}

func TestSeedPinsLaterResets(t *testing.T) {
	sess, o, _ := newFixture(t)
	o.Seed("pinned")
	sess.ResetSeed("something-else")
	if sess.WaveSeed != "pinned" || sess.RNG.SeedText() != "pinned" {
		t.Fatalf("reset op did not pin the override seed: %q/%q", sess.WaveSeed, sess.RNG.SeedText())
	}
}

func TestSeedReplacementIsDeterministic(t *testing.T) {
	sessA, oA, _ := newFixture(t)
	sessB, oB, _ := newFixture(t)
	oA.Seed("shared")
	oB.Seed("shared")
	for i := 0; i < 10; i++ {
		a, b := sessA.RNG.Intn(1 << 20), sessB.RNG.Intn(1<<20)
		if a != b {
			t.Fatalf("draw %d diverged: %d vs %d", i, a, b)
		}
	}
}

func TestDisableTrainerWavesDecoratesFactory(t *testing.T) {
	_, o, _ := newFixture(t)
	base := engine.ModeFor(engine.ModeClassic)
	o.DisableTrainerWaves(true)
	m := engine.ModeFor(engine.ModeClassic)
	if m.HasTrainers {
		t.Fatal("trainers still enabled")
	}
	base.HasTrainers = false
	if m != base {
		t.Fatalf("decorator altered unrelated fields: %+v vs %+v", m, base)
	}
	o.DisableTrainerWaves(false)
	if !engine.ModeFor(engine.ModeClassic).HasTrainers {
		t.Fatal("trainers not re-enabled")
	}
}

func TestDisableTrainerWavesAffectsBattleSchedule(t *testing.T) {
	sess, o, _ := newFixture(t)
	o.DisableTrainerWaves(true).StartingWave(10)
	b := sess.NextBattle()
	if b.Type != engine.BattleWild {
		t.Fatalf("wave 10 with trainers disabled produced %s", b.Type)
	}
}

func TestRestoreRevertsEverything(t *testing.T) {
	sess, o, _ := newFixture(t)
	o.StartingWave(30).Weather(engine.WeatherFog).DisableTrainerWaves(true).Seed("temp")
	o.Restore()
	if sess.Config.Overridden(engine.SlotStartingWave) || sess.Config.Overridden(engine.SlotWeather) {
		t.Fatal("slot providers survived restore")
	}
	if !engine.ModeFor(engine.ModeClassic).HasTrainers {
		t.Fatal("mode decorator survived restore")
	}
	sess.ResetSeed("after-restore")
	if sess.RNG.Calls() != 0 || sess.WaveSeed != "after-restore" {
		t.Fatal("default seed-reset op not restored")
	}
}

func TestEveryOverrideLogsOneLine(t *testing.T) {
	_, o, buf := newFixture(t)
	o.StartingWave(3).Weather(engine.WeatherRain).Seed("log-check")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 log lines, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, "Overrides: ") {
			t.Fatalf("log line missing prefix: %q", line)
		}
	}
}

func TestOutOfRangeIDsAcceptedSilently(t *testing.T) {
	sess, o, _ := newFixture(t)
	o.EnemySpecies(40404).EnemyAbility(-2)
	if sess.Config.EnemySpecies() != 40404 || sess.Config.EnemyAbility() != -2 {
		t.Fatal("out-of-range IDs not passed through")
	}
	b := sess.NextBattle()
	if b.Enemy.Name != "species#40404" {
		t.Fatalf("stub species not used: %q", b.Enemy.Name)
	}
}
