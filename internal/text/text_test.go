package text

import (
	"strings"
	"testing"

	"github.com/mossvale/wavebound/internal/dex"
	"github.com/mossvale/wavebound/internal/engine"
)

func sampleBattle() *engine.Battle {
	enemy := engine.NewCreature(dex.SpeciesRimefang, 12)
	return &engine.Battle{Wave: 14, Type: engine.BattleWild, Biome: engine.BiomeTundra, Weather: engine.WeatherHail, Enemy: enemy}
}

func TestWaveIntroMentionsWaveAndEnemy(t *testing.T) {
	n := NewTemplateNarrator(DensityStandard)
	md := n.WaveIntro(sampleBattle())
	if !strings.Contains(md, "Wave 14") {
		t.Fatalf("missing wave: %q", md)
	}
	if !strings.Contains(md, "Rimefang") {
		t.Fatalf("missing enemy: %q", md)
	}
	if !strings.Contains(md, "Hail") {
		t.Fatalf("missing weather flavor: %q", md)
	}
}

func TestConciseOmitsFlavor(t *testing.T) {
	concise := NewTemplateNarrator(DensityConcise).WaveIntro(sampleBattle())
	standard := NewTemplateNarrator(DensityStandard).WaveIntro(sampleBattle())
	if len(concise) >= len(standard) {
		t.Fatalf("concise (%d) not shorter than standard (%d)", len(concise), len(standard))
	}
	if strings.Contains(concise, "Wind drives") {
		t.Fatalf("concise carries biome flavor: %q", concise)
	}
}

func TestTrainerIntroNamesTrainer(t *testing.T) {
	b := sampleBattle()
	b.Type = engine.BattleTrainer
	b.TrainerName = "Warden Thessaly"
	md := NewTemplateNarrator(DensityStandard).WaveIntro(b)
	if !strings.Contains(md, "Warden Thessaly") {
		t.Fatalf("missing trainer: %q", md)
	}
}

func TestTurnOutcomeRendersLogAndFaint(t *testing.T) {
	b := sampleBattle()
	b.Enemy.HP = 0
	res := engine.TurnResult{Log: []string{"Cinderling used Tackle (7 damage)"}, EnemyDown: true}
	md := NewTemplateNarrator(DensityStandard).TurnOutcome(b, res)
	if !strings.Contains(md, "- Cinderling used Tackle") {
		t.Fatalf("missing log line: %q", md)
	}
	if !strings.Contains(md, "fainted") {
		t.Fatalf("missing faint callout: %q", md)
	}
}

func TestParseDensity(t *testing.T) {
	if ParseDensity(" Rich ") != DensityRich {
		t.Fatal("rich not parsed")
	}
	if ParseDensity("nonsense") != DensityStandard {
		t.Fatal("unknown density must default to standard")
	}
}
