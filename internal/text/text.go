package text

import (
	"fmt"
	"strings"

	"github.com/mossvale/wavebound/internal/dex"
	"github.com/mossvale/wavebound/internal/engine"
)

// Narrator renders battle prose as markdown for the UI layer.
type Narrator interface {
	WaveIntro(b *engine.Battle) string
	TurnOutcome(b *engine.Battle, res engine.TurnResult) string
}

// Density controls how much prose the narrator emits.
type Density string

const (
	DensityConcise  Density = "concise"
	DensityStandard Density = "standard"
	DensityRich     Density = "rich"
)

func ParseDensity(s string) Density {
	switch Density(strings.ToLower(strings.TrimSpace(s))) {
	case DensityConcise:
		return DensityConcise
	case DensityRich:
		return DensityRich
	default:
		return DensityStandard
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// templateNarrator is the deterministic offline narrator.
type templateNarrator struct {
	density Density
}

// NewTemplateNarrator builds a narrator at the given density.
func NewTemplateNarrator(density Density) Narrator {
	return &templateNarrator{density: density}
}

var biomeFlavor = map[engine.Biome]string{
	engine.BiomeMeadow:    "Tall grass sways across the open field.",
	engine.BiomeForest:    "The canopy swallows most of the light.",
	engine.BiomeSwamp:     "Every step squelches in the standing water.",
	engine.BiomeCavern:    "Drips echo somewhere deep in the dark.",
	engine.BiomeTundra:    "Wind drives ice crystals across the flats.",
	engine.BiomeVolcano:   "Heat shimmers above the cracked basalt.",
	engine.BiomeShoreline: "Surf hisses over the shingle behind you.",
	engine.BiomeRuins:     "Broken columns throw long, strange shadows.",
}

var weatherFlavor = map[engine.WeatherType]string{
	engine.WeatherSunny:     "Harsh sunlight beats down.",
	engine.WeatherRain:      "Rain keeps falling.",
	engine.WeatherSandstorm: "A sandstorm rages.",
	engine.WeatherHail:      "Hail rattles off every surface.",
	engine.WeatherFog:       "Fog blurs everything past arm's reach.",
}

func (n *templateNarrator) WaveIntro(b *engine.Battle) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Wave %d - %s\n\n", b.Wave, titleCase(string(b.Biome)))
	switch b.Type {
	case engine.BattleTrainer:
		fmt.Fprintf(&sb, "**%s** challenges you with **%s** (Lv %d)!\n", b.TrainerName, b.Enemy.Name, b.Enemy.Level)
	case engine.BattleBoss:
		fmt.Fprintf(&sb, "A dominant **%s** (Lv %d) blocks the way. %s watches from a distance.\n", b.Enemy.Name, b.Enemy.Level, b.TrainerName)
	default:
		fmt.Fprintf(&sb, "A wild **%s** (Lv %d) appears!\n", b.Enemy.Name, b.Enemy.Level)
	}
	if n.density == DensityConcise {
		return sb.String()
	}
	if fl, ok := biomeFlavor[b.Biome]; ok {
		sb.WriteString("\n" + fl)
	}
	if fl, ok := weatherFlavor[b.Weather]; ok {
		sb.WriteString(" " + fl)
	}
	sb.WriteString("\n")
	if n.density == DensityRich {
		ability := dex.AbilityByID(b.Enemy.Ability)
		fmt.Fprintf(&sb, "\nIts bearing suggests %s.\n", strings.ToLower(ability.Name))
	}
	return sb.String()
}

func (n *templateNarrator) TurnOutcome(b *engine.Battle, res engine.TurnResult) string {
	var sb strings.Builder
	for _, line := range res.Log {
		fmt.Fprintf(&sb, "- %s\n", line)
	}
	if res.EnemyDown {
		fmt.Fprintf(&sb, "\n**%s fainted!**\n", b.Enemy.Name)
	}
	if res.PlayerDown {
		sb.WriteString("\n**Your creature fainted!**\n")
	}
	if n.density == DensityRich && !res.EnemyDown && !res.PlayerDown {
		hpPct := 0
		if b.Enemy.MaxHP > 0 {
			hpPct = b.Enemy.HP * 100 / b.Enemy.MaxHP
		}
		fmt.Fprintf(&sb, "\nThe %s is at roughly %d%% strength.\n", b.Enemy.Name, hpPct)
	}
	return sb.String()
}
