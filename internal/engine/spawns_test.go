package engine

import (
	"fmt"
	"testing"

	"github.com/mossvale/wavebound/internal/dex"
)

func TestSpawnDistributionTendsToWeights(t *testing.T) {
	seed, _ := NewRunSeed("spawn-dist")
	counts := map[dex.SpeciesID]int{}
	total := 2000
	for i := 0; i < total; i++ {
		id := PickSpawn(seed.Stream("pick").Child(fmt.Sprintf("i:%d", i)), BiomeMeadow, 20, false)
		counts[id]++
	}
	c := counts[dex.SpeciesGalehawk]  // weight 6
	u := counts[dex.SpeciesThornback] // weight 4
	r := counts[dex.SpeciesBrambull]  // weight 1
	if !(c > u && u > r) {
		t.Fatalf("unexpected ordering c=%d u=%d r=%d", c, u, r)
	}
	// Rough ratio check with generous bounds (weights 6:4:1)
	ratioCU := float64(c) / float64(u)
	if ratioCU < 1.1 || ratioCU > 2.2 {
		t.Fatalf("common:uncommon ratio out of bounds: %.2f (c=%d u=%d)", ratioCU, c, u)
	}
	ratioUR := float64(u) / float64(r)
	if ratioUR < 2.5 || ratioUR > 6.5 {
		t.Fatalf("uncommon:rare ratio out of bounds: %.2f (u=%d r=%d)", ratioUR, u, r)
	}
}

func TestSpawnMinWaveGate(t *testing.T) {
	seed, _ := NewRunSeed("spawn-gate")
	for i := 0; i < 500; i++ {
		id := PickSpawn(seed.Stream("gate").Child(fmt.Sprintf("i:%d", i)), BiomeMeadow, 1, false)
		if id == dex.SpeciesBrambull {
			t.Fatal("min-wave gated species spawned on wave 1")
		}
	}
}

func TestSpawnBossOnlyGate(t *testing.T) {
	seed, _ := NewRunSeed("spawn-boss")
	for i := 0; i < 500; i++ {
		id := PickSpawn(seed.Stream("boss").Child(fmt.Sprintf("i:%d", i)), BiomeCavern, 30, false)
		if id == dex.SpeciesEmberox {
			t.Fatal("boss-only species spawned in a regular wave")
		}
	}
}

func TestSpawnUnknownBiomeFallsBack(t *testing.T) {
	seed, _ := NewRunSeed("spawn-fallback")
	id := PickSpawn(seed.Stream("x"), Biome("moonbase"), 1, false)
	if id != dex.SpeciesGalehawk && id != dex.SpeciesThornback {
		t.Fatalf("fallback pool not used: %d", id)
	}
}

func TestSpawnableSpeciesOrdered(t *testing.T) {
	list := SpawnableSpecies(BiomeCavern, 30)
	if len(list) < 2 {
		t.Fatalf("cavern list too small: %v", list)
	}
	for i := 1; i < len(list); i++ {
		if list[i] <= list[i-1] {
			t.Fatalf("not ID-ordered: %v", list)
		}
	}
}
