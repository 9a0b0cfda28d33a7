package engine

import (
	"sort"

	"github.com/mossvale/wavebound/internal/dex"
)

// SpawnEntry is one weighted species slot in a biome's encounter pool.
type SpawnEntry struct {
	Species  dex.SpeciesID
	Weight   int
	MinWave  int // entry is ineligible before this wave
	BossOnly bool
}

// Catalog of encounter pools per biome. Weight ratios are intentionally
// coarse: commons around 5-6, uncommons 3-4, rares 1-2.
var spawnCatalog = map[Biome][]SpawnEntry{
	BiomeMeadow: {
		{Species: dex.SpeciesGalehawk, Weight: 6},
		{Species: dex.SpeciesThornback, Weight: 4},
		{Species: dex.SpeciesBrambull, Weight: 1, MinWave: 10},
	},
	BiomeForest: {
		{Species: dex.SpeciesThornback, Weight: 6},
		{Species: dex.SpeciesDuskmoth, Weight: 3},
		{Species: dex.SpeciesBrambull, Weight: 2, MinWave: 15},
	},
	BiomeSwamp: {
		{Species: dex.SpeciesMarshkit, Weight: 6},
		{Species: dex.SpeciesTidecaller, Weight: 2, MinWave: 5},
	},
	BiomeCavern: {
		{Species: dex.SpeciesCragmaw, Weight: 5},
		{Species: dex.SpeciesDuskmoth, Weight: 4},
		{Species: dex.SpeciesEmberox, Weight: 1, MinWave: 20, BossOnly: true},
	},
	BiomeTundra: {
		{Species: dex.SpeciesRimefang, Weight: 6},
		{Species: dex.SpeciesCragmaw, Weight: 2},
	},
	BiomeVolcano: {
		{Species: dex.SpeciesCinderling, Weight: 5},
		{Species: dex.SpeciesEmberox, Weight: 2, MinWave: 10},
	},
	BiomeShoreline: {
		{Species: dex.SpeciesMarshkit, Weight: 5},
		{Species: dex.SpeciesGalehawk, Weight: 4},
		{Species: dex.SpeciesTidecaller, Weight: 2, MinWave: 8},
	},
	BiomeRuins: {
		{Species: dex.SpeciesDuskmoth, Weight: 5},
		{Species: dex.SpeciesCragmaw, Weight: 3},
		{Species: dex.SpeciesEmberox, Weight: 1, MinWave: 25},
	},
}

// fallbackPool covers biomes with no catalog entry (including invalid biome
// values, which are accepted silently).
var fallbackPool = []SpawnEntry{
	{Species: dex.SpeciesGalehawk, Weight: 5},
	{Species: dex.SpeciesThornback, Weight: 5},
}

func eligibleSpawns(biome Biome, wave int, boss bool) []SpawnEntry {
	pool, ok := spawnCatalog[biome]
	if !ok || len(pool) == 0 {
		pool = fallbackPool
	}
	var out []SpawnEntry
	for _, e := range pool {
		if e.MinWave > wave {
			continue
		}
		if e.BossOnly && !boss {
			continue
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		out = append(out, fallbackPool...)
	}
	return out
}

// PickSpawn selects a species for a wave in a biome using weighted choice on
// the given stream. Deterministic for a given stream state.
func PickSpawn(stream *Stream, biome Biome, wave int, boss bool) dex.SpeciesID {
	pool := eligibleSpawns(biome, wave, boss)
	total := 0
	for _, e := range pool {
		total += e.Weight
	}
	if total <= 0 {
		return pool[0].Species
	}
	roll := stream.Intn(total)
	for _, e := range pool {
		roll -= e.Weight
		if roll < 0 {
			return e.Species
		}
	}
	return pool[len(pool)-1].Species
}

// SpawnableSpecies lists the distinct species reachable in a biome at a wave,
// in ID order. The travel view uses it to preview destinations.
func SpawnableSpecies(biome Biome, wave int) []dex.SpeciesID {
	seen := map[dex.SpeciesID]bool{}
	for _, e := range eligibleSpawns(biome, wave, true) {
		seen[e.Species] = true
	}
	out := make([]dex.SpeciesID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
