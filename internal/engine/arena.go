package engine

// Arena is the battlefield state for the current stretch of waves. Rebuilt
// whenever the run moves to a new biome.
type Arena struct {
	Biome     Biome
	Weather   WeatherType
	TimeOfDay TimeOfDay
	// WavesHere counts battles fought since entering this arena.
	WavesHere int
}

// weatherPools gives the weighted weather distribution per biome. Weights sum
// to 10 per biome.
var weatherPools = map[Biome][]struct {
	W      WeatherType
	Weight int
}{
	BiomeMeadow:    {{WeatherNone, 6}, {WeatherSunny, 3}, {WeatherRain, 1}},
	BiomeForest:    {{WeatherNone, 6}, {WeatherRain, 3}, {WeatherFog, 1}},
	BiomeSwamp:     {{WeatherRain, 5}, {WeatherFog, 3}, {WeatherNone, 2}},
	BiomeCavern:    {{WeatherNone, 8}, {WeatherFog, 2}},
	BiomeTundra:    {{WeatherHail, 5}, {WeatherNone, 4}, {WeatherFog, 1}},
	BiomeVolcano:   {{WeatherSunny, 6}, {WeatherNone, 4}},
	BiomeShoreline: {{WeatherNone, 5}, {WeatherRain, 3}, {WeatherSunny, 2}},
	BiomeRuins:     {{WeatherNone, 5}, {WeatherSandstorm, 3}, {WeatherFog, 2}},
}

// biomeLinks defines where a run can travel after clearing an arena.
var biomeLinks = map[Biome][]Biome{
	BiomeMeadow:    {BiomeForest, BiomeShoreline},
	BiomeForest:    {BiomeSwamp, BiomeCavern, BiomeMeadow},
	BiomeSwamp:     {BiomeShoreline, BiomeRuins},
	BiomeCavern:    {BiomeVolcano, BiomeTundra},
	BiomeTundra:    {BiomeCavern, BiomeRuins},
	BiomeVolcano:   {BiomeCavern, BiomeRuins},
	BiomeShoreline: {BiomeMeadow, BiomeSwamp},
	BiomeRuins:     {BiomeMeadow},
}

// newArena builds arena state for a biome, rolling weather and time of day
// from the stream. Unknown biomes get clear weather.
func newArena(biome Biome, stream *Stream) *Arena {
	a := &Arena{Biome: biome, Weather: WeatherNone, TimeOfDay: TimeDay}
	if stream != nil {
		a.TimeOfDay = AllTimesOfDay[stream.Intn(len(AllTimesOfDay))]
		a.Weather = rollWeather(biome, stream)
	}
	return a
}

func rollWeather(biome Biome, stream *Stream) WeatherType {
	pool, ok := weatherPools[biome]
	if !ok || len(pool) == 0 {
		return WeatherNone
	}
	total := 0
	for _, e := range pool {
		total += e.Weight
	}
	roll := stream.Intn(total)
	for _, e := range pool {
		roll -= e.Weight
		if roll < 0 {
			return e.W
		}
	}
	return WeatherNone
}

// NextBiomes lists travel destinations from this arena's biome.
func (a *Arena) NextBiomes() []Biome {
	links, ok := biomeLinks[a.Biome]
	if !ok {
		return []Biome{BiomeMeadow}
	}
	return append([]Biome{}, links...)
}
