package engine

// String backed enums for DB interoperability.

type Biome string
type WeatherType string
type BattleType string
type TimeOfDay string
type StatusCondition string

const (
	BiomeMeadow    Biome = "meadow"
	BiomeForest    Biome = "forest"
	BiomeSwamp     Biome = "swamp"
	BiomeCavern    Biome = "cavern"
	BiomeTundra    Biome = "tundra"
	BiomeVolcano   Biome = "volcano"
	BiomeShoreline Biome = "shoreline"
	BiomeRuins     Biome = "ruins"
)

var AllBiomes = []Biome{BiomeMeadow, BiomeForest, BiomeSwamp, BiomeCavern, BiomeTundra, BiomeVolcano, BiomeShoreline, BiomeRuins}

const (
	WeatherNone      WeatherType = "none"
	WeatherSunny     WeatherType = "sunny"
	WeatherRain      WeatherType = "rain"
	WeatherSandstorm WeatherType = "sandstorm"
	WeatherHail      WeatherType = "hail"
	WeatherFog       WeatherType = "fog"
)

var AllWeatherTypes = []WeatherType{WeatherNone, WeatherSunny, WeatherRain, WeatherSandstorm, WeatherHail, WeatherFog}

const (
	BattleWild    BattleType = "wild"
	BattleTrainer BattleType = "trainer"
	BattleBoss    BattleType = "boss"
)

var AllBattleTypes = []BattleType{BattleWild, BattleTrainer, BattleBoss}

const (
	TimeDawn  TimeOfDay = "dawn"
	TimeDay   TimeOfDay = "day"
	TimeDusk  TimeOfDay = "dusk"
	TimeNight TimeOfDay = "night"
)

var AllTimesOfDay = []TimeOfDay{TimeDawn, TimeDay, TimeDusk, TimeNight}

const (
	StatusBurn      StatusCondition = "burn"
	StatusFreeze    StatusCondition = "freeze"
	StatusParalysis StatusCondition = "paralysis"
	StatusPoison    StatusCondition = "poison"
	StatusSleep     StatusCondition = "sleep"
)

var AllStatusConditions = []StatusCondition{StatusBurn, StatusFreeze, StatusParalysis, StatusPoison, StatusSleep}

// Generic helpers
func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (b Biome) Validate() bool           { return contains(AllBiomes, b) }
func (w WeatherType) Validate() bool     { return contains(AllWeatherTypes, w) }
func (t BattleType) Validate() bool      { return contains(AllBattleTypes, t) }
func (t TimeOfDay) Validate() bool       { return contains(AllTimesOfDay, t) }
func (s StatusCondition) Validate() bool { return contains(AllStatusConditions, s) }

// List helpers
func ListBiomes() []Biome                     { return append([]Biome{}, AllBiomes...) }
func ListWeatherTypes() []WeatherType         { return append([]WeatherType{}, AllWeatherTypes...) }
func ListBattleTypes() []BattleType           { return append([]BattleType{}, AllBattleTypes...) }
func ListTimesOfDay() []TimeOfDay             { return append([]TimeOfDay{}, AllTimesOfDay...) }
func ListStatusConditions() []StatusCondition { return append([]StatusCondition{}, AllStatusConditions...) }
