package dex

import "fmt"

// SpeciesID indexes the species catalog. IDs outside the catalog are accepted
// and resolve to a placeholder entry; range checking belongs to content
// tooling, not the engine.
type SpeciesID int

type ElementType string

const (
	TypeNeutral ElementType = "neutral"
	TypeEmber   ElementType = "ember"
	TypeTide    ElementType = "tide"
	TypeBramble ElementType = "bramble"
	TypeStorm   ElementType = "storm"
	TypeFrost   ElementType = "frost"
	TypeStone   ElementType = "stone"
	TypeShade   ElementType = "shade"
)

var AllElementTypes = []ElementType{TypeNeutral, TypeEmber, TypeTide, TypeBramble, TypeStorm, TypeFrost, TypeStone, TypeShade}

// Species is a catalog entry: immutable template data, never live battle state.
type Species struct {
	ID        SpeciesID
	Name      string
	Types     []ElementType
	BaseHP    int
	BaseAtk   int
	BaseDef   int
	BaseSpeed int
	Ability   AbilityID
	CatchRate int // 0-255, higher is easier
}

const (
	SpeciesCinderling SpeciesID = iota + 1
	SpeciesMarshkit
	SpeciesThornback
	SpeciesGalehawk
	SpeciesRimefang
	SpeciesCragmaw
	SpeciesDuskmoth
	SpeciesTidecaller
	SpeciesEmberox
	SpeciesBrambull
)

var speciesCatalog = map[SpeciesID]Species{
	SpeciesCinderling: {ID: SpeciesCinderling, Name: "Cinderling", Types: []ElementType{TypeEmber}, BaseHP: 39, BaseAtk: 52, BaseDef: 43, BaseSpeed: 65, Ability: AbilityBlaze, CatchRate: 45},
	SpeciesMarshkit:   {ID: SpeciesMarshkit, Name: "Marshkit", Types: []ElementType{TypeTide}, BaseHP: 44, BaseAtk: 48, BaseDef: 65, BaseSpeed: 43, Ability: AbilityTorrent, CatchRate: 45},
	SpeciesThornback:  {ID: SpeciesThornback, Name: "Thornback", Types: []ElementType{TypeBramble}, BaseHP: 45, BaseAtk: 49, BaseDef: 49, BaseSpeed: 45, Ability: AbilityOvergrow, CatchRate: 45},
	SpeciesGalehawk:   {ID: SpeciesGalehawk, Name: "Galehawk", Types: []ElementType{TypeStorm, TypeNeutral}, BaseHP: 40, BaseAtk: 60, BaseDef: 30, BaseSpeed: 70, Ability: AbilityKeenEye, CatchRate: 255},
	SpeciesRimefang:   {ID: SpeciesRimefang, Name: "Rimefang", Types: []ElementType{TypeFrost}, BaseHP: 55, BaseAtk: 65, BaseDef: 50, BaseSpeed: 55, Ability: AbilitySnowCloak, CatchRate: 120},
	SpeciesCragmaw:    {ID: SpeciesCragmaw, Name: "Cragmaw", Types: []ElementType{TypeStone}, BaseHP: 70, BaseAtk: 80, BaseDef: 100, BaseSpeed: 20, Ability: AbilitySturdy, CatchRate: 255},
	SpeciesDuskmoth:   {ID: SpeciesDuskmoth, Name: "Duskmoth", Types: []ElementType{TypeShade, TypeStorm}, BaseHP: 60, BaseAtk: 45, BaseDef: 50, BaseSpeed: 80, Ability: AbilityShadowVeil, CatchRate: 75},
	SpeciesTidecaller: {ID: SpeciesTidecaller, Name: "Tidecaller", Types: []ElementType{TypeTide, TypeStorm}, BaseHP: 65, BaseAtk: 55, BaseDef: 60, BaseSpeed: 60, Ability: AbilityTorrent, CatchRate: 90},
	SpeciesEmberox:    {ID: SpeciesEmberox, Name: "Emberox", Types: []ElementType{TypeEmber, TypeStone}, BaseHP: 75, BaseAtk: 85, BaseDef: 70, BaseSpeed: 40, Ability: AbilityBlaze, CatchRate: 60},
	SpeciesBrambull:   {ID: SpeciesBrambull, Name: "Brambull", Types: []ElementType{TypeBramble, TypeStone}, BaseHP: 80, BaseAtk: 90, BaseDef: 75, BaseSpeed: 35, Ability: AbilityOvergrow, CatchRate: 60},
}

// SpeciesByID resolves a catalog entry. Unknown IDs return a stub so callers
// never have to branch on missing data.
func SpeciesByID(id SpeciesID) Species {
	if sp, ok := speciesCatalog[id]; ok {
		return sp
	}
	return Species{
		ID:        id,
		Name:      fmt.Sprintf("species#%d", int(id)),
		Types:     []ElementType{TypeNeutral},
		BaseHP:    50,
		BaseAtk:   50,
		BaseDef:   50,
		BaseSpeed: 50,
		CatchRate: 45,
	}
}

// ListSpecies returns catalog entries in ID order.
func ListSpecies() []Species {
	out := make([]Species, 0, len(speciesCatalog))
	for id := SpeciesID(1); int(id) <= len(speciesCatalog); id++ {
		if sp, ok := speciesCatalog[id]; ok {
			out = append(out, sp)
		}
	}
	return out
}

// Known reports whether the ID has a real catalog entry.
func (id SpeciesID) Known() bool {
	_, ok := speciesCatalog[id]
	return ok
}
