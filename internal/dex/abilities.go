package dex

import "fmt"

// AbilityID indexes the ability catalog.
type AbilityID int

type Ability struct {
	ID   AbilityID
	Name string
	Desc string
}

const (
	AbilityBlaze AbilityID = iota + 1
	AbilityTorrent
	AbilityOvergrow
	AbilityKeenEye
	AbilitySnowCloak
	AbilitySturdy
	AbilityShadowVeil
	AbilityDrizzle
	AbilityDrought
)

var abilityCatalog = map[AbilityID]Ability{
	AbilityBlaze:      {ID: AbilityBlaze, Name: "Blaze", Desc: "Powers up ember moves when hurt."},
	AbilityTorrent:    {ID: AbilityTorrent, Name: "Torrent", Desc: "Powers up tide moves when hurt."},
	AbilityOvergrow:   {ID: AbilityOvergrow, Name: "Overgrow", Desc: "Powers up bramble moves when hurt."},
	AbilityKeenEye:    {ID: AbilityKeenEye, Name: "Keen Eye", Desc: "Accuracy cannot be lowered."},
	AbilitySnowCloak:  {ID: AbilitySnowCloak, Name: "Snow Cloak", Desc: "Raises evasion in snow."},
	AbilitySturdy:     {ID: AbilitySturdy, Name: "Sturdy", Desc: "Survives a one-hit knockout at full health."},
	AbilityShadowVeil: {ID: AbilityShadowVeil, Name: "Shadow Veil", Desc: "Harder to hit in dim arenas."},
	AbilityDrizzle:    {ID: AbilityDrizzle, Name: "Drizzle", Desc: "Summons rain on entry."},
	AbilityDrought:    {ID: AbilityDrought, Name: "Drought", Desc: "Summons harsh sunlight on entry."},
}

// AbilityByID resolves a catalog entry, substituting a stub for unknown IDs.
func AbilityByID(id AbilityID) Ability {
	if ab, ok := abilityCatalog[id]; ok {
		return ab
	}
	return Ability{ID: id, Name: fmt.Sprintf("ability#%d", int(id))}
}

func (id AbilityID) Known() bool {
	_, ok := abilityCatalog[id]
	return ok
}
