package dex

import "fmt"

// MoveID indexes the move catalog. Out-of-range IDs pass through to a stub.
type MoveID int

type MoveCategory string

const (
	CategoryPhysical MoveCategory = "physical"
	CategorySpecial  MoveCategory = "special"
	CategoryStatus   MoveCategory = "status"
)

type Move struct {
	ID       MoveID
	Name     string
	Type     ElementType
	Category MoveCategory
	Power    int
	Accuracy int // percent; 0 means never misses
	Priority int
}

const (
	MoveTackle MoveID = iota + 1
	MoveEmberJet
	MoveTideSurge
	MoveThornLash
	MoveGaleCutter
	MoveFrostNip
	MoveRockWall
	MoveShadowFlit
	MoveGrowl
	MoveQuickStrike
	MoveSplash
)

var moveCatalog = map[MoveID]Move{
	MoveTackle:      {ID: MoveTackle, Name: "Tackle", Type: TypeNeutral, Category: CategoryPhysical, Power: 40, Accuracy: 100},
	MoveEmberJet:    {ID: MoveEmberJet, Name: "Ember Jet", Type: TypeEmber, Category: CategorySpecial, Power: 40, Accuracy: 100},
	MoveTideSurge:   {ID: MoveTideSurge, Name: "Tide Surge", Type: TypeTide, Category: CategorySpecial, Power: 40, Accuracy: 100},
	MoveThornLash:   {ID: MoveThornLash, Name: "Thorn Lash", Type: TypeBramble, Category: CategoryPhysical, Power: 45, Accuracy: 100},
	MoveGaleCutter:  {ID: MoveGaleCutter, Name: "Gale Cutter", Type: TypeStorm, Category: CategorySpecial, Power: 60, Accuracy: 95},
	MoveFrostNip:    {ID: MoveFrostNip, Name: "Frost Nip", Type: TypeFrost, Category: CategorySpecial, Power: 40, Accuracy: 100},
	MoveRockWall:    {ID: MoveRockWall, Name: "Rock Wall", Type: TypeStone, Category: CategoryStatus, Power: 0, Accuracy: 0},
	MoveShadowFlit:  {ID: MoveShadowFlit, Name: "Shadow Flit", Type: TypeShade, Category: CategoryPhysical, Power: 30, Accuracy: 100, Priority: 1},
	MoveGrowl:       {ID: MoveGrowl, Name: "Growl", Type: TypeNeutral, Category: CategoryStatus, Power: 0, Accuracy: 100},
	MoveQuickStrike: {ID: MoveQuickStrike, Name: "Quick Strike", Type: TypeNeutral, Category: CategoryPhysical, Power: 40, Accuracy: 100, Priority: 1},
	MoveSplash:      {ID: MoveSplash, Name: "Splash", Type: TypeTide, Category: CategoryStatus, Power: 0, Accuracy: 0},
}

// MoveByID resolves a catalog entry, substituting a stub for unknown IDs.
func MoveByID(id MoveID) Move {
	if mv, ok := moveCatalog[id]; ok {
		return mv
	}
	return Move{ID: id, Name: fmt.Sprintf("move#%d", int(id)), Type: TypeNeutral, Category: CategoryPhysical, Power: 50, Accuracy: 100}
}

func (id MoveID) Known() bool {
	_, ok := moveCatalog[id]
	return ok
}
