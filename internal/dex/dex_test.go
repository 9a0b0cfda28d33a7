package dex

import "testing"

func TestSpeciesByIDUnknownIsPermissive(t *testing.T) {
	sp := SpeciesByID(9001)
	if sp.ID != 9001 {
		t.Fatalf("stub species kept wrong ID: %d", sp.ID)
	}
	if sp.Name != "species#9001" {
		t.Fatalf("unexpected stub name: %q", sp.Name)
	}
	if sp.BaseHP <= 0 || sp.BaseAtk <= 0 {
		t.Fatalf("stub species must have usable stats: %+v", sp)
	}
	if sp.ID.Known() {
		t.Fatal("unknown ID reported as known")
	}
}

func TestMoveAndAbilityStubs(t *testing.T) {
	mv := MoveByID(-3)
	if mv.Power <= 0 || mv.Accuracy != 100 {
		t.Fatalf("stub move not usable: %+v", mv)
	}
	ab := AbilityByID(777)
	if ab.Name != "ability#777" {
		t.Fatalf("unexpected stub ability name: %q", ab.Name)
	}
}

func TestListSpeciesOrdered(t *testing.T) {
	list := ListSpecies()
	if len(list) == 0 {
		t.Fatal("empty species catalog")
	}
	for i := 1; i < len(list); i++ {
		if list[i].ID <= list[i-1].ID {
			t.Fatalf("catalog not ID-ordered at %d: %d then %d", i, list[i-1].ID, list[i].ID)
		}
	}
	for _, sp := range list {
		if !sp.ID.Known() {
			t.Fatalf("listed species %d not known", sp.ID)
		}
	}
}
