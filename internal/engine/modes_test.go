package engine

import "testing"

func withModeDecorator(fn func(GameMode) GameMode, body func()) {
	prev := modeDecorator
	modeDecorator = fn
	defer func() { modeDecorator = prev }()
	body()
}

func TestModeForKnownModes(t *testing.T) {
	for _, id := range AllGameModes {
		m := ModeFor(id)
		if m.ID != id {
			t.Fatalf("mode %s resolved to %s", id, m.ID)
		}
	}
	if !ModeFor(ModeClassic).HasTrainers {
		t.Fatal("classic must have trainer waves by default")
	}
	if !ModeFor(ModeEndless).IsEndless {
		t.Fatal("endless must be endless")
	}
	if !ModeFor(ModeDaily).FixedSeed {
		t.Fatal("daily must use a fixed seed")
	}
}

func TestModeForUnknownFallsBackToClassicRules(t *testing.T) {
	m := ModeFor("mystery")
	if m.ID != "mystery" {
		t.Fatalf("unknown mode lost its ID: %s", m.ID)
	}
	classic := ModeFor(ModeClassic)
	if m.HasTrainers != classic.HasTrainers || m.FinalWave != classic.FinalWave {
		t.Fatalf("unknown mode rules differ from classic: %+v", m)
	}
}

func TestDecorateModesTransformsEveryFactory(t *testing.T) {
	withModeDecorator(func(m GameMode) GameMode {
		m.HasTrainers = false
		return m
	}, func() {
		for _, id := range AllGameModes {
			base := func() GameMode {
				prev := modeDecorator
				modeDecorator = nil
				defer func() { modeDecorator = prev }()
				return ModeFor(id)
			}()
			m := ModeFor(id)
			if m.HasTrainers {
				t.Fatalf("decorator not applied to %s", id)
			}
			// every other field preserved
			base.HasTrainers = false
			if m != base {
				t.Fatalf("decorator altered unrelated fields for %s: %+v vs %+v", id, m, base)
			}
		}
	})
}

func TestResetModeDecorator(t *testing.T) {
	DecorateModes(func(m GameMode) GameMode {
		m.HasShop = false
		return m
	})
	ResetModeDecorator()
	if !ModeFor(ModeClassic).HasShop {
		t.Fatal("reset did not clear decorator")
	}
}
