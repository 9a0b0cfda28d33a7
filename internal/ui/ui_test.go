package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mossvale/wavebound/internal/engine"
	"github.com/mossvale/wavebound/internal/text"
	"github.com/mossvale/wavebound/internal/util"
)

func testModel(t *testing.T) model {
	t.Helper()
	cfg := util.Config{SeedText: "ui-test-seed", TextDensity: "concise", Mode: "classic"}
	narrator := text.NewTemplateNarrator(text.DensityConcise)
	return initialModel(context.Background(), nil, narrator, cfg, "test")
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuStartsBattle(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(key("enter"))
	got := next.(model)
	if got.view != viewBattle {
		t.Fatalf("view after start: %s", got.view)
	}
	if got.session == nil || got.battle == nil {
		t.Fatal("session/battle not initialized")
	}
	if got.battle.Wave != 1 {
		t.Fatalf("first wave: %d", got.battle.Wave)
	}
}

func TestBattleViewListsMoves(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(key("enter"))
	got := next.(model)
	out := got.View()
	lead := got.session.Lead()
	if lead == nil {
		t.Fatal("no lead")
	}
	if !strings.Contains(out, lead.Name) {
		t.Fatalf("view missing lead name: %q", out)
	}
}

func TestSeedEditing(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(key("s"))
	got := next.(model)
	if !got.editingSeed {
		t.Fatal("seed editing not entered")
	}
	got.seedInput.SetValue("custom-seed")
	next, _ = got.Update(key("enter"))
	got = next.(model)
	if got.editingSeed {
		t.Fatal("seed editing not left on enter")
	}
	if got.cfg.SeedText != "custom-seed" {
		t.Fatalf("seed not applied: %q", got.cfg.SeedText)
	}
}

func TestTravelViewPreviewsDestinations(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(key("enter"))
	got := next.(model)
	got.view = viewTravel
	got.cursor = 0
	out := got.View()
	if !strings.Contains(out, "Travel to forest") {
		t.Fatalf("missing destination: %q", out)
	}
	if !strings.Contains(out, "Thornback") {
		t.Fatalf("missing species preview: %q", out)
	}
}

func TestMenuPreselectsFlaggedMode(t *testing.T) {
	cfg := util.Config{SeedText: "ui-test-seed", TextDensity: "concise", Mode: "daily"}
	narrator := text.NewTemplateNarrator(text.DensityConcise)
	m := initialModel(context.Background(), nil, narrator, cfg, "test")
	if engine.AllGameModes[m.cursor] != engine.ModeDaily {
		t.Fatalf("cursor not on flagged mode: %d", m.cursor)
	}
	next, _ := m.Update(key("enter"))
	got := next.(model)
	if got.session == nil || got.session.Mode != engine.ModeDaily {
		t.Fatal("flagged mode not started")
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(key("k"))
	got := next.(model)
	if got.cursor != 0 {
		t.Fatalf("cursor went negative: %d", got.cursor)
	}
	for i := 0; i < 20; i++ {
		n, _ := got.Update(key("j"))
		got = n.(model)
	}
	if got.cursor > 3 {
		t.Fatalf("cursor out of range: %d", got.cursor)
	}
}
