package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mossvale/wavebound/internal/dex"
	"github.com/mossvale/wavebound/internal/engine"
	"github.com/mossvale/wavebound/internal/store"
	"github.com/mossvale/wavebound/internal/text"
	"github.com/mossvale/wavebound/internal/util"
)

const (
	viewMainMenu = "main_menu"
	viewBattle   = "battle"
	viewTravel   = "travel"
	viewSummary  = "summary"
)

type model struct {
	ctx      context.Context
	cfg      util.Config
	version  string
	styles   styleSet
	narrator text.Narrator
	logger   *log.Logger

	session *engine.Session
	battle  *engine.Battle
	md      string // rendered battle prose
	turnLog string

	// persistence
	db        *store.DB
	runs      *store.RunRepo
	scores    *store.HighScoreRepo
	runID     uuid.UUID
	persisted bool

	view        string
	cursor      int
	status      string
	width       int
	height      int
	quitting    bool
	editingSeed bool
	seedInput   textinput.Model
}

func initialModel(ctx context.Context, db *store.DB, narrator text.Narrator, cfg util.Config, version string) model {
	m := model{
		ctx:      ctx,
		cfg:      cfg,
		version:  version,
		styles:   newStyles(defaultPalette),
		narrator: narrator,
		logger:   log.Default(),
		db:       db,
		view:     viewMainMenu,
	}
	if db != nil {
		m.runs = store.NewRunRepo(db)
		m.scores = store.NewHighScoreRepo(db)
	}
	for i, id := range engine.AllGameModes {
		if string(id) == cfg.Mode {
			m.cursor = i
			break
		}
	}
	ti := textinput.New()
	ti.Placeholder = "seed"
	ti.CharLimit = 64
	ti.SetValue(cfg.SeedText)
	m.seedInput = ti
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.view {
		case viewMainMenu:
			return m.updateMainMenu(msg)
		case viewBattle:
			return m.updateBattle(msg)
		case viewTravel:
			return m.updateTravel(msg)
		case viewSummary:
			return m.updateSummary(msg)
		}
	}
	return m, nil
}

func (m model) updateMainMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingSeed {
		switch msg.String() {
		case "enter":
			if v := strings.TrimSpace(m.seedInput.Value()); v != "" {
				m.cfg.SeedText = v
			}
			m.editingSeed = false
			m.seedInput.Blur()
			return m, nil
		case "esc":
			m.editingSeed = false
			m.seedInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.seedInput, cmd = m.seedInput.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "s":
		m.editingSeed = true
		m.seedInput.SetValue(m.cfg.SeedText)
		return m, m.seedInput.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(engine.AllGameModes)-1 {
			m.cursor++
		}
	case "enter":
		return m.startRun(engine.AllGameModes[m.cursor])
	}
	return m, nil
}

func (m model) startRun(mode engine.GameModeID) (tea.Model, tea.Cmd) {
	seed, err := engine.NewRunSeed(m.cfg.SeedText)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.session = engine.NewSession(mode, seed)
	m.persisted = false
	if m.runs != nil {
		run, err := m.runs.Create(m.ctx, mode, seed.Text, m.cfg.RulesVersion)
		if err != nil {
			m.logger.Warn("run not persisted", "err", err)
		} else {
			m.runID = run.ID
			m.persisted = true
		}
	}
	return m.nextWave()
}

func (m model) nextWave() (tea.Model, tea.Cmd) {
	m.battle = m.session.NextBattle()
	m.md = m.renderMarkdown(m.narrator.WaveIntro(m.battle))
	m.turnLog = ""
	m.cursor = 0
	m.view = viewBattle
	return m, nil
}

func (m model) updateBattle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lead := m.session.Lead()
	if lead == nil {
		return m.finishRun(false)
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return m.finishRun(false)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(lead.Moves)-1 {
			m.cursor++
		}
	case "enter":
		res, err := m.session.ResolveTurn(m.cursor)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.turnLog = m.renderMarkdown(m.narrator.TurnOutcome(m.battle, res))
		switch {
		case res.PlayerDown && m.session.Defeated():
			return m.finishRun(false)
		case res.EnemyDown:
			if m.session.Finished() {
				return m.finishRun(true)
			}
			m.view = viewTravel
			m.cursor = 0
		}
	}
	return m, nil
}

func (m model) updateTravel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	links := m.session.Arena.NextBiomes()
	switch msg.String() {
	case "q", "ctrl+c":
		return m.finishRun(false)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(links) {
			m.cursor++
		}
	case "enter":
		// first entry is "stay"; the rest travel
		if m.cursor > 0 && m.cursor <= len(links) {
			m.session.Travel(links[m.cursor-1])
		}
		m.session.RestParty()
		return m.nextWave()
	}
	return m, nil
}

func (m model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.view = viewMainMenu
		m.cursor = 0
	}
	return m, nil
}

func (m model) finishRun(victory bool) (tea.Model, tea.Cmd) {
	if m.persisted {
		if err := m.runs.Finish(m.ctx, m.runID, m.session, victory); err != nil {
			m.logger.Warn("run not finalized", "err", err)
		}
		if best, err := m.scores.Record(m.ctx, m.session.Mode, m.session.Wave, m.session.WaveSeed); err != nil {
			m.logger.Warn("high score not recorded", "err", err)
		} else if best {
			m.status = "New high score!"
		}
	}
	m.view = viewSummary
	return m, nil
}

func (m model) renderMarkdown(md string) string {
	width := m.width
	if width <= 0 || width > 100 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewBattle:
		return m.viewBattleScreen()
	case viewTravel:
		return m.viewTravelScreen()
	case viewSummary:
		return m.viewSummaryScreen()
	default:
		return m.viewMenuScreen()
	}
}

func (m model) viewMenuScreen() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("wavebound "+m.version) + "\n\n")
	if m.editingSeed {
		b.WriteString(m.styles.Muted.Render("seed: ") + m.seedInput.View() + "\n\n")
	} else {
		b.WriteString(m.styles.Muted.Render("seed: "+m.cfg.SeedText) + "\n\n")
	}
	for i, mode := range engine.AllGameModes {
		label := engine.ModeFor(mode).Name
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> "+label) + "\n")
		} else {
			b.WriteString("  " + label + "\n")
		}
	}
	b.WriteString("\n" + m.styles.Muted.Render("enter: start  s: seed  q: quit"))
	if m.status != "" {
		b.WriteString("\n" + m.styles.Danger.Render(m.status))
	}
	return b.String()
}

func (m model) viewBattleScreen() string {
	lead := m.session.Lead()
	if lead == nil || m.battle == nil {
		return m.styles.Muted.Render("...")
	}
	enemy := &m.battle.Enemy
	var b strings.Builder
	b.WriteString(m.md)
	b.WriteString(fmt.Sprintf("%s Lv%d %s %d/%d\n", enemy.Name, enemy.Level, hpBar(m.styles, enemy.HP, enemy.MaxHP, 20), enemy.HP, enemy.MaxHP))
	b.WriteString(fmt.Sprintf("%s Lv%d %s %d/%d\n\n", lead.Name, lead.Level, hpBar(m.styles, lead.HP, lead.MaxHP, 20), lead.HP, lead.MaxHP))
	for i, mv := range lead.Moves {
		label := dex.MoveByID(mv).Name
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> "+label) + "\n")
		} else {
			b.WriteString("  " + label + "\n")
		}
	}
	if m.turnLog != "" {
		b.WriteString("\n" + m.turnLog)
	}
	if m.status != "" {
		b.WriteString("\n" + m.styles.Danger.Render(m.status))
	}
	return m.styles.Panel.Render(b.String())
}

func (m model) viewTravelScreen() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Wave cleared") + "\n\n")
	if m.turnLog != "" {
		b.WriteString(m.turnLog + "\n")
	}
	options := append([]string{"Stay in " + string(m.session.Arena.Biome)}, biomeLabels(m.session.Arena.NextBiomes(), m.session.Wave)...)
	for i, opt := range options {
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> "+opt) + "\n")
		} else {
			b.WriteString("  " + opt + "\n")
		}
	}
	return b.String()
}

// biomeLabels renders travel options with a preview of what roams there.
func biomeLabels(biomes []engine.Biome, wave int) []string {
	out := make([]string, len(biomes))
	for i, b := range biomes {
		names := make([]string, 0, 3)
		for _, id := range engine.SpawnableSpecies(b, wave) {
			if len(names) == 3 {
				break
			}
			names = append(names, dex.SpeciesByID(id).Name)
		}
		out[i] = "Travel to " + string(b)
		if len(names) > 0 {
			out[i] += " (" + strings.Join(names, ", ") + ")"
		}
	}
	return out
}

func (m model) viewSummaryScreen() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Run over") + "\n\n")
	b.WriteString(fmt.Sprintf("Mode: %s\nFinal wave: %d\nBiome: %s\nSeed: %s\n", m.session.Mode, m.session.Wave, m.session.Arena.Biome, m.session.WaveSeed))
	if m.status != "" {
		b.WriteString("\n" + m.styles.Success.Render(m.status))
	}
	b.WriteString("\n" + m.styles.Muted.Render("enter: menu  q: quit"))
	return b.String()
}
