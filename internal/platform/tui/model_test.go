package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/guitar-chase/internal/core"
	"github.com/vovakirdan/guitar-chase/internal/storage"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resets     int
	steps      [][]core.Action
	state      core.GameState
	resumed    *core.GameState
	completeOn int // step number that reports a completed run, 0 never
	w, h       int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
	g.state = core.GameState{Level: 1, TimeLeft: 180, Speed: 100}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	var got []core.Action
	for _, a := range []core.Action{
		core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown,
		core.ActionPause, core.ActionConfirm, core.ActionRestart,
	} {
		if in.Has(a) {
			got = append(got, a)
		}
	}
	g.steps = append(g.steps, got)

	var events []core.Event
	if g.completeOn != 0 && len(g.steps) == g.completeOn {
		g.state = core.GameState{Level: 1, TimeLeft: 180, Speed: 100, Completed: true}
		events = append(events, core.Event{Kind: core.EventRunCompleted, Level: 15})
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState      { return g.state }
func (g *fakeGame) Resize(w, h int)            { g.w, g.h = w, h }
func (g *fakeGame) Checkpoint() core.GameState { return g.state }

func (g *fakeGame) Resume(s core.GameState) {
	g.resumed = &s
	g.state = s
}

func (g *fakeGame) lastStep() []core.Action {
	if len(g.steps) == 0 {
		return nil
	}
	return g.steps[len(g.steps)-1]
}

func hasAction(actions []core.Action, a core.Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg{Time: time.Now(), ID: m.tickID})
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{})
	if cmd := m.Init(); cmd == nil {
		t.Error("Init should schedule the first tick")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.resumed != nil {
		t.Error("a fresh model must not resume")
	}
}

func TestModelHeldDirectionReachesStep(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{Hold: 50 * time.Millisecond})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	// 50ms at 60 ticks per second holds for 3 ticks.
	for i := 0; i < 3; i++ {
		m = tick(t, m)
		if !hasAction(g.lastStep(), core.ActionRight) {
			t.Fatalf("tick %d: right not held", i)
		}
	}
	m = tick(t, m)
	if hasAction(g.lastStep(), core.ActionRight) {
		t.Error("right should be released after the hold window")
	}
}

func TestModelEdgeActionsLastOneTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{})
	m.Init()

	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	if !hasAction(g.lastStep(), core.ActionPause) {
		t.Fatal("pause should reach the next step")
	}
	tick(t, m)
	if hasAction(g.lastStep(), core.ActionPause) {
		t.Error("pause should not repeat on the following step")
	}
}

func TestModelBlurReleasesHeldKeys(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.BlurMsg{})
	tick(t, m)
	if hasAction(g.lastStep(), core.ActionLeft) {
		t.Error("losing focus should release held directions")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{})
	m.Init()

	update(t, m, TickMsg{Time: time.Now(), ID: m.tickID - 1})
	if len(g.steps) != 0 {
		t.Errorf("stale tick stepped the game %d times", len(g.steps))
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{})
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.w != 120 || g.h != 40 {
		t.Errorf("game size = %dx%d, want 120x40", g.w, g.h)
	}
	if g.resets != 1 {
		t.Error("resizing must not restart the run")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{Store: store, Slot: "local"})
	m.Init()
	g.state = core.GameState{Level: 4, Coins: 3, TimeLeft: 77, Speed: 160}

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if !m.Quitting() {
		t.Fatal("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}

	rec, err := store.LoadRun("local")
	if err != nil {
		t.Fatalf("LoadRun: %v", err)
	}
	if rec == nil {
		t.Fatal("quitting should save the run")
	}
	if rec.Level != 4 || rec.Coins != 3 || rec.TimeLeft != 77 || rec.Speed != 160 {
		t.Errorf("saved %+v", rec)
	}
	if rec.Seed != 42 {
		t.Errorf("Seed = %d, want 42", rec.Seed)
	}
	if rec.RunID != m.RunID() {
		t.Errorf("RunID = %q, want %q", rec.RunID, m.RunID())
	}
}

func TestModelResumesSavedRun(t *testing.T) {
	g := &fakeGame{}
	rec := &storage.RunRecord{Slot: "local", RunID: "run-1", Seed: 7, Level: 9, Coins: 2, TimeLeft: 30, Speed: 260}
	m := NewModel(g, testConfig(), Options{Resume: rec})
	m.Init()

	if g.resumed == nil {
		t.Fatal("game was not resumed")
	}
	if g.resumed.Level != 9 || g.resumed.Coins != 2 || g.resumed.TimeLeft != 30 || g.resumed.Speed != 260 {
		t.Errorf("resumed %+v", *g.resumed)
	}
	if m.config.Seed != 7 {
		t.Errorf("seed = %d, want the saved seed 7", m.config.Seed)
	}
	if m.RunID() != "run-1" {
		t.Errorf("RunID = %q, want run-1", m.RunID())
	}
}

func TestModelCompletionIsRecorded(t *testing.T) {
	store := openTestStore(t)
	if err := store.SaveRun(storage.RunRecord{Slot: "local", RunID: "old", Level: 15}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	g := &fakeGame{completeOn: 2}
	m := NewModel(g, testConfig(), Options{Store: store, Slot: "local", Player: "ada"})
	m.Init()
	firstRun := m.RunID()

	m = tick(t, m)
	m = tick(t, m)

	n, err := store.CompletionCount()
	if err != nil {
		t.Fatalf("CompletionCount: %v", err)
	}
	if n != 1 {
		t.Fatalf("completions = %d, want 1", n)
	}
	list, err := store.Completions(1)
	if err != nil {
		t.Fatalf("Completions: %v", err)
	}
	if list[0].RunID != firstRun || list[0].Player != "ada" {
		t.Errorf("completion = %+v", list[0])
	}

	rec, err := store.LoadRun("local")
	if err != nil {
		t.Fatalf("LoadRun: %v", err)
	}
	if rec != nil {
		t.Error("a completed run should clear the saved slot")
	}
	if m.RunID() == firstRun {
		t.Error("the next run should get a new ID")
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &fakeGame{completeOn: 1}
	m := NewModel(g, testConfig(), Options{})
	m.Init()

	m = tick(t, m)
	next, _ := m.Update(runeKey('q'))
	if !next.(Model).Quitting() {
		t.Error("quit should work without storage")
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testConfig(), Options{})
	m.Init()

	if !strings.Contains(m.View(), "fake game") {
		t.Error("view should contain the rendered game")
	}
}
