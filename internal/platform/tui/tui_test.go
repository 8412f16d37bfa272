package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDefaults(t *testing.T) {
	km := NewKeyMap(config.DefaultFlappyConfig().Keys)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapCustom(t *testing.T) {
	km := NewKeyMap(config.Keys{Jump: []string{"W"}, Restart: []string{"enter"}})

	if got := km.MapKey(runeKey('w')); got != core.ActionJump {
		t.Errorf("w = %v, expected jump", got)
	}
	if got := km.MapKey(tea.KeyMsg{Type: tea.KeyEnter}); got != core.ActionRestart {
		t.Errorf("enter = %v, expected restart", got)
	}
	if got := km.MapKey(tea.KeyMsg{Type: tea.KeySpace}); got != core.ActionNone {
		t.Errorf("space = %v, expected none once rebound", got)
	}
	// Quit cannot be rebound away.
	if got := km.MapKey(runeKey('q')); got != core.ActionQuit {
		t.Errorf("q = %v, expected quit", got)
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		name             string
		screenW, screenH int
		want             core.Rect
	}{
		{"wide terminal", 80, 23, core.NewRect(27, 0, 26, 23)},
		{"narrow terminal", 20, 40, core.NewRect(0, 11, 20, 18)},
		{"empty screen", 0, 0, core.Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Viewport(tc.screenW, tc.screenH, 360, 640); got != tc.want {
				t.Errorf("Viewport() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestRasterizeFrame(t *testing.T) {
	r := flappy.DefaultRules()
	s := flappy.NewSession(r)
	s.Pipes = []flappy.Pipe{
		{X: 180, Y: -256, W: 64, H: 512, Sprite: flappy.SpriteTopPipe},
		{X: 180, Y: 416, W: 64, H: 512, Sprite: flappy.SpriteBottomPipe},
		{X: 360, Y: -256, W: 64, H: 512, Sprite: flappy.SpriteTopPipe}, // still off the board
	}

	screen := core.NewScreen(80, 23)
	Rasterize(flappy.Render(s, r), screen)
	vp := Viewport(80, 23, 360, 640)

	var birds, pipes, caps int
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			cell := screen.GetCell(x, y)
			inside := x >= vp.X && x < vp.Right() && y >= vp.Y && y < vp.Bottom()
			switch cell.Rune {
			case '@':
				birds++
				if cell.Color != core.ColorBrightYellow {
					t.Errorf("bird color = %v", cell.Color)
				}
			case '█':
				pipes++
			case '▀', '▄':
				caps++
			default:
				continue
			}
			if !inside {
				t.Fatalf("sprite cell %q at (%d,%d) outside viewport %+v", cell.Rune, x, y, vp)
			}
		}
	}

	if birds == 0 {
		t.Error("bird not drawn")
	}
	if pipes == 0 {
		t.Error("pipes not drawn")
	}
	if caps == 0 {
		t.Error("pipe mouths not drawn")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("score missing from first row: %q", screen.Row(0))
	}
}

func TestRasterizeGameOver(t *testing.T) {
	r := flappy.DefaultRules()
	s := flappy.NewSession(r)
	s.Over = true

	screen := core.NewScreen(80, 23)
	Rasterize(flappy.Render(s, r), screen)

	out := screen.String()
	if !strings.Contains(out, "Game Over!") {
		t.Error("game over title missing")
	}
	if !strings.Contains(out, "Press 'R' to Restart") {
		t.Error("restart hint missing")
	}
}

// recordingSaver keeps saved runs in memory.
type recordingSaver struct {
	runs []storage.Run
	err  error
}

func (s *recordingSaver) SaveRun(r storage.Run) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.runs = append(s.runs, r)
	return int64(len(s.runs)), nil
}

func newTestModel(saver storage.Saver) Model {
	return NewModel(Options{
		Config:  config.DefaultFlappyConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1},
		Store:   saver,
		Host:    storage.HostTUI,
	})
}

// tickUntilIdle feeds ticks until the model stops scheduling them.
func tickUntilIdle(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 10000; i++ {
		next, cmd := m.Update(TickMsg(time.Now()))
		m = next.(Model)
		if cmd == nil {
			return m
		}
	}
	t.Fatal("tick chain never ended")
	return m
}

func TestModelGameOverStopsTicking(t *testing.T) {
	saver := &recordingSaver{}
	m := newTestModel(saver)

	if m.Init() == nil {
		t.Fatal("Init should start ticking")
	}

	m = tickUntilIdle(t, m)

	if !m.ctrl.Over() {
		t.Fatal("tick chain ended before game over")
	}
	if m.ticking {
		t.Error("ticking flag still set")
	}
	if len(saver.runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(saver.runs))
	}
	got := saver.runs[0]
	if got.Score != m.ctrl.Score() || got.Host != storage.HostTUI || got.Seed != 1 {
		t.Errorf("saved run = %+v", got)
	}

	// A stray tick after game over changes nothing.
	score := m.ctrl.Score()
	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd != nil || m.ctrl.Score() != score {
		t.Error("tick after game over should be ignored")
	}
	if !strings.Contains(m.View(), "Game Over!") {
		t.Error("view should show game over")
	}
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(nil)

	next, cmd := m.Update(runeKey('r'))
	m = next.(Model)
	if cmd != nil {
		t.Error("restart while running should not start a second tick chain")
	}

	m = tickUntilIdle(t, m)

	next, cmd = m.Update(runeKey('r'))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("restart should restart the tick chain")
	}
	if !m.ticking || !m.ctrl.Running() || m.ctrl.Score() != 0 {
		t.Errorf("after restart: ticking=%v running=%v score=%d", m.ticking, m.ctrl.Running(), m.ctrl.Score())
	}
}

func TestModelJumpAndQuit(t *testing.T) {
	m := newTestModel(nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if m.ctrl.Session().VelocityY != -12 {
		t.Errorf("VelocityY = %d, expected -12", m.ctrl.Session().VelocityY)
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd == nil || !m.quitting {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty when quitting")
	}
}

func TestModelSaveErrorIsNotFatal(t *testing.T) {
	m := newTestModel(&recordingSaver{err: errors.New("disk full")})
	m = tickUntilIdle(t, m)
	if !m.ctrl.Over() {
		t.Error("game should still end when saving fails")
	}
}

func TestModelConfigReload(t *testing.T) {
	m := newTestModel(nil)

	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 2
	cfg.Keys.Jump = []string{"w"}

	next, cmd := m.Update(configReloadMsg{path: "flappy.yaml", cfg: cfg})
	m = next.(Model)
	if cmd != nil {
		t.Error("no watcher, so no follow-up command expected")
	}
	if m.keys.MapKey(runeKey('w')) != core.ActionJump {
		t.Error("key bindings should update immediately")
	}
	if m.ctrl.Rules().Gravity != 1 {
		t.Error("physics must wait for a restart")
	}

	m = tickUntilIdle(t, m)
	next, _ = m.Update(runeKey('r'))
	m = next.(Model)
	if m.ctrl.Rules().Gravity != 2 {
		t.Errorf("Gravity = %d after restart, expected 2", m.ctrl.Rules().Gravity)
	}

	next, _ = m.Update(configReloadMsg{path: "flappy.yaml", err: errors.New("bad yaml")})
	if next.(Model).ctrl.Rules().Gravity != 2 {
		t.Error("failed reload must keep the current config")
	}
}

func TestModelConfigReloadKeepsTickRate(t *testing.T) {
	var logs bytes.Buffer
	m := NewModel(Options{
		Config:  config.DefaultFlappyConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1},
		Logger:  log.New(&logs),
	})
	period := m.ctrl.SpawnPeriod()

	cfg := config.DefaultFlappyConfig()
	cfg.Timing.TickRate = 60

	next, _ := m.Update(configReloadMsg{path: "flappy.yaml", cfg: cfg})
	m = next.(Model)
	m = tickUntilIdle(t, m)
	next, _ = m.Update(runeKey('r'))
	m = next.(Model)

	if got := m.ctrl.SpawnPeriod(); got != period {
		t.Errorf("SpawnPeriod() = %d after restart, expected %d at the running tick rate", got, period)
	}
	if m.runtime.TickRate != 144 {
		t.Errorf("runtime TickRate = %d, expected 144", m.runtime.TickRate)
	}
	if !strings.Contains(logs.String(), "tick rate changes need a new process") {
		t.Errorf("expected a tick rate warning, got logs:\n%s", logs.String())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
}

// fakeScores is an in-memory ScoreSource.
type fakeScores struct {
	runs []storage.Run
	err  error
}

func (f fakeScores) TopRuns(int) ([]storage.Run, error) { return f.runs, f.err }

func (f fakeScores) Stats() (*storage.Stats, error) {
	st := &storage.Stats{Runs: len(f.runs)}
	for _, r := range f.runs {
		st.TotalScore += int64(r.Score)
		if r.Score > st.HighScore {
			st.HighScore = r.Score
		}
	}
	if len(f.runs) > 0 {
		st.AvgScore = float64(st.TotalScore) / float64(len(f.runs))
		st.LastPlayed = f.runs[0].CreatedAt
	}
	return st, nil
}

func TestScoreboard(t *testing.T) {
	src := fakeScores{runs: []storage.Run{
		{Score: 300, Host: storage.HostSSH, Player: "alice", CreatedAt: time.Date(2026, 3, 4, 15, 4, 0, 0, time.Local)},
		{Score: 120, Host: storage.HostWindow},
	}}

	m := NewScoreboardModel(src, 120, 30)
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "2 runs, best 300", "total 420", "last played Mar 04 15:04", "alice"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	rows := scoreRows(src.runs)
	if rows[0][0] != "#1" || rows[0][1] != "300" || rows[1][3] != "-" || rows[1][4] != "-" {
		t.Errorf("rows = %v", rows)
	}

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || next.(ScoreboardModel).View() != "" {
		t.Error("q should quit the scoreboard")
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	if view := NewScoreboardModel(fakeScores{}, 80, 30).View(); !strings.Contains(view, "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
	if view := NewScoreboardModel(fakeScores{err: errors.New("locked")}, 80, 30).View(); !strings.Contains(view, "locked") {
		t.Error("scoreboard should show the load error")
	}
}
