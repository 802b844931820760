package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cricket-arcade/internal/core"
	"github.com/vovakirdan/cricket-arcade/internal/cricket"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", keyRunes("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", keyRunes("d"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPowerShot},
		{"s", keyRunes("s"), core.ActionDefensive},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"p", keyRunes("p"), core.ActionPause},
		{"r", keyRunes("r"), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionMenu},
		{"m", keyRunes("m"), core.ActionMenu},
		{"q", keyRunes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", keyRunes("z"), core.ActionNone},
		{"screenshot is not a game action", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHoldLatch(t *testing.T) {
	l := NewHoldLatch(60)
	if l.Ticks() != 9 {
		t.Fatalf("Ticks() = %d, expected 9 at 60 Hz", l.Ticks())
	}

	l.Press(core.ActionConfirm)
	if l.Held(core.ActionConfirm) {
		t.Error("presses must not latch")
	}

	l.Press(core.ActionLeft)
	for i := 0; i < 9; i++ {
		frame := core.NewInputFrame()
		l.Apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
		l.Advance()
	}
	if l.Held(core.ActionLeft) {
		t.Error("hold should expire after 9 ticks")
	}
}

func TestHoldLatchRepeatExtends(t *testing.T) {
	l := NewHoldLatch(60)
	l.Press(core.ActionPowerShot)
	for i := 0; i < 30; i++ {
		if i%5 == 0 {
			l.Press(core.ActionPowerShot) // auto-repeat
		}
		if !l.Held(core.ActionPowerShot) {
			t.Fatalf("tick %d: repeat should keep the swing held", i)
		}
		l.Advance()
	}
}

func TestHoldLatchOppositeDirection(t *testing.T) {
	l := NewHoldLatch(60)
	l.Press(core.ActionLeft)
	l.Press(core.ActionDefensive)
	l.Press(core.ActionRight)

	if l.Held(core.ActionLeft) {
		t.Error("right should release left")
	}
	if !l.Held(core.ActionRight) || !l.Held(core.ActionDefensive) {
		t.Error("right and defensive should both be held")
	}

	l.Reset()
	if l.Held(core.ActionRight) || l.Held(core.ActionDefensive) {
		t.Error("Reset should release everything")
	}
}

func TestHoldLatchSlowTickRate(t *testing.T) {
	if got := NewHoldLatch(1).Ticks(); got != 1 {
		t.Errorf("Ticks() = %d, expected at least 1", got)
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	g := cricket.New(cricket.Options{})
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(g, cfg, Options{Logger: log.New(io.Discard), ScreenshotDir: t.TempDir()})
	m.Init()
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelStartsMatchAndHoldsKeys(t *testing.T) {
	m := newTestModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, TickMsg(time.Now()))
	if m.game.Phase() != cricket.StatePlaying {
		t.Fatalf("enter should start a match, phase=%s", m.game.Phase())
	}

	// One key event moves the batsman for the whole hold window
	snap := m.game.Snapshot()
	start := snap.BatsmanX
	m = step(t, m, keyRunes("a"))
	for i := 0; i < m.latch.Ticks(); i++ {
		m = step(t, m, TickMsg(time.Now()))
	}
	snap = m.game.Snapshot()
	moved := start - snap.BatsmanX
	if want := 6000 * m.latch.Ticks(); moved != want {
		t.Errorf("batsman moved %d milli-units, expected %d", moved, want)
	}

	// Then it stops
	m = step(t, m, TickMsg(time.Now()))
	after := m.game.Snapshot()
	if after.BatsmanX != snap.BatsmanX {
		t.Error("batsman should stop once the hold expires")
	}
}

func TestModelPressIsSingleTick(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, TickMsg(time.Now()))
	m = step(t, m, TickMsg(time.Now()))

	if m.game.MenuSelection() != cricket.MenuDifficulty {
		t.Errorf("selection = %d, expected one step down", m.game.MenuSelection())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, keyRunes("q"))

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsMatch(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 30; i++ {
		m = step(t, m, TickMsg(time.Now()))
	}
	before := m.game.Snapshot()

	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 40-footerRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
	after := m.game.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("resize must not reset the match")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	if !strings.Contains(view, "ENHANCED CRICKET") {
		t.Error("menu title missing from view")
	}
	if !strings.Contains(view, "power shot") {
		t.Error("help footer missing from view")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.shots)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "cricket_") {
		t.Fatalf("screenshots = %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(m.shots, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "ENHANCED CRICKET") {
		t.Error("screenshot should contain the menu")
	}
	if !strings.HasPrefix(m.status, "saved ") {
		t.Errorf("status = %q", m.status)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "hi", core.ColorWhite)
	out := RenderScreen(s)

	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
	if !strings.Contains(out, "hi") {
		t.Errorf("text missing from %q", out)
	}
}
