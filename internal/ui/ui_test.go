package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-orbitor/internal/astro"
	"github.com/litescript/ls-orbitor/internal/logging"
	"github.com/litescript/ls-orbitor/internal/orbit"
	"github.com/litescript/ls-orbitor/internal/zodiac"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	eng := orbit.NewEngine(orbit.DefaultConfig())
	s := zodiac.NewSearcher(eng, zodiac.DefaultOptions())
	return New(eng, s, OrreryOptions{
		Frame:  orbit.Heliocentric,
		Scale:  astro.ScaleLogR,
		Labels: LabelAll,
	}, logging.Discard())
}

func TestModelInitializing(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before sizing = %q", got)
	}
	if m.Init() != nil {
		t.Error("expected no startup command")
	}
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(Model)

	if !m.ready {
		t.Fatal("expected ready after WindowSizeMsg")
	}
	o := m.Orrery()
	if o.width != 120 || o.height != 50-headerLines-2 {
		t.Errorf("orrery size = %dx%d, want 120x%d", o.width, o.height, 50-headerLines-2)
	}

	view := m.View()
	for _, want := range []string{"Kepler orrery", "[1] Orrery", "[2] Signs", "q: quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !containsRune(view, '☉') {
		t.Error("orrery view should contain ☉")
	}
}

func TestModelViewSwitching(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(Model)

	if m.ActiveView() != ViewOrrery {
		t.Fatalf("expected orrery view at start, got %d", m.ActiveView())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.ActiveView() != ViewSigns {
		t.Fatalf("expected signs view after tab, got %d", m.ActiveView())
	}
	view := m.View()
	for _, want := range []string{"Capricorn", "→ Aquarius", "elong"} {
		if !strings.Contains(view, want) {
			t.Errorf("signs view missing %q", want)
		}
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.ActiveView() != ViewOrrery {
		t.Errorf("expected tab to wrap to the orrery, got %d", m.ActiveView())
	}

	next, _ = m.Update(key('2'))
	m = next.(Model)
	if m.ActiveView() != ViewSigns {
		t.Errorf("expected signs view after 2, got %d", m.ActiveView())
	}
	next, _ = m.Update(key('o'))
	m = next.(Model)
	if m.ActiveView() != ViewOrrery {
		t.Errorf("expected orrery view after o, got %d", m.ActiveView())
	}
}

func TestModelForwardsClockKeys(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(key('s'))
	m = next.(Model)

	// Stepping works from the signs view too
	next, _ = m.Update(key('>'))
	m = next.(Model)
	if m.Orrery().Days() != 10 {
		t.Errorf("days = %g, want 10", m.Orrery().Days())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if !m.Orrery().Playing() || cmd == nil {
		t.Error("space should start playback with a tick")
	}
	next, _ = m.Update(OrreryTickMsg{})
	m = next.(Model)
	if m.Orrery().Days() != 11 {
		t.Errorf("days after tick = %g, want 11", m.Orrery().Days())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	for _, k := range []tea.KeyMsg{key('q'), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestGradientColor(t *testing.T) {
	if got := gradientColor(0, 10); got != "#3B82F6" {
		t.Errorf("gradientColor(0) = %s, want the blue start", got)
	}
	if got := clampByte(300); got != 255 {
		t.Errorf("clampByte(300) = %d", got)
	}
	if got := clampByte(-4); got != 0 {
		t.Errorf("clampByte(-4) = %d", got)
	}
}
