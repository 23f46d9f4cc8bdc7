package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/maptrack/internal/dynamo"
	"github.com/san-kum/maptrack/internal/integrators"
	"github.com/san-kum/maptrack/internal/physics"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModel_TickAdvancesStandardMap(t *testing.T) {
	sm := physics.NewStandardMap(-1)
	x0 := dynamo.Point{Theta: 0.1, P: 0.2}
	m := NewModel("standard_map", sm, sm, x0, 3)

	if len(m.History()) != 1 || m.History()[0] != x0 {
		t.Fatalf("initial history = %v", m.History())
	}

	m = update(t, m, TickMsg{})

	want := x0
	for i := 0; i < 3; i++ {
		want = sm.Step(want)
	}
	if m.Step() != 3 || m.State() != want {
		t.Errorf("after one tick: step %d state %v, want 3 %v", m.Step(), m.State(), want)
	}
	if len(m.History()) != 4 {
		t.Errorf("history len = %d, want 4", len(m.History()))
	}
	if len(m.EnergyHistory()) != 0 {
		t.Error("standard map has no energy to chart")
	}
}

func TestModel_PauseStopsStepping(t *testing.T) {
	sm := physics.NewStandardMap(-1)
	m := NewModel("standard_map", sm, sm, dynamo.Point{Theta: 0.1}, 1)

	m = update(t, m, key(" "))
	if m.Running() {
		t.Fatal("space should pause")
	}
	m = update(t, m, TickMsg{})
	if m.Step() != 0 {
		t.Errorf("paused model stepped to %d", m.Step())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show paused status")
	}
}

func TestModel_TuneAndReset(t *testing.T) {
	sm := physics.NewStandardMap(-1)
	m := NewModel("standard_map", sm, sm, dynamo.Point{Theta: 0.1}, 1)

	m = update(t, m, key("up"))
	if math.Abs(sm.K-(-1.05)) > 1e-12 {
		t.Errorf("k = %f, want -1.05", sm.K)
	}

	m = update(t, m, TickMsg{})
	m = update(t, m, key("r"))
	if sm.K != -1 {
		t.Errorf("reset should restore k, got %f", sm.K)
	}
	if m.Step() != 0 || len(m.History()) != 1 {
		t.Errorf("reset should clear history, step %d len %d", m.Step(), len(m.History()))
	}
}

func TestModel_PendulumChartsEnergy(t *testing.T) {
	pend := physics.NewPendulum(math.Pi)
	s := integrators.Bind(integrators.NewYoshida4(), 1e-2, pend.Acceleration)
	m := NewModel("pendulum", s, pend, dynamo.Point{Theta: 0.1}, 5)

	for i := 0; i < 4; i++ {
		m = update(t, m, TickMsg{})
	}

	energies := m.EnergyHistory()
	if len(energies) != 21 {
		t.Fatalf("energy samples = %d, want 21", len(energies))
	}
	for _, e := range energies {
		if math.Abs(e-energies[0]) > 1e-6 {
			t.Errorf("energy %f strays from %f", e, energies[0])
		}
	}

	view := m.View()
	for _, want := range []string{"PENDULUM", "Energy", "omega"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_ThemeCycleAndQuit(t *testing.T) {
	sm := physics.NewStandardMap(0)
	m := NewModel("standard_map", sm, nil, dynamo.Point{}, 1)

	first := m.Theme().Name
	m = update(t, m, key("t"))
	if m.Theme().Name == first {
		t.Error("t should switch theme")
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestCanvas_Plot(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Plot(0, 0, 0, 1, 0, 1)
	c.Plot(1, 1, 0, 1, 0, 1)

	// bottom-left dot of cell 0 and top-right dot of cell 1
	if c.Grid[0][0] != blank|0x40 {
		t.Errorf("cell 0 = %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != blank|0x8 {
		t.Errorf("cell 1 = %U", c.Grid[0][1])
	}

	c.Plot(0.5, 0.5, 1, 1, 0, 1)
	c.Clear()
	for _, r := range c.Grid[0] {
		if r != blank {
			t.Errorf("clear left %U", r)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8); got != "▁▂▃▄▅▆▇█" {
		t.Errorf("Sparkline = %q", got)
	}
	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("empty Sparkline = %q", got)
	}
}

func TestSparklineChart(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	chart := SparklineChart(values, 8)
	if w := lipgloss.Width(chart); w != 8 {
		t.Errorf("chart width = %d, want 8", w)
	}
	for _, c := range Sparkline(values, 8) {
		if !strings.ContainsRune(chart, c) {
			t.Errorf("chart missing %q", c)
		}
	}
}

func TestSeparator(t *testing.T) {
	for _, w := range []int{20, 41} {
		sep := Separator(w)
		if got := lipgloss.Width(sep); got != w {
			t.Errorf("Separator(%d) width = %d", w, got)
		}
		if !strings.Contains(sep, "◆") {
			t.Errorf("Separator(%d) = %q", w, sep)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		th, err := GetTheme(name)
		if err != nil || th.Name != name {
			t.Errorf("GetTheme(%q) = %v, %v", name, th.Name, err)
		}
	}
	if _, err := GetTheme("solarized"); err == nil {
		t.Error("unknown theme should fail")
	}

	ocean, _ := GetTheme("ocean")
	m := NewModel("standard_map", physics.NewStandardMap(0), nil, dynamo.Point{}, 1).WithTheme(ocean)
	if m.Theme().Name != "ocean" {
		t.Errorf("theme = %q", m.Theme().Name)
	}
	if !strings.Contains(m.View(), "(ocean)") {
		t.Error("help line should name the theme")
	}
	// cycling continues from the chosen theme
	if m = update(t, m, key("t")); m.Theme().Name != "cyberpunk" {
		t.Errorf("after t theme = %q", m.Theme().Name)
	}
}
