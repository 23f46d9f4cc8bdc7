package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/maptrack/internal/dynamo"
)

const (
	width           = 60
	height          = 20
	historyCapacity = 2000
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model steps a trajectory on every tick and renders its phase portrait.
type Model struct {
	stepper       dynamo.Stepper
	params        dynamo.Configurable
	energy        dynamo.Hamiltonian
	state         dynamo.Point
	initialState  dynamo.Point
	step          int
	stepsPerTick  int
	canvas        *Canvas
	history       []dynamo.Point
	energyHistory []float64
	running       bool
	modelName     string
	paramKeys     []string
	initialParams map[string]float64
	selected      int
	theme         Theme
}

// NewModel prepares a live view of stepper starting at x0. params may be
// nil; energy is charted when params also implements dynamo.Hamiltonian.
func NewModel(modelName string, stepper dynamo.Stepper, params dynamo.Configurable, x0 dynamo.Point, stepsPerTick int) Model {
	m := Model{
		stepper:       stepper,
		params:        params,
		state:         x0,
		initialState:  x0,
		stepsPerTick:  max(stepsPerTick, 1),
		canvas:        NewCanvas(width, height),
		history:       make([]dynamo.Point, 0, historyCapacity),
		energyHistory: make([]float64, 0, historyCapacity),
		running:       true,
		modelName:     modelName,
		initialParams: map[string]float64{},
		theme:         Themes[0],
	}

	if params != nil {
		for k, v := range params.GetParams() {
			m.paramKeys = append(m.paramKeys, k)
			m.initialParams[k] = v
		}
		sort.Strings(m.paramKeys)
		if h, ok := params.(dynamo.Hamiltonian); ok {
			m.energy = h
		}
	}

	m.record()
	return m
}

// WithTheme returns a copy of m drawn in theme t.
func (m Model) WithTheme(t Theme) Model {
	m.theme = t
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input events and steps the trajectory.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			if len(m.paramKeys) > 0 {
				m.selected = (m.selected + 1) % len(m.paramKeys)
			}
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "t":
			m.theme = m.theme.next()
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.stepsPerTick; i++ {
				m.advance()
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) adjustParam(factor float64) {
	if m.params == nil || len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	_ = m.params.SetParam(key, m.params.GetParams()[key]*factor)
}

func (m *Model) advance() {
	m.state = m.stepper.Step(m.state)
	m.step++
	m.record()
}

// record appends the current state to the bounded histories.
func (m *Model) record() {
	m.history = append(m.history, m.state)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}

	if m.energy != nil {
		m.energyHistory = append(m.energyHistory, m.energy.Energy(m.state.Theta, m.state.P))
		if len(m.energyHistory) > historyCapacity {
			m.energyHistory = m.energyHistory[1:]
		}
	}
}

// reset restores the initial state and parameters.
func (m *Model) reset() {
	m.state = m.initialState
	m.step = 0
	m.history = m.history[:0]
	m.energyHistory = m.energyHistory[:0]
	if m.params != nil {
		for k, v := range m.initialParams {
			_ = m.params.SetParam(k, v)
		}
	}
	m.record()
}

func (m Model) Step() int                { return m.step }
func (m Model) State() dynamo.Point      { return m.state }
func (m Model) History() []dynamo.Point  { return m.history }
func (m Model) Running() bool            { return m.running }
func (m Model) Theme() Theme             { return m.theme }
func (m Model) EnergyHistory() []float64 { return m.energyHistory }

// draw plots the history scaled to its own bounding box.
func (m *Model) draw() {
	m.canvas.Clear()
	if len(m.history) == 0 {
		return
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, pt := range m.history {
		if !pt.IsValid() {
			continue
		}
		minX, maxX = min(minX, pt.Theta), max(maxX, pt.Theta)
		minY, maxY = min(minY, pt.P), max(maxY, pt.P)
	}
	if minX > maxX {
		return
	}
	if maxX-minX == 0 {
		minX, maxX = minX-1, maxX+1
	}
	if maxY-minY == 0 {
		minY, maxY = minY-1, maxY+1
	}

	for _, pt := range m.history {
		m.canvas.Plot(pt.Theta, pt.P, minX, maxX, minY, maxY)
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	st := m.theme.styles()

	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.modelName)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	s.WriteString(st.label.Render("Step") + st.value.Render(fmt.Sprintf("%d", m.step)) + "\n")
	s.WriteString(st.label.Render("Theta") + st.value.Render(fmt.Sprintf("%.4f", m.state.Theta)) + "\n")
	s.WriteString(st.label.Render("P") + st.value.Render(fmt.Sprintf("%.4f", m.state.P)) + "\n")
	if n := len(m.energyHistory); n > 0 {
		s.WriteString(st.label.Render("Energy") + st.value.Render(fmt.Sprintf("%.6f", m.energyHistory[n-1])) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	if len(m.paramKeys) == 0 {
		s.WriteString(st.label.Render("  (none)") + "\n")
	} else {
		values := m.params.GetParams()
		for i, k := range m.paramKeys {
			line := fmt.Sprintf("%-10s %.4f", k, values[k])
			if i == m.selected {
				s.WriteString(st.active.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + st.value.Render(line) + "\n")
			}
		}
	}

	s.WriteString(st.help.Render("SP:Pause R:Reset Q:Quit\nTab:Param ↑↓:Tune T:Theme (" + m.theme.Name + ")"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}
