package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles shared by the command-line output.
var (
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline maps values onto block characters, sampled down to width.
// It carries no styling so callers can measure or compare it.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := max(len(values)/width, 1)

	var sb strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := int(norm * float64(len(sparkChars)-1))
		sb.WriteRune(sparkChars[min(max(idx, 0), len(sparkChars)-1)])
	}
	return sb.String()
}

// SparklineChart renders a colored sparkline, green for the high band.
func SparklineChart(values []float64, width int) string {
	var sb strings.Builder
	for _, c := range Sparkline(values, width) {
		switch {
		case c >= '▆':
			sb.WriteString(SparkHigh.Render(string(c)))
		case c >= '▃':
			sb.WriteString(SparkMid.Render(string(c)))
		default:
			sb.WriteString(SparkLow.Render(string(c)))
		}
	}
	return sb.String()
}

// Separator renders a horizontal rule width cells wide.
func Separator(width int) string {
	left := max((width-3)/2, 0)
	right := max(width-3-left, 0)
	return Subtle.Render(strings.Repeat("─", left) + " ◆ " + strings.Repeat("─", right))
}
