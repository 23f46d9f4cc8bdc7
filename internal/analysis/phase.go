package analysis

import (
	"strings"

	"github.com/san-kum/maptrack/internal/dynamo"
)

// PhasePortraitToASCII renders theta against p on a width×height grid.
// Early samples are drawn with '.', middle with 'o' and late with '•'.
func PhasePortraitToASCII(traj dynamo.Trajectory, width, height int) string {
	n := traj.Len()
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}

	// Find bounds
	minX, maxX := traj.Theta[0], traj.Theta[0]
	minY, maxY := traj.P[0], traj.P[0]

	for i := 0; i < n; i++ {
		x, y := traj.Theta[i], traj.P[i]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	// Draw axes if they cross the visible area
	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			canvas[row][col] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if canvas[row][col] == '│' {
				canvas[row][col] = '┼'
			} else {
				canvas[row][col] = '─'
			}
		}
	}

	for i := 0; i < n; i++ {
		col := int((traj.Theta[i] - minX) / rangeX * float64(width-1))
		row := height - 1 - int((traj.P[i]-minY)/rangeY*float64(height-1))
		if row < 0 || row >= height || col < 0 || col >= width {
			continue
		}

		switch {
		case i < n/3:
			canvas[row][col] = '.'
		case i < 2*n/3:
			canvas[row][col] = 'o'
		default:
			canvas[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
