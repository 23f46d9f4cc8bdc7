// Package export renders stored trajectories as standalone SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/maptrack/internal/dynamo"
)

type bounds struct {
	minX, minY, rangeX, rangeY float64
}

// padded bounds of the phase portrait, 10% margin on each side
func phaseBounds(traj dynamo.Trajectory) bounds {
	minX, maxX := traj.Theta[0], traj.Theta[0]
	minY, maxY := traj.P[0], traj.P[0]
	for i := 1; i < traj.Len(); i++ {
		minX = min(minX, traj.Theta[i])
		maxX = max(maxX, traj.Theta[i])
		minY = min(minY, traj.P[i])
		maxY = max(maxY, traj.P[i])
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	return bounds{
		minX:   minX - rangeX*0.1,
		minY:   minY - rangeY*0.1,
		rangeX: rangeX * 1.2,
		rangeY: rangeY * 1.2,
	}
}

func (b bounds) project(theta, p float64, width, height int) (float64, float64) {
	x := (theta - b.minX) / b.rangeX * float64(width)
	y := float64(height) - (p-b.minY)/b.rangeY*float64(height)
	return x, y
}

func header(sb *strings.Builder, width, height int) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)
}

// TrajectoryToSVG draws the phase portrait as a single connected path.
// Suited to continuous flows such as the pendulum.
func TrajectoryToSVG(traj dynamo.Trajectory, width, height int, strokeColor string) string {
	if traj.Len() < 2 {
		return ""
	}

	b := phaseBounds(traj)

	var sb strings.Builder
	header(&sb, width, height)
	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor)

	for i := 0; i < traj.Len(); i++ {
		x, y := b.project(traj.Theta[i], traj.P[i], width, height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// ScatterToSVG draws one dot per sample. Map orbits wrap around the
// reduction interval, so connecting consecutive samples would streak.
func ScatterToSVG(trajs []dynamo.Trajectory, width, height int, fillColor string) string {
	var all dynamo.Trajectory
	for _, t := range trajs {
		all.Theta = append(all.Theta, t.Theta...)
		all.P = append(all.P, t.P...)
	}
	if all.Len() == 0 {
		return ""
	}

	b := phaseBounds(all)

	var sb strings.Builder
	header(&sb, width, height)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", fillColor)

	for i := 0; i < all.Len(); i++ {
		x, y := b.project(all.Theta[i], all.P[i], width, height)
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"1.0\"/>\n", x, y)
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
