package chart

import (
	"math"
	"strings"
)

// Glyphs used by the terminal renderer.
const (
	glyphMood     = '•'
	glyphActivity = '█'
	glyphBaseline = '─'
)

// TermChart plots both trend series onto a cols x rows rune grid: the mood
// series as the flattened smooth curve, the activity series as a straight
// polyline, with a baseline and the label row underneath. Both series are
// normalized against maxVal. Returns "" when there is nothing to plot.
func TermChart(activity, moods []float64, labels []string, maxVal float64, cols, rows int) string {
	if len(activity) == 0 || cols < 4 || rows < 3 {
		return ""
	}

	const pad = 1.0
	width := float64(cols)
	height := float64(rows)

	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = make([]rune, cols)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	// Baseline along the bottom padding row.
	base := rows - 1 - int(pad)
	if base < 0 {
		base = rows - 1
	}
	for x := int(pad); x < cols-int(pad); x++ {
		grid[base][x] = glyphBaseline
	}

	set := func(p Point, g rune) {
		x := int(math.Round(p.X))
		y := int(math.Round(p.Y))
		if x < 0 || x >= cols || y < 0 || y >= rows {
			return
		}
		grid[y][x] = g
	}

	// Mood curve first so the activity line reads on top where they cross.
	curve := SmoothCurve(moods, maxVal, width, height, pad)
	for _, p := range curve.Flatten(3 * cols / max(len(moods), 1)) {
		set(p, glyphMood)
	}

	points := LinePoints(activity, maxVal, width, height, pad)
	for i := 0; i < len(points)-1; i++ {
		plotLine(points[i], points[i+1], func(p Point) { set(p, glyphActivity) })
	}
	if len(points) == 1 {
		set(points[0], glyphActivity)
	}

	lines := make([]string, 0, rows+1)
	for _, row := range grid {
		lines = append(lines, strings.TrimRight(string(row), " "))
	}
	if row := labelRow(points, labels, cols); row != "" {
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

// labelRow lays the non-empty labels under their x positions.
func labelRow(points []Point, labels []string, cols int) string {
	row := make([]rune, cols)
	for i := range row {
		row[i] = ' '
	}
	any := false
	for i, label := range labels {
		if label == "" || i >= len(points) {
			continue
		}
		start := int(math.Round(points[i].X)) - len(label)/2
		for j, r := range label {
			x := start + j
			if x >= 0 && x < cols {
				row[x] = r
				any = true
			}
		}
	}
	if !any {
		return ""
	}
	return strings.TrimRight(string(row), " ")
}

// plotLine samples the segment densely enough that adjacent cells connect.
func plotLine(a, b Point, set func(Point)) {
	steps := int(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))) * 2
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		set(Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t})
	}
}
