package chart

import (
	"strings"
	"testing"
)

func TestTermChartEmptySeries(t *testing.T) {
	if out := TermChart(nil, nil, nil, 5, 72, 16); out != "" {
		t.Errorf("expected empty output for no data, got %q", out)
	}
}

func TestTermChartTooSmallGrid(t *testing.T) {
	activity := []float64{1, 2, 3}
	if out := TermChart(activity, activity, nil, 5, 3, 2); out != "" {
		t.Errorf("expected empty output for undersized grid, got %q", out)
	}
}

func TestTermChartDrawsBothSeries(t *testing.T) {
	activity := []float64{1, 3, 2, 5, 4, 0, 2}
	moods := []float64{2, 4, 3, 5, 4.5, 0, 3}
	labels := []string{"24", "25", "26", "27", "28", "29", "30"}

	out := TermChart(activity, moods, labels, 5, 72, 16)
	if out == "" {
		t.Fatal("expected chart output")
	}

	if !strings.ContainsRune(out, glyphActivity) {
		t.Error("activity polyline missing from chart")
	}
	if !strings.ContainsRune(out, glyphMood) {
		t.Error("mood curve missing from chart")
	}
	if !strings.ContainsRune(out, glyphBaseline) {
		t.Error("baseline missing from chart")
	}
	for _, label := range labels {
		if !strings.Contains(out, label) {
			t.Errorf("label %q missing from chart", label)
		}
	}

	// Rendered rows stay inside the requested grid plus the label row.
	lines := strings.Split(out, "\n")
	if len(lines) > 17 {
		t.Errorf("expected at most 17 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len([]rune(line)) > 72 {
			t.Errorf("line %d exceeds %d columns", i, 72)
		}
	}
}

func TestTermChartSkipsEmptyLabels(t *testing.T) {
	activity := []float64{1, 2, 3, 4, 5, 4}
	labels := []string{"01", "", "", "", "", "06"}

	out := TermChart(activity, activity, labels, 5, 72, 16)
	if !strings.Contains(out, "01") || !strings.Contains(out, "06") {
		t.Error("expected labeled positions to appear")
	}
}

func TestWriteSVGStructure(t *testing.T) {
	activity := []float64{1, 3, 2}
	moods := []float64{2, 4, 3}
	labels := []string{"01", "", "03"}

	var b strings.Builder
	err := WriteSVG(&b, activity, moods, labels, 5, SVGWidth, SVGHeight, SVGPadding)
	if err != nil {
		t.Fatalf("failed to write svg: %v", err)
	}
	out := b.String()

	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(out, "</svg>\n") {
		t.Error("output is not a complete svg document")
	}
	if !strings.Contains(out, "viewBox=\"0 0 300 150\"") {
		t.Error("missing viewBox with stock dimensions")
	}
	if !strings.Contains(out, "<path d=\"M ") {
		t.Error("missing mood curve path")
	}
	if !strings.Contains(out, "<polyline points=\"") {
		t.Error("missing activity polyline")
	}
	if strings.Count(out, "<text ") != 2 {
		t.Errorf("expected 2 label elements, got %d", strings.Count(out, "<text "))
	}
}

func TestWriteSVGEmptySeries(t *testing.T) {
	var b strings.Builder
	if err := WriteSVG(&b, nil, nil, nil, 5, SVGWidth, SVGHeight, SVGPadding); err != nil {
		t.Fatalf("failed to write svg: %v", err)
	}
	out := b.String()

	// Still a valid document with the baseline, just no series elements.
	if !strings.Contains(out, "<line ") {
		t.Error("missing baseline")
	}
	if strings.Contains(out, "<path ") || strings.Contains(out, "<polyline ") {
		t.Error("expected no series elements for empty input")
	}
}
