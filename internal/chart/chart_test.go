package chart

import (
	"math"
	"strings"
	"testing"
)

const (
	testWidth   = 300.0
	testHeight  = 150.0
	testPadding = 20.0
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLinePointsSpacingAndScale(t *testing.T) {
	samples := []float64{0, 2.5, 5}
	points := LinePoints(samples, 5, testWidth, testHeight, testPadding)

	if len(points) != len(samples) {
		t.Fatalf("expected %d points, got %d", len(samples), len(points))
	}

	// X positions span [padding, width-padding] with even spacing.
	if !almostEqual(points[0].X, testPadding) {
		t.Errorf("first x: expected %v, got %v", testPadding, points[0].X)
	}
	if !almostEqual(points[2].X, testWidth-testPadding) {
		t.Errorf("last x: expected %v, got %v", testWidth-testPadding, points[2].X)
	}
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			t.Errorf("x not increasing at index %d: %v then %v", i, points[i-1].X, points[i].X)
		}
	}

	// Y inverts: value 0 sits on the bottom padding line, maxVal on the top.
	if !almostEqual(points[0].Y, testHeight-testPadding) {
		t.Errorf("zero value y: expected %v, got %v", testHeight-testPadding, points[0].Y)
	}
	if !almostEqual(points[2].Y, testPadding) {
		t.Errorf("max value y: expected %v, got %v", testPadding, points[2].Y)
	}
	mid := testHeight / 2
	if !almostEqual(points[1].Y, mid) {
		t.Errorf("midpoint y: expected %v, got %v", mid, points[1].Y)
	}
}

func TestLinePointsSingleSample(t *testing.T) {
	points := LinePoints([]float64{3}, 5, testWidth, testHeight, testPadding)
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if !almostEqual(points[0].X, testPadding) {
		t.Errorf("single sample x: expected %v, got %v", testPadding, points[0].X)
	}
}

func TestLinePointsEmpty(t *testing.T) {
	if points := LinePoints(nil, 5, testWidth, testHeight, testPadding); points != nil {
		t.Errorf("expected nil for no samples, got %v", points)
	}
}

func TestSmoothCurveEmpty(t *testing.T) {
	curve := SmoothCurve(nil, 5, testWidth, testHeight, testPadding)
	if !curve.Empty() {
		t.Error("expected empty curve for no samples")
	}
	if curve.PathData() != "" {
		t.Errorf("expected empty path data, got %q", curve.PathData())
	}
	if pts := curve.Flatten(8); pts != nil {
		t.Errorf("expected nil flatten, got %v", pts)
	}
}

func TestSmoothCurveSingleSample(t *testing.T) {
	curve := SmoothCurve([]float64{4}, 5, testWidth, testHeight, testPadding)
	if curve.Empty() {
		t.Fatal("single sample should not produce an empty curve")
	}
	if len(curve.Segments) != 0 {
		t.Errorf("expected no segments, got %d", len(curve.Segments))
	}

	// Path degenerates to a bare move command.
	path := curve.PathData()
	if !strings.HasPrefix(path, "M ") || strings.Contains(path, "C") {
		t.Errorf("expected bare move command, got %q", path)
	}
}

func TestSmoothCurveControlPoints(t *testing.T) {
	samples := []float64{1, 3, 2, 4}
	points := LinePoints(samples, 5, testWidth, testHeight, testPadding)
	curve := SmoothCurve(samples, 5, testWidth, testHeight, testPadding)

	if len(curve.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(curve.Segments))
	}

	// First segment clamps the missing previous neighbor to the start point.
	p0, p1, p2, p3 := points[0], points[0], points[1], points[2]
	s := curve.Segments[0]
	wantC1 := Point{X: p1.X + (p2.X-p0.X)/6, Y: p1.Y + (p2.Y-p0.Y)/6}
	wantC2 := Point{X: p2.X - (p3.X-p1.X)/6, Y: p2.Y - (p3.Y-p1.Y)/6}
	if !almostEqual(s.Ctrl1.X, wantC1.X) || !almostEqual(s.Ctrl1.Y, wantC1.Y) {
		t.Errorf("segment 0 ctrl1: expected %v, got %v", wantC1, s.Ctrl1)
	}
	if !almostEqual(s.Ctrl2.X, wantC2.X) || !almostEqual(s.Ctrl2.Y, wantC2.Y) {
		t.Errorf("segment 0 ctrl2: expected %v, got %v", wantC2, s.Ctrl2)
	}

	// Last segment clamps the missing next-next neighbor to the end point.
	p1, p2, p3 = points[2], points[3], points[3]
	s = curve.Segments[2]
	wantC2 = Point{X: p2.X - (p3.X-p1.X)/6, Y: p2.Y - (p3.Y-p1.Y)/6}
	if !almostEqual(s.Ctrl2.X, wantC2.X) || !almostEqual(s.Ctrl2.Y, wantC2.Y) {
		t.Errorf("segment 2 ctrl2: expected %v, got %v", wantC2, s.Ctrl2)
	}
	if !almostEqual(s.End.X, p2.X) || !almostEqual(s.End.Y, p2.Y) {
		t.Errorf("segment 2 end: expected %v, got %v", p2, s.End)
	}
}

func TestPathDataFormat(t *testing.T) {
	curve := SmoothCurve([]float64{1, 2}, 5, testWidth, testHeight, testPadding)
	path := curve.PathData()

	if !strings.HasPrefix(path, "M ") {
		t.Errorf("path should start with a move command, got %q", path)
	}
	if strings.Count(path, " C ") != 1 {
		t.Errorf("expected one cubic command, got %q", path)
	}
}

func TestFlattenInterpolatesEndpoints(t *testing.T) {
	samples := []float64{1, 4, 2}
	curve := SmoothCurve(samples, 5, testWidth, testHeight, testPadding)
	points := LinePoints(samples, 5, testWidth, testHeight, testPadding)

	flat := curve.Flatten(8)
	if len(flat) != 1+2*8 {
		t.Fatalf("expected %d flattened points, got %d", 1+2*8, len(flat))
	}

	// The flattened polyline passes exactly through every sample point.
	first, mid, last := flat[0], flat[8], flat[16]
	if !almostEqual(first.X, points[0].X) || !almostEqual(first.Y, points[0].Y) {
		t.Errorf("flatten start: expected %v, got %v", points[0], first)
	}
	if !almostEqual(mid.X, points[1].X) || !almostEqual(mid.Y, points[1].Y) {
		t.Errorf("flatten midpoint: expected %v, got %v", points[1], mid)
	}
	if !almostEqual(last.X, points[2].X) || !almostEqual(last.Y, points[2].Y) {
		t.Errorf("flatten end: expected %v, got %v", points[2], last)
	}
}
