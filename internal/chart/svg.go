package chart

import (
	"fmt"
	"io"
)

// SVG rendering of the trend chart: baseline, smooth mood curve, straight
// activity polyline and the label row, mirroring what the TUI draws.

const (
	// SVGWidth, SVGHeight and SVGPadding are the stock chart dimensions.
	SVGWidth   = 300.0
	SVGHeight  = 150.0
	SVGPadding = 20.0
)

// WriteSVG emits a self-contained SVG document for the two series. Labels
// with empty strings are skipped.
func WriteSVG(w io.Writer, activity, moods []float64, labels []string, maxVal, width, height, padding float64) error {
	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %s %s\">\n",
		fnum(width), fnum(height)); err != nil {
		return err
	}

	fmt.Fprintf(w,
		"  <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"#333\" stroke-width=\"1\"/>\n",
		fnum(padding), fnum(height-padding), fnum(width-padding), fnum(height-padding))

	if path := SmoothCurve(moods, maxVal, width, height, padding).PathData(); path != "" {
		fmt.Fprintf(w,
			"  <path d=\"%s\" fill=\"none\" stroke=\"rgba(239,68,68,0.6)\" stroke-width=\"3\" stroke-linecap=\"round\" stroke-linejoin=\"round\"/>\n",
			path)
	}

	points := LinePoints(activity, maxVal, width, height, padding)
	if len(points) > 0 {
		fmt.Fprint(w, "  <polyline points=\"")
		for i, p := range points {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%s,%s", fnum(p.X), fnum(p.Y))
		}
		fmt.Fprint(w, "\" fill=\"none\" stroke=\"#fff\" stroke-width=\"2\" stroke-linecap=\"round\" stroke-linejoin=\"round\"/>\n")
	}

	for i, label := range labels {
		if label == "" || i >= len(points) {
			continue
		}
		fmt.Fprintf(w,
			"  <text x=\"%s\" y=\"%s\" fill=\"#666\" font-size=\"10\" text-anchor=\"middle\">%s</text>\n",
			fnum(points[i].X), fnum(height), label)
	}

	_, err := fmt.Fprint(w, "</svg>\n")
	return err
}
