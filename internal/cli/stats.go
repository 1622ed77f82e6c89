package cli

import (
	"fmt"
	"os"
	"time"

	"daytrack/internal/chart"
	"daytrack/internal/models"
	"daytrack/internal/stats"
)

type StatsCmd struct {
	Window string `arg:"" help:"Aggregation window (week|month|year)." default:"week"`
	Width  int    `help:"Chart width in columns." default:"72"`
	Height int    `help:"Chart height in rows." default:"16"`
	SVG    string `help:"Write the chart as an SVG file instead of drawing it." type:"path"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	window, err := stats.ParseWindow(c.Window)
	if err != nil {
		return err
	}

	series := stats.Build(time.Now(), ctx.Store.AllDays(), window)

	if c.SVG != "" {
		f, err := os.Create(c.SVG)
		if err != nil {
			return fmt.Errorf("failed to create SVG file: %w", err)
		}
		defer f.Close()
		if err := chart.WriteSVG(f, series.Activity, series.Moods, series.Labels,
			models.MoodMax, chart.SVGWidth, chart.SVGHeight, chart.SVGPadding); err != nil {
			return fmt.Errorf("failed to write SVG: %w", err)
		}
		fmt.Printf("Wrote chart to %s\n", c.SVG)
		return nil
	}

	out := chart.TermChart(series.Activity, series.Moods, series.Labels,
		models.MoodMax, c.Width, c.Height)
	if out == "" {
		fmt.Println("No data to chart.")
		return nil
	}

	fmt.Println(out)
	fmt.Println()
	fmt.Println("  • mood   █ activity")
	return nil
}
