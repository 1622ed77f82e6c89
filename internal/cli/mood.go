package cli

import (
	"fmt"

	"daytrack/internal/logger"
	"daytrack/internal/models"
)

type MoodCmd struct {
	Value float64 `arg:"" help:"Mood score (1.0-5.0)."`
	Date  string  `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *MoodCmd) Validate() error {
	if c.Value < models.MoodMin || c.Value > models.MoodMax {
		return fmt.Errorf("mood must be between %.0f and %.0f", models.MoodMin, models.MoodMax)
	}
	return nil
}

func (c *MoodCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	key, err := resolveDateKey(c.Date)
	if err != nil {
		return err
	}

	if err := ctx.Store.SetMood(key, c.Value); err != nil {
		logger.Error("failed to persist mood", "date", key, "err", err)
		return err
	}

	fmt.Printf("%s: mood set to %.1f\n", key, c.Value)
	return nil
}
