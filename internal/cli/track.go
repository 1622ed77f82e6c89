package cli

import (
	"fmt"

	"daytrack/internal/logger"
	"daytrack/internal/models"
)

type TrackCmd struct {
	Category string `arg:"" help:"Category to flip (goals|sport|work|finance|family)."`
	Date     string `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
	On       bool   `help:"Force the flag on instead of toggling." xor:"state"`
	Off      bool   `help:"Force the flag off instead of toggling." xor:"state"`
}

func (c *TrackCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	cat, err := parseCategory(c.Category)
	if err != nil {
		return err
	}
	key, err := resolveDateKey(c.Date)
	if err != nil {
		return err
	}

	value := !ctx.Store.Day(key).Categories[cat]
	if c.On {
		value = true
	}
	if c.Off {
		value = false
	}

	if err := ctx.Store.SetCategory(key, cat, value); err != nil {
		logger.Error("failed to persist category flag", "date", key, "category", cat, "err", err)
		return err
	}

	state := "off"
	if value {
		state = "on"
	}
	fmt.Printf("%s: %s is now %s\n", key, models.Labels[cat], state)
	return nil
}
