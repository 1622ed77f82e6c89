package cli

import "fmt"

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	key, err := resolveDateKey(c.Date)
	if err != nil {
		return err
	}

	fmt.Print(formatDay(key, ctx.Store.Day(key)))
	return nil
}
