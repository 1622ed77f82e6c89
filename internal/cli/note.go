package cli

import (
	"fmt"

	"daytrack/internal/logger"
)

type NoteCmd struct {
	Text  string `arg:"" optional:"" help:"Note text. Omit with --clear to erase."`
	Date  string `short:"d" help:"Date (YYYY-MM-DD or 'today')." default:"today"`
	Clear bool   `help:"Clear the day's note."`
}

func (c *NoteCmd) Validate() error {
	if c.Text == "" && !c.Clear {
		return fmt.Errorf("provide note text or --clear")
	}
	return nil
}

func (c *NoteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	key, err := resolveDateKey(c.Date)
	if err != nil {
		return err
	}

	text := c.Text
	if c.Clear {
		text = ""
	}

	if err := ctx.Store.SetNote(key, text); err != nil {
		logger.Error("failed to persist note", "date", key, "err", err)
		return err
	}

	if text == "" {
		fmt.Printf("%s: note cleared\n", key)
	} else {
		fmt.Printf("%s: note saved\n", key)
	}
	return nil
}
