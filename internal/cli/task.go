package cli

import (
	"fmt"
	"time"

	"daytrack/internal/logger"
)

type TaskAddCmd struct {
	Text string `arg:"" help:"Task text."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	task, err := ctx.Store.AddTask(c.Text)
	if err != nil {
		logger.Error("failed to persist task", "err", err)
		return err
	}
	if task.ID == 0 {
		// Blank text, nothing created
		return nil
	}

	fmt.Printf("Added task: %s (ID: %d)\n", task.Text, task.ID)
	return nil
}

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks := ctx.Store.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	for _, t := range tasks {
		created := time.UnixMilli(t.ID).Format("2006-01-02 15:04")
		fmt.Printf("  %d  %s  (added %s)\n", t.ID, t.Text, created)
	}
	return nil
}

type TaskDeleteCmd struct {
	ID int64 `arg:"" help:"ID of the task to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeleteTask(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted task %d\n", c.ID)
	return nil
}
