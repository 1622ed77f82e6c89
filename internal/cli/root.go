package cli

import (
	"fmt"
	"strings"

	"daytrack/internal/backup"
	"daytrack/internal/datekey"
	"daytrack/internal/logger"
	"daytrack/internal/models"
	"daytrack/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticSnapshot takes a best-effort safety snapshot of the store
// file. Failures are logged, never fatal.
func (ctx *Context) PerformAutomaticSnapshot() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateSnapshot(); err != nil {
		logger.Warn("automatic snapshot failed", "err", err)
	}
}

// resolveDateKey turns user date input ("today" or YYYY-MM-DD) into a
// canonical date key.
func resolveDateKey(s string) (string, error) {
	if s == "" || s == "today" {
		return datekey.Today(), nil
	}
	t, err := datekey.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid date, use YYYY-MM-DD or 'today': %w", err)
	}
	return datekey.Format(t), nil
}

// parseCategory maps user input to a stable category key.
func parseCategory(s string) (models.Category, error) {
	id := strings.ToLower(strings.TrimSpace(s))
	if !models.IsValidCategory(id) {
		var ids []string
		for _, c := range models.Categories {
			ids = append(ids, string(c))
		}
		return "", fmt.Errorf("invalid category %q (want one of %s)", s, strings.Join(ids, ", "))
	}
	return models.Category(id), nil
}

// formatDay renders one day record for terminal output.
func formatDay(key string, rec models.DayRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", key)
	for _, cat := range models.Categories {
		mark := " "
		if rec.Categories[cat] {
			mark = "✓"
		}
		fmt.Fprintf(&b, "  [%s] %s\n", mark, models.Labels[cat])
	}
	fmt.Fprintf(&b, "\n  Mood: %.1f\n", rec.Mood)
	if rec.Note != "" {
		fmt.Fprintf(&b, "  Note: %s\n", rec.Note)
	}
	return b.String()
}
