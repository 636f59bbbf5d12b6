package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/terraincognita07/pmsify/internal/services"
)

var (
	ErrUnknownExportFormat = errors.New("unknown export format")
	ErrClearNotConfirmed   = errors.New("clear data not confirmed")
)

func RunStatusCommand(tracker *services.Tracker, out io.Writer) error {
	view, err := tracker.Dashboard.Build(tracker.Today())
	if err != nil {
		return fmt.Errorf("build dashboard: %w", err)
	}

	fmt.Fprintf(out, "%s %s\n", view.PhaseIcon, view.PhaseLabel)
	fmt.Fprintf(out, "Today: %s\n", view.Today)
	if view.CycleDayLabel != "" {
		fmt.Fprintf(out, "Cycle: %s\n", view.CycleDayLabel)
	}
	if view.NextPeriodDate != "" {
		fmt.Fprintf(out, "Next period: %s (%s)\n", view.NextPeriodDate, view.NextPeriodLabel)
	} else {
		fmt.Fprintf(out, "Next period: %s\n", view.NextPeriodLabel)
	}
	if view.FertileWindowStart != "" {
		fmt.Fprintf(out, "Fertile window: %s - %s (%s)\n", view.FertileWindowStart, view.FertileWindowEnd, view.FertileLabel)
	}
	fmt.Fprintf(out, "Water: %d/%d\n", view.Water.Glasses, view.Water.Goal)
	fmt.Fprintf(out, "Tip: %s\n", view.Tip)

	engine, err := tracker.Cycles.LoadEngine()
	if err != nil {
		return fmt.Errorf("load cycles: %w", err)
	}
	for _, reminder := range services.DueReminders(engine, tracker.Today(), tracker.Localizer) {
		fmt.Fprintf(out, "🔔 %s\n", reminder.Message)
	}
	return nil
}

// RunMarkStartCommand opens a period on rawDay, or today when rawDay is empty.
func RunMarkStartCommand(tracker *services.Tracker, out io.Writer, rawDay string) error {
	day, err := resolveDay(tracker, rawDay)
	if err != nil {
		return err
	}

	period, created, err := tracker.Periods.MarkPeriodStart(day)
	if err != nil {
		return fmt.Errorf("mark period start: %w", err)
	}
	if !created {
		fmt.Fprintf(out, "Period already started on %s\n", services.FormatDay(period.StartDate))
		return nil
	}
	fmt.Fprintln(out, tracker.Localizer.Translate(tracker.Language(), "period.start_marked"))
	return nil
}

func RunMarkEndCommand(tracker *services.Tracker, out io.Writer, rawDay string) error {
	day, err := resolveDay(tracker, rawDay)
	if err != nil {
		return err
	}
	if _, err := tracker.Periods.MarkPeriodEnd(day); err != nil {
		return fmt.Errorf("mark period end: %w", err)
	}
	fmt.Fprintln(out, tracker.Localizer.Translate(tracker.Language(), "period.end_marked"))
	return nil
}

// RunExportCommand picks the format from the file extension.
func RunExportCommand(tracker *services.Tracker, out io.Writer, path string) error {
	var (
		payload []byte
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		payload, err = tracker.Export.ExportJSON()
	case ".csv":
		payload, err = tracker.Export.ExportCSV()
	case ".xlsx":
		payload, err = tracker.Export.ExportXLSX()
	default:
		return fmt.Errorf("%w: %q (use .json, .csv or .xlsx)", ErrUnknownExportFormat, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("export data: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Fprintf(out, "%s %s\n", tracker.Localizer.Translate(tracker.Language(), "data.exported"), path)
	return nil
}

func RunImportCommand(tracker *services.Tracker, out io.Writer, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	summary, err := tracker.Export.ImportDocument(raw)
	if err != nil {
		return fmt.Errorf("import data: %w", err)
	}
	fmt.Fprintln(out, tracker.Localizer.Translate(tracker.Language(), "data.imported"))
	fmt.Fprintf(out, "Periods: %d, daily logs: %d, water days: %d, notes: %d\n",
		summary.Periods, summary.DailyLogs, summary.Water, summary.Notes)
	return nil
}

// RunClearDataCommand wipes the store. Without assumeYes it asks on in
// and proceeds only on an explicit "yes".
func RunClearDataCommand(tracker *services.Tracker, in io.Reader, out io.Writer, assumeYes bool) error {
	if !assumeYes {
		confirmed, err := confirm(in, out, "This deletes all tracked data. Type \"yes\" to continue: ")
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrClearNotConfirmed
		}
	}

	if err := tracker.Data.ClearAllData(); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	fmt.Fprintln(out, tracker.Localizer.Translate(tracker.Language(), "data.cleared"))
	return nil
}

func resolveDay(tracker *services.Tracker, rawDay string) (time.Time, error) {
	rawDay = strings.TrimSpace(rawDay)
	if rawDay == "" || strings.EqualFold(rawDay, "today") {
		return tracker.Today(), nil
	}
	day, err := services.ParseDay(rawDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, use YYYY-MM-DD", services.ErrInvalidDay, rawDay)
	}
	return day, nil
}
