package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/pmsify/internal/models"
	"github.com/xuri/excelize/v2"
)

var (
	ErrExportLoadFailed  = errors.New("export load failed")
	ErrExportBuildFailed = errors.New("export build failed")
	ErrImportSaveFailed  = errors.New("import save failed")
)

var ExportCSVHeaders = []string{"Date", "Period", "Mood", "Flow", "Symptoms", "Water", "Notes"}

const (
	xlsxDailySheet   = "Daily"
	xlsxPeriodsSheet = "Periods"
	xlsxCyclesSheet  = "Cycles"
)

type SnapshotStore interface {
	Load() (models.Snapshot, error)
	Replace(snapshot models.Snapshot) error
	Clear() error
}

type ExportService struct {
	snapshots SnapshotStore
	now       func() time.Time
}

type ImportSummary struct {
	Periods   int `json:"periods"`
	DailyLogs int `json:"dailyLogs"`
	Water     int `json:"waterIntake"`
	Notes     int `json:"notes"`
}

// ExportRow is one calendar day that carries any logged data.
type ExportRow struct {
	Date     string
	Period   bool
	Mood     string
	Flow     string
	Symptoms []string
	Water    int
	Notes    string
}

func NewExportService(snapshots SnapshotStore) *ExportService {
	return &ExportService{snapshots: snapshots, now: time.Now}
}

func (service *ExportService) load() (models.Snapshot, error) {
	snapshot, err := service.snapshots.Load()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", ErrExportLoadFailed, err)
	}
	return snapshot, nil
}

func (service *ExportService) BuildDocument() (Document, error) {
	snapshot, err := service.load()
	if err != nil {
		return Document{}, err
	}
	return BuildDocument(snapshot), nil
}

func (service *ExportService) ExportJSON() ([]byte, error) {
	document, err := service.BuildDocument()
	if err != nil {
		return nil, err
	}
	serialized, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportBuildFailed, err)
	}
	return serialized, nil
}

// ImportDocument replaces every stored record with the decoded document.
// Nothing is written when the document fails validation.
func (service *ExportService) ImportDocument(raw []byte) (ImportSummary, error) {
	document, err := ParseDocument(raw)
	if err != nil {
		return ImportSummary{}, err
	}
	snapshot, err := document.ToSnapshot(service.now().UTC())
	if err != nil {
		return ImportSummary{}, err
	}
	if err := service.snapshots.Replace(snapshot); err != nil {
		return ImportSummary{}, fmt.Errorf("%w: %v", ErrImportSaveFailed, err)
	}
	return ImportSummary{
		Periods:   len(snapshot.Periods),
		DailyLogs: len(snapshot.DailyLogs),
		Water:     len(snapshot.WaterIntake),
		Notes:     len(snapshot.Notes),
	}, nil
}

func (service *ExportService) BuildRows() ([]ExportRow, error) {
	snapshot, err := service.load()
	if err != nil {
		return nil, err
	}
	return BuildExportRows(snapshot), nil
}

func BuildExportRows(snapshot models.Snapshot) []ExportRow {
	engine := NewCycleEngine(snapshot.Periods, snapshot.Settings)
	rowsByDay := make(map[string]*ExportRow)
	row := func(day time.Time) *ExportRow {
		key := FormatDay(day)
		existing, ok := rowsByDay[key]
		if !ok {
			existing = &ExportRow{Date: key, Period: engine.IsPeriodDay(day)}
			rowsByDay[key] = existing
		}
		return existing
	}

	for _, logEntry := range snapshot.DailyLogs {
		if !DayHasData(logEntry) {
			continue
		}
		current := row(logEntry.Date)
		current.Mood = logEntry.Mood
		current.Flow = logEntry.Flow
		current.Symptoms = append([]string(nil), logEntry.Symptoms...)
	}
	for _, water := range snapshot.WaterIntake {
		if water.Glasses <= 0 {
			continue
		}
		row(water.Date).Water = water.Glasses
	}
	for _, note := range snapshot.Notes {
		if strings.TrimSpace(note.Text) == "" {
			continue
		}
		row(note.Date).Notes = note.Text
	}

	rows := make([]ExportRow, 0, len(rowsByDay))
	for _, key := range sortedKeys(rowsByDay) {
		rows = append(rows, *rowsByDay[key])
	}
	return rows
}

func (row ExportRow) Cells() []string {
	return []string{
		row.Date,
		yesNo(row.Period),
		row.Mood,
		row.Flow,
		strings.Join(row.Symptoms, "; "),
		strconv.Itoa(row.Water),
		row.Notes,
	}
}

func (service *ExportService) ExportCSV() ([]byte, error) {
	rows, err := service.BuildRows()
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(ExportCSVHeaders); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportBuildFailed, err)
	}
	for _, row := range rows {
		if err := writer.Write(row.Cells()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExportBuildFailed, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportBuildFailed, err)
	}
	return output.Bytes(), nil
}

// ExportXLSX writes a workbook with the daily rows, the period records and
// the completed cycles on separate sheets.
func (service *ExportService) ExportXLSX() ([]byte, error) {
	snapshot, err := service.load()
	if err != nil {
		return nil, err
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", xlsxDailySheet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportBuildFailed, err)
	}
	if err := writeSheet(workbook, xlsxDailySheet, ExportCSVHeaders, dailySheetRows(BuildExportRows(snapshot))); err != nil {
		return nil, err
	}

	if _, err := workbook.NewSheet(xlsxPeriodsSheet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportBuildFailed, err)
	}
	if err := writeSheet(workbook, xlsxPeriodsSheet, []string{"Start", "End", "Length"}, periodSheetRows(snapshot)); err != nil {
		return nil, err
	}

	if _, err := workbook.NewSheet(xlsxCyclesSheet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportBuildFailed, err)
	}
	if err := writeSheet(workbook, xlsxCyclesSheet, []string{"Start", "Length"}, cycleSheetRows(snapshot)); err != nil {
		return nil, err
	}

	var output bytes.Buffer
	if _, err := workbook.WriteTo(&output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportBuildFailed, err)
	}
	return output.Bytes(), nil
}

func writeSheet(workbook *excelize.File, sheet string, headers []string, rows [][]any) error {
	header := make([]any, 0, len(headers))
	for _, title := range headers {
		header = append(header, title)
	}
	if err := workbook.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%w: %v", ErrExportBuildFailed, err)
	}
	for index, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrExportBuildFailed, err)
		}
		values := values
		if err := workbook.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("%w: %v", ErrExportBuildFailed, err)
		}
	}
	return nil
}

func dailySheetRows(rows []ExportRow) [][]any {
	result := make([][]any, 0, len(rows))
	for _, row := range rows {
		result = append(result, []any{
			row.Date,
			yesNo(row.Period),
			row.Mood,
			row.Flow,
			strings.Join(row.Symptoms, "; "),
			row.Water,
			row.Notes,
		})
	}
	return result
}

func periodSheetRows(snapshot models.Snapshot) [][]any {
	engine := NewCycleEngine(snapshot.Periods, snapshot.Settings)
	periods := append([]models.PeriodRecord(nil), snapshot.Periods...)
	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].StartDate.Before(periods[j].StartDate)
	})

	result := make([][]any, 0, len(periods))
	for _, period := range periods {
		end := ""
		if !period.IsOpen() {
			end = FormatDay(*period.EndDate)
		}
		length := DaysBetween(NormalizeDay(period.StartDate), engine.EffectiveEnd(period)) + 1
		result = append(result, []any{FormatDay(period.StartDate), end, length})
	}
	return result
}

func cycleSheetRows(snapshot models.Snapshot) [][]any {
	cycles := CompletedCycles(snapshot.Periods)
	result := make([][]any, 0, len(cycles))
	for _, cycle := range cycles {
		result = append(result, []any{FormatDay(cycle.StartDate), cycle.Length})
	}
	return result
}

func ExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("pmsify-data-%s.%s", now.Format(DayLayout), extension)
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
