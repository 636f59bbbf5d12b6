package services

import (
	"reflect"
	"testing"

	"github.com/terraincognita07/pmsify/internal/models"
)

func TestCycleEngineSinglePeriodScenario(t *testing.T) {
	t.Parallel()

	engine := NewCycleEngine(
		[]models.PeriodRecord{periodBetween(t, "p1", "2024-01-01", "2024-01-05")},
		settingsWith(28, 5),
	)

	if !engine.IsPeriodDay(mustParseDay(t, "2024-01-03")) {
		t.Fatal("expected 2024-01-03 to be a period day")
	}
	if engine.IsPeriodDay(mustParseDay(t, "2024-01-10")) {
		t.Fatal("expected 2024-01-10 not to be a period day")
	}

	next, ok := engine.NextPeriodDate()
	if !ok || FormatDay(next) != "2024-01-29" {
		t.Fatalf("expected next period 2024-01-29, got %s (ok=%v)", FormatDay(next), ok)
	}

	ovulation, ok := engine.OvulationDate()
	if !ok || FormatDay(ovulation) != "2024-01-15" {
		t.Fatalf("expected ovulation 2024-01-15, got %s", FormatDay(ovulation))
	}
	start, end, ok := engine.FertileWindow()
	if !ok || FormatDay(start) != "2024-01-10" || FormatDay(end) != "2024-01-16" {
		t.Fatalf("expected fertile window 2024-01-10..2024-01-16, got %s..%s", FormatDay(start), FormatDay(end))
	}
	if !engine.IsFertileDay(mustParseDay(t, "2024-01-15")) {
		t.Fatal("expected 2024-01-15 to be fertile")
	}
	if engine.IsFertileDay(mustParseDay(t, "2024-01-09")) || engine.IsFertileDay(mustParseDay(t, "2024-01-17")) {
		t.Fatal("expected days outside the window not to be fertile")
	}

	if phase := engine.CurrentPhase(mustParseDay(t, "2024-01-20")); phase != PhaseLuteal {
		t.Fatalf("expected luteal on 2024-01-20, got %s", phase)
	}
}

func TestCycleEngineTwoPeriodsCompletedCycle(t *testing.T) {
	t.Parallel()

	engine := NewCycleEngine([]models.PeriodRecord{
		periodBetween(t, "p1", "2024-01-01", "2024-01-05"),
		periodBetween(t, "p2", "2024-01-30", ""),
	}, settingsWith(28, 5))

	cycles := engine.CompletedCycles()
	if len(cycles) != 1 {
		t.Fatalf("expected 1 completed cycle, got %d", len(cycles))
	}
	if cycles[0].Length != 29 || FormatDay(cycles[0].StartDate) != "2024-01-01" {
		t.Fatalf("unexpected cycle %+v", cycles[0])
	}
	if got := engine.AverageCycleLength(); got != 29 {
		t.Fatalf("expected average cycle length 29, got %d", got)
	}
}

func TestIsPeriodDayCoversEveryDayOfEachPeriod(t *testing.T) {
	t.Parallel()

	periods := []models.PeriodRecord{
		periodBetween(t, "closed", "2024-03-01", "2024-03-04"),
		periodBetween(t, "open", "2024-03-28", ""),
	}
	engine := NewCycleEngine(periods, settingsWith(28, 3))

	inside := []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04", "2024-03-28", "2024-03-29", "2024-03-30"}
	for _, raw := range inside {
		if !engine.IsPeriodDay(mustParseDay(t, raw)) {
			t.Fatalf("expected %s to be a period day", raw)
		}
	}

	outside := []string{"2024-02-29", "2024-03-05", "2024-03-27", "2024-03-31"}
	for _, raw := range outside {
		if engine.IsPeriodDay(mustParseDay(t, raw)) {
			t.Fatalf("expected %s not to be a period day", raw)
		}
	}
}

func TestIsPredictedPeriod(t *testing.T) {
	t.Parallel()

	engine := NewCycleEngine([]models.PeriodRecord{periodBetween(t, "p1", "2024-01-01", "")}, settingsWith(28, 5))

	for _, testCase := range []struct {
		day  string
		want bool
	}{
		{day: "2024-01-28", want: false},
		{day: "2024-01-29", want: true},
		{day: "2024-02-02", want: true},
		{day: "2024-02-03", want: false},
	} {
		if got := engine.IsPredictedPeriod(mustParseDay(t, testCase.day)); got != testCase.want {
			t.Fatalf("IsPredictedPeriod(%s) = %v, want %v", testCase.day, got, testCase.want)
		}
	}
}

func TestCycleEngineWithoutPeriods(t *testing.T) {
	t.Parallel()

	engine := NewCycleEngine(nil, settingsWith(30, 4))
	day := mustParseDay(t, "2024-05-05")

	if _, ok := engine.LastPeriod(); ok {
		t.Fatal("expected no last period")
	}
	if _, ok := engine.NextPeriodDate(); ok {
		t.Fatal("expected no next period")
	}
	if _, _, ok := engine.FertileWindow(); ok {
		t.Fatal("expected no fertile window")
	}
	if engine.IsPeriodDay(day) || engine.IsPredictedPeriod(day) || engine.IsFertileDay(day) {
		t.Fatal("expected every day classification to be false")
	}
	if phase := engine.CurrentPhase(day); phase != PhaseUntracked {
		t.Fatalf("expected untracked, got %s", phase)
	}
	if cycles := engine.CompletedCycles(); cycles == nil || len(cycles) != 0 {
		t.Fatalf("expected empty non-nil cycles, got %#v", cycles)
	}
	if got := engine.AverageCycleLength(); got != 30 {
		t.Fatalf("expected fallback cycle length 30, got %d", got)
	}
	if got := engine.AveragePeriodLength(); got != 4 {
		t.Fatalf("expected fallback period length 4, got %d", got)
	}
}

func TestCompletedCyclesIgnoresInputOrder(t *testing.T) {
	t.Parallel()

	sorted := []models.PeriodRecord{
		periodBetween(t, "a", "2024-01-01", "2024-01-05"),
		periodBetween(t, "b", "2024-01-27", "2024-01-31"),
		periodBetween(t, "c", "2024-02-26", "2024-03-01"),
		periodBetween(t, "d", "2024-03-25", ""),
	}
	shuffled := []models.PeriodRecord{sorted[2], sorted[0], sorted[3], sorted[1]}

	want := CompletedCycles(sorted)
	if len(want) != len(sorted)-1 {
		t.Fatalf("expected %d cycles, got %d", len(sorted)-1, len(want))
	}
	for _, cycle := range want {
		if cycle.Length < 0 {
			t.Fatalf("expected non-negative cycle length, got %d", cycle.Length)
		}
	}
	if got := CompletedCycles(shuffled); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order-invariant cycles\nwant %+v\ngot  %+v", want, got)
	}

	lengths := []int{want[0].Length, want[1].Length, want[2].Length}
	if !reflect.DeepEqual(lengths, []int{26, 30, 28}) {
		t.Fatalf("unexpected cycle lengths %v", lengths)
	}
}

func TestAverageLengthsRoundToNearest(t *testing.T) {
	t.Parallel()

	// Cycles 29 and 30 average 29.5; periods of 4 and 5 days average 4.5.
	engine := NewCycleEngine([]models.PeriodRecord{
		periodBetween(t, "a", "2024-01-01", "2024-01-04"),
		periodBetween(t, "b", "2024-01-30", "2024-02-03"),
		periodBetween(t, "c", "2024-02-29", ""),
	}, settingsWith(28, 5))

	if got := engine.AverageCycleLength(); got != 30 {
		t.Fatalf("expected rounded average cycle length 30, got %d", got)
	}
	if got := engine.AveragePeriodLength(); got != 5 {
		t.Fatalf("expected rounded average period length 5, got %d", got)
	}
}

func TestAveragePeriodLengthSkipsOpenPeriods(t *testing.T) {
	t.Parallel()

	engine := NewCycleEngine([]models.PeriodRecord{
		periodBetween(t, "a", "2024-01-01", "2024-01-03"),
		periodBetween(t, "b", "2024-01-29", ""),
	}, settingsWith(28, 5))

	if got := engine.AveragePeriodLength(); got != 3 {
		t.Fatalf("expected average period length 3, got %d", got)
	}
}

func TestCycleLengthTrendKeepsMostRecent(t *testing.T) {
	t.Parallel()

	periods := make([]models.PeriodRecord, 0, 9)
	start := mustParseDay(t, "2023-01-01")
	for index := 0; index < 9; index++ {
		periods = append(periods, models.PeriodRecord{ID: string(rune('a' + index)), StartDate: AddDays(start, index*28+index)})
	}
	engine := NewCycleEngine(periods, settingsWith(28, 5))

	trend := engine.CycleLengthTrend(TrendMaxPoints)
	if len(trend) != TrendMaxPoints {
		t.Fatalf("expected %d trend points, got %d", TrendMaxPoints, len(trend))
	}
	all := engine.CompletedCycles()
	if !reflect.DeepEqual(trend, all[len(all)-TrendMaxPoints:]) {
		t.Fatal("expected trend to be the trailing completed cycles")
	}
	if full := engine.CycleLengthTrend(0); len(full) != len(all) {
		t.Fatalf("expected non-positive maxPoints to return all cycles, got %d", len(full))
	}
}

func TestLastPeriodPicksLatestStart(t *testing.T) {
	t.Parallel()

	engine := NewCycleEngine([]models.PeriodRecord{
		periodBetween(t, "late", "2024-04-01", ""),
		periodBetween(t, "early", "2024-03-01", "2024-03-05"),
	}, settingsWith(28, 5))

	last, ok := engine.LastPeriod()
	if !ok || last.ID != "late" {
		t.Fatalf("expected latest period, got %+v", last)
	}
}

func TestShortCycleOvulationPrecedesPeriodStart(t *testing.T) {
	t.Parallel()

	engine := NewCycleEngine([]models.PeriodRecord{periodBetween(t, "p1", "2024-01-20", "")}, settingsWith(10, 3))

	ovulation, ok := engine.OvulationDate()
	if !ok || FormatDay(ovulation) != "2024-01-16" {
		t.Fatalf("expected ovulation 2024-01-16, got %s", FormatDay(ovulation))
	}
}

func TestCycleEngineIsIdempotent(t *testing.T) {
	t.Parallel()

	periods := []models.PeriodRecord{
		periodBetween(t, "a", "2024-01-01", "2024-01-05"),
		periodBetween(t, "b", "2024-01-30", ""),
	}
	engine := NewCycleEngine(periods, settingsWith(28, 5))
	today := mustParseDay(t, "2024-02-10")

	first := []any{engine.CurrentPhase(today), engine.CompletedCycles(), engine.AverageCycleLength(), engine.FertileWindowStatus(today)}
	second := []any{engine.CurrentPhase(today), engine.CompletedCycles(), engine.AverageCycleLength(), engine.FertileWindowStatus(today)}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
	if periods[1].EndDate != nil {
		t.Fatal("expected engine not to mutate its input")
	}
}
