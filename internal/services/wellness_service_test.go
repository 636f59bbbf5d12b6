package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/pmsify/internal/models"
)

func TestWaterServiceAddGlassReachesGoalOnce(t *testing.T) {
	t.Parallel()

	service := NewWaterService(newWaterRepositoryStub())
	day := mustParseDay(t, "2024-05-01")

	finishedCount := 0
	var status WaterStatus
	for glass := 1; glass <= models.DailyWaterGoal+2; glass++ {
		var err error
		status, err = service.AddGlass(day)
		if err != nil {
			t.Fatalf("AddGlass() unexpected error: %v", err)
		}
		if status.Glasses != glass {
			t.Fatalf("expected %d glasses, got %d", glass, status.Glasses)
		}
		if status.JustFinished {
			finishedCount++
			if glass != models.DailyWaterGoal {
				t.Fatalf("expected JustFinished only on glass %d, got glass %d", models.DailyWaterGoal, glass)
			}
		}
	}

	if finishedCount != 1 {
		t.Fatalf("expected goal to be announced once, got %d", finishedCount)
	}
	if !status.GoalReached || status.Percent != 100 {
		t.Fatalf("expected capped completed status, got %+v", status)
	}
}

func TestWaterServiceResetAndStatus(t *testing.T) {
	t.Parallel()

	service := NewWaterService(newWaterRepositoryStub())
	day := mustParseDay(t, "2024-05-01")

	for index := 0; index < 2; index++ {
		if _, err := service.AddGlass(day); err != nil {
			t.Fatalf("AddGlass() unexpected error: %v", err)
		}
	}
	status, err := service.Status(day)
	if err != nil || status.Glasses != 2 || status.Percent != 25 {
		t.Fatalf("unexpected status %+v (%v)", status, err)
	}

	status, err = service.Reset(day)
	if err != nil || status.Glasses != 0 {
		t.Fatalf("unexpected reset status %+v (%v)", status, err)
	}
	if other, _ := service.Status(mustParseDay(t, "2024-05-02")); other.Glasses != 0 {
		t.Fatalf("expected untouched day to be empty, got %d", other.Glasses)
	}
}

func TestWaterServiceWrapsSaveError(t *testing.T) {
	t.Parallel()

	repo := newWaterRepositoryStub()
	repo.saveErr = errStubFailure
	if _, err := NewWaterService(repo).AddGlass(mustParseDay(t, "2024-05-01")); !errors.Is(err, ErrWaterSaveFailed) {
		t.Fatalf("expected ErrWaterSaveFailed, got %v", err)
	}
}

func TestNoteServiceOverwritesDayNote(t *testing.T) {
	t.Parallel()

	repo := newNoteRepositoryStub()
	service := NewNoteService(repo)
	day := mustParseDay(t, "2024-05-01")

	if text, err := service.Note(day); err != nil || text != "" {
		t.Fatalf("expected empty note, got %q (%v)", text, err)
	}
	if err := service.SaveNote(day, "first"); err != nil {
		t.Fatalf("SaveNote() unexpected error: %v", err)
	}
	if err := service.SaveNote(day, "second"); err != nil {
		t.Fatalf("SaveNote() unexpected error: %v", err)
	}
	if text, _ := service.Note(day); text != "second" {
		t.Fatalf("expected overwritten note, got %q", text)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected one note row, got %d", len(repo.entries))
	}
}
