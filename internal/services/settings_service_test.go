package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/pmsify/internal/models"
)

func intPointer(value int) *int {
	return &value
}

func boolPointer(value bool) *bool {
	return &value
}

func stringPointer(value string) *string {
	return &value
}

func TestSettingsServiceLoadNormalizesStoredValues(t *testing.T) {
	t.Parallel()

	repo := &settingsRepositoryStub{settings: models.Settings{CycleLength: 0, PeriodLength: -2}}
	service := NewSettingsService(repo, mapTranslator{})

	settings, err := service.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if settings.CycleLength != models.DefaultCycleLength || settings.PeriodLength != models.DefaultPeriodLength {
		t.Fatalf("expected defaults after normalization, got %+v", settings)
	}
	if settings.Language != models.DefaultLanguage {
		t.Fatalf("expected default language, got %q", settings.Language)
	}
}

func TestSettingsServiceUpdateValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		update SettingsUpdate
		want   error
	}{
		{name: "cycle too short", update: SettingsUpdate{CycleLength: intPointer(0)}, want: ErrSettingsCycleLengthOutOfRange},
		{name: "cycle too long", update: SettingsUpdate{CycleLength: intPointer(91)}, want: ErrSettingsCycleLengthOutOfRange},
		{name: "period too long", update: SettingsUpdate{PeriodLength: intPointer(15)}, want: ErrSettingsPeriodLengthOutOfRange},
		{name: "unknown language", update: SettingsUpdate{Language: stringPointer("xx")}, want: ErrSettingsLanguageUnsupported},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			repo := &settingsRepositoryStub{settings: models.DefaultSettings()}
			service := NewSettingsService(repo, mapTranslator{})
			if _, err := service.Update(testCase.update); !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
			if repo.saves != 0 {
				t.Fatal("expected invalid update not to be saved")
			}
		})
	}
}

func TestSettingsServiceUpdateAppliesPartialChanges(t *testing.T) {
	t.Parallel()

	repo := &settingsRepositoryStub{settings: models.DefaultSettings()}
	service := NewSettingsService(repo, mapTranslator{})

	updated, err := service.Update(SettingsUpdate{
		CycleLength:       intPointer(31),
		SelfcareReminders: boolPointer(false),
		DarkMode:          boolPointer(true),
		Language:          stringPointer("ru"),
	})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	if updated.CycleLength != 31 || updated.PeriodLength != models.DefaultPeriodLength {
		t.Fatalf("unexpected lengths %+v", updated)
	}
	if updated.Reminders.Selfcare || !updated.Reminders.Period || !updated.Reminders.Ovulation {
		t.Fatalf("unexpected reminders %+v", updated.Reminders)
	}
	if !updated.DarkMode || updated.Language != "ru" {
		t.Fatalf("unexpected dark mode or language %+v", updated)
	}
	if repo.saves != 1 || repo.settings.CycleLength != 31 {
		t.Fatalf("expected one save with new values, got %d saves", repo.saves)
	}
}

func TestSettingsServiceWrapsRepositoryErrors(t *testing.T) {
	t.Parallel()

	service := NewSettingsService(&settingsRepositoryStub{loadErr: errStubFailure}, nil)
	if _, err := service.Load(); !errors.Is(err, ErrSettingsLoadFailed) {
		t.Fatalf("expected ErrSettingsLoadFailed, got %v", err)
	}

	service = NewSettingsService(&settingsRepositoryStub{settings: models.DefaultSettings(), saveErr: errStubFailure}, nil)
	if _, err := service.Update(SettingsUpdate{DarkMode: boolPointer(true)}); !errors.Is(err, ErrSettingsSaveFailed) {
		t.Fatalf("expected ErrSettingsSaveFailed, got %v", err)
	}
}
