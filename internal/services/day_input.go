package services

import (
	"errors"
	"strings"
	"unicode"

	"github.com/terraincognita07/pmsify/internal/models"
)

const maxSymptomTagLength = 40

var (
	ErrInvalidMood    = errors.New("invalid mood")
	ErrInvalidFlow    = errors.New("invalid flow")
	ErrInvalidSymptom = errors.New("invalid symptom")
)

var validMoods = map[string]struct{}{
	models.MoodGreat:    {},
	models.MoodGood:     {},
	models.MoodOkay:     {},
	models.MoodBad:      {},
	models.MoodTerrible: {},
}

var validFlows = map[string]struct{}{
	models.FlowSpotting: {},
	models.FlowLight:    {},
	models.FlowMedium:   {},
	models.FlowHeavy:    {},
}

// NormalizeMood accepts a known mood in any case; the empty string clears it.
func NormalizeMood(raw string) (string, error) {
	mood := strings.ToLower(strings.TrimSpace(raw))
	if mood == "" {
		return "", nil
	}
	if _, ok := validMoods[mood]; !ok {
		return "", ErrInvalidMood
	}
	return mood, nil
}

func NormalizeFlow(raw string) (string, error) {
	flow := strings.ToLower(strings.TrimSpace(raw))
	if flow == "" || flow == "none" {
		return "", nil
	}
	if _, ok := validFlows[flow]; !ok {
		return "", ErrInvalidFlow
	}
	return flow, nil
}

// NormalizeSymptomTag lower-cases a tag and joins words with dashes:
// " Back Pain " becomes "back-pain".
func NormalizeSymptomTag(raw string) (string, error) {
	fields := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-'
	})
	tag := strings.Join(fields, "-")
	if tag == "" || len(tag) > maxSymptomTagLength {
		return "", ErrInvalidSymptom
	}
	for _, r := range tag {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return "", ErrInvalidSymptom
		}
	}
	return tag, nil
}
