package services

import (
	"fmt"

	"github.com/terraincognita07/pmsify/internal/security"
)

const TipsPerPhase = 5

// Translator resolves localized messages; a missing key comes back unchanged.
type Translator interface {
	Translate(language string, key string) string
}

var defaultTips = map[Phase][]string{
	PhaseMenstrual: {
		"Rest is productive too. Take it easy today! 🛌",
		"Iron-rich foods can help with energy during your period 🥬",
		"Gentle stretching can help with cramps 🧘‍♀️",
		"Stay hydrated - it helps with bloating 💧",
		"Dark chocolate is okay - you deserve it! 🍫",
	},
	PhaseFollicular: {
		"Great time to start new projects! Your energy is building 💪",
		"Try cardio workouts - your body can handle more intensity 🏃‍♀️",
		"Perfect time for social activities and networking 👥",
		"Your skin might be clearer - great time for photos! 📸",
		"Focus on protein to support your growing energy 🥚",
	},
	PhaseOvulation: {
		"You're at peak energy - tackle challenging tasks! ⚡",
		"Great time for important conversations 💬",
		"Your confidence is naturally higher today 👑",
		"Perfect time for job interviews or presentations 🎯",
		"You might feel more social and outgoing 🌟",
	},
	PhaseLuteal: {
		"Focus on completing projects rather than starting new ones 📝",
		"Magnesium can help with PMS symptoms 🌰",
		"Practice self-compassion - mood changes are normal 💕",
		"Gentle yoga can help with tension 🧘‍♀️",
		"Prepare healthy snacks for cravings 🥜",
	},
	PhaseUntracked: {
		"Listen to your body - it knows what it needs 💝",
		"Every cycle is different, and that's normal 🌈",
		"Track your patterns to understand your unique rhythm 📊",
		"Self-care isn't selfish - it's necessary 🛁",
		"You're stronger than you think! 💪",
	},
}

// TipsForPhase returns the built-in English tips; unknown phases get the general list.
func TipsForPhase(phase Phase) []string {
	tips, ok := defaultTips[phase]
	if !ok {
		tips = defaultTips[PhaseUntracked]
	}
	result := make([]string, len(tips))
	copy(result, tips)
	return result
}

// LocalizedTipsForPhase looks up tips.<phase>.<n>, keeping the English
// tip for any key the translator does not know.
func LocalizedTipsForPhase(translator Translator, language string, phase Phase) []string {
	tips := TipsForPhase(phase)
	if translator == nil {
		return tips
	}
	for index := range tips {
		key := fmt.Sprintf("tips.%s.%d", phase.Key(), index+1)
		if translated := translator.Translate(language, key); translated != key {
			tips[index] = translated
		}
	}
	return tips
}

// SelectTip is the deterministic half of tip selection.
func SelectTip(tips []string, seed uint64) string {
	if len(tips) == 0 {
		return ""
	}
	return tips[seed%uint64(len(tips))]
}

func RandomTip(tips []string) string {
	index, err := security.RandomIndex(len(tips))
	if err != nil {
		return SelectTip(tips, 0)
	}
	return SelectTip(tips, uint64(index))
}
