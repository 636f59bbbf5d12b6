package services

type Phase int

const (
	PhaseUntracked Phase = iota
	PhaseMenstrual
	PhaseFollicular
	PhaseOvulation
	PhaseLuteal
)

var phaseKeys = map[Phase]string{
	PhaseUntracked:  "untracked",
	PhaseMenstrual:  "menstrual",
	PhaseFollicular: "follicular",
	PhaseOvulation:  "ovulation",
	PhaseLuteal:     "luteal",
}

var phaseIcons = map[Phase]string{
	PhaseUntracked:  "🌸",
	PhaseMenstrual:  "🌙",
	PhaseFollicular: "🌱",
	PhaseOvulation:  "🌸",
	PhaseLuteal:     "🍂",
}

var phaseLabels = map[Phase]string{
	PhaseUntracked:  "Track your first period to see cycle phase",
	PhaseMenstrual:  "Menstrual Phase - Rest and recharge 🌙",
	PhaseFollicular: "Follicular Phase - Energy building 🌱",
	PhaseOvulation:  "Ovulation Phase - Peak energy 🌸",
	PhaseLuteal:     "Luteal Phase - Prepare for rest 🍂",
}

func (phase Phase) Key() string {
	if key, ok := phaseKeys[phase]; ok {
		return key
	}
	return phaseKeys[PhaseUntracked]
}

func (phase Phase) Icon() string {
	if icon, ok := phaseIcons[phase]; ok {
		return icon
	}
	return phaseIcons[PhaseUntracked]
}

// Label is the built-in English display text.
func (phase Phase) Label() string {
	if label, ok := phaseLabels[phase]; ok {
		return label
	}
	return phaseLabels[PhaseUntracked]
}

func (phase Phase) String() string {
	return phase.Key()
}

func (phase Phase) MarshalText() ([]byte, error) {
	return []byte(phase.Key()), nil
}

// ClassifyPhase maps elapsed days since the last period start to a phase.
// cycleLength/2 is a real-valued threshold, so a 29-day cycle switches to
// ovulation once daysSinceLastPeriod reaches 15 (15 >= 14.5). All
// comparisons are strict.
func ClassifyPhase(daysSinceLastPeriod int, cycleLength int, periodLength int) Phase {
	half := float64(cycleLength) / 2
	elapsed := float64(daysSinceLastPeriod)

	switch {
	case daysSinceLastPeriod < periodLength:
		return PhaseMenstrual
	case elapsed < half:
		return PhaseFollicular
	case elapsed < half+3:
		return PhaseOvulation
	default:
		return PhaseLuteal
	}
}
