package game

// DefaultTimeBudgetSecs is used for (mode, difficulty) pairs missing
// from the budget table.
const DefaultTimeBudgetSecs = 600

type modeDifficulty struct {
	mode       Mode
	difficulty Difficulty
}

// timeBudgets is the countdown budget in seconds per (mode, difficulty).
var timeBudgets = map[modeDifficulty]int{
	{ModeBeatTheClock, DifficultyEasy}:   900,
	{ModeBeatTheClock, DifficultyMedium}: 750,
	{ModeBeatTheClock, DifficultyHard}:   600,
	{ModeMemory, DifficultyEasy}:         600,
	{ModeMemory, DifficultyMedium}:       480,
	{ModeMemory, DifficultyHard}:         360,
	{ModeMirror, DifficultyEasy}:         720,
	{ModeMirror, DifficultyMedium}:       600,
	{ModeMirror, DifficultyHard}:         480,
}

// burnRates is the calorie burn in kcal per elapsed minute.
var burnRates = map[modeDifficulty]float64{
	{ModeBeatTheClock, DifficultyEasy}:   4,
	{ModeBeatTheClock, DifficultyMedium}: 5,
	{ModeBeatTheClock, DifficultyHard}:   6,
	{ModeMemory, DifficultyEasy}:         3,
	{ModeMemory, DifficultyMedium}:       4,
	{ModeMemory, DifficultyHard}:         5,
	{ModeMirror, DifficultyEasy}:         5,
	{ModeMirror, DifficultyMedium}:       6,
	{ModeMirror, DifficultyHard}:         8,
}

// pointsPerSecond is the base scoring rate per mode.
var pointsPerSecond = map[Mode]int{
	ModeBeatTheClock: 8,
	ModeMemory:       10,
	ModeMirror:       12,
}

// TimeBudgetSecs returns the countdown budget for the pairing, falling
// back to DefaultTimeBudgetSecs for unknown combinations.
func TimeBudgetSecs(m Mode, d Difficulty) int {
	if b, ok := timeBudgets[modeDifficulty{m, d}]; ok {
		return b
	}
	return DefaultTimeBudgetSecs
}

// BurnRate returns the kcal-per-minute burn rate for the pairing.
func BurnRate(m Mode, d Difficulty) float64 {
	return burnRates[modeDifficulty{m, d}]
}

// PointsPerSecond returns the base scoring rate for the mode.
func PointsPerSecond(m Mode) int {
	return pointsPerSecond[m]
}

// Multiplier returns the difficulty scoring weight: 1/2/3 for
// easy/medium/hard.
func Multiplier(d Difficulty) int {
	switch d {
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 1
	}
}

// Calories converts elapsed play time to a floored calorie count.
func Calories(m Mode, d Difficulty, elapsedSecs int) int {
	mins := float64(elapsedSecs) / 60
	return int(mins * BurnRate(m, d))
}

// FinalScore computes the completion score for a run of elapsedSecs.
func FinalScore(m Mode, d Difficulty, elapsedSecs int) int {
	return elapsedSecs * PointsPerSecond(m) * Multiplier(d)
}
