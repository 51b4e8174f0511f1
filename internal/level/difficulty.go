package level

// Difficulty is the AI opponent strength assigned to a level within a set.
// The same level definition can appear in several sets with different
// difficulties.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Difficulties lists all valid difficulties in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}
}

// ParseDifficulty maps a string to a Difficulty, reporting whether the
// string named a valid one.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return Difficulty(s), true
	default:
		return "", false
	}
}

// Valid reports whether d is one of the defined difficulties.
func (d Difficulty) Valid() bool {
	_, ok := ParseDifficulty(string(d))
	return ok
}
