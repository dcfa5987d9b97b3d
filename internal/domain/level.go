package domain

// Level is a CEFR proficiency level. Levels are totally ordered
// A1 < A2 < B1 < B2 < C1 < C2.
type Level string

// The six CEFR levels, lowest to highest.
const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists all CEFR levels in ascending order.
// Callers must not mutate the returned slice.
func Levels() []Level {
	return []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}
}

// IsValid reports whether l is one of the six CEFR levels.
func (l Level) IsValid() bool {
	switch l {
	case LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// Index returns the zero-based position of l in the CEFR ordering,
// or -1 if l is not a valid level.
func (l Level) Index() int {
	for i, level := range Levels() {
		if level == l {
			return i
		}
	}
	return -1
}

// Next returns the level one step above l. C2 has no next level and
// returns itself.
func (l Level) Next() Level {
	idx := l.Index()
	levels := Levels()
	if idx < 0 || idx >= len(levels)-1 {
		return LevelC2
	}
	return levels[idx+1]
}

// Before reports whether l is strictly lower than other in the CEFR ordering.
func (l Level) Before(other Level) bool {
	return l.Index() < other.Index()
}

// ParseLevel converts a string to a Level.
// Returns ErrInvalidLevel if the string is not a CEFR level.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.IsValid() {
		return "", ErrInvalidLevel
	}
	return l, nil
}
