// Package game implements the wire game core: procedural corridor
// generation, character kinematics, collision testing, and the run state
// machine. The package is UI-agnostic and has no external dependencies so
// the logic stays pure and testable.
package game

import (
	"errors"
	"fmt"
)

// Difficulty selects a corridor width / character speed tier. The tag set
// is closed and the values are a fixed contract shared with score storage
// and external score consumers; they are deliberately not configurable.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultySuperHard Difficulty = "super-hard"
)

// Setting holds the gameplay parameters a difficulty tier maps to.
type Setting struct {
	CorridorWidth float64 // Full corridor width in canvas pixels
	Speed         float64 // Character displacement per tick in canvas pixels
}

var settings = map[Difficulty]Setting{
	DifficultyEasy:      {CorridorWidth: 100, Speed: 2},
	DifficultyMedium:    {CorridorWidth: 60, Speed: 3},
	DifficultyHard:      {CorridorWidth: 40, Speed: 4},
	DifficultySuperHard: {CorridorWidth: 30, Speed: 6},
}

// ErrUnknownDifficulty is returned when a difficulty tag is not one of the
// four fixed tiers.
var ErrUnknownDifficulty = errors.New("game: unknown difficulty")

// Difficulties returns all tiers ordered from widest corridor to narrowest.
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyEasy,
		DifficultyMedium,
		DifficultyHard,
		DifficultySuperHard,
	}
}

// ParseDifficulty validates a difficulty tag.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := settings[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Setting returns the gameplay parameters for this tier.
func (d Difficulty) Setting() (Setting, error) {
	s, ok := settings[d]
	if !ok {
		return Setting{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(d))
	}
	return s, nil
}

// String returns the wire-format tag.
func (d Difficulty) String() string {
	return string(d)
}
