package game

import (
	"errors"
	"fmt"
)

// ErrNonPositiveHull indicates a ship spec with hull <= 0.
var ErrNonPositiveHull = errors.New("hull must be positive")

// ErrNegativeDamage indicates a weapon entry with a negative damage value.
var ErrNegativeDamage = errors.New("weapon damage must be non-negative")

// Ship is the immutable stat block for one duel participant. Missiles fire
// once each during the opening exchange; cannons re-fire every round until
// the duel ends. Each list entry is the fixed damage of one shot.
type Ship struct {
	Initiative int   `json:"initiative"`
	Hull       int   `json:"hull"`
	Computer   int   `json:"computer"`
	Shield     int   `json:"shield"`
	Missiles   []int `json:"missiles"`
	Cannons    []int `json:"cannons"`
}

// Validate rejects malformed specs before any simulation runs. Empty weapon
// lists are fine; a ship with no cannons just can never win the cannon phase.
func (s Ship) Validate() error {
	if s.Hull <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveHull, s.Hull)
	}
	for i, d := range s.Missiles {
		if d < 0 {
			return fmt.Errorf("%w: missile %d has damage %d", ErrNegativeDamage, i, d)
		}
	}
	for i, d := range s.Cannons {
		if d < 0 {
			return fmt.Errorf("%w: cannon %d has damage %d", ErrNegativeDamage, i, d)
		}
	}
	return nil
}
