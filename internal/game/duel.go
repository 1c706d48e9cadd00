// Package game implements deterministic-rules duel resolution for
// Eclipse-style ship combat. A duel is a pure function of the two ship specs
// and the random stream it draws hit rolls from.
package game

import "github.com/pefman/eclipse-duel/internal/engine"

// Outcome is the result of a single duel.
type Outcome int

const (
	// OutcomeFirstWins means the first-named ship destroyed its opponent.
	OutcomeFirstWins Outcome = iota
	// OutcomeSecondWins means the second-named ship destroyed its opponent.
	OutcomeSecondWins
	// OutcomeDraw is mutual destruction in one exchange. The current rules
	// stop a volley the instant its side is already destroyed, so Fight
	// never returns it; it exists so API responses have a stable value if
	// the ruleset ever changes.
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFirstWins:
		return "first wins"
	case OutcomeSecondWins:
		return "second wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// rollHit resolves one shot. The die has six equiprobable faces: a miss, the
// numbers 2-5, and an automatic hit. A numeric face v connects iff
// v + computer - shield >= 6.
func rollHit(src engine.Source, computer, shield int) bool {
	r := src.Intn(6)
	if r == 0 { // miss face
		return false
	}
	if r == 5 { // auto-hit face
		return true
	}
	return r+1+computer-shield >= 6 // faces 1..4 map to values 2..5
}

// fireVolley fires an entire damage list at a target with the given shield
// and remaining hull, returning the hull after the volley. Firing stops the
// moment the target is destroyed; the rest of the list is skipped.
func fireVolley(src engine.Source, damage []int, computer, shield, targetHull int) int {
	for _, dmg := range damage {
		if rollHit(src, computer, shield) {
			targetHull -= dmg
			if targetHull <= 0 {
				return targetHull
			}
		}
	}
	return targetHull
}

// Fight simulates one duel to completion and reports the winner.
//
// Firing order is decided once at setup: the ship with strictly higher
// initiative fires first in every exchange, and the first-named ship wins
// initiative ties. The missile phase is a single exchange of the one-shot
// missile lists; the cannon phase repeats the cannon lists in rounds until a
// ship is destroyed. A destroyed ship never fires, so the duel ends the
// instant either hull reaches zero and draws cannot occur.
//
// Callers must Validate both ships first; Fight assumes well-formed specs.
// If both cannon lists are empty and both ships survive the missiles, the
// duel can never resolve — that is a caller contract violation and Fight
// will loop forever.
func Fight(a, b Ship, src engine.Source) Outcome {
	aHull := a.Hull
	bHull := b.Hull
	aFirst := a.Initiative >= b.Initiative

	// Missile phase: one exchange, first-order ship shoots first.
	if aFirst {
		bHull = fireVolley(src, a.Missiles, a.Computer, b.Shield, bHull)
		if bHull <= 0 {
			return OutcomeFirstWins
		}
		aHull = fireVolley(src, b.Missiles, b.Computer, a.Shield, aHull)
		if aHull <= 0 {
			return OutcomeSecondWins
		}
	} else {
		aHull = fireVolley(src, b.Missiles, b.Computer, a.Shield, aHull)
		if aHull <= 0 {
			return OutcomeSecondWins
		}
		bHull = fireVolley(src, a.Missiles, a.Computer, b.Shield, bHull)
		if bHull <= 0 {
			return OutcomeFirstWins
		}
	}

	// Cannon phase: same lists re-fired every round.
	for {
		if aFirst {
			bHull = fireVolley(src, a.Cannons, a.Computer, b.Shield, bHull)
			if bHull <= 0 {
				return OutcomeFirstWins
			}
			aHull = fireVolley(src, b.Cannons, b.Computer, a.Shield, aHull)
			if aHull <= 0 {
				return OutcomeSecondWins
			}
		} else {
			aHull = fireVolley(src, b.Cannons, b.Computer, a.Shield, aHull)
			if aHull <= 0 {
				return OutcomeSecondWins
			}
			bHull = fireVolley(src, a.Cannons, a.Computer, b.Shield, bHull)
			if bHull <= 0 {
				return OutcomeFirstWins
			}
		}
	}
}
