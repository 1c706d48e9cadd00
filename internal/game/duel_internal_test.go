package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script replays a fixed sequence of die faces (0..5) and fails the test if
// the duel draws more rolls than scripted.
type script struct {
	t     *testing.T
	rolls []int
	next  int
}

func (s *script) Intn(n int) int {
	require.Equal(s.t, 6, n, "duel rolls are always d6 draws")
	require.Less(s.t, s.next, len(s.rolls), "script exhausted")
	r := s.rolls[s.next]
	s.next++
	return r
}

func (s *script) drained() bool { return s.next == len(s.rolls) }

func TestRollHit_Faces(t *testing.T) {
	// computer 2, shield 1: numeric face v hits iff v+1 >= 6, so only the 5
	// face (draw 4) and the auto-hit face connect.
	tests := []struct {
		face int
		want bool
	}{
		{0, false}, // miss face
		{1, false}, // value 2
		{2, false}, // value 3
		{3, false}, // value 4
		{4, true},  // value 5: 5+2-1 >= 6
		{5, true},  // auto-hit face
	}
	for _, tc := range tests {
		src := &script{t: t, rolls: []int{tc.face}}
		assert.Equal(t, tc.want, rollHit(src, 2, 1), "face=%d", tc.face)
	}
}

func TestRollHit_ThresholdIsInclusive(t *testing.T) {
	// value 4 with computer 3, shield 1: 4+3-1 == 6 must hit (>=, not >).
	hit := rollHit(&script{t: t, rolls: []int{3}}, 3, 1) // face 3 -> value 4
	assert.True(t, hit)
	// one point short: value 4 with computer 2, shield 1 -> 5 < 6
	miss := rollHit(&script{t: t, rolls: []int{3}}, 2, 1)
	assert.False(t, miss)
}

func TestRollHit_AutoFacesIgnoreModifiers(t *testing.T) {
	// Massive shield cannot stop an auto-hit; massive computer cannot turn a
	// miss face into a hit.
	assert.True(t, rollHit(&script{t: t, rolls: []int{5}}, 0, 100))
	assert.False(t, rollHit(&script{t: t, rolls: []int{0}}, 100, 0))
}

func TestFireVolley_AppliesListedDamageInOrder(t *testing.T) {
	src := &script{t: t, rolls: []int{5, 0, 5}}
	hull := fireVolley(src, []int{3, 2, 1}, 0, 0, 10)
	// hit for 3, miss the 2, hit for 1
	assert.Equal(t, 6, hull)
	assert.True(t, src.drained())
}

func TestFireVolley_StopsOnDestruction(t *testing.T) {
	src := &script{t: t, rolls: []int{5}}
	hull := fireVolley(src, []int{4, 4, 4}, 0, 0, 3)
	assert.Equal(t, -1, hull, "overkill carries through")
	assert.True(t, src.drained(), "remaining shots must be skipped")
}

func TestFireVolley_EmptyListNoRolls(t *testing.T) {
	src := &script{t: t, rolls: nil}
	assert.Equal(t, 5, fireVolley(src, nil, 2, 1, 5))
}

func TestFight_MissileKillEndsDuelImmediately(t *testing.T) {
	a := Ship{Initiative: 2, Hull: 1, Missiles: []int{1}, Cannons: []int{1}}
	b := Ship{Initiative: 1, Hull: 1, Missiles: []int{9}, Cannons: []int{9}}
	// A's single missile auto-hits; B must never get to fire.
	src := &script{t: t, rolls: []int{5}}
	assert.Equal(t, OutcomeFirstWins, Fight(a, b, src))
	assert.True(t, src.drained())
}

func TestFight_SecondShipFiresMissilesAfterSurviving(t *testing.T) {
	a := Ship{Initiative: 2, Hull: 1, Missiles: []int{1}}
	b := Ship{Initiative: 1, Hull: 1, Missiles: []int{1}}
	// A's missile misses, B's auto-hits.
	src := &script{t: t, rolls: []int{0, 5}}
	assert.Equal(t, OutcomeSecondWins, Fight(a, b, src))
	assert.True(t, src.drained())
}

func TestFight_CannonRoundsRepeatUntilKill(t *testing.T) {
	a := Ship{Initiative: 2, Hull: 2, Computer: 1, Cannons: []int{1}}
	b := Ship{Initiative: 1, Hull: 2, Computer: 1, Cannons: []int{1}}
	// Round 1: A rolls a 5 (5+1 >= 6, hit, B at 1), B misses. Round 2: A
	// auto-hits, duel over before B's volley.
	src := &script{t: t, rolls: []int{4, 0, 5}}
	assert.Equal(t, OutcomeFirstWins, Fight(a, b, src))
	assert.True(t, src.drained())
}

func TestFight_LowerInitiativeFiresSecond(t *testing.T) {
	a := Ship{Initiative: 1, Hull: 1, Cannons: []int{1}}
	b := Ship{Initiative: 5, Hull: 1, Cannons: []int{1}}
	// B holds initiative: its auto-hit resolves before A ever fires.
	src := &script{t: t, rolls: []int{5}}
	assert.Equal(t, OutcomeSecondWins, Fight(a, b, src))
	assert.True(t, src.drained())
}

func TestFight_InitiativeTieGoesToFirstNamed(t *testing.T) {
	a := Ship{Initiative: 3, Hull: 1, Cannons: []int{1}}
	b := Ship{Initiative: 3, Hull: 1, Cannons: []int{1}}
	src := &script{t: t, rolls: []int{5}}
	assert.Equal(t, OutcomeFirstWins, Fight(a, b, src),
		"equal initiative: first-named ship fires first")
	assert.True(t, src.drained())
}

func TestFight_DestroyedShipNeverReturnsFire(t *testing.T) {
	// B dies to A's cannon volley in the round it would itself have fired a
	// lethal volley; with the early check it never fires, so no draw.
	a := Ship{Initiative: 2, Hull: 1, Cannons: []int{1}}
	b := Ship{Initiative: 1, Hull: 1, Cannons: []int{99}}
	src := &script{t: t, rolls: []int{5}}
	assert.Equal(t, OutcomeFirstWins, Fight(a, b, src))
	assert.True(t, src.drained())
}
