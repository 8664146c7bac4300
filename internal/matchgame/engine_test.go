package matchgame

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithrecall/game-server/internal/content"
)

// fakeSink mirrors the session's score semantics closely enough for engine
// tests: zero floor and a combo clamp at 5.
type fakeSink struct {
	score   int
	combo   int
	matches int
}

func (f *fakeSink) AddGame1Score(points int) {
	f.score += points
	if f.score < 0 {
		f.score = 0
	}
	f.matches++
}

func (f *fakeSink) AddGame1Penalty(points int) {
	f.score -= points
	if f.score < 0 {
		f.score = 0
	}
}

func (f *fakeSink) IncrementGame1Combo() {
	if f.combo < 5 {
		f.combo++
	}
}

func (f *fakeSink) ResetGame1Combo() { f.combo = 0 }
func (f *fakeSink) Game1Combo() int  { return f.combo }

func testSaints() []content.Saint {
	return content.Saints()
}

func newTestEngine(t *testing.T, cfg Config, sink ScoreSink) *Engine {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	return NewEngine(cfg, sink, testSaints(), rng)
}

// pairIndexes finds the right-deck index holding the same saint as the given
// left-deck index.
func pairIndexes(t *testing.T, e *Engine, leftIdx int) (int, int) {
	t.Helper()
	left, right := e.Decks()
	for i, c := range right {
		if c.Saint.ID == left[leftIdx].Saint.ID {
			return leftIdx, i
		}
	}
	t.Fatalf("no right card matches left index %d", leftIdx)
	return 0, 0
}

// mismatchIndexes finds a right-deck index holding a different saint.
func mismatchIndexes(t *testing.T, e *Engine, leftIdx int) (int, int) {
	t.Helper()
	left, right := e.Decks()
	for i, c := range right {
		if c.Saint.ID != left[leftIdx].Saint.ID {
			return leftIdx, i
		}
	}
	t.Fatalf("every right card matches left index %d", leftIdx)
	return 0, 0
}

func TestOpeningRevealThenPlay(t *testing.T) {
	e := newTestEngine(t, DefaultConfig(), &fakeSink{})
	require.Equal(t, PhaseRevealAll, e.Phase())

	left, right := e.Decks()
	for _, c := range append(left, right...) {
		assert.True(t, c.Revealed)
	}

	// Input is dead during the reveal window.
	out := e.Pick(SideLeft, 0, time.Now())
	assert.Equal(t, PickIgnored, out.Kind)

	e.StartPlay()
	require.Equal(t, PhaseInPlay, e.Phase())
	left, right = e.Decks()
	for _, c := range append(left, right...) {
		assert.False(t, c.Revealed)
	}
}

func TestNoRevealConfigStartsInPlay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpeningRevealSeconds = 0
	e := newTestEngine(t, cfg, &fakeSink{})
	assert.Equal(t, PhaseInPlay, e.Phase())
}

func TestFirstMatchScoresNineHundred(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, DefaultConfig(), sink)
	e.StartPlay()

	li, ri := pairIndexes(t, e, 0)
	base := time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC)

	out := e.Pick(SideLeft, li, base)
	require.Equal(t, PickFirst, out.Kind)

	// Second pick lands two seconds in: 1000 - 2*50 = 900, combo x1.0,
	// zero tie-breaker on a whole-second elapse.
	out = e.Pick(SideRight, ri, base.Add(2*time.Second))
	require.Equal(t, PickResolving, out.Kind)
	require.NotNil(t, out.Resolution)
	assert.True(t, out.Resolution.Matched)
	assert.Equal(t, 900, out.Resolution.Score)
	assert.Equal(t, 1, out.Resolution.ComboLevel)
	assert.Equal(t, 900, sink.score)
	assert.Equal(t, PhaseResolving, e.Phase())
}

func TestComboMultiplierAppliesOnStreak(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, DefaultConfig(), sink)
	e.StartPlay()
	at := time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC)

	// First match: 1000 * 1.0.
	li, ri := pairIndexes(t, e, 0)
	e.Pick(SideLeft, li, at)
	out := e.Pick(SideRight, ri, at)
	require.True(t, out.Resolution.Matched)
	require.Equal(t, 1000, out.Resolution.Score)
	e.CompleteResolution()

	// Second match on combo level 1: 1000 * 1.2.
	left, _ := e.Decks()
	next := -1
	for i, c := range left {
		if !c.Removed {
			next = i
			break
		}
	}
	require.GreaterOrEqual(t, next, 0)
	li, ri = pairIndexes(t, e, next)
	e.Pick(SideLeft, li, at)
	out = e.Pick(SideRight, ri, at)
	require.True(t, out.Resolution.Matched)
	assert.Equal(t, 1200, out.Resolution.Score)
	assert.Equal(t, 2, out.Resolution.ComboLevel)
}

func TestMismatchPenalizesAndResetsCombo(t *testing.T) {
	sink := &fakeSink{score: 500, combo: 3}
	e := newTestEngine(t, DefaultConfig(), sink)
	e.StartPlay()
	at := time.Now()

	li, ri := mismatchIndexes(t, e, 0)
	e.Pick(SideLeft, li, at)
	out := e.Pick(SideRight, ri, at)
	require.Equal(t, PickResolving, out.Kind)
	assert.False(t, out.Resolution.Matched)
	assert.Equal(t, 150, out.Resolution.Penalty)
	assert.Equal(t, 0, out.Resolution.ComboLevel)
	assert.Equal(t, 350, sink.score)
	assert.Equal(t, 0, sink.combo)

	// After the feedback window both cards flip back down.
	done := e.CompleteResolution()
	assert.False(t, done)
	left, right := e.Decks()
	assert.False(t, left[li].Revealed)
	assert.False(t, right[ri].Revealed)
	assert.Equal(t, PhaseInPlay, e.Phase())
}

func TestPenaltyFloorsAtZero(t *testing.T) {
	sink := &fakeSink{score: 100}
	e := newTestEngine(t, DefaultConfig(), sink)
	e.StartPlay()
	at := time.Now()

	li, ri := mismatchIndexes(t, e, 0)
	e.Pick(SideLeft, li, at)
	e.Pick(SideRight, ri, at)
	assert.Equal(t, 0, sink.score)
}

func TestSameSideRepickReplacesAndRestartsTimer(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, DefaultConfig(), sink)
	e.StartPlay()
	base := time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC)

	e.Pick(SideLeft, 0, base)
	out := e.Pick(SideLeft, 1, base.Add(10*time.Second))
	require.Equal(t, PickReplaced, out.Kind)

	left, _ := e.Decks()
	assert.False(t, left[0].Revealed)
	assert.True(t, left[1].Revealed)

	// The attempt clock restarted at the replacement, so a match one second
	// later scores from a 1s elapse, not 11s.
	_, ri := pairIndexes(t, e, 1)
	out = e.Pick(SideRight, ri, base.Add(11*time.Second))
	require.True(t, out.Resolution.Matched)
	assert.Equal(t, 950, out.Resolution.Score)
}

func TestPicksIgnoredWhileResolving(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, DefaultConfig(), sink)
	e.StartPlay()
	at := time.Now()

	li, ri := pairIndexes(t, e, 0)
	e.Pick(SideLeft, li, at)
	e.Pick(SideRight, ri, at)
	require.Equal(t, PhaseResolving, e.Phase())

	out := e.Pick(SideLeft, 1, at)
	assert.Equal(t, PickIgnored, out.Kind)
	assert.Equal(t, 1, sink.matches)
}

func TestDeadCardsIgnoreClicks(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, DefaultConfig(), sink)
	e.StartPlay()
	at := time.Now()

	li, ri := pairIndexes(t, e, 0)
	e.Pick(SideLeft, li, at)
	e.Pick(SideRight, ri, at)
	e.CompleteResolution()

	out := e.Pick(SideLeft, li, at)
	assert.Equal(t, PickIgnored, out.Kind)

	out = e.Pick(SideLeft, -1, at)
	assert.Equal(t, PickIgnored, out.Kind)
	out = e.Pick(SideRight, 99, at)
	assert.Equal(t, PickIgnored, out.Kind)
}

func TestRoundCompletesWhenAllPairsMatched(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, DefaultConfig(), sink)
	e.StartPlay()
	at := time.Now()

	total := e.RemainingPairs()
	for i := 0; i < total; i++ {
		left, _ := e.Decks()
		next := -1
		for j, c := range left {
			if !c.Removed {
				next = j
				break
			}
		}
		require.GreaterOrEqual(t, next, 0)
		li, ri := pairIndexes(t, e, next)
		e.Pick(SideLeft, li, at)
		out := e.Pick(SideRight, ri, at)
		require.True(t, out.Resolution.Matched)
		done := e.CompleteResolution()
		assert.Equal(t, i == total-1, done)
	}

	assert.Equal(t, PhaseComplete, e.Phase())
	assert.Equal(t, 0, e.RemainingPairs())
	assert.Equal(t, total, sink.matches)

	out := e.Pick(SideLeft, 0, at)
	assert.Equal(t, PickIgnored, out.Kind)
}

func TestExpireEndsRoundEarly(t *testing.T) {
	sink := &fakeSink{}
	e := newTestEngine(t, DefaultConfig(), sink)
	e.StartPlay()

	e.Expire()
	assert.Equal(t, PhaseComplete, e.Phase())
	out := e.Pick(SideLeft, 0, time.Now())
	assert.Equal(t, PickIgnored, out.Kind)
}

func TestMatchScoreFloorAndTieBreaker(t *testing.T) {
	// Deep into the round the base floors at 100.
	score := matchScore(30*time.Second, 0)
	assert.Equal(t, 100, score)

	// The millisecond remainder nudges otherwise equal scores apart.
	score = matchScore(2*time.Second+7*time.Millisecond, 0)
	assert.Equal(t, 907, score)
}

func TestFeedbackDelayTracksResolution(t *testing.T) {
	sink := &fakeSink{}
	cfg := DefaultConfig()
	e := newTestEngine(t, cfg, sink)
	e.StartPlay()
	at := time.Now()

	li, ri := pairIndexes(t, e, 0)
	e.Pick(SideLeft, li, at)
	e.Pick(SideRight, ri, at)
	assert.Equal(t, cfg.MatchFeedback, e.FeedbackDelay())
	e.CompleteResolution()

	left, _ := e.Decks()
	next := -1
	for j, c := range left {
		if !c.Removed {
			next = j
			break
		}
	}
	li, ri = mismatchIndexes(t, e, next)
	e.Pick(SideLeft, li, at)
	e.Pick(SideRight, ri, at)
	assert.Equal(t, cfg.MismatchFeedback, e.FeedbackDelay())
}
