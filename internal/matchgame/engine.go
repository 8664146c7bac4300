package matchgame

import (
	"math"
	"math/rand"
	"time"

	"github.com/faithrecall/game-server/internal/content"
)

// Config holds the tunable constants of a match round.
type Config struct {
	RoundSeconds         int           // total round countdown
	OpeningRevealSeconds int           // memorization window; 0 skips it
	MismatchPenalty      int           // points removed on a wrong pair
	MatchFeedback        time.Duration // matched cards stay visible this long
	MismatchFeedback     time.Duration // wrong picks stay revealed this long
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		RoundSeconds:         60,
		OpeningRevealSeconds: 3,
		MismatchPenalty:      150,
		MatchFeedback:        400 * time.Millisecond,
		MismatchFeedback:     600 * time.Millisecond,
	}
}

// comboMultiplier maps combo level to the score multiplier. Levels past 4
// share the top multiplier.
func comboMultiplier(level int) float64 {
	switch {
	case level <= 0:
		return 1.0
	case level == 1:
		return 1.2
	case level == 2:
		return 1.5
	case level == 3:
		return 2.0
	default:
		return 2.5
	}
}

// Engine runs one memory-match round. It is a synchronous state machine:
// the caller owns all timers and drives it through Pick, CompleteResolution,
// StartPlay and Expire. Engine methods are not goroutine-safe; the flow
// runtime serializes access.
type Engine struct {
	cfg   Config
	sink  ScoreSink
	phase Phase

	left  []Card
	right []Card

	selLeft  int
	selRight int

	attemptStart time.Time
	pending      *Resolution
	matchedPairs int
	totalPairs   int
}

// NewEngine deals two freshly shuffled decks and enters either the opening
// reveal window or straight play.
func NewEngine(cfg Config, sink ScoreSink, saints []content.Saint, rng *rand.Rand) *Engine {
	leftSaints, rightSaints := content.BuildMatchDecks(saints, rng)

	e := &Engine{
		cfg:        cfg,
		sink:       sink,
		selLeft:    -1,
		selRight:   -1,
		totalPairs: len(saints),
	}
	reveal := cfg.OpeningRevealSeconds > 0
	for _, s := range leftSaints {
		e.left = append(e.left, Card{Saint: s, Revealed: reveal})
	}
	for _, s := range rightSaints {
		e.right = append(e.right, Card{Saint: s, Revealed: reveal})
	}
	if reveal {
		e.phase = PhaseRevealAll
	} else {
		e.phase = PhaseInPlay
	}
	return e
}

// Phase returns the engine's current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Decks returns the current card states for rendering.
func (e *Engine) Decks() (left, right []Card) {
	return append([]Card(nil), e.left...), append([]Card(nil), e.right...)
}

// RemainingPairs counts pairs not yet matched.
func (e *Engine) RemainingPairs() int { return e.totalPairs - e.matchedPairs }

// StartPlay ends the opening reveal: all cards flip face-down and picks are
// accepted. No-op outside PhaseRevealAll.
func (e *Engine) StartPlay() {
	if e.phase != PhaseRevealAll {
		return
	}
	for i := range e.left {
		e.left[i].Revealed = false
	}
	for i := range e.right {
		e.right[i].Revealed = false
	}
	e.phase = PhaseInPlay
}

// Pick handles a click on one card. While resolving, and for cards that are
// already revealed, matched or removed, the click is a silent no-op. A pick
// on a side that already holds the pending first pick replaces it. Once both
// sides hold a pick the engine resolves immediately and locks.
func (e *Engine) Pick(side Side, index int, at time.Time) PickOutcome {
	ignored := PickOutcome{Kind: PickIgnored, Side: side, Index: index}
	if e.phase != PhaseInPlay {
		return ignored
	}

	deck, sel := e.deck(side)
	if index < 0 || index >= len(deck) {
		return ignored
	}
	card := &deck[index]
	if card.Revealed || card.Matched || card.Removed {
		return ignored
	}

	kind := PickFirst
	if *sel >= 0 {
		// Same-side re-pick: hide the previous choice and restart the
		// attempt timer.
		deck[*sel].Revealed = false
		deck[*sel].Selected = false
		kind = PickReplaced
	}
	card.Revealed = true
	card.Selected = true
	*sel = index

	if e.firstOfAttempt() {
		e.attemptStart = at
	}

	out := PickOutcome{Kind: kind, Side: side, Index: index}
	if e.selLeft >= 0 && e.selRight >= 0 {
		out.Kind = PickResolving
		out.Resolution = e.resolve(at)
	}
	return out
}

// firstOfAttempt reports whether exactly one card is now picked, i.e. the
// attempt timer should start.
func (e *Engine) firstOfAttempt() bool {
	picked := 0
	if e.selLeft >= 0 {
		picked++
	}
	if e.selRight >= 0 {
		picked++
	}
	return picked == 1
}

// resolve compares the two picked cards by saint identity, applies score
// effects through the sink and locks the engine until CompleteResolution.
func (e *Engine) resolve(at time.Time) *Resolution {
	e.phase = PhaseResolving

	left := e.left[e.selLeft]
	right := e.right[e.selRight]
	elapsed := at.Sub(e.attemptStart)
	if elapsed < 0 {
		elapsed = 0
	}

	res := &Resolution{
		LeftIndex:  e.selLeft,
		RightIndex: e.selRight,
		ElapsedMs:  elapsed.Milliseconds(),
	}

	if left.Saint.ID == right.Saint.ID {
		res.Matched = true
		res.Score = matchScore(elapsed, e.sink.Game1Combo())
		e.sink.AddGame1Score(res.Score)
		e.sink.IncrementGame1Combo()
		res.ComboLevel = e.sink.Game1Combo()
	} else {
		res.Penalty = e.cfg.MismatchPenalty
		e.sink.AddGame1Penalty(res.Penalty)
		e.sink.ResetGame1Combo()
		res.ComboLevel = 0
	}

	e.pending = res
	return res
}

// matchScore computes points for one matched pair: a time-decayed base with
// a 100-point floor, the combo multiplier, and a small elapsed-derived jitter
// to break leaderboard ties.
func matchScore(elapsed time.Duration, comboLevel int) int {
	elapsedSeconds := int(elapsed.Seconds())
	base := 1000 - elapsedSeconds*50
	if base < 100 {
		base = 100
	}
	tieBreaker := int(elapsed.Milliseconds() % 10)
	return int(math.Round(float64(base)*comboMultiplier(comboLevel))) + tieBreaker
}

// CompleteResolution ends the feedback window: matched cards are removed,
// mismatched picks flip back, selections clear and the engine unlocks.
// Returns true when the round is complete.
func (e *Engine) CompleteResolution() bool {
	if e.phase != PhaseResolving || e.pending == nil {
		return e.phase == PhaseComplete
	}
	res := e.pending
	e.pending = nil

	if res.Matched {
		e.left[res.LeftIndex].Matched = true
		e.left[res.LeftIndex].Removed = true
		e.right[res.RightIndex].Matched = true
		e.right[res.RightIndex].Removed = true
		e.matchedPairs++
	} else {
		e.left[res.LeftIndex].Revealed = false
		e.right[res.RightIndex].Revealed = false
	}
	e.left[res.LeftIndex].Selected = false
	e.right[res.RightIndex].Selected = false
	e.selLeft = -1
	e.selRight = -1

	if e.matchedPairs == e.totalPairs {
		e.phase = PhaseComplete
		return true
	}
	e.phase = PhaseInPlay
	return false
}

// Expire force-ends the round when the countdown hits zero, regardless of
// remaining pairs. A resolution already computed keeps its score; no further
// picks are accepted.
func (e *Engine) Expire() {
	e.phase = PhaseComplete
}

// FeedbackDelay returns how long the current resolution's cards stay visible.
func (e *Engine) FeedbackDelay() time.Duration {
	if e.pending != nil && e.pending.Matched {
		return e.cfg.MatchFeedback
	}
	return e.cfg.MismatchFeedback
}

func (e *Engine) deck(side Side) ([]Card, *int) {
	if side == SideLeft {
		return e.left, &e.selLeft
	}
	return e.right, &e.selRight
}
