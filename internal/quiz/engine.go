package quiz

import (
	"time"

	"github.com/faithrecall/game-server/internal/content"
)

// Config holds the quiz round constants.
type Config struct {
	QuestionCount   int           // questions drawn per round
	QuestionSeconds int           // per-question countdown
	GlobalSeconds   int           // whole-stage countdown
	ScoreFloor      int           // minimum points for a correct answer
	AdvanceDelay    time.Duration // feedback pause before the next question
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		QuestionCount:   10,
		QuestionSeconds: 15,
		GlobalSeconds:   90,
		ScoreFloor:      200,
		AdvanceDelay:    400 * time.Millisecond,
	}
}

// questionState tracks where the current question is in its tiny lifecycle.
type questionState int

const (
	qArmed questionState = iota
	qSettled
)

// ScoreSink receives quiz score mutations. Implemented by the session store.
type ScoreSink interface {
	AddGame2Score(points int)
}

// AnswerResult reports what a submitted answer (or timeout) did.
type AnswerResult struct {
	Accepted bool // false when the question was already settled
	Correct  bool
	Points   int
	TimedOut bool
	Done     bool // no questions remain
	Index    int  // index of the question this result applies to
}

// Engine advances through a pre-selected question subset under per-question
// countdowns. Methods are not goroutine-safe; the flow runtime serializes
// access. The global stage countdown is owned by the caller, which calls
// Expire when it fires.
type Engine struct {
	cfg       Config
	sink      ScoreSink
	questions []content.QuizItem
	index     int
	state     questionState
	startedAt time.Time
	expired   bool
}

// NewEngine starts a round over the given questions; the first question is
// armed at `now`.
func NewEngine(cfg Config, sink ScoreSink, questions []content.QuizItem, now time.Time) *Engine {
	return &Engine{
		cfg:       cfg,
		sink:      sink,
		questions: questions,
		startedAt: now,
	}
}

// Current returns the active question and its index, or false when the round
// is over.
func (e *Engine) Current() (content.QuizItem, int, bool) {
	if e.expired || e.index >= len(e.questions) {
		return content.QuizItem{}, 0, false
	}
	return e.questions[e.index], e.index, true
}

// Total returns the number of questions in this round.
func (e *Engine) Total() int { return len(e.questions) }

// Answer scores a submitted label against the active question. Correct
// answers earn max(floor, 1000 - elapsedSeconds*50); wrong answers earn
// nothing. If the question already settled (timeout won the race) the call
// is a silent no-op with Accepted=false.
func (e *Engine) Answer(label string, at time.Time) AnswerResult {
	q, idx, ok := e.Current()
	if !ok || e.state != qArmed {
		return AnswerResult{Index: e.index}
	}
	e.state = qSettled

	res := AnswerResult{Accepted: true, Index: idx}
	if label == q.CorrectLabel {
		res.Correct = true
		res.Points = e.score(at)
		e.sink.AddGame2Score(res.Points)
	}
	return res
}

// Timeout settles the active question as unanswered. If an answer already
// landed in the same tick, the timeout loses and is a silent no-op.
func (e *Engine) Timeout() AnswerResult {
	_, idx, ok := e.Current()
	if !ok || e.state != qArmed {
		return AnswerResult{Index: e.index}
	}
	e.state = qSettled
	return AnswerResult{Accepted: true, TimedOut: true, Index: idx}
}

// Advance moves to the next question and re-arms its countdown at `now`.
// Returns false when no questions remain (round complete).
func (e *Engine) Advance(now time.Time) bool {
	if e.expired {
		return false
	}
	e.index++
	if e.index >= len(e.questions) {
		return false
	}
	e.state = qArmed
	e.startedAt = now
	return true
}

// Expire force-exits the round when the global countdown reaches zero,
// regardless of progress.
func (e *Engine) Expire() {
	e.expired = true
}

// Expired reports whether the global countdown ended the round.
func (e *Engine) Expired() bool { return e.expired }

func (e *Engine) score(at time.Time) int {
	elapsedSeconds := int(at.Sub(e.startedAt).Seconds())
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	points := 1000 - elapsedSeconds*50
	if points < e.cfg.ScoreFloor {
		points = e.cfg.ScoreFloor
	}
	return points
}
