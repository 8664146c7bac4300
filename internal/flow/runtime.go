package flow

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/faithrecall/game-server/internal/codegate"
	"github.com/faithrecall/game-server/internal/config"
	"github.com/faithrecall/game-server/internal/content"
	"github.com/faithrecall/game-server/internal/leaderboard"
	"github.com/faithrecall/game-server/internal/matchgame"
	"github.com/faithrecall/game-server/internal/metrics"
	"github.com/faithrecall/game-server/internal/quiz"
	"github.com/faithrecall/game-server/internal/session"
	httperrors "github.com/faithrecall/game-server/pkg/http/errors"
	ws "github.com/faithrecall/game-server/pkg/http/ws"
)

// Timer keys. One live timer per key; rescheduling a key cancels the
// previous one.
const (
	timerCodeDisplay    = "code_display"
	timerMatchReveal    = "match_reveal"
	timerMatchRound     = "match_round"
	timerMatchTick      = "match_tick"
	timerMatchFeedback  = "match_feedback"
	timerQuizQuestion   = "quiz_question"
	timerQuizGlobal     = "quiz_global"
	timerQuizTick       = "quiz_tick"
	timerQuizAdvance    = "quiz_advance"
	timerVerifyDebounce = "verify_debounce"
)

// Runtime drives one session through the pipeline. It owns every scheduled
// task for that session and serializes all events (client messages and timer
// fires) under one mutex, so the stage engines stay single-threaded.
type Runtime struct {
	mu     sync.Mutex
	cfg    config.Game
	logger zerolog.Logger

	sess *session.Session
	lb   *leaderboard.Service
	send func(ws.Message)
	rng  *rand.Rand

	match   *matchgame.Engine
	quizEng *quiz.Engine
	gate    *codegate.Gate

	timers   map[string]*time.Timer
	timerGen map[string]uint64

	roundDeadline    time.Time
	questionDeadline time.Time
	quizDeadline     time.Time

	closed bool
}

// NewRuntime creates a runtime for a fresh session. send delivers outgoing
// messages to this session's connection.
func NewRuntime(cfg config.Game, sess *session.Session, lb *leaderboard.Service, send func(ws.Message), logger zerolog.Logger) *Runtime {
	return &Runtime{
		cfg:      cfg,
		logger:   logger.With().Str("component", "flow").Str("session_id", sess.ID().String()).Logger(),
		sess:     sess,
		lb:       lb,
		send:     send,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		timers:   make(map[string]*time.Timer),
		timerGen: make(map[string]uint64),
	}
}

// Close cancels every scheduled task. Events arriving afterwards are dropped.
func (r *Runtime) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelAll()
	r.closed = true
}

// HandleMessage dispatches one client message.
func (r *Runtime) HandleMessage(msg ws.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}

	switch msg.Type {
	case ws.TypeRegister:
		var p ws.RegisterPayload
		if err := decode(msg, &p); err != nil {
			r.sendError(httperrors.ErrCodeInvalidPayload, "Malformed register payload")
			return nil
		}
		r.handleRegister(p.Name, p.Region)
	case ws.TypePickCard:
		var p ws.PickCardPayload
		if err := decode(msg, &p); err != nil {
			r.sendError(httperrors.ErrCodeInvalidPayload, "Malformed pick payload")
			return nil
		}
		r.handlePick(matchgame.Side(p.Side), p.Index)
	case ws.TypeSubmitAnswer:
		var p ws.SubmitAnswerPayload
		if err := decode(msg, &p); err != nil {
			r.sendError(httperrors.ErrCodeInvalidPayload, "Malformed answer payload")
			return nil
		}
		r.handleAnswer(p.Label)
	case ws.TypePressDigit:
		var p ws.PressDigitPayload
		if err := decode(msg, &p); err != nil || len(p.Digit) == 0 {
			r.sendError(httperrors.ErrCodeInvalidPayload, "Malformed digit payload")
			return nil
		}
		r.handlePressDigit(rune(p.Digit[0]))
	case ws.TypeBackspace:
		r.handleBackspace()
	case ws.TypeClearEntry:
		r.handleClearEntry()
	case ws.TypeForgotCode:
		r.handleForgotCode()
	case ws.TypePenanceToggle:
		var p ws.PenanceTogglePayload
		if err := decode(msg, &p); err != nil {
			r.sendError(httperrors.ErrCodeInvalidPayload, "Malformed penance payload")
			return nil
		}
		r.handlePenanceToggle(p.Index)
	case ws.TypePenanceContinue:
		r.handlePenanceContinue()
	case ws.TypeGoHome:
		r.handleGoHome()
	case ws.TypeGoLeaderboard:
		r.handleGoLeaderboard()
	default:
		r.sendError(httperrors.ErrCodeUnknownMessageType, "Unknown message type: "+msg.Type)
	}
	return nil
}

// --- registration and code issue ---

func (r *Runtime) handleRegister(name, region string) {
	if r.sess.Stage() != session.StageRegistration {
		r.sendError(httperrors.ErrCodeWrongStage, "Registration is closed for this session")
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		r.sendError(httperrors.ErrCodeValidationFailed, "Name is required")
		return
	}
	if !IsValidRegion(region) {
		r.sendError(httperrors.ErrCodeValidationFailed, "Unknown region")
		return
	}

	r.sess.SetPlayerName(name)
	r.sess.SetPlayerRegion(region)

	code, err := codegate.GenerateCode()
	if err != nil {
		r.logger.Error().Err(err).Msg("code generation failed")
		r.sendError(httperrors.ErrCodeInternalError, "Could not issue a security code")
		return
	}
	r.sess.SetSecurityCode(code)
	r.sess.SetStage(session.StageCodeIssue)
	r.sendStage(session.StageCodeIssue)
	r.send(ws.Must(ws.TypeCodeIssued, ws.CodeIssuedPayload{
		Code:           code,
		DisplaySeconds: r.cfg.CodeDisplaySeconds,
	}))
	r.logger.Info().Str("player", name).Str("region", region).Msg("player registered")

	r.schedule(timerCodeDisplay, time.Duration(r.cfg.CodeDisplaySeconds)*time.Second, r.beginMatch)
}

// --- match game ---

func (r *Runtime) matchConfig() matchgame.Config {
	return matchgame.Config{
		RoundSeconds:         r.cfg.MatchRoundSeconds,
		OpeningRevealSeconds: r.cfg.MatchRevealSeconds,
		MismatchPenalty:      r.cfg.MatchMismatchPenalty,
		MatchFeedback:        400 * time.Millisecond,
		MismatchFeedback:     600 * time.Millisecond,
	}
}

func (r *Runtime) beginMatch() {
	r.match = matchgame.NewEngine(r.matchConfig(), r.sess, content.Saints(), r.rng)
	r.sess.SetStage(session.StageMatchGame)
	r.sendStage(session.StageMatchGame)

	left, right := r.match.Decks()
	r.send(ws.Must(ws.TypeDecksDealt, ws.DecksDealtPayload{
		Left:          cardViews(left),
		Right:         cardViews(right),
		RevealSeconds: r.cfg.MatchRevealSeconds,
		RoundSeconds:  r.cfg.MatchRoundSeconds,
	}))

	if r.cfg.MatchRevealSeconds > 0 {
		r.schedule(timerMatchReveal, time.Duration(r.cfg.MatchRevealSeconds)*time.Second, r.startMatchPlay)
	} else {
		r.startMatchPlay()
	}
}

func (r *Runtime) startMatchPlay() {
	r.match.StartPlay()
	r.roundDeadline = time.Now().Add(time.Duration(r.cfg.MatchRoundSeconds) * time.Second)
	r.schedule(timerMatchRound, time.Duration(r.cfg.MatchRoundSeconds)*time.Second, r.expireMatch)
	r.armMatchTick()
	r.sendBoard("cleared")
}

func (r *Runtime) armMatchTick() {
	r.schedule(timerMatchTick, time.Second, func() {
		remaining := int(time.Until(r.roundDeadline).Round(time.Second).Seconds())
		if remaining < 0 {
			remaining = 0
		}
		r.send(ws.Must(ws.TypeRoundTick, ws.RoundTickPayload{RemainingSeconds: remaining}))
		if remaining > 0 && r.match != nil && r.match.Phase() != matchgame.PhaseComplete {
			r.armMatchTick()
		}
	})
}

func (r *Runtime) handlePick(side matchgame.Side, index int) {
	if r.sess.Stage() != session.StageMatchGame || r.match == nil {
		return
	}
	out := r.match.Pick(side, index, time.Now())
	switch out.Kind {
	case matchgame.PickIgnored:
		// Locked engine or dead card: silent, like a click that lands on
		// nothing.
	case matchgame.PickFirst:
		r.sendBoard("first")
	case matchgame.PickReplaced:
		r.sendBoard("replaced")
	case matchgame.PickResolving:
		res := out.Resolution
		kind := "mismatch"
		if res.Matched {
			kind = "match"
			metrics.MatchesResolved.WithLabelValues("match").Inc()
		} else {
			metrics.MatchesResolved.WithLabelValues("mismatch").Inc()
		}
		r.sendBoardResolution(kind, res)
		r.schedule(timerMatchFeedback, r.match.FeedbackDelay(), r.completeResolution)
	}
}

func (r *Runtime) completeResolution() {
	if r.match == nil {
		return
	}
	done := r.match.CompleteResolution()
	r.sendBoard("cleared")
	if done {
		r.endMatch()
	}
}

func (r *Runtime) expireMatch() {
	if r.match == nil {
		return
	}
	r.match.Expire()
	r.logger.Info().Int("remaining_pairs", r.match.RemainingPairs()).Msg("match round expired")
	r.endMatch()
}

func (r *Runtime) endMatch() {
	r.cancel(timerMatchReveal)
	r.cancel(timerMatchRound)
	r.cancel(timerMatchTick)
	r.cancel(timerMatchFeedback)
	r.beginQuiz()
}

func (r *Runtime) sendBoard(kind string) {
	r.sendBoardResolution(kind, nil)
}

func (r *Runtime) sendBoardResolution(kind string, res *matchgame.Resolution) {
	left, right := r.match.Decks()
	snap := r.sess.Snapshot()
	payload := ws.PickResultPayload{
		Kind:           kind,
		Left:           cardViews(left),
		Right:          cardViews(right),
		ComboLevel:     snap.Game1Combo,
		Game1Score:     snap.Game1Score,
		RemainingPairs: r.match.RemainingPairs(),
	}
	if res != nil {
		payload.Score = res.Score
		payload.Penalty = res.Penalty
	}
	r.send(ws.Must(ws.TypePickResult, payload))
}

func cardViews(cards []matchgame.Card) []ws.CardView {
	views := make([]ws.CardView, 0, len(cards))
	for _, c := range cards {
		v := ws.CardView{
			Revealed: c.Revealed,
			Matched:  c.Matched,
			Removed:  c.Removed,
		}
		// Card identity crosses the wire only while the card is face-up, so
		// a client cannot read the board out of the payloads.
		if c.Revealed {
			v.SaintID = c.Saint.ID
			v.SaintName = c.Saint.Name
			v.Image = c.Saint.Image
		}
		views = append(views, v)
	}
	return views
}

// --- quiz game ---

func (r *Runtime) quizConfig() quiz.Config {
	return quiz.Config{
		QuestionCount:   r.cfg.QuizQuestionCount,
		QuestionSeconds: r.cfg.QuizQuestionSeconds,
		GlobalSeconds:   r.cfg.QuizGlobalSeconds,
		ScoreFloor:      r.cfg.QuizScoreFloor,
		AdvanceDelay:    400 * time.Millisecond,
	}
}

func (r *Runtime) beginQuiz() {
	r.sess.InitQuizQuestions(r.cfg.QuizQuestionCount, func(count int) []content.QuizItem {
		return content.SelectQuizSubset(content.Questions(), count, r.rng)
	})
	now := time.Now()
	r.quizEng = quiz.NewEngine(r.quizConfig(), r.sess, r.sess.QuizQuestions(), now)
	r.quizDeadline = now.Add(time.Duration(r.cfg.QuizGlobalSeconds) * time.Second)

	r.sess.SetStage(session.StageQuizGame)
	r.sendStage(session.StageQuizGame)

	r.schedule(timerQuizGlobal, time.Duration(r.cfg.QuizGlobalSeconds)*time.Second, r.expireQuiz)
	r.sendCurrentQuestion()
}

func (r *Runtime) sendCurrentQuestion() {
	q, idx, ok := r.quizEng.Current()
	if !ok {
		r.endQuiz()
		return
	}
	r.questionDeadline = time.Now().Add(time.Duration(r.cfg.QuizQuestionSeconds) * time.Second)
	r.send(ws.Must(ws.TypeQuestion, ws.QuestionPayload{
		Question:        questionView(q),
		Index:           idx,
		Total:           r.quizEng.Total(),
		QuestionSeconds: r.cfg.QuizQuestionSeconds,
		GlobalSeconds:   int(time.Until(r.quizDeadline).Round(time.Second).Seconds()),
	}))
	r.schedule(timerQuizQuestion, time.Duration(r.cfg.QuizQuestionSeconds)*time.Second, r.questionTimeout)
	r.armQuizTick()
}

// questionView strips the correct answer before the question crosses the
// wire.
func questionView(q content.QuizItem) ws.QuestionView {
	opts := make([]ws.Option, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, ws.Option{Label: o.Label, Text: o.Text})
	}
	return ws.QuestionView{
		Emojis:   append([]string(nil), q.Emojis...),
		Question: q.Question,
		Options:  opts,
	}
}

func (r *Runtime) armQuizTick() {
	r.schedule(timerQuizTick, time.Second, func() {
		qRem := int(time.Until(r.questionDeadline).Round(time.Second).Seconds())
		gRem := int(time.Until(r.quizDeadline).Round(time.Second).Seconds())
		if qRem < 0 {
			qRem = 0
		}
		if gRem < 0 {
			gRem = 0
		}
		r.send(ws.Must(ws.TypeQuestionTick, ws.QuestionTickPayload{
			QuestionRemaining: qRem,
			GlobalRemaining:   gRem,
		}))
		if gRem > 0 && r.quizEng != nil && !r.quizEng.Expired() {
			r.armQuizTick()
		}
	})
}

func (r *Runtime) handleAnswer(label string) {
	if r.sess.Stage() != session.StageQuizGame || r.quizEng == nil {
		return
	}
	res := r.quizEng.Answer(label, time.Now())
	if !res.Accepted {
		return
	}
	r.cancel(timerQuizQuestion)
	if res.Correct {
		metrics.QuizAnswers.WithLabelValues("correct").Inc()
	} else {
		metrics.QuizAnswers.WithLabelValues("wrong").Inc()
	}
	r.send(ws.Must(ws.TypeAnswerResult, ws.AnswerResultPayload{
		Correct:    res.Correct,
		Points:     res.Points,
		Game2Score: r.sess.Snapshot().Game2Score,
	}))
	r.schedule(timerQuizAdvance, r.quizConfig().AdvanceDelay, r.advanceQuiz)
}

func (r *Runtime) questionTimeout() {
	if r.quizEng == nil {
		return
	}
	res := r.quizEng.Timeout()
	if !res.Accepted {
		return
	}
	metrics.QuizAnswers.WithLabelValues("timeout").Inc()
	r.send(ws.Must(ws.TypeAnswerResult, ws.AnswerResultPayload{
		TimedOut:   true,
		Game2Score: r.sess.Snapshot().Game2Score,
	}))
	r.schedule(timerQuizAdvance, r.quizConfig().AdvanceDelay, r.advanceQuiz)
}

func (r *Runtime) advanceQuiz() {
	if r.quizEng == nil {
		return
	}
	if r.quizEng.Advance(time.Now()) {
		r.sendCurrentQuestion()
		return
	}
	r.endQuiz()
}

func (r *Runtime) expireQuiz() {
	if r.quizEng == nil {
		return
	}
	r.quizEng.Expire()
	r.logger.Info().Msg("quiz round expired")
	r.endQuiz()
}

func (r *Runtime) endQuiz() {
	r.cancel(timerQuizQuestion)
	r.cancel(timerQuizGlobal)
	r.cancel(timerQuizTick)
	r.cancel(timerQuizAdvance)
	r.beginVerify()
}

// --- code verify and penance ---

func (r *Runtime) beginVerify() {
	r.gate = codegate.NewGate(r.sess.SecurityCode())
	r.sess.SetStage(session.StageCodeVerify)
	r.sendStage(session.StageCodeVerify)
	r.send(ws.Must(ws.TypeEntryState, ws.EntryStatePayload{Length: 0}))
}

func (r *Runtime) handlePressDigit(d rune) {
	if r.sess.Stage() != session.StageCodeVerify || r.gate == nil || r.gate.InPenance() {
		return
	}
	n, full := r.gate.PressDigit(d)
	r.send(ws.Must(ws.TypeEntryState, ws.EntryStatePayload{Length: n}))
	if full {
		// Short debounce so a stray seventh tap cannot race the verify.
		r.schedule(timerVerifyDebounce, r.cfg.VerifyDebounce, r.doVerify)
	}
}

func (r *Runtime) handleBackspace() {
	if r.sess.Stage() != session.StageCodeVerify || r.gate == nil || r.gate.InPenance() {
		return
	}
	r.cancel(timerVerifyDebounce)
	r.gate.Backspace()
	r.send(ws.Must(ws.TypeEntryState, ws.EntryStatePayload{Length: len(r.gate.Entry())}))
}

func (r *Runtime) handleClearEntry() {
	if r.sess.Stage() != session.StageCodeVerify || r.gate == nil || r.gate.InPenance() {
		return
	}
	r.cancel(timerVerifyDebounce)
	r.gate.Clear()
	r.send(ws.Must(ws.TypeEntryState, ws.EntryStatePayload{Length: 0}))
}

func (r *Runtime) doVerify() {
	if r.gate == nil {
		return
	}
	res := r.gate.Verify()
	switch res.Outcome {
	case codegate.OutcomeVerified:
		metrics.CodeVerifications.WithLabelValues("verified").Inc()
		r.send(ws.Must(ws.TypeVerifyResult, ws.VerifyResultPayload{Outcome: string(res.Outcome)}))
		r.goResults("verified")
	case codegate.OutcomeRetry:
		metrics.CodeVerifications.WithLabelValues("retry").Inc()
		r.send(ws.Must(ws.TypeVerifyResult, ws.VerifyResultPayload{
			Outcome:           string(res.Outcome),
			AttemptsRemaining: res.AttemptsRemaining,
		}))
		r.send(ws.Must(ws.TypeEntryState, ws.EntryStatePayload{Length: 0}))
	case codegate.OutcomePenance:
		metrics.CodeVerifications.WithLabelValues("penance").Inc()
		r.enterPenance()
	case codegate.OutcomeIncomplete:
		// A backspace landed between the sixth digit and the debounce fire.
	}
}

func (r *Runtime) handleForgotCode() {
	if r.sess.Stage() != session.StageCodeVerify || r.gate == nil || r.gate.InPenance() {
		return
	}
	r.cancel(timerVerifyDebounce)
	metrics.CodeVerifications.WithLabelValues("penance").Inc()
	r.gate.ForgotCode()
	r.enterPenance()
}

func (r *Runtime) enterPenance() {
	r.sess.SetIsPunished(true)
	r.send(ws.Must(ws.TypeVerifyResult, ws.VerifyResultPayload{Outcome: string(codegate.OutcomePenance)}))
	r.sendPenanceState()
}

func (r *Runtime) handlePenanceToggle(index int) {
	if r.gate == nil || !r.gate.InPenance() {
		return
	}
	r.gate.TogglePenance(index)
	r.sendPenanceState()
}

func (r *Runtime) handlePenanceContinue() {
	if r.gate == nil || !r.gate.InPenance() {
		return
	}
	if !r.gate.PenanceComplete() {
		r.sendError(httperrors.ErrCodeValidationFailed, "All five prayers must be checked")
		return
	}
	r.sess.SetIsPunished(false)
	r.goResults("penance")
}

func (r *Runtime) sendPenanceState() {
	r.send(ws.Must(ws.TypePenanceState, ws.PenanceStatePayload{
		Checked:  r.gate.PenanceChecked(),
		Complete: r.gate.PenanceComplete(),
	}))
}

// --- results and leaderboard ---

func (r *Runtime) goResults(path string) {
	metrics.GamesCompleted.WithLabelValues(path).Inc()
	r.sess.SetStage(session.StageResults)
	r.sendStage(session.StageResults)

	// The save runs off the event lock; the results payload follows once the
	// row lands (or fails).
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := r.sess.SaveResults(ctx, r.lb)

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed {
			return
		}
		snap := r.sess.Snapshot()
		payload := ws.ResultsPayload{
			PlayerName:   snap.PlayerName,
			PlayerRegion: snap.PlayerRegion,
			Game1Score:   snap.Game1Score,
			Game1Matches: snap.Game1Matches,
			Game2Score:   snap.Game2Score,
			Game2Answers: snap.Game2Answers,
			TotalScore:   snap.TotalScore,
			Saved:        snap.HasSaved,
		}
		if err != nil && !errors.Is(err, session.ErrAlreadySaved) {
			r.logger.Error().Err(err).Msg("result save failed")
			r.sendError(httperrors.ErrCodeSaveFailed, "Could not save your score")
			payload.SaveError = "Could not save your score"
		}
		r.send(ws.Must(ws.TypeResults, payload))
	}()
}

func (r *Runtime) handleGoLeaderboard() {
	// Reachable from the landing screen, the results screen, or itself
	// (refresh); never from the middle of a run.
	switch r.sess.Stage() {
	case session.StageRegistration, session.StageResults, session.StageLeaderboard:
	default:
		r.sendError(httperrors.ErrCodeWrongStage, "Leaderboard is not reachable mid-game")
		return
	}
	r.sess.SetStage(session.StageLeaderboard)
	r.sendStage(session.StageLeaderboard)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		top, err := r.lb.Top(ctx, 0)

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed {
			return
		}
		if err != nil {
			r.logger.Error().Err(err).Msg("leaderboard fetch failed")
			r.sendError(httperrors.ErrCodeLeaderboardFetchFailed, "Could not load the leaderboard")
			return
		}
		r.send(ws.Must(ws.TypeLeaderboardUpdate, ws.LeaderboardUpdatePayload{Top: top}))
	}()
}

func (r *Runtime) handleGoHome() {
	r.cancelAll()
	r.match = nil
	r.quizEng = nil
	r.gate = nil
	r.sess.Reset()
	r.logger.Info().Str("new_session_id", r.sess.ID().String()).Msg("session reset to registration")
	r.sendStage(session.StageRegistration)
}

// --- plumbing ---

func (r *Runtime) sendStage(stage session.Stage) {
	r.send(ws.Must(ws.TypeStage, ws.StagePayload{Stage: string(stage)}))
}

func (r *Runtime) sendError(code, message string) {
	r.send(ws.Must(ws.TypeError, ws.ErrorPayload{Code: code, Message: message}))
}

// schedule arms a named timer. The callback runs under the runtime lock; a
// reschedule or cancel in the meantime makes a late fire a no-op.
func (r *Runtime) schedule(name string, d time.Duration, fn func()) {
	r.timerGen[name]++
	gen := r.timerGen[name]
	if t, ok := r.timers[name]; ok {
		t.Stop()
	}
	r.timers[name] = time.AfterFunc(d, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed || r.timerGen[name] != gen {
			return
		}
		delete(r.timers, name)
		fn()
	})
}

func (r *Runtime) cancel(name string) {
	r.timerGen[name]++
	if t, ok := r.timers[name]; ok {
		t.Stop()
		delete(r.timers, name)
	}
}

func (r *Runtime) cancelAll() {
	for name := range r.timers {
		r.cancel(name)
	}
}

func decode(msg ws.Message, out any) error {
	if len(msg.Payload) == 0 {
		return errors.New("empty payload")
	}
	return json.Unmarshal(msg.Payload, out)
}
