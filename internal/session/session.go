package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/faithrecall/game-server/internal/content"
)

// Stage identifies the screen a session is currently on. Stages only ever
// advance forward through the pipeline; Reset starts a fresh session.
type Stage string

const (
	StageRegistration Stage = "registration"
	StageCodeIssue    Stage = "code_issue"
	StageMatchGame    Stage = "match_game"
	StageQuizGame     Stage = "quiz_game"
	StageCodeVerify   Stage = "code_verify"
	StageResults      Stage = "results"
	StageLeaderboard  Stage = "leaderboard"
)

const maxCombo = 5

var (
	ErrAlreadySaved = errors.New("results already saved")
	ErrNoPlayerName = errors.New("player name is empty")
	ErrSaveInFlight = errors.New("save already in flight")
)

// Saver persists a final result row. Implemented by the leaderboard service.
type Saver interface {
	Save(ctx context.Context, name, region string, score int) error
}

// Snapshot is a read-only copy of session state.
type Snapshot struct {
	ID           uuid.UUID
	PlayerName   string
	PlayerRegion string
	SecurityCode string
	Game1Score   int
	Game1Matches int
	Game1Combo   int
	Game2Score   int
	Game2Answers int
	TotalScore   int
	HasSaved     bool
	IsSubmitting bool
	IsPunished   bool
	Stage        Stage
}

// Session holds one player's progress from registration to leaderboard.
// All mutations hold the lock; score invariants (floor, combo clamp, total
// recompute) are enforced on every write.
type Session struct {
	mu sync.Mutex

	id           uuid.UUID
	playerName   string
	playerRegion string
	securityCode string

	game1Score   int
	game1Matches int
	game1Combo   int
	game2Score   int
	game2Answers int
	totalScore   int

	hasSaved     bool
	isSubmitting bool
	isPunished   bool

	quizQuestions []content.QuizItem
	stage         Stage
}

// New creates a session at the registration stage.
func New() *Session {
	return &Session{
		id:    uuid.New(),
		stage: StageRegistration,
	}
}

// ID returns the opaque session identifier.
func (s *Session) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Snapshot returns a copy of the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:           s.id,
		PlayerName:   s.playerName,
		PlayerRegion: s.playerRegion,
		SecurityCode: s.securityCode,
		Game1Score:   s.game1Score,
		Game1Matches: s.game1Matches,
		Game1Combo:   s.game1Combo,
		Game2Score:   s.game2Score,
		Game2Answers: s.game2Answers,
		TotalScore:   s.totalScore,
		HasSaved:     s.hasSaved,
		IsSubmitting: s.isSubmitting,
		IsPunished:   s.isPunished,
		Stage:        s.stage,
	}
}

// SetPlayerName assigns the display name. Validation lives in the
// registration handler.
func (s *Session) SetPlayerName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerName = name
}

// SetPlayerRegion assigns the player's region.
func (s *Session) SetPlayerRegion(region string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerRegion = region
}

// SetSecurityCode stores the issued 6-digit code, replacing any prior one.
func (s *Session) SetSecurityCode(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.securityCode = code
}

// SecurityCode returns the stored code.
func (s *Session) SecurityCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.securityCode
}

// AddGame1Score adds match points, clamped at zero, recomputes the total and
// bumps the match counter.
func (s *Session) AddGame1Score(points int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game1Score = max(0, s.game1Score+points)
	s.game1Matches++
	s.totalScore = s.game1Score + s.game2Score
}

// AddGame1Penalty subtracts points with a zero floor. No combo interaction.
func (s *Session) AddGame1Penalty(points int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game1Score = max(0, s.game1Score-points)
	s.totalScore = s.game1Score + s.game2Score
}

// IncrementGame1Combo raises the combo level, capped at 5.
func (s *Session) IncrementGame1Combo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game1Combo < maxCombo {
		s.game1Combo++
	}
}

// ResetGame1Combo drops the combo level to zero.
func (s *Session) ResetGame1Combo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game1Combo = 0
}

// Game1Combo reads the current combo level.
func (s *Session) Game1Combo() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game1Combo
}

// AddGame2Score adds quiz points unconditionally and recomputes the total.
func (s *Session) AddGame2Score(points int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game2Score += points
	s.game2Answers++
	s.totalScore = s.game1Score + s.game2Score
}

// SetIsPunished toggles the penance flag independent of score.
func (s *Session) SetIsPunished(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isPunished = v
}

// InitQuizQuestions draws a fresh random question subset and zeroes the quiz
// sub-score, mirroring a restart of the quiz stage.
func (s *Session) InitQuizQuestions(count int, pick func(count int) []content.QuizItem) {
	questions := pick(count)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizQuestions = questions
	s.game2Score = 0
	s.game2Answers = 0
	s.totalScore = s.game1Score
}

// QuizQuestions returns the current round's question subset.
func (s *Session) QuizQuestions() []content.QuizItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quizQuestions
}

// SetStage records the pipeline position.
func (s *Session) SetStage(stage Stage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = stage
}

// Stage reads the pipeline position.
func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// SaveResults persists the final score exactly once per session. Re-entry
// while a save is in flight or after success is rejected without touching the
// backend, so remounts of the results screen cannot produce duplicate rows.
func (s *Session) SaveResults(ctx context.Context, saver Saver) error {
	s.mu.Lock()
	if s.hasSaved {
		s.mu.Unlock()
		return ErrAlreadySaved
	}
	if s.isSubmitting {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	if strings.TrimSpace(s.playerName) == "" {
		s.mu.Unlock()
		return ErrNoPlayerName
	}
	s.isSubmitting = true
	name, region := s.playerName, s.playerRegion
	score := s.game1Score + s.game2Score
	s.mu.Unlock()

	err := saver.Save(ctx, name, region, score)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.isSubmitting = false
	if err != nil {
		return err
	}
	s.hasSaved = true
	return nil
}

// Reset restores every field and assigns a fresh session id. Safe to call
// repeatedly.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = uuid.New()
	s.playerName = ""
	s.playerRegion = ""
	s.securityCode = ""
	s.game1Score = 0
	s.game1Matches = 0
	s.game1Combo = 0
	s.game2Score = 0
	s.game2Answers = 0
	s.totalScore = 0
	s.hasSaved = false
	s.isSubmitting = false
	s.isPunished = false
	s.quizQuestions = nil
	s.stage = StageRegistration
}
