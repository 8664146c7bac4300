package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SessionsActive tracks currently live game sessions.
	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "faithrecall_sessions_active",
		Help: "Number of active game sessions.",
	})

	// MatchesResolved counts memory-match attempt resolutions by result.
	MatchesResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "faithrecall_matches_resolved_total",
		Help: "Memory match attempt resolutions by result.",
	}, []string{"result"}) // match | mismatch

	// QuizAnswers counts quiz answer outcomes.
	QuizAnswers = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "faithrecall_quiz_answers_total",
		Help: "Quiz answer events by outcome.",
	}, []string{"outcome"}) // correct | wrong | timeout

	// CodeVerifications counts security code verification outcomes.
	CodeVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "faithrecall_code_verifications_total",
		Help: "Security code verification attempts by outcome.",
	}, []string{"outcome"}) // verified | retry | penance

	// LeaderboardSaves counts result persistence attempts by status.
	LeaderboardSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "faithrecall_leaderboard_saves_total",
		Help: "Leaderboard save attempts by status.",
	}, []string{"status"}) // ok | error

	// GamesCompleted counts sessions reaching the results screen by path.
	GamesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "faithrecall_games_completed_total",
		Help: "Sessions that reached results, by exit path.",
	}, []string{"path"}) // verified | penance
)
