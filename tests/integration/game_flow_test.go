//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	httperrors "github.com/faithrecall/game-server/pkg/http/errors"
	ws "github.com/faithrecall/game-server/pkg/http/ws"
)

const waitLong = 15 * time.Second

func awaitPickKind(t *testing.T, conn *websocket.Conn, want string) ws.PickResultPayload {
	t.Helper()
	deadline := time.Now().Add(waitLong)
	conn.SetReadDeadline(deadline)
	for {
		var msg ws.Message
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("waiting for pick_result %s: %v", want, err)
		}
		if msg.Type != ws.TypePickResult {
			continue
		}
		var p ws.PickResultPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			t.Fatalf("decode pick_result: %v", err)
		}
		if p.Kind == want {
			return p
		}
	}
}

func TestFullGameRunToLeaderboard(t *testing.T) {
	stack := newTestStack(t, fastGameConfig())
	conn := dialGame(t, stack)

	awaitStage(t, conn, "registration", waitLong)

	sendMsg(t, conn, ws.TypeRegister, ws.RegisterPayload{Name: "Monica", Region: "Goa"})
	awaitStage(t, conn, "code_issue", waitLong)

	var issued ws.CodeIssuedPayload
	decodeInto(t, awaitType(t, conn, ws.TypeCodeIssued, waitLong), &issued)
	if len(issued.Code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", issued.Code)
	}

	// Code display elapses immediately in the fast config.
	awaitStage(t, conn, "match_game", waitLong)
	var decks ws.DecksDealtPayload
	decodeInto(t, awaitType(t, conn, ws.TypeDecksDealt, waitLong), &decks)

	// During the opening reveal every card shows its saint; memorize the
	// pairing the way a player would.
	type pair struct{ left, right int }
	var pairs []pair
	for li, lc := range decks.Left {
		if lc.SaintID == 0 {
			t.Fatalf("left card %d not revealed during opening window", li)
		}
		for ri, rc := range decks.Right {
			if rc.SaintID == lc.SaintID {
				pairs = append(pairs, pair{left: li, right: ri})
				break
			}
		}
	}
	if len(pairs) != len(decks.Left) {
		t.Fatalf("found %d pairs for %d cards", len(pairs), len(decks.Left))
	}

	// The board flips face-down when play opens.
	awaitPickKind(t, conn, "cleared")

	var lastMatch, lastCleared ws.PickResultPayload
	for _, p := range pairs {
		sendMsg(t, conn, ws.TypePickCard, ws.PickCardPayload{Side: "left", Index: p.left})
		awaitPickKind(t, conn, "first")
		sendMsg(t, conn, ws.TypePickCard, ws.PickCardPayload{Side: "right", Index: p.right})
		lastMatch = awaitPickKind(t, conn, "match")
		lastCleared = awaitPickKind(t, conn, "cleared")
	}
	// The match-kind payload shows the board during the feedback window, so
	// the just-resolved pair still counts; the cleared payload that follows
	// reports it swept.
	if lastMatch.RemainingPairs != 1 {
		t.Fatalf("expected final match to report its own pair pending, got %d", lastMatch.RemainingPairs)
	}
	if lastCleared.RemainingPairs != 0 {
		t.Fatalf("expected board exhausted, %d pairs left", lastCleared.RemainingPairs)
	}
	if lastMatch.Game1Score <= 0 {
		t.Fatalf("expected positive match score, got %d", lastMatch.Game1Score)
	}

	// Clearing the board rolls straight into the quiz.
	awaitStage(t, conn, "quiz_game", waitLong)
	for i := 0; i < 10; i++ {
		var q ws.QuestionPayload
		decodeInto(t, awaitType(t, conn, ws.TypeQuestion, waitLong), &q)
		if q.Index != i {
			t.Fatalf("expected question index %d, got %d", i, q.Index)
		}
		if len(q.Question.Options) < 2 {
			t.Fatalf("question %d has %d options", i, len(q.Question.Options))
		}
		sendMsg(t, conn, ws.TypeSubmitAnswer, ws.SubmitAnswerPayload{Label: "A"})
		awaitType(t, conn, ws.TypeAnswerResult, waitLong)
	}

	awaitStage(t, conn, "code_verify", waitLong)
	for _, d := range issued.Code {
		sendMsg(t, conn, ws.TypePressDigit, ws.PressDigitPayload{Digit: string(d)})
	}
	var verify ws.VerifyResultPayload
	decodeInto(t, awaitType(t, conn, ws.TypeVerifyResult, waitLong), &verify)
	if verify.Outcome != "verified" {
		t.Fatalf("expected verified outcome, got %q", verify.Outcome)
	}

	awaitStage(t, conn, "results", waitLong)
	var results ws.ResultsPayload
	decodeInto(t, awaitType(t, conn, ws.TypeResults, waitLong), &results)
	if !results.Saved {
		t.Fatalf("results not saved: %s", results.SaveError)
	}
	if results.TotalScore != results.Game1Score+results.Game2Score {
		t.Fatalf("total %d != game1 %d + game2 %d", results.TotalScore, results.Game1Score, results.Game2Score)
	}
	if results.Game1Matches != len(pairs) {
		t.Fatalf("expected %d matches, got %d", len(pairs), results.Game1Matches)
	}

	rows := stack.store.snapshot()
	if len(rows) != 1 {
		t.Fatalf("expected 1 persisted row, got %d", len(rows))
	}
	if rows[0].Name != "Monica" || rows[0].Score != results.TotalScore {
		t.Fatalf("persisted row mismatch: %+v", rows[0])
	}

	sendMsg(t, conn, ws.TypeGoLeaderboard, nil)
	awaitStage(t, conn, "leaderboard", waitLong)
	var board ws.LeaderboardUpdatePayload
	decodeInto(t, awaitType(t, conn, ws.TypeLeaderboardUpdate, waitLong), &board)
	if len(board.Top) != 1 || board.Top[0].Name != "Monica" {
		t.Fatalf("unexpected leaderboard: %+v", board.Top)
	}
	if board.Top[0].Rank != 1 {
		t.Fatalf("expected rank 1, got %d", board.Top[0].Rank)
	}
}

func TestTimersExpireIntoPenancePath(t *testing.T) {
	// Shrink the countdowns so an idle player is swept through both games.
	cfg := fastGameConfig()
	cfg.MatchRoundSeconds = 1
	cfg.QuizGlobalSeconds = 1
	stack := newTestStack(t, cfg)

	conn := dialGame(t, stack)
	awaitStage(t, conn, "registration", waitLong)
	sendMsg(t, conn, ws.TypeRegister, ws.RegisterPayload{Name: "Thomas", Region: "Kerala"})

	// No picks, no answers: the round timers carry the session forward.
	awaitStage(t, conn, "match_game", waitLong)
	awaitStage(t, conn, "quiz_game", waitLong)
	awaitStage(t, conn, "code_verify", waitLong)

	// Two wrong entries exhaust the attempt budget.
	for attempt := 0; attempt < 2; attempt++ {
		for _, d := range "000000" {
			sendMsg(t, conn, ws.TypePressDigit, ws.PressDigitPayload{Digit: string(d)})
		}
		var verify ws.VerifyResultPayload
		decodeInto(t, awaitType(t, conn, ws.TypeVerifyResult, waitLong), &verify)
		if attempt == 0 && verify.Outcome != "retry" {
			t.Fatalf("expected retry after first failure, got %q", verify.Outcome)
		}
		if attempt == 1 && verify.Outcome != "penance" {
			t.Fatalf("expected penance after second failure, got %q", verify.Outcome)
		}
	}

	// The continue button stays locked until all five boxes are checked.
	sendMsg(t, conn, ws.TypePenanceContinue, nil)
	awaitType(t, conn, ws.TypeError, waitLong)
	for i := 0; i < 5; i++ {
		sendMsg(t, conn, ws.TypePenanceToggle, ws.PenanceTogglePayload{Index: i})
	}
	var penance ws.PenanceStatePayload
	for !penance.Complete {
		decodeInto(t, awaitType(t, conn, ws.TypePenanceState, waitLong), &penance)
	}
	sendMsg(t, conn, ws.TypePenanceContinue, nil)

	awaitStage(t, conn, "results", waitLong)
	var results ws.ResultsPayload
	decodeInto(t, awaitType(t, conn, ws.TypeResults, waitLong), &results)
	if !results.Saved {
		t.Fatalf("penance run should still persist: %s", results.SaveError)
	}

	rows := stack.store.snapshot()
	if len(rows) != 1 || rows[0].Name != "Thomas" {
		t.Fatalf("expected Thomas persisted, got %+v", rows)
	}
}

func TestSaveFailureSurfacesOnResults(t *testing.T) {
	cfg := fastGameConfig()
	cfg.MatchRoundSeconds = 1
	cfg.QuizGlobalSeconds = 1
	stack := newTestStack(t, cfg)
	stack.store.failInserts(errors.New("players table unavailable"))

	conn := dialGame(t, stack)
	awaitStage(t, conn, "registration", waitLong)
	sendMsg(t, conn, ws.TypeRegister, ws.RegisterPayload{Name: "Jude", Region: "Goa"})

	awaitStage(t, conn, "match_game", waitLong)
	awaitStage(t, conn, "quiz_game", waitLong)
	awaitStage(t, conn, "code_verify", waitLong)

	// Forgot-code drops straight into penance.
	sendMsg(t, conn, ws.TypeForgotCode, nil)
	for i := 0; i < 5; i++ {
		sendMsg(t, conn, ws.TypePenanceToggle, ws.PenanceTogglePayload{Index: i})
	}
	var penance ws.PenanceStatePayload
	for !penance.Complete {
		decodeInto(t, awaitType(t, conn, ws.TypePenanceState, waitLong), &penance)
	}
	sendMsg(t, conn, ws.TypePenanceContinue, nil)
	awaitStage(t, conn, "results", waitLong)

	// The failure surfaces as a coded error before the soft-failed results.
	var ep ws.ErrorPayload
	decodeInto(t, awaitType(t, conn, ws.TypeError, waitLong), &ep)
	if ep.Code != httperrors.ErrCodeSaveFailed {
		t.Fatalf("expected %s error, got %s (%s)", httperrors.ErrCodeSaveFailed, ep.Code, ep.Message)
	}

	var results ws.ResultsPayload
	decodeInto(t, awaitType(t, conn, ws.TypeResults, waitLong), &results)
	if results.Saved {
		t.Fatalf("save should have failed")
	}
	if results.SaveError == "" {
		t.Fatalf("expected a soft save error on the results payload")
	}
	if rows := stack.store.snapshot(); len(rows) != 0 {
		t.Fatalf("no row should persist, got %+v", rows)
	}
}
