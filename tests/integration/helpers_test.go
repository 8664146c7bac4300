//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/faithrecall/game-server/internal/auth"
	"github.com/faithrecall/game-server/internal/config"
	"github.com/faithrecall/game-server/internal/db/repository"
	"github.com/faithrecall/game-server/internal/flow"
	"github.com/faithrecall/game-server/internal/leaderboard"
	"github.com/faithrecall/game-server/internal/session"
	ws "github.com/faithrecall/game-server/pkg/http/ws"
)

const testPasscode = "penance-42"

// memStore is an in-memory stand-in for the players table.
type memStore struct {
	mu        sync.Mutex
	rows      []repository.Player
	insertErr error
}

func (s *memStore) failInserts(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertErr = err
}

func (s *memStore) Insert(ctx context.Context, name, region string, score int) (repository.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return repository.Player{}, s.insertErr
	}
	p := repository.Player{ID: uuid.New(), Name: name, Region: region, Score: score, CreatedAt: time.Now()}
	s.rows = append(s.rows, p)
	return p, nil
}

func (s *memStore) ListTop(ctx context.Context, limit int) ([]repository.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.rows) {
		limit = len(s.rows)
	}
	return append([]repository.Player(nil), s.rows[:limit]...), nil
}

func (s *memStore) DeleteAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := int64(len(s.rows))
	s.rows = nil
	return n, nil
}

func (s *memStore) snapshot() []repository.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]repository.Player(nil), s.rows...)
}

// fastGameConfig compresses every delay so a full run finishes in seconds.
func fastGameConfig() config.Game {
	return config.Game{
		MatchRoundSeconds:    30,
		MatchRevealSeconds:   1,
		MatchMismatchPenalty: 150,
		QuizQuestionCount:    10,
		QuizQuestionSeconds:  10,
		QuizGlobalSeconds:    120,
		QuizScoreFloor:       200,
		CodeDisplaySeconds:   0,
		VerifyDebounce:       50 * time.Millisecond,
	}
}

type testStack struct {
	server *httptest.Server
	store  *memStore
}

func newTestStack(t *testing.T, cfg config.Game) *testStack {
	t.Helper()
	logger := zerolog.New(io.Discard)

	store := &memStore{}
	lbSvc := leaderboard.NewService(store, nil, logger, leaderboard.ServiceOptions{})
	hub := ws.NewHub(logger)
	sessions := session.NewManager(logger)
	flowHandler := flow.NewHandler(cfg, sessions, hub, lbSvc, logger)
	lbHTTP := leaderboard.NewHTTPHandler(lbSvc, logger)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPasscode), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash passcode: %v", err)
	}
	adminSvc := auth.NewAdminService(string(hash), "integration-secret", 0, logger)
	adminHandlers := auth.NewHandlers(adminSvc, logger)
	requireAdmin := auth.RequireAdmin(adminSvc, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/ws/game", flowHandler.HandleWebSocket)
	mux.HandleFunc("GET /v1/leaderboard", lbHTTP.HandleGet)
	mux.Handle("DELETE /v1/leaderboard", requireAdmin(http.HandlerFunc(lbHTTP.HandleDelete)))
	mux.HandleFunc("POST /v1/admin/login", adminHandlers.HandleLogin)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &testStack{server: srv, store: store}
}

func (s *testStack) wsURL() string {
	return "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws/game"
}

func dialGame(t *testing.T, stack *testStack) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(stack.wsURL(), nil)
	if err != nil {
		t.Fatalf("dial game socket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendMsg(t *testing.T, conn *websocket.Conn, msgType string, payload any) {
	t.Helper()
	msg := ws.Message{Type: msgType}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal %s payload: %v", msgType, err)
		}
		msg.Payload = raw
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("send %s: %v", msgType, err)
	}
}

// awaitType reads until a message of the wanted type arrives, skipping ticks
// and anything else in between.
func awaitType(t *testing.T, conn *websocket.Conn, wantType string, timeout time.Duration) ws.Message {
	t.Helper()
	deadline := time.Now().Add(timeout)
	conn.SetReadDeadline(deadline)
	for {
		var msg ws.Message
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("waiting for %s: %v", wantType, err)
		}
		if msg.Type == wantType {
			return msg
		}
		if msg.Type == ws.TypeError {
			var p ws.ErrorPayload
			_ = json.Unmarshal(msg.Payload, &p)
			t.Fatalf("waiting for %s: got error %s (%s)", wantType, p.Code, p.Message)
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", wantType)
		}
	}
}

func awaitStage(t *testing.T, conn *websocket.Conn, stage string, timeout time.Duration) {
	t.Helper()
	for {
		msg := awaitType(t, conn, ws.TypeStage, timeout)
		var p ws.StagePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			t.Fatalf("decode stage payload: %v", err)
		}
		if p.Stage == stage {
			return
		}
	}
}

func decodeInto(t *testing.T, msg ws.Message, out any) {
	t.Helper()
	if err := json.Unmarshal(msg.Payload, out); err != nil {
		t.Fatalf("decode %s payload: %v", msg.Type, err)
	}
}
