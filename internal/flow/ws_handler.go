package flow

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/faithrecall/game-server/internal/config"
	"github.com/faithrecall/game-server/internal/leaderboard"
	"github.com/faithrecall/game-server/internal/metrics"
	"github.com/faithrecall/game-server/internal/server"
	"github.com/faithrecall/game-server/internal/session"
	ws "github.com/faithrecall/game-server/pkg/http/ws"
)

// Handler owns the game WebSocket endpoint. Each accepted connection gets a
// fresh session and a runtime driving it through the pipeline.
type Handler struct {
	cfg      config.Game
	sessions *session.Manager
	hub      *ws.Hub
	lb       *leaderboard.Service
	logger   zerolog.Logger
}

// NewHandler constructs the game flow handler.
func NewHandler(cfg config.Game, sessions *session.Manager, hub *ws.Hub, lb *leaderboard.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		cfg:      cfg,
		sessions: sessions,
		hub:      hub,
		lb:       lb,
		logger:   logger.With().Str("component", "flow_ws").Logger(),
	}
}

// HandleWebSocket upgrades the connection and runs one game session over it.
// Route: GET /ws/game
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	rawConn, err := server.WSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	sess := h.sessions.Create()
	sessionID := sess.ID()
	conn := ws.NewConnection(rawConn, h.logger)
	h.hub.Register(sessionID, conn)
	metrics.SessionsActive.Inc()

	send := func(msg ws.Message) {
		if err := conn.Send(msg); err != nil {
			h.logger.Warn().Err(err).Str("session_id", sessionID.String()).Msg("send dropped")
		}
	}
	rt := NewRuntime(h.cfg, sess, h.lb, send, h.logger)

	// Greet with the opening stage so the client renders registration.
	send(ws.Must(ws.TypeStage, ws.StagePayload{Stage: string(session.StageRegistration)}))

	go conn.WritePump()
	go func() {
		conn.ReadPump(rt.HandleMessage)

		// Socket closed: tear the session down. Sessions do not survive a
		// reconnect, matching the kiosk's one-seat one-run setup.
		rt.Close()
		h.hub.Unregister(sessionID)
		h.sessions.Remove(sessionID)
		h.sessions.Remove(sess.ID()) // id changes when a run is reset
		metrics.SessionsActive.Dec()
	}()
}
