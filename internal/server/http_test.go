package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/faithrecall/game-server/internal/logging"
)

func TestRequestLoggerInjectsScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := logging.FromContext(r.Context())
		logger.Info().Msg("handled")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/leaderboard?limit=5", nil)
	requestLogger(base, next).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/v1/leaderboard"`)
	assert.Contains(t, out, `"handled"`)
}
