package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name  string
		state ServerState
		code  int
	}{
		{name: "ready", state: ServerStateReady, code: http.StatusOK},
		{name: "grace period", state: ServerStateInGracePeriod, code: http.StatusServiceUnavailable},
		{name: "cleanup", state: ServerStateInCleanupPeriod, code: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HTTP{}
			h.setState(tt.state)

			rec := httptest.NewRecorder()
			h.health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.state, h.State())
		})
	}
}
