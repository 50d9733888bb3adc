package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Airlift/internal/auth"
	"Airlift/internal/calc/airlift"
	"Airlift/internal/config"
)

func newTestServer(t *testing.T) (*httptest.Server, config.Config) {
	t.Helper()
	return newLoggedTestServer(t, io.Discard)
}

func newLoggedTestServer(t *testing.T, logOut io.Writer) (*httptest.Server, config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.TokenKey = "test-key"
	cfg.RateLimit = 1000
	cfg.RateBurst = 1000

	router := mux.NewRouter()
	logger := slog.New(slog.NewJSONHandler(logOut, nil))
	HandleList(router, cfg, nil, logger)
	srv := httptest.NewServer(NewHandler(router, logger))
	t.Cleanup(srv.Close)
	return srv, cfg
}

func TestServer_PublicCalc(t *testing.T) {
	srv, _ := newTestServer(t)

	body, err := json.Marshal(airlift.DefaultInput())
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/api/tools/airlift/calc", "application/json", strings.NewReader(string(body)))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res airlift.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 800.0, res.TotalRequiredTons)
	assert.Equal(t, 25.0, res.SurplusTons)
}

func TestServer_Defaults(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/tools/airlift/defaults")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_SecureRoutesNeedToken(t *testing.T) {
	srv, cfg := newTestServer(t)
	url := srv.URL + "/api/user/tools/airlift/batch"
	body := `{"scenarios":[{"name":"defaults","requirements":[{"name":"Food","tons":300}]}]}`

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := (&auth.Authenv{JWTkey: []byte(cfg.TokenKey)}).IssueToken(1, "tester", time.Now())
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_AccountRoutesNeedDatabase(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/login", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Preflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/tools/airlift/calc", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// lockedBuffer lets the server goroutine log while the test reads.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return bytes.Clone(b.buf.Bytes())
}

func TestServer_LogsUnmatchedRoutes(t *testing.T) {
	logs := &lockedBuffer{}
	srv, _ := newLoggedTestServer(t, logs)

	resp, err := http.Get(srv.URL + "/api/tools/unknown")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/tools/airlift/calc")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	srv.Close()

	var entries []map[string]any
	dec := json.NewDecoder(bytes.NewReader(logs.Bytes()))
	for dec.More() {
		var entry map[string]any
		require.NoError(t, dec.Decode(&entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 2)
	assert.Equal(t, "request", entries[0]["msg"])
	assert.Equal(t, "/api/tools/unknown", entries[0]["path"])
	assert.Equal(t, float64(http.StatusNotFound), entries[0]["status"])
	assert.Equal(t, float64(http.StatusMethodNotAllowed), entries[1]["status"])
}
