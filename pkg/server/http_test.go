package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pathfinder/pkg/config"
	"github.com/pathfinder/pkg/domains/auth"
	"github.com/pathfinder/pkg/jobs"
	"github.com/pathfinder/pkg/logger"
	"github.com/pathfinder/pkg/middleware"
	"github.com/pathfinder/pkg/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	cfg := *config.Defaults()
	cfg.App.Mode = gin.TestMode
	cfg.App.Host = "127.0.0.1"
	cfg.App.AdminKey = "k3y"
	cfg.JWT.Secret = "server-secret"
	cfg.Limits.AuthEmailRPS = 0.001
	cfg.Limits.AuthEmailBurst = 1
	return cfg
}

func TestServer(t *testing.T) {
	cfg := testConfig()
	s, err := New(cfg, Dependencies{DB: testhelpers.SetupTestDB(t), Log: logger.Nop()})
	require.NoError(t, err)
	h := s.Handler()

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}
	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	t.Run("health", func(t *testing.T) {
		w := get("/api/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("swagger", func(t *testing.T) {
		w := get("/docs/doc.json")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/mentors/match")
	})

	t.Run("metrics", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get("/metrics").Code)
	})

	t.Run("match on empty database", func(t *testing.T) {
		w := post("/api/mentors/match", `{"menteeAddress":"0x1","preferences":{"expertise":"coding"}}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("reputation writes need the admin key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/reputation/0x1", strings.NewReader(`{"score":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("email issuing is rate limited", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, post("/api/auth/email", `{"email":"ada@example.com"}`).Code)
		assert.Equal(t, http.StatusTooManyRequests, post("/api/auth/email", `{"email":"ada@example.com"}`).Code)

		// no trusted proxies, so a forged X-Forwarded-For is not a new client
		for i := 1; i <= 4; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/email", strings.NewReader(`{"email":"ada@example.com"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Forwarded-For", "10.0.0."+strconv.Itoa(i))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, http.StatusTooManyRequests, w.Code)
		}
	})

	t.Run("media without generator", func(t *testing.T) {
		w := post("/api/generate-image", `{"prompt":"a lighthouse"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("run stops on cancel", func(t *testing.T) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		port := strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
		require.NoError(t, l.Close())
		s.config.App.Port = port

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- s.Run(ctx) }()

		require.Eventually(t, func() bool {
			resp, err := http.Get("http://127.0.0.1:" + port + "/api/health")
			if err != nil {
				return false
			}
			resp.Body.Close()
			return resp.StatusCode == http.StatusOK
		}, 2*time.Second, 20*time.Millisecond)

		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})
}

type slowNotifier struct {
	sent atomic.Bool
}

func (n *slowNotifier) SendVerification(ctx context.Context, address string, token string) error {
	time.Sleep(100 * time.Millisecond)
	n.sent.Store(true)
	return nil
}

func TestRunDrainsEmailsWhenListenFails(t *testing.T) {
	cfg := testConfig()
	repo := auth.NewRepo(testhelpers.SetupTestDB(t))
	notifier := &slowNotifier{}
	authService := auth.NewService(repo, notifier, logger.Nop(), cfg.JWT)

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	cfg.App.Port = strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)

	s := &Server{
		config:    cfg,
		engine:    gin.New(),
		auth:      authService,
		scheduler: jobs.NewScheduler(repo, logger.Nop()),
		log:       logger.Nop(),
	}

	_, err = authService.IssueVerificationToken(context.Background(), "ada@example.com")
	require.NoError(t, err)

	err = s.Run(context.Background())
	require.Error(t, err)
	assert.True(t, notifier.sent.Load())
}
