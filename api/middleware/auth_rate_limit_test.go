package middleware

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

	"github.com/angelmondragon/clubhouse-backend/pkg/config"
	"github.com/angelmondragon/clubhouse-backend/pkg/types"
)

type fakeRateStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeRateStore() *fakeRateStore {
	return &fakeRateStore{counts: map[string]int64{}}
}

func (f *fakeRateStore) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeRateStore) RateLimitKey(scope string) string {
	return "rl:" + scope
}

func loginRequest(email, remote string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"`+email+`","password":"secret"}`))
	req.RemoteAddr = remote
	return req
}

func TestAuthRateLimit_PreservesBodyUnderLimit(t *testing.T) {
	store := newFakeRateStore()
	handler := AuthRateLimit(NewAuthThrottle("login", time.Minute, 2, 2), store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		if !strings.Contains(string(body), `"email":"tester@example.com"`) {
			t.Fatalf("unexpected body: %s", string(body))
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, loginRequest("tester@example.com", "1.2.3.4:5678"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := store.counts["rl:login:ip:1.2.3.4"]; !ok {
		t.Fatalf("expected ip counter keyed by action, got %v", store.counts)
	}
	for key := range store.counts {
		if strings.Contains(key, "tester@example.com") {
			t.Fatalf("raw email leaked into key %q", key)
		}
	}
}

func TestAuthRateLimit_EmailCounterIgnoresCaseAndIP(t *testing.T) {
	store := newFakeRateStore()
	handler := AuthRateLimit(NewAuthThrottle("login", time.Minute, 0, 2), store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	emails := []string{"blocked@example.com", "Blocked@Example.com ", "BLOCKED@example.com"}
	remotes := []string{"10.0.0.1:80", "10.0.0.2:80", "10.0.0.3:80"}
	for i, email := range emails {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, loginRequest(email, remotes[i]))

		if i < 2 {
			if rec.Code != http.StatusOK {
				t.Fatalf("attempt %d: expected 200, got %d", i, rec.Code)
			}
			continue
		}
		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", rec.Code)
		}
		if rec.Header().Get("Retry-After") != "60" {
			t.Fatalf("expected Retry-After 60, got %q", rec.Header().Get("Retry-After"))
		}
		var payload types.ErrorEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode error: %v", err)
		}
		if payload.Error != "Too many attempts, try again later" {
			t.Fatalf("unexpected message: %s", payload.Error)
		}
	}
}

func TestAuthRateLimit_IPCounterUsesForwardedFor(t *testing.T) {
	store := newFakeRateStore()
	handler := AuthRateLimit(NewAuthThrottle("register", time.Minute, 1, 0), store, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := []int{}
	for _, remote := range []string{"5.6.7.8:1234", "9.9.9.9:1234"} {
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"foo@example.com"}`))
		req.RemoteAddr = remote
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("expected [200 429], got %v", codes)
	}
}

func TestAuthRateLimit_ActionsCountSeparately(t *testing.T) {
	store := newFakeRateStore()
	cfg := config.AuthRateLimitConfig{
		LoginWindow:     time.Minute,
		LoginIPLimit:    1,
		RegisterWindow:  time.Minute,
		RegisterIPLimit: 1,
	}
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	login := AuthRateLimit(LoginThrottle(cfg), store, nil)(ok)
	register := AuthRateLimit(RegisterThrottle(cfg), store, nil)(ok)

	for _, h := range []http.Handler{login, register} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, loginRequest("a@b.co", "1.1.1.1:1"))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected first attempt per action to pass, got %d", rec.Code)
		}
	}
}

func TestAuthRateLimit_DisabledThrottlePassesThrough(t *testing.T) {
	calls := 0
	handler := AuthRateLimit(NewAuthThrottle("login", time.Minute, 0, 0), nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, loginRequest("a@b.co", "1.1.1.1:1"))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}
	if calls != 5 {
		t.Fatalf("expected 5 calls, got %d", calls)
	}
}
