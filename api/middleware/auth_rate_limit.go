package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/angelmondragon/clubhouse-backend/api/responses"
	"github.com/angelmondragon/clubhouse-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
)

const tooManyAttemptsMessage = "Too many attempts, try again later"

type rateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
	RateLimitKey(scope string) string
}

// subjectFunc picks the value a counter is keyed on. An empty subject skips the
// counter for that request.
type subjectFunc func(r *http.Request, body []byte) string

type attemptCounter struct {
	scope   string
	max     int
	subject subjectFunc
}

// AuthThrottle counts attempts against one auth action (login or register)
// within a fixed window, once per caller IP and once per submitted email.
type AuthThrottle struct {
	action   string
	window   time.Duration
	counters []attemptCounter
}

// NewAuthThrottle builds a throttle; a zero limit disables that counter.
func NewAuthThrottle(action string, window time.Duration, ipLimit, emailLimit int) AuthThrottle {
	t := AuthThrottle{action: strings.ToLower(strings.TrimSpace(action)), window: window}
	if t.action == "" {
		t.action = "auth"
	}
	if ipLimit > 0 {
		t.counters = append(t.counters, attemptCounter{scope: "ip", max: ipLimit, subject: ipSubject})
	}
	if emailLimit > 0 {
		t.counters = append(t.counters, attemptCounter{scope: "email", max: emailLimit, subject: emailSubject})
	}
	return t
}

// LoginThrottle and RegisterThrottle read their limits from configuration.
func LoginThrottle(cfg config.AuthRateLimitConfig) AuthThrottle {
	return NewAuthThrottle("login", cfg.LoginWindow, cfg.LoginIPLimit, cfg.LoginEmailLimit)
}

func RegisterThrottle(cfg config.AuthRateLimitConfig) AuthThrottle {
	return NewAuthThrottle("register", cfg.RegisterWindow, cfg.RegisterIPLimit, cfg.RegisterEmailLimit)
}

func (t AuthThrottle) enabled() bool {
	return t.window > 0 && len(t.counters) > 0
}

func (t AuthThrottle) needsBody() bool {
	for _, c := range t.counters {
		if c.scope == "email" {
			return true
		}
	}
	return false
}

// AuthRateLimit rejects an auth attempt with 429 once any counter for the caller
// exceeds its limit inside the throttle window.
func AuthRateLimit(throttle AuthThrottle, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !throttle.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var body []byte
			if throttle.needsBody() {
				var err error
				body, err = io.ReadAll(r.Body)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid request body"))
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			for _, counter := range throttle.counters {
				subject := counter.subject(r, body)
				if subject == "" {
					continue
				}
				key := store.RateLimitKey(strings.Join([]string{throttle.action, counter.scope, subject}, ":"))
				attempts, err := store.IncrWithTTL(ctx, key, throttle.window)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count auth attempts"))
					return
				}
				if attempts > int64(counter.max) {
					rejectAttempt(ctx, logg, w, throttle, counter, subject, attempts)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rejectAttempt(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, throttle AuthThrottle, counter attemptCounter, subject string, attempts int64) {
	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{
			"action":   throttle.action,
			"scope":    counter.scope,
			"subject":  subject,
			"attempts": attempts,
			"limit":    counter.max,
		})
		logg.Warn(ctx, "auth.throttled")
	}
	w.Header().Set("Retry-After", strconv.Itoa(int(throttle.window.Seconds())))
	responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, tooManyAttemptsMessage))
}

func ipSubject(r *http.Request, _ []byte) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

// emailSubject hashes the submitted email so addresses never land in redis keys
// or logs.
func emailSubject(_ *http.Request, body []byte) string {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:])
}
