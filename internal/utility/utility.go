package utility

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrTooManyAttempts is returned by RateLimiter.Allow when the window is full.
var ErrTooManyAttempts = errors.New("too many attempts, please try again later")

// GetRealIP is a helper function to get the user's real IP address.
// It checks proxy headers first.
func GetRealIP(c echo.Context) string {
	// This header can be a list: "client, proxy1, proxy2"
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xRealIP := c.Request().Header.Get("X-Real-IP"); xRealIP != "" {
		return xRealIP
	}

	return c.RealIP()
}

// GetUserIDFromContext safely retrieves user ID from Echo context
func GetUserIDFromContext(c echo.Context) (string, error) {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}

// Logger returns the request-scoped logger installed by the server
// middleware, or the global logger outside a request.
func Logger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get("logger").(*zerolog.Logger); ok && l != nil {
		return l
	}
	return &log.Logger
}

func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// AddRandomDelay sleeps 50-100ms so failed credential checks take a
// similar time regardless of which step failed.
func AddRandomDelay() {
	const baseDelay = 50 * time.Millisecond

	jitter, err := rand.Int(rand.Reader, big.NewInt(51))
	if err != nil {
		log.Warn().Err(err).Msg("crypto/rand failed, using base delay")
		time.Sleep(baseDelay)
		return
	}

	time.Sleep(baseDelay + time.Duration(jitter.Int64())*time.Millisecond)
}

// RateLimiter is a sliding-window attempt counter keyed by an arbitrary
// string (usually a client IP).
type RateLimiter struct {
	Window      time.Duration
	MaxAttempts int

	attempts sync.Map
	now      func() time.Time
}

func NewRateLimiter(window time.Duration, maxAttempts int) *RateLimiter {
	return &RateLimiter{Window: window, MaxAttempts: maxAttempts, now: time.Now}
}

// LoginLimiter guards the credential endpoints: 10 attempts per 15 minutes.
var LoginLimiter = NewRateLimiter(15*time.Minute, 10)

// Allow records an attempt for key and fails once the window is full.
func (l *RateLimiter) Allow(key string) error {
	now := l.now()

	val, _ := l.attempts.LoadOrStore(key, []time.Time{})
	attempts := val.([]time.Time)

	var recent []time.Time
	for _, t := range attempts {
		if now.Sub(t) < l.Window {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.MaxAttempts {
		l.attempts.Store(key, recent)
		return ErrTooManyAttempts
	}

	recent = append(recent, now)
	l.attempts.Store(key, recent)
	return nil
}

// Reset forgets every attempt recorded for key.
func (l *RateLimiter) Reset(key string) {
	l.attempts.Delete(key)
}

func StringToPgtypeUUID(s string) (pgtype.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("invalid UUID %q: %w", s, err)
	}
	return pgtype.UUID{Bytes: id, Valid: true}, nil
}

func PgtypeUUIDToString(pgtypeUUID pgtype.UUID) (string, error) {
	if !pgtypeUUID.Valid {
		return "", fmt.Errorf("invalid UUID")
	}

	id, err := uuid.FromBytes(pgtypeUUID.Bytes[:])
	if err != nil {
		return "", fmt.Errorf("failed to parse UUID: %w", err)
	}

	return id.String(), nil
}

func TextFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// TextFromString treats the empty string as NULL.
func TextFromString(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	return pgtype.Text{String: s, Valid: s != ""}
}

func Int4FromPtr(i *int32) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *i, Valid: true}
}

func Float8FromPtr(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}

func BoolFromPtr(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}

func Timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp accepts RFC3339, HTML datetime-local and plain dates.
// Values without a zone are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
