package utility

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRealIP(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", GetRealIP(e.NewContext(req, httptest.NewRecorder())))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", GetRealIP(e.NewContext(req, httptest.NewRecorder())))
}

func TestGetUserIDFromContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, err := GetUserIDFromContext(c)
	assert.Error(t, err)

	c.Set("user_id", "u-1")
	id, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiter(time.Minute, 2)
	l.now = func() time.Time { return now }

	require.NoError(t, l.Allow("1.2.3.4"))
	require.NoError(t, l.Allow("1.2.3.4"))
	assert.ErrorIs(t, l.Allow("1.2.3.4"), ErrTooManyAttempts)
	assert.NoError(t, l.Allow("5.6.7.8"), "keys are independent")

	now = now.Add(61 * time.Second)
	assert.NoError(t, l.Allow("1.2.3.4"), "window slides")

	l.Reset("5.6.7.8")
	require.NoError(t, l.Allow("5.6.7.8"))
}

func TestUUIDRoundTrip(t *testing.T) {
	id, err := StringToPgtypeUUID("6f1c2f4e-8a43-4c1b-9a53-0b8d1a2c3d4e")
	require.NoError(t, err)

	s, err := PgtypeUUIDToString(id)
	require.NoError(t, err)
	assert.Equal(t, "6f1c2f4e-8a43-4c1b-9a53-0b8d1a2c3d4e", s)

	_, err = StringToPgtypeUUID("not-a-uuid")
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-03-04T10:30:00Z", time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)},
		{"2025-03-04T10:30", time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)},
		{"2025-03-04", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseTimestamp(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.want.Equal(got), tt.in)
	}

	_, err := ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestPgtypeHelpers(t *testing.T) {
	s := "note"
	assert.True(t, TextFromPtr(&s).Valid)
	assert.False(t, TextFromPtr(nil).Valid)
	assert.False(t, TextFromString("   ").Valid)

	n := int32(4)
	assert.Equal(t, int32(4), Int4FromPtr(&n).Int32)
	assert.False(t, Float8FromPtr(nil).Valid)

	b := false
	got := BoolFromPtr(&b)
	assert.True(t, got.Valid)
	assert.False(t, got.Bool)
}

func TestValidationMessage(t *testing.T) {
	type req struct {
		Mood   string `json:"mood" validate:"required,oneof=great good okay bad terrible"`
		Energy int32  `json:"energy" validate:"min=1,max=10"`
		Email  string `json:"email" validate:"omitempty,email"`
	}
	v := NewValidator()

	err := v.Validate(&req{Energy: 5})
	assert.Equal(t, "mood is required", ValidationMessage(err))

	err = v.Validate(&req{Mood: "meh", Energy: 5})
	assert.Equal(t, "mood must be one of: great, good, okay, bad, terrible", ValidationMessage(err))

	err = v.Validate(&req{Mood: "good", Energy: 11})
	assert.Equal(t, "energy must be at most 10", ValidationMessage(err))

	err = v.Validate(&req{Mood: "good", Energy: 3, Email: "nope"})
	assert.Equal(t, "email must be a valid email address", ValidationMessage(err))

	assert.NoError(t, v.Validate(&req{Mood: "good", Energy: 3}))
	assert.Equal(t, "Invalid request", ValidationMessage(assert.AnError))
}
