package mailer

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"HealthCompanion/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMeeting(t *testing.T) {
	idPattern := regexp.MustCompile(`^[1-9][0-9]{8}$`)
	pwPattern := regexp.MustCompile(`^[A-Z0-9]{6}$`)

	for i := 0; i < 50; i++ {
		m, err := GenerateMeeting()
		require.NoError(t, err)
		assert.Regexp(t, idPattern, m.MeetingID)
		assert.Regexp(t, pwPattern, m.Password)
		assert.Equal(t, "https://zoom.us/j/"+m.MeetingID+"?pwd="+m.Password, m.JoinURL)
	}
}

func TestAppointmentConfirmation(t *testing.T) {
	a := Appointment{
		PatientName:  "Ada <script>",
		PatientEmail: "ada@example.com",
		DoctorName:   "Dr. Internist",
		Date:         time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Time:         "14:30",
		Reason:       "Follow-up",
		Meeting:      Meeting{MeetingID: "123456789", Password: "ABC123", JoinURL: "https://zoom.us/j/123456789?pwd=ABC123"},
	}

	msg, err := AppointmentConfirmation(a, "clinic@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Appointment Confirmed - Tuesday, June 3, 2025 at 14:30", msg.Subject)
	assert.Equal(t, []string{"ada@example.com"}, msg.To)
	assert.Equal(t, []string{"clinic@example.com"}, msg.Bcc)
	assert.Contains(t, msg.HTML, "123456789")
	assert.NotContains(t, msg.HTML, "<script>", "patient fields are escaped")
	assert.Contains(t, msg.Text, "- Reason: Follow-up")

	msg, err = AppointmentConfirmation(a, " ")
	require.NoError(t, err)
	assert.Empty(t, msg.Bcc)
}

func TestPasswordReset(t *testing.T) {
	msg, err := PasswordReset("ada@example.com", "482913", 10*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, msg.HTML, "482913")
	assert.True(t, strings.Contains(msg.Text, "10 minutes"))
}

func TestMeetingNotesLine(t *testing.T) {
	m := Meeting{MeetingID: "111222333", Password: "ZZZ999", JoinURL: "https://zoom.us/j/111222333?pwd=ZZZ999"}
	assert.Equal(t, "Zoom Meeting: https://zoom.us/j/111222333?pwd=ZZZ999\nMeeting ID: 111222333\nPassword: ZZZ999", m.NotesLine())
}

func TestDisabledSender(t *testing.T) {
	s := NewSender(config.SMTPConfig{})
	err := s.Send(context.Background(), Message{To: []string{"x@example.com"}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
