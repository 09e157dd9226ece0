package mailer

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const meetingPasswordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Meeting is a telehealth video link attached to an appointment.
type Meeting struct {
	MeetingID string `json:"meeting_id"`
	Password  string `json:"password"`
	JoinURL   string `json:"join_url"`
}

// GenerateMeeting creates a Zoom-style meeting: a 9-digit id and a
// 6-character uppercase password.
func GenerateMeeting() (Meeting, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000000))
	if err != nil {
		return Meeting{}, err
	}
	id := fmt.Sprintf("%d", n.Int64()+100000000)

	pw := make([]byte, 6)
	max := big.NewInt(int64(len(meetingPasswordAlphabet)))
	for i := range pw {
		k, err := rand.Int(rand.Reader, max)
		if err != nil {
			return Meeting{}, err
		}
		pw[i] = meetingPasswordAlphabet[k.Int64()]
	}

	return Meeting{
		MeetingID: id,
		Password:  string(pw),
		JoinURL:   fmt.Sprintf("https://zoom.us/j/%s?pwd=%s", id, pw),
	}, nil
}

// NotesLine is the text appended to an appointment's notes.
func (m Meeting) NotesLine() string {
	return fmt.Sprintf("Zoom Meeting: %s\nMeeting ID: %s\nPassword: %s", m.JoinURL, m.MeetingID, m.Password)
}
