package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

// Appointment carries what the confirmation email shows.
type Appointment struct {
	PatientName  string
	PatientEmail string
	DoctorName   string
	Date         time.Time
	Time         string
	Reason       string
	Meeting      Meeting
}

func (a Appointment) FormattedDate() string {
	return a.Date.Format("Monday, January 2, 2006")
}

var appointmentHTML = htmltemplate.Must(htmltemplate.New("appointment").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Appointment Confirmation</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #667eea; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0;">Health Companion</h1>
    <p style="margin: 10px 0 0 0;">Appointment Confirmation</p>
  </div>
  <div style="background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px;">
    <p>Hello <strong>{{.PatientName}}</strong>,</p>
    <p>Your telehealth appointment has been confirmed.</p>
    <table style="width: 100%;">
      <tr><td><strong>Doctor:</strong></td><td>{{.DoctorName}}</td></tr>
      <tr><td><strong>Date:</strong></td><td>{{.FormattedDate}}</td></tr>
      <tr><td><strong>Time:</strong></td><td>{{.Time}}</td></tr>
      <tr><td><strong>Reason:</strong></td><td>{{.Reason}}</td></tr>
    </table>
    <div style="background: #e6fffa; border: 2px solid #38b2ac; padding: 20px; margin: 20px 0; text-align: center;">
      <h2>Zoom Meeting Details</h2>
      <p>Meeting ID: <strong>{{.Meeting.MeetingID}}</strong></p>
      <p>Password: <strong>{{.Meeting.Password}}</strong></p>
      <a href="{{.Meeting.JoinURL}}" style="background: #38b2ac; color: white; padding: 15px 40px; text-decoration: none; border-radius: 5px;">Join Zoom Meeting</a>
    </div>
    <p><strong>Important:</strong> Please join the meeting 5 minutes early to test your audio and video.</p>
    <p style="color: #718096;">If you need to reschedule or cancel, please log in to your Health Companion dashboard.</p>
    <p>Best regards,<br><strong>Health Companion Team</strong></p>
  </div>
</body>
</html>`))

var appointmentText = texttemplate.Must(texttemplate.New("appointment").Parse(`Health Companion - Appointment Confirmation

Hello {{.PatientName}},

Your telehealth appointment has been confirmed!

Appointment Details:
- Doctor: {{.DoctorName}}
- Date: {{.FormattedDate}}
- Time: {{.Time}}
- Reason: {{.Reason}}

Zoom Meeting Details:
- Meeting ID: {{.Meeting.MeetingID}}
- Password: {{.Meeting.Password}}
- Join URL: {{.Meeting.JoinURL}}

Please join the meeting 5 minutes early to test your audio and video.

Best regards,
Health Companion Team
`))

// AppointmentConfirmation renders the confirmation sent after booking.
// notify, when set, receives a blind copy.
func AppointmentConfirmation(a Appointment, notify string) (Message, error) {
	if a.PatientName == "" {
		a.PatientName = "there"
	}

	var html, text bytes.Buffer
	if err := appointmentHTML.Execute(&html, a); err != nil {
		return Message{}, fmt.Errorf("render appointment html: %w", err)
	}
	if err := appointmentText.Execute(&text, a); err != nil {
		return Message{}, fmt.Errorf("render appointment text: %w", err)
	}

	msg := Message{
		To:      []string{a.PatientEmail},
		Subject: fmt.Sprintf("Appointment Confirmed - %s at %s", a.FormattedDate(), a.Time),
		HTML:    html.String(),
		Text:    text.String(),
	}
	if notify = strings.TrimSpace(notify); notify != "" {
		msg.Bcc = []string{notify}
	}
	return msg, nil
}

var resetHTML = htmltemplate.Must(htmltemplate.New("reset").Parse(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6;">
  <h2>Reset your Health Companion password</h2>
  <p>Use the following code to choose a new password:</p>
  <div style="background: #f4f4f4; padding: 15px; text-align: center; font-size: 24px; letter-spacing: 5px; font-weight: bold; margin: 20px 0;">{{.Code}}</div>
  <p><strong>This code expires in {{.Minutes}} minutes.</strong></p>
  <p>If you did not ask to reset your password, you can ignore this email.</p>
</body>
</html>`))

// PasswordReset renders the email carrying a one-time reset code.
func PasswordReset(to, code string, ttl time.Duration) (Message, error) {
	data := struct {
		Code    string
		Minutes int
	}{code, int(ttl.Minutes())}

	var html bytes.Buffer
	if err := resetHTML.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("render reset html: %w", err)
	}

	return Message{
		To:      []string{to},
		Subject: "Your Health Companion password reset code",
		HTML:    html.String(),
		Text:    fmt.Sprintf("Your password reset code is %s. It expires in %d minutes.", code, data.Minutes),
	}, nil
}
