package mailer

import (
	"strings"
	"testing"
)

func TestNewMailerDisabledWithoutAPIKey(t *testing.T) {
	m := NewMailer("", "KCO Properties", "info@kcoproperties.com")
	if m.Enabled() {
		t.Fatal("mailer must be disabled without an API key")
	}

	if _, err := m.Send("jordan@example.com", "Jordan Lee", "subject", "text", "<p>html</p>"); err == nil {
		t.Fatal("disabled mailer must refuse to send")
	} else if !strings.Contains(err.Error(), "mailer disabled") {
		t.Fatalf("err = %v, want disabled-mailer error", err)
	}
}

func TestNewMailerDisabledWithoutFromEmail(t *testing.T) {
	m := NewMailer("test-key", "KCO Properties", "")
	if m.Enabled() {
		t.Fatal("mailer must be disabled without a from address")
	}

	att := Attachment{Filename: "invite.ics", Content: []byte("BEGIN:VCALENDAR")}
	if _, err := m.SendWithAttachment("jordan@example.com", "Jordan Lee", "subject", "", "", att); err == nil {
		t.Fatal("disabled mailer must refuse attachment sends")
	}
}

func TestNewMailerEnabled(t *testing.T) {
	m := NewMailer("test-key", "KCO Properties", "info@kcoproperties.com")
	if !m.Enabled() {
		t.Fatal("mailer with key and from address must be enabled")
	}
}
