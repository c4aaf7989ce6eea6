package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type Mailer struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailer(apiKey, fromName, fromEmail string) *Mailer {
	m := &Mailer{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}
	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}
	return m
}

func (m *Mailer) Enabled() bool {
	return m.enabled
}

func (m *Mailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	return m.send(toEmail, toName, subject, text, html, nil)
}

func (m *Mailer) SendWithAttachment(toEmail, toName, subject, text, html string, att Attachment) (string, error) {
	return m.send(toEmail, toName, subject, text, html, &att)
}

func (m *Mailer) send(toEmail, toName, subject, text, html string, att *Attachment) (string, error) {
	if !m.enabled {
		return "", errors.New("mailer disabled (missing MAILERSEND_API_KEY or MAIL_FROM_EMAIL)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)
	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}
	if att != nil {
		msg.AddAttachment(mailersend.Attachment{
			Content:  base64.StdEncoding.EncodeToString(att.Content),
			Filename: att.Filename,
		})
	}

	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("mailersend error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	// MailerSend returns the id in X-Message-Id
	return res.Header.Get("X-Message-Id"), nil
}
