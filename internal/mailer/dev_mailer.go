package mailer

import (
	"github.com/kcoproperties/leasing-api/pkg/logger"
)

// DevMailer logs instead of sending. Used when EMAIL_DEV_MODE=true or no
// API key is configured, so local runs never hit MailerSend.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) Enabled() bool {
	return true
}

func (d *DevMailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	logger.Info("📧 [DEV MAIL]",
		"to", toEmail,
		"name", toName,
		"subject", subject,
	)
	return "dev", nil
}

func (d *DevMailer) SendWithAttachment(toEmail, toName, subject, text, html string, att Attachment) (string, error) {
	logger.Info("📧 [DEV MAIL]",
		"to", toEmail,
		"name", toName,
		"subject", subject,
		"attachment", att.Filename,
		"attachment_bytes", len(att.Content),
	)
	return "dev", nil
}
