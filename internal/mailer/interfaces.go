package mailer

// Attachment is a file attached to an outgoing email. Content is the raw
// bytes; encoding is the transport's concern.
type Attachment struct {
	Filename string
	MIMEType string
	Content  []byte
}

type Service interface {
	Send(toEmail, toName, subject, text, html string) (string, error)
	SendWithAttachment(toEmail, toName, subject, text, html string, att Attachment) (string, error)
	Enabled() bool
}
