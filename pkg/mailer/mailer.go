package mailer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"net/smtp"
	"os"
	"path/filepath"
)

// Config holds SMTP configuration
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// Mailer sends plain-text and attachment emails over SMTP
type Mailer struct {
	config Config
}

// New creates a new Mailer
func New(config Config) *Mailer {
	return &Mailer{config: config}
}

// SendText sends a plain-text email
func (m *Mailer) SendText(to, subject, body string) error {
	msg := m.buildTextMessage(to, subject, body)
	return m.send(to, msg)
}

// SendWithAttachment sends a plain-text email with one file attached
func (m *Mailer) SendWithAttachment(to, subject, body, attachmentPath string) error {
	msg, err := m.buildAttachmentMessage(to, subject, body, attachmentPath)
	if err != nil {
		return err
	}
	return m.send(to, msg)
}

// send delivers a raw message using SMTP
func (m *Mailer) send(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", m.config.SMTPHost, m.config.SMTPPort)
	auth := smtp.PlainAuth("", m.config.SMTPUsername, m.config.SMTPPassword, m.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, m.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildTextMessage builds a plain-text email message
func (m *Mailer) buildTextMessage(to, subject, body string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"UTF-8\"\r\n"+
			"\r\n",
		m.config.FromName,
		m.config.FromEmail,
		to,
		mime.QEncoding.Encode("utf-8", subject),
	)

	return []byte(headers + body)
}

// buildAttachmentMessage builds a multipart email with the file attached
func (m *Mailer) buildAttachmentMessage(to, subject, body, attachmentPath string) ([]byte, error) {
	data, err := os.ReadFile(attachmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	fileName := filepath.Base(attachmentPath)

	const boundary = "mail-boundary-4f2a9c"

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s <%s>\r\n", m.config.FromName, m.config.FromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)

	// Body part
	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")

	// Attachment part
	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: application/pdf\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", fileName)

	encoded := base64.StdEncoding.EncodeToString(data)
	// RFC 2045 line length limit
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
	buf.WriteString("\r\n")
	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	return buf.Bytes(), nil
}
