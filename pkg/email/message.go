package email

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// contactEmailTemplate is the HTML alternative for contact form emails
const contactEmailTemplate = `<div style="font-family: Arial, sans-serif; padding: 16px;">
  <h2 style="margin:0 0 12px">New Contact Message</h2>
  <p><strong>Name:</strong> {{.SenderName}}</p>
  <p><strong>Email:</strong> {{.SenderEmail}}</p>
  <p style="white-space:pre-wrap"><strong>Message:</strong><br>{{nl2br .Message}}</p>
  <hr>
  <p style="color:#64748b">Sent from portfolio contact form</p>
</div>
`

const contactTextTemplate = "New Contact Message\n\nName: %s\nEmail: %s\n\nMessage:\n%s\n\n--\nSent from portfolio contact form"

var contactHTML = template.Must(template.New("contact").Funcs(template.FuncMap{
	"nl2br": nl2br,
}).Parse(contactEmailTemplate))

// nl2br escapes s and turns its line breaks into <br> tags
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(normalizeNewlines(s))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// NewContactMessage builds the notification for one contact submission.
// Replies go straight to the submitter.
func NewContactMessage(data ContactEmailData, to, from string) (*Message, error) {
	data.Message = normalizeNewlines(data.Message)

	var html bytes.Buffer
	if err := contactHTML.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	return &Message{
		From:     from,
		To:       to,
		ReplyTo:  data.SenderEmail,
		Subject:  fmt.Sprintf("New portfolio message from %s", data.SenderName),
		TextBody: fmt.Sprintf(contactTextTemplate, data.SenderName, data.SenderEmail, data.Message),
		HTMLBody: html.String(),
		Date:     time.Now(),
	}, nil
}

// Bytes renders the message as an RFC 5322 document with a
// multipart/alternative body.
func (m *Message) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	date := m.Date
	if date.IsZero() {
		date = time.Now()
	}
	msgID := m.MessageID
	if msgID == "" {
		msgID = fmt.Sprintf("<%s@%s>", uuid.NewString(), domainOf(m.From))
	}

	headers := []struct{ key, value string }{
		{"From", m.From},
		{"To", m.To},
		{"Reply-To", m.ReplyTo},
		{"Subject", mime.QEncoding.Encode("utf-8", headerValue(m.Subject))},
		{"Date", date.Format(time.RFC1123Z)},
		{"Message-ID", msgID},
		{"MIME-Version", "1.0"},
		{"Content-Type", fmt.Sprintf("multipart/alternative; boundary=%q", mw.Boundary())},
	}
	var head bytes.Buffer
	for _, h := range headers {
		if h.value == "" {
			continue
		}
		fmt.Fprintf(&head, "%s: %s\r\n", h.key, headerValue(h.value))
	}
	head.WriteString("\r\n")

	if err := writeQPPart(mw, "text/plain; charset=UTF-8", m.TextBody); err != nil {
		return nil, err
	}
	if m.HTMLBody != "" {
		if err := writeQPPart(mw, "text/html; charset=UTF-8", m.HTMLBody); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	return append(head.Bytes(), buf.Bytes()...), nil
}

func writeQPPart(mw *multipart.Writer, contentType, body string) error {
	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", contentType, err)
	}
	qp := quotedprintable.NewWriter(part)
	if _, err := qp.Write([]byte(body)); err != nil {
		return fmt.Errorf("failed to encode %s part: %w", contentType, err)
	}
	return qp.Close()
}

// headerValue strips line breaks so user input cannot start a new header
func headerValue(s string) string {
	return strings.Join(strings.Fields(strings.NewReplacer("\r", " ", "\n", " ").Replace(s)), " ")
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

func domainOf(addr string) string {
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return strings.Trim(addr[i+1:], "<> ")
	}
	return "localhost"
}
