package email

import (
	"context"
	"errors"
	"time"
)

// Transport delivers outgoing mail. Verify checks that the relay is reachable
// and accepts our credentials without sending anything.
type Transport interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg *Message) error
}

// Message is a single outgoing email with a plain-text body and an HTML
// alternative.
type Message struct {
	From      string
	To        string
	ReplyTo   string
	Subject   string
	TextBody  string
	HTMLBody  string
	Date      time.Time
	MessageID string
}

var (
	ErrNoRecipient = errors.New("email: message has no recipient")
	ErrNoSender    = errors.New("email: message has no sender")
)

func (m *Message) validate() error {
	if m.To == "" {
		return ErrNoRecipient
	}
	if m.From == "" {
		return ErrNoSender
	}
	return nil
}
