package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"portfolio-backend/config"
)

// SMTPTransport delivers mail through an authenticated SMTP relay
type SMTPTransport struct {
	host      string
	port      int
	secure    bool
	username  string
	password  string
	timeout   time.Duration
	tlsConfig *tls.Config
}

// NewSMTPTransport creates a transport from the mail configuration.
// Nothing is dialled until Verify or Send is called.
func NewSMTPTransport(cfg config.MailConfig) *SMTPTransport {
	return &SMTPTransport{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		secure:   cfg.SMTPSecure,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		timeout:  cfg.SMTPTimeout,
		tlsConfig: &tls.Config{
			ServerName: cfg.SMTPHost,
			MinVersion: tls.VersionTLS12,
		},
	}
}

// WithTLSConfig replaces the TLS settings used for implicit TLS and STARTTLS
func (t *SMTPTransport) WithTLSConfig(cfg *tls.Config) *SMTPTransport {
	t.tlsConfig = cfg
	return t
}

// Verify opens a session, negotiates TLS and authenticates, then quits
func (t *SMTPTransport) Verify(ctx context.Context) error {
	sess, err := t.open(ctx)
	if err != nil {
		return err
	}
	defer sess.close()

	if err := sess.client.Quit(); err != nil {
		return fmt.Errorf("QUIT failed: %w", err)
	}
	return nil
}

// Send delivers msg in a fresh session
func (t *SMTPTransport) Send(ctx context.Context, msg *Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	body, err := msg.Bytes()
	if err != nil {
		return err
	}

	sess, err := t.open(ctx)
	if err != nil {
		return err
	}
	defer sess.close()

	c := sess.client
	if err := c.Mail(msg.From); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA command failed: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close email data: %w", err)
	}

	if err := c.Quit(); err != nil {
		return fmt.Errorf("QUIT failed: %w", err)
	}
	return nil
}

type smtpSession struct {
	client *smtp.Client
	cancel context.CancelFunc
	stop   func() bool
}

func (s *smtpSession) close() {
	s.stop()
	s.cancel()
	_ = s.client.Close()
}

// open dials the relay and leaves the session ready for MAIL FROM
func (t *SMTPTransport) open(ctx context.Context) (*smtpSession, error) {
	cancel := context.CancelFunc(func() {})
	if t.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
	}

	addr := net.JoinHostPort(t.host, strconv.Itoa(t.port))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	// Unblock any pending read or write once the context is done
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})

	fail := func(err error) (*smtpSession, error) {
		stop()
		cancel()
		_ = conn.Close()
		return nil, err
	}

	if t.secure {
		tlsConn := tls.Client(conn, t.tlsConfig)
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			return fail(fmt.Errorf("TLS handshake failed: %w", err))
		}
		conn = tlsConn
	}

	c, err := smtp.NewClient(conn, t.host)
	if err != nil {
		return fail(fmt.Errorf("failed to start SMTP session: %w", err))
	}
	sess := &smtpSession{client: c, cancel: cancel, stop: stop}

	if !t.secure {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err := c.StartTLS(t.tlsConfig); err != nil {
				sess.close()
				return nil, fmt.Errorf("failed to start TLS: %w", err)
			}
		}
	}

	if t.username != "" {
		if ok, _ := c.Extension("AUTH"); !ok {
			sess.close()
			return nil, errors.New("SMTP server does not support authentication")
		}
		if err := c.Auth(smtp.PlainAuth("", t.username, t.password, t.host)); err != nil {
			sess.close()
			return nil, fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	return sess, nil
}
