package email_test

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/pkg/email"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receivedMail struct {
	From string
	To   []string
	Data string
}

// relayBackend is an in-memory SMTP relay that requires PLAIN auth
type relayBackend struct {
	user     string
	pass     string
	mu       sync.Mutex
	received []receivedMail
}

func (b *relayBackend) NewSession(_ *smtp.Conn) (smtp.Session, error) {
	return &relaySession{backend: b}, nil
}

func (b *relayBackend) messages() []receivedMail {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]receivedMail(nil), b.received...)
}

type relaySession struct {
	backend *relayBackend
	authed  bool
	current receivedMail
}

func (s *relaySession) AuthMechanisms() []string {
	return []string{sasl.Plain}
}

func (s *relaySession) Auth(mech string) (sasl.Server, error) {
	return sasl.NewPlainServer(func(identity, username, password string) error {
		if username != s.backend.user || password != s.backend.pass {
			return errors.New("invalid credentials")
		}
		s.authed = true
		return nil
	}), nil
}

func (s *relaySession) Mail(from string, _ *smtp.MailOptions) error {
	if !s.authed {
		return smtp.ErrAuthRequired
	}
	s.current = receivedMail{From: from}
	return nil
}

func (s *relaySession) Rcpt(to string, _ *smtp.RcptOptions) error {
	s.current.To = append(s.current.To, to)
	return nil
}

func (s *relaySession) Data(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.current.Data = string(data)
	s.backend.mu.Lock()
	s.backend.received = append(s.backend.received, s.current)
	s.backend.mu.Unlock()
	return nil
}

func (s *relaySession) Reset() {
	s.current = receivedMail{}
}

func (s *relaySession) Logout() error {
	return nil
}

func startRelay(t *testing.T) (*relayBackend, int) {
	t.Helper()
	backend := &relayBackend{user: "mailer@example.com", pass: "secret"}

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := smtp.NewServer(backend)
	srv.Domain = "localhost"
	srv.AllowInsecureAuth = true
	srv.ReadTimeout = 5 * time.Second
	srv.WriteTimeout = 5 * time.Second

	go func() { _ = srv.Serve(l) }()
	t.Cleanup(func() { _ = srv.Close() })

	return backend, l.Addr().(*net.TCPAddr).Port
}

// testTLS borrows the httptest certificate, valid for 127.0.0.1, and returns
// the server config plus a client config trusting it
func testTLS(t *testing.T) (*tls.Config, *tls.Config) {
	t.Helper()
	ts := httptest.NewTLSServer(http.NotFoundHandler())
	t.Cleanup(ts.Close)

	server := &tls.Config{Certificates: ts.TLS.Certificates}
	client := &tls.Config{
		ServerName: "127.0.0.1",
		RootCAs:    ts.Client().Transport.(*http.Transport).TLSClientConfig.RootCAs,
		MinVersion: tls.VersionTLS12,
	}
	return server, client
}

// startTLSRelay serves the relay over implicit TLS, or plain with STARTTLS
func startTLSRelay(t *testing.T, implicit bool) (*relayBackend, int, *tls.Config) {
	t.Helper()
	serverTLS, clientTLS := testTLS(t)
	backend := &relayBackend{user: "mailer@example.com", pass: "secret"}

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port

	srv := smtp.NewServer(backend)
	srv.Domain = "localhost"
	srv.ReadTimeout = 5 * time.Second
	srv.WriteTimeout = 5 * time.Second
	if implicit {
		srv.AllowInsecureAuth = true
		l = tls.NewListener(l, serverTLS)
	} else {
		srv.TLSConfig = serverTLS
	}

	go func() { _ = srv.Serve(l) }()
	t.Cleanup(func() { _ = srv.Close() })

	return backend, port, clientTLS
}

func relayConfig(port int, user, pass string) config.MailConfig {
	return config.MailConfig{
		Driver:      config.MailDriverSMTP,
		SMTPHost:    "127.0.0.1",
		SMTPPort:    port,
		SMTPUser:    user,
		SMTPPass:    pass,
		SMTPTimeout: 5 * time.Second,
		ContactTo:   "me@example.com",
	}
}

func TestSMTPTransportTLS(t *testing.T) {
	ctx := context.Background()

	t.Run("Should send over implicit TLS", func(t *testing.T) {
		backend, port, clientTLS := startTLSRelay(t, true)
		cfg := relayConfig(port, backend.user, backend.pass)
		cfg.SMTPSecure = true
		tr := email.NewSMTPTransport(cfg).WithTLSConfig(clientTLS)

		msg, err := email.NewContactMessage(email.ContactEmailData{
			SenderName:  "Jane",
			SenderEmail: "jane@example.com",
			Message:     "Hello over TLS, I would like to connect.",
		}, cfg.ContactTo, cfg.From())
		require.NoError(t, err)

		require.NoError(t, tr.Verify(ctx))
		require.NoError(t, tr.Send(ctx, msg))
		require.Len(t, backend.messages(), 1)
	})

	t.Run("Should upgrade with STARTTLS before authenticating", func(t *testing.T) {
		backend, port, clientTLS := startTLSRelay(t, false)
		tr := email.NewSMTPTransport(relayConfig(port, backend.user, backend.pass)).WithTLSConfig(clientTLS)

		assert.NoError(t, tr.Verify(ctx))
	})

	t.Run("Should reject an untrusted certificate", func(t *testing.T) {
		backend, port, _ := startTLSRelay(t, true)
		cfg := relayConfig(port, backend.user, backend.pass)
		cfg.SMTPSecure = true

		err := email.NewSMTPTransport(cfg).Verify(ctx)
		assert.Error(t, err)
	})
}

func TestSMTPTransportVerify(t *testing.T) {
	ctx := context.Background()
	backend, port := startRelay(t)

	t.Run("Should authenticate against the relay", func(t *testing.T) {
		tr := email.NewSMTPTransport(relayConfig(port, backend.user, backend.pass))
		assert.NoError(t, tr.Verify(ctx))
		assert.Empty(t, backend.messages())
	})

	t.Run("Should fail on bad credentials", func(t *testing.T) {
		tr := email.NewSMTPTransport(relayConfig(port, backend.user, "wrong"))
		err := tr.Verify(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SMTP authentication failed")
	})

	t.Run("Should fail when nothing listens", func(t *testing.T) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		closedPort := l.Addr().(*net.TCPAddr).Port
		require.NoError(t, l.Close())

		err = email.NewSMTPTransport(relayConfig(closedPort, "u", "p")).Verify(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to SMTP server")
	})

	t.Run("Should give up when the server never greets", func(t *testing.T) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()
		go func() {
			conn, err := l.Accept()
			if err == nil {
				defer conn.Close()
				time.Sleep(2 * time.Second)
			}
		}()

		cfg := relayConfig(l.Addr().(*net.TCPAddr).Port, "u", "p")
		cfg.SMTPTimeout = 200 * time.Millisecond

		start := time.Now()
		err = email.NewSMTPTransport(cfg).Verify(ctx)
		require.Error(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}

func TestSMTPTransportSend(t *testing.T) {
	ctx := context.Background()
	backend, port := startRelay(t)
	tr := email.NewSMTPTransport(relayConfig(port, backend.user, backend.pass))

	msg, err := email.NewContactMessage(email.ContactEmailData{
		SenderName:  "Jane",
		SenderEmail: "jane@example.com",
		Message:     "Hello, I would like to connect.\n.\nSecond paragraph.",
	}, "me@example.com", "mailer@example.com")
	require.NoError(t, err)

	require.NoError(t, tr.Send(ctx, msg))

	received := backend.messages()
	require.Len(t, received, 1)
	assert.Equal(t, "mailer@example.com", received[0].From)
	assert.Equal(t, []string{"me@example.com"}, received[0].To)
	assert.Contains(t, received[0].Data, "Reply-To: jane@example.com\r\n")
	assert.Contains(t, received[0].Data, "Subject: New portfolio message from Jane\r\n")
	assert.True(t, strings.Contains(received[0].Data, "Second paragraph."))
}

func TestSMTPTransportSendRejectsIncompleteMessage(t *testing.T) {
	tr := email.NewSMTPTransport(relayConfig(1, "u", "p"))
	err := tr.Send(context.Background(), &email.Message{From: "mailer@example.com"})
	assert.ErrorIs(t, err, email.ErrNoRecipient)
}
