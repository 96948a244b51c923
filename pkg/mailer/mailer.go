package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/brightops/campaign-backend/internal/models"
	"github.com/google/uuid"
)

// Transport sends a single message through a sender identity's SMTP account.
// Implementations return the transport-assigned message ID on success. All
// transport failures (auth, network, recipient rejection) fold into a single
// error; retry, if any, belongs to the caller.
type Transport interface {
	Send(ctx context.Context, identity *models.SenderIdentity, to, subject, htmlBody string) (string, error)
}

// SMTPTransport dials a fresh SMTP session per send using the identity's
// credentials. No connection state is shared between sends.
type SMTPTransport struct {
	Timeout       time.Duration
	SkipTLSVerify bool
}

// NewSMTPTransport creates a new SMTPTransport
func NewSMTPTransport(timeout time.Duration, skipTLSVerify bool) *SMTPTransport {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SMTPTransport{
		Timeout:       timeout,
		SkipTLSVerify: skipTLSVerify,
	}
}

// Send sends one HTML message through the identity's SMTP account
func (t *SMTPTransport) Send(ctx context.Context, identity *models.SenderIdentity, to, subject, htmlBody string) (string, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), identity.Host)
	msg := buildMessage(identity.FromEmail, to, subject, htmlBody, messageID)
	addr := net.JoinHostPort(identity.Host, strconv.Itoa(identity.Port))

	dialer := &net.Dialer{Timeout: t.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(t.Timeout))
	}

	tlsConfig := &tls.Config{
		ServerName:         identity.Host,
		InsecureSkipVerify: t.SkipTLSVerify,
	}

	var client *smtp.Client
	if identity.Port == 465 {
		// Implicit TLS
		client, err = smtp.NewClient(tls.Client(conn, tlsConfig), identity.Host)
	} else {
		client, err = smtp.NewClient(conn, identity.Host)
	}
	if err != nil {
		conn.Close()
		return "", fmt.Errorf("smtp handshake with %s: %w", addr, err)
	}
	defer client.Close()

	if identity.Port != 465 {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				return "", fmt.Errorf("starttls: %w", err)
			}
		}
	}

	if identity.Username != "" {
		auth := smtp.PlainAuth("", identity.Username, identity.Password, identity.Host)
		if err := client.Auth(auth); err != nil {
			return "", fmt.Errorf("smtp auth for %s: %w", identity.Username, err)
		}
	}

	if err := client.Mail(identity.FromEmail); err != nil {
		return "", fmt.Errorf("mail from %s: %w", identity.FromEmail, err)
	}
	if err := client.Rcpt(to); err != nil {
		return "", fmt.Errorf("rcpt to %s: %w", to, err)
	}

	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return "", fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close message: %w", err)
	}

	_ = client.Quit()
	return messageID, nil
}

// buildMessage assembles the RFC 822 wire form of an HTML message
func buildMessage(from, to, subject, htmlBody, messageID string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&b, "Message-ID: %s\r\n", messageID)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// MockTransport simulates SMTP delivery for development and testing
type MockTransport struct {
	// FailFor forces a failure for any recipient containing this substring.
	FailFor string
}

// NewMockTransport creates a new MockTransport
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Send simulates sending and returns a synthetic message ID
func (t *MockTransport) Send(ctx context.Context, identity *models.SenderIdentity, to, subject, htmlBody string) (string, error) {
	if t.FailFor != "" && strings.Contains(to, t.FailFor) {
		return "", fmt.Errorf("mock transport: delivery to %s refused", to)
	}
	msgID := fmt.Sprintf("<mock-%s@%s>", uuid.NewString(), identity.Host)
	log.Printf("[Mock Transport] %s -> %s (%q) id=%s", identity.FromEmail, to, subject, msgID)
	return msgID, nil
}
