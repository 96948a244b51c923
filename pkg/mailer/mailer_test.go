package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/brightops/campaign-backend/internal/models"
)

func testIdentity() *models.SenderIdentity {
	return &models.SenderIdentity{
		FromEmail: "news@example.com",
		Host:      "smtp.example.com",
		Port:      587,
	}
}

func TestMockTransportSend(t *testing.T) {
	transport := NewMockTransport()

	id, err := transport.Send(context.Background(), testIdentity(), "to@example.com", "Hello", "<p>Hi</p>")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !strings.HasPrefix(id, "<mock-") || !strings.HasSuffix(id, "@smtp.example.com>") {
		t.Errorf("message id = %s", id)
	}
}

func TestMockTransportFailFor(t *testing.T) {
	transport := &MockTransport{FailFor: "bounce"}

	if _, err := transport.Send(context.Background(), testIdentity(), "bounce@example.com", "s", "b"); err == nil {
		t.Error("expected forced failure")
	}
	if _, err := transport.Send(context.Background(), testIdentity(), "ok@example.com", "s", "b"); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("from@example.com", "to@example.com", "Spring Sale", "<p>Hi</p>", "<id-1@smtp.example.com>"))

	headerChecks := []string{
		"From: from@example.com\r\n",
		"To: to@example.com\r\n",
		"Subject: Spring Sale\r\n",
		"Message-ID: <id-1@smtp.example.com>\r\n",
		"MIME-Version: 1.0\r\n",
		"Content-Type: text/html; charset=\"UTF-8\"\r\n",
	}
	for _, want := range headerChecks {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}

	// Body follows the blank line.
	parts := strings.SplitN(msg, "\r\n\r\n", 2)
	if len(parts) != 2 || parts[1] != "<p>Hi</p>" {
		t.Errorf("body = %q", msg)
	}
}

func TestBuildMessageEncodesSubject(t *testing.T) {
	msg := string(buildMessage("f@example.com", "t@example.com", "Vårsalg på alt", "<p>x</p>", "<id>"))

	if strings.Contains(msg, "Subject: Vårsalg på alt\r\n") {
		t.Error("non-ASCII subject not encoded")
	}
	if !strings.Contains(msg, "Subject: =?utf-8?q?") {
		t.Errorf("expected Q-encoded subject, got:\n%s", msg)
	}
}

func TestNewSMTPTransportDefaults(t *testing.T) {
	transport := NewSMTPTransport(0, false)
	if transport.Timeout <= 0 {
		t.Errorf("timeout = %v, want positive default", transport.Timeout)
	}
}
