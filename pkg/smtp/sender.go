package smtp

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"ai-email-assistant/pkg/metrics"
)

// Config holds SMTP configuration.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Message represents an email to send.
type Message struct {
	To       string
	Subject  string
	Body     string
	FromName string
}

// Sender delivers email over SMTP with bounded retry.
type Sender struct {
	cfg        *Config
	maxRetries int
	retryDelay time.Duration

	// sendMail is swappable for tests; defaults to net/smtp.SendMail.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSender creates a new email sender.
func NewSender(cfg *Config) *Sender {
	return &Sender{
		cfg:        cfg,
		maxRetries: 3,
		retryDelay: 5 * time.Second,
		sendMail:   smtp.SendMail,
	}
}

// Send delivers the message, retrying up to maxRetries times with a fixed
// delay between attempts. Attempts and duration are recorded as metrics.
func (s *Sender) Send(ctx context.Context, msg *Message) error {
	if s.cfg == nil || s.cfg.Host == "" {
		return fmt.Errorf("SMTP not configured")
	}

	payload := s.buildMessage(msg)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	start := time.Now()
	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		lastErr = s.sendMail(addr, auth, s.cfg.From, []string{msg.To}, payload)
		if lastErr == nil {
			metrics.EmailSendAttempts.WithLabelValues("success").Inc()
			metrics.EmailSendDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
			return nil
		}

		log.Printf("[SMTP] send attempt %d/%d failed: %v", attempt, s.maxRetries, lastErr)
		if attempt < s.maxRetries {
			select {
			case <-ctx.Done():
				metrics.EmailSendAttempts.WithLabelValues("failure").Inc()
				return ctx.Err()
			case <-time.After(s.retryDelay):
			}
		}
	}

	metrics.EmailSendAttempts.WithLabelValues("failure").Inc()
	metrics.EmailSendDuration.WithLabelValues("failure").Observe(time.Since(start).Seconds())
	return fmt.Errorf("failed to send email: %w", lastErr)
}

// buildMessage assembles the RFC 5322 payload for the message.
func (s *Sender) buildMessage(msg *Message) []byte {
	fromHeader := s.cfg.From
	if msg.FromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", msg.FromName, s.cfg.From)
	}

	headers := make(textproto.MIMEHeader)
	headers.Set("From", fromHeader)
	headers.Set("To", msg.To)
	headers.Set("Subject", msg.Subject)
	headers.Set("MIME-Version", "1.0")
	headers.Set("Content-Type", "text/plain; charset=utf-8")
	headers.Set("Date", time.Now().Format(time.RFC1123Z))

	var buf bytes.Buffer
	for k, v := range headers {
		buf.WriteString(fmt.Sprintf("%s: %s\r\n", k, strings.Join(v, ", ")))
	}
	buf.WriteString("\r\n")
	buf.WriteString(msg.Body)
	return buf.Bytes()
}
