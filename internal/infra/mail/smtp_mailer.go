// Package mail sends transactional email over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultSMTPTimeout = 15 * time.Second

// smtpMailer delivers one message per connection.
type smtpMailer struct {
	host     string
	addr     string
	username string
	password string
	from     string
	timeout  time.Duration
}

// NewMailer returns the SMTP mailer, or a mailer that only logs when mail is disabled.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	mailCfg := cfg.Mail
	if mailCfg == nil || !mailCfg.Enabled {
		logger.Info("Mail disabled, messages will only be logged")

		return &logMailer{logger: logger}
	}

	timeout := mailCfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}

	return &smtpMailer{
		host:     mailCfg.Host,
		addr:     net.JoinHostPort(mailCfg.Host, strconv.Itoa(mailCfg.Port)),
		username: mailCfg.Username,
		password: mailCfg.Password,
		from:     mailCfg.From,
		timeout:  timeout,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return errors.Wrap(err, "failed to connect to smtp server")
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to start smtp session")
	}
	defer func() { _ = client.Close() }()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12}); err != nil {
			return errors.Wrap(err, "smtp starttls failed")
		}
	}

	if m.username != "" {
		if err := client.Auth(smtp.PlainAuth("", m.username, m.password, m.host)); err != nil {
			return errors.Wrap(err, "smtp auth failed")
		}
	}

	if err := client.Mail(m.from); err != nil {
		return errors.Wrap(err, "smtp MAIL FROM rejected")
	}
	if err := client.Rcpt(to); err != nil {
		return errors.Wrap(err, "smtp RCPT TO rejected")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp DATA rejected")
	}
	if _, err := w.Write(buildMessage(m.from, to, subject, htmlBody)); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "failed to write smtp body")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "smtp server rejected message")
	}

	return errors.Wrap(client.Quit(), "smtp quit failed")
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", mime.QEncoding.Encode("utf-8", subject)),
		fmt.Sprintf("Date: %s", time.Now().Format(time.RFC1123Z)),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}

	return []byte(strings.Join(headers, "\r\n"))
}

// logMailer stands in for SMTP in local runs.
type logMailer struct {
	logger *slog.Logger
}

func (m *logMailer) Send(ctx context.Context, to, subject, _ string) error {
	m.logger.InfoContext(ctx, "Mail not sent, mail disabled",
		slog.String("to", to),
		slog.String("subject", subject))

	return nil
}
