// Package mail implements the outbound email relay over SMTP.
package mail

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"net/smtp"
	"sort"
	"strings"

	"infinitybasket/config"
	"infinitybasket/internal/domain/entity"
	"infinitybasket/internal/domain/service"

	"github.com/pkg/errors"
)

const mimeBoundary = "----=_Part_infinitybasket"

// smtpMailer implements the service.Mailer interface using net/smtp. With
// cfg.Enabled false every send degrades to a log line, which keeps local
// development working without SMTP credentials.
type smtpMailer struct {
	cfg    config.SMTPConfig
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	return &smtpMailer{
		cfg:    cfg.SMTP,
		logger: logger,
	}
}

// SendPasswordResetLink mails the raw reset token link to the admin.
func (m *smtpMailer) SendPasswordResetLink(ctx context.Context, to, resetURL string) error {
	subject := "Reset your InfinityBasket admin password"
	body := fmt.Sprintf(
		`<p>A password reset was requested for your admin account.</p>
<p><a href="%s">Click here to choose a new password.</a></p>
<p>The link is valid for one hour. If you did not request this, you can ignore this email.</p>`,
		html.EscapeString(resetURL),
	)
	text := fmt.Sprintf(
		"A password reset was requested for your admin account.\r\n\r\n"+
			"Open the link below to choose a new password (valid for one hour):\r\n%s\r\n\r\n"+
			"If you did not request this, you can ignore this email.\r\n",
		resetURL,
	)

	return m.send(ctx, to, subject, wrapHTML(subject, body), text)
}

// SendPasswordChanged mails a confirmation after a password change.
func (m *smtpMailer) SendPasswordChanged(ctx context.Context, to string) error {
	subject := "Your InfinityBasket admin password was changed"
	body := `<p>The password for your admin account was just changed.</p>
<p>If this was not you, request a password reset immediately.</p>`
	text := "The password for your admin account was just changed.\r\n" +
		"If this was not you, request a password reset immediately.\r\n"

	return m.send(ctx, to, subject, wrapHTML(subject, body), text)
}

// SendMessageReceipt mails the sender a copy of their submission.
func (m *smtpMailer) SendMessageReceipt(ctx context.Context, message *entity.Message) error {
	subject := "We received your message"
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Thanks for getting in touch. We received your message and will reply as soon as we can.</p>
<blockquote><p><strong>%s</strong></p><p>%s</p></blockquote>`,
		html.EscapeString(message.Name),
		html.EscapeString(message.Subject),
		html.EscapeString(message.Body),
	)
	text := fmt.Sprintf(
		"Hi %s,\r\n\r\nThanks for getting in touch. We received your message and will reply as soon as we can.\r\n\r\nSubject: %s\r\n\r\n%s\r\n",
		message.Name, message.Subject, message.Body,
	)

	return m.send(ctx, message.Email, subject, wrapHTML(subject, body), text)
}

// SendEnquiryAlert mails the admin mailbox about a new submission.
func (m *smtpMailer) SendEnquiryAlert(ctx context.Context, message *entity.Message) error {
	subject := fmt.Sprintf("New enquiry from %s", message.Name)
	body := fmt.Sprintf(
		`<p>A new enquiry arrived through the contact form.</p>
<p><strong>From:</strong> %s &lt;%s&gt;<br/>
<strong>Subject:</strong> %s</p>
<blockquote><p>%s</p></blockquote>`,
		html.EscapeString(message.Name),
		html.EscapeString(message.Email),
		html.EscapeString(message.Subject),
		html.EscapeString(message.Body),
	)
	text := fmt.Sprintf(
		"A new enquiry arrived through the contact form.\r\n\r\nFrom: %s <%s>\r\nSubject: %s\r\n\r\n%s\r\n",
		message.Name, message.Email, message.Subject, message.Body,
	)

	return m.send(ctx, m.cfg.AdminEmail, subject, wrapHTML(subject, body), text)
}

// SendReply mails the admin's reply to the original sender.
func (m *smtpMailer) SendReply(ctx context.Context, message *entity.Message) error {
	if message.Reply == nil {
		return errors.New("message has no reply to send")
	}

	subject := fmt.Sprintf("Re: %s", message.Subject)
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>%s</p>
<hr/>
<p>Your original message:</p>
<blockquote><p>%s</p></blockquote>`,
		html.EscapeString(message.Name),
		html.EscapeString(message.Reply.Content),
		html.EscapeString(message.Body),
	)
	text := fmt.Sprintf(
		"Hi %s,\r\n\r\n%s\r\n\r\n---\r\nYour original message:\r\n%s\r\n",
		message.Name, message.Reply.Content, message.Body,
	)

	return m.send(ctx, message.Email, subject, wrapHTML(subject, body), text)
}

// SendDetailsChangedAlert mails the admin mailbox a summary of the
// contact-details fields that changed.
func (m *smtpMailer) SendDetailsChangedAlert(ctx context.Context, changes map[string]string) error {
	fields := make([]string, 0, len(changes))
	for field := range changes {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var rows, lines strings.Builder
	for _, field := range fields {
		rows.WriteString(fmt.Sprintf(
			"<tr><td><strong>%s</strong></td><td>%s</td></tr>",
			html.EscapeString(field), html.EscapeString(changes[field]),
		))
		lines.WriteString(fmt.Sprintf("%s: %s\r\n", field, changes[field]))
	}

	subject := "Contact details were updated"
	body := fmt.Sprintf(
		`<p>The public contact details changed. New values:</p>
<table>%s</table>`,
		rows.String(),
	)
	text := fmt.Sprintf("The public contact details changed. New values:\r\n\r\n%s", lines.String())

	return m.send(ctx, m.cfg.AdminEmail, subject, wrapHTML(subject, body), text)
}

// send delivers one multipart email. Disabled relays log and report success.
func (m *smtpMailer) send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	if !m.cfg.Enabled {
		m.logger.LogAttrs(ctx, slog.LevelInfo, "Email relay disabled, skipping send",
			slog.String("to", to),
			slog.String("subject", subject),
		)

		return nil
	}

	if m.cfg.Host == "" || m.cfg.Username == "" || m.cfg.Password == "" {
		return errors.New("smtp relay not properly configured")
	}
	if to == "" {
		return errors.New("missing recipient address")
	}

	from := m.cfg.FromEmail
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail)
	}

	message := composeMultipart(from, to, subject, htmlBody, textBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{to}, message); err != nil {
		return errors.Wrapf(err, "failed to send email to %s", to)
	}

	m.logger.LogAttrs(ctx, slog.LevelDebug, "Email sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}

// composeMultipart builds a multipart/alternative body with a plain text
// part and an HTML part.
func composeMultipart(from, to, subject, htmlBody, textBody string) []byte {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", mimeBoundary))
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", mimeBoundary))
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(textBody)
	b.WriteString("\r\n")

	if htmlBody != "" {
		b.WriteString(fmt.Sprintf("--%s\r\n", mimeBoundary))
		b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(htmlBody)
		b.WriteString("\r\n")
	}

	b.WriteString(fmt.Sprintf("--%s--\r\n", mimeBoundary))

	return []byte(b.String())
}

// wrapHTML puts a shared branded frame around a body fragment.
func wrapHTML(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>%s</title>
</head>
<body style="margin:0;padding:24px;background-color:#F8FAFC;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Arial,sans-serif;color:#0D1A2D;">
<table role="presentation" cellspacing="0" cellpadding="0" border="0" width="600" style="margin:0 auto;background-color:#FFFFFF;border-radius:12px;overflow:hidden;">
<tr><td style="padding:24px 32px;background-color:#14532D;color:#FFFFFF;font-size:20px;font-weight:700;">InfinityBasket</td></tr>
<tr><td style="padding:32px;font-size:15px;line-height:1.6;">%s</td></tr>
<tr><td style="padding:16px 32px;background-color:#F1F5F9;font-size:12px;color:#64748B;">This email was sent by InfinityBasket.</td></tr>
</table>
</body>
</html>`, html.EscapeString(title), body)
}
