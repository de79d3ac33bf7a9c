// Package notify provides the outbound notification gateway: an SMTP mailer
// implementing ports.Notifier, and an asynchronous dispatcher that wraps any
// Notifier with a bounded worker queue.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"routerorders/internal/core/ports"
)

// MailerConfig carries the SMTP connection settings.
type MailerConfig struct {
	Host     string
	Port     string
	From     string
	Username string
	Password string
}

// Mailer sends customer notices over SMTP. Each Send call is one synchronous
// SMTP exchange; callers that must not block wrap the mailer in an
// AsyncDispatcher.
type Mailer struct {
	addr   string
	from   string
	auth   smtp.Auth
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	logger *slog.Logger
}

// NewMailer creates an SMTP-backed notifier. Authentication is used only when
// a username is configured; local relays typically need none.
func NewMailer(cfg MailerConfig, logger *slog.Logger) *Mailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &Mailer{
		addr:   cfg.Host + ":" + cfg.Port,
		from:   cfg.From,
		auth:   auth,
		send:   smtp.SendMail,
		logger: logger.With("component", "mailer"),
	}
}

// SendOrderConfirmation notifies the site primary contact that the order was
// placed and tracking is active.
func (m *Mailer) SendOrderConfirmation(
	_ context.Context, email string, reference string, snapshot ports.OrderSnapshot,
) error {
	subject := fmt.Sprintf("Order %s confirmed", reference)
	body := fmt.Sprintf(
		"Your router order has been received and is being tracked.\n\n%s\n\n"+
			"Track it any time with reference %s.",
		summarize(snapshot), reference,
	)
	return m.deliver(email, subject, body)
}

// SendStatusUpdate notifies the site primary contact of a status change.
func (m *Mailer) SendStatusUpdate(
	_ context.Context, email string, reference string, status string,
) error {
	subject := fmt.Sprintf("Order %s status update", reference)
	body := fmt.Sprintf("Your order %s is now %s.", reference, status)
	return m.deliver(email, subject, body)
}

// SendCancellation confirms a customer-driven cancellation.
func (m *Mailer) SendCancellation(_ context.Context, email string, reference string) error {
	subject := fmt.Sprintf("Order %s cancelled", reference)
	body := fmt.Sprintf("Your order %s has been cancelled as requested.", reference)
	return m.deliver(email, subject, body)
}

// SendModification confirms an order modification with the updated summary.
func (m *Mailer) SendModification(
	_ context.Context, email string, reference string, snapshot ports.OrderSnapshot,
) error {
	subject := fmt.Sprintf("Order %s updated", reference)
	body := fmt.Sprintf("Your order %s has been updated.\n\n%s", reference, summarize(snapshot))
	return m.deliver(email, subject, body)
}

func (m *Mailer) deliver(to string, subject string, body string) error {
	msg := composeMessage(m.from, to, subject, body)
	if err := m.send(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.logger.Debug("notice delivered", "to", to, "subject", subject)
	return nil
}

// composeMessage renders a minimal RFC 5322 plain-text message. Header values
// are stripped of line breaks so a crafted subject cannot inject headers.
func composeMessage(from string, to string, subject string, body string) []byte {
	clean := func(v string) string {
		return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(v)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", clean(from))
	fmt.Fprintf(&b, "To: %s\r\n", clean(to))
	fmt.Fprintf(&b, "Subject: %s\r\n", clean(subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

func summarize(snapshot ports.OrderSnapshot) string {
	return fmt.Sprintf(
		"Router model: %d\nQuantity: %d\nDelivery site: %s, %s, %s",
		snapshot.RouterID,
		snapshot.Quantity,
		snapshot.SiteName,
		snapshot.SiteAddress,
		snapshot.SitePostcode,
	)
}
