package notify

import (
	"context"
	"fmt"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"gopkg.in/gomail.v2"
)

// EmailConfig describes the SMTP relay and recipients.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// Sender delivers a composed message. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailDispatcher mails each notification to the configured operators.
type EmailDispatcher struct {
	sender Sender
	cfg    EmailConfig
}

var _ portssvc.NotificationDispatcher = (*EmailDispatcher)(nil)

// NewEmailDispatcher dials the configured relay for every message.
func NewEmailDispatcher(cfg EmailConfig) *EmailDispatcher {
	return NewEmailDispatcherWithSender(cfg, gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password))
}

// NewEmailDispatcherWithSender uses sender instead of an SMTP dialer.
func NewEmailDispatcherWithSender(cfg EmailConfig, sender Sender) *EmailDispatcher {
	return &EmailDispatcher{sender: sender, cfg: cfg}
}

func (d *EmailDispatcher) Name() string {
	return "email"
}

func (d *EmailDispatcher) Dispatch(ctx context.Context, n domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(d.cfg.To) == 0 {
		return fmt.Errorf("no email recipients configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", d.cfg.From)
	m.SetHeader("To", d.cfg.To...)
	m.SetHeader("Subject", n.Title)
	m.SetBody("text/plain", fmt.Sprintf("%s\n\n%s", n.Message, n.CreatedAt.Format("2006-01-02 15:04 MST")))

	if err := d.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
