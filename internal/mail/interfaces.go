package mail

import "github.com/drivemark/drivemark/internal/config"

// Notifier defines the interface for backup notifications
type Notifier interface {
	Notify(snapshotPath string, count int, timeout int) error
}

// SMTPNotifier implements Notifier using SMTP
type SMTPNotifier struct {
	cfg config.MailConfig
}

// NewSMTPNotifier creates a new SMTP notifier
func NewSMTPNotifier(cfg config.MailConfig) Notifier {
	return &SMTPNotifier{cfg: cfg}
}
