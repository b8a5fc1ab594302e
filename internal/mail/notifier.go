package mail

import (
	"fmt"
	"os"
	"time"

	gomail "gopkg.in/mail.v2"

	"github.com/drivemark/drivemark/internal/util"
)

// Notify emails a copy of the backup snapshot to the configured receiver
func (s *SMTPNotifier) Notify(snapshotPath string, count int, timeout int) error {
	cfg := s.cfg
	if !cfg.Enabled {
		return nil
	}

	if _, err := os.Stat(snapshotPath); err != nil {
		util.LogErrorf(util.FileError, "accessing snapshot", "couldn't find file %s", snapshotPath)
		return fmt.Errorf("no snapshot file to send")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.Sender)
	msg.SetHeader("To", cfg.Receiver)
	msg.SetHeader("Subject", fmt.Sprintf("Bookmark backup: %d bookmarks", count))

	msg.SetBody("text/plain", fmt.Sprintf("Backup completed at %s with %d bookmarks. Snapshot attached.",
		time.Now().Format("2006-01-02 15:04:05"), count))
	msg.Attach(snapshotPath)

	dialer := gomail.NewDialer(cfg.Server, cfg.Port, cfg.Sender, cfg.Password)
	dialer.Timeout = time.Duration(timeout) * time.Second
	util.CyanBold.Println("Sending backup notification")
	util.Cyan.Println("Mail timeout : ", dialer.Timeout.String())

	if err := dialer.DialAndSend(msg); err != nil {
		util.LogError(util.MailError, "sending mail", err)
		return fmt.Errorf("failed to send mail: %w", err)
	}

	util.GreenBold.Printf("Mailed backup copy to %s\n", cfg.Receiver)
	return nil
}
