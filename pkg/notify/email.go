// Package notify is the email sender (C10): delivers a plain-text
// summary of a completed enumeration run when -e is set.
//
// Built on net/smtp: none of the examples in the retrieval pack pulls in
// a third-party mail client (no mailgun/sendgrid/gomail-style
// dependency appears anywhere in the pack's go.mod files), and SMTP
// delivery via PLAIN auth is a narrow enough surface that the standard
// library is the correct tool rather than an unjustified dependency.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/duskwolf/zonecrawler/pkg/config"
)

// Send delivers subject/body to cfg.EmailReceiver via cfg's SMTP
// settings. Callers MUST check cfg.EmailConfigured() first — per the
// error-handling policy, a missing config is a failure at point of use,
// not at startup.
func Send(cfg *config.Config, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", cfg.EmailHost, cfg.EmailPort)

	var auth smtp.Auth
	if cfg.EmailUsername != "" {
		auth = smtp.PlainAuth("", cfg.EmailUsername, cfg.EmailPassword, cfg.EmailHost)
	}

	msg := buildMessage(cfg.EmailSender, cfg.EmailReceiver, subject, body)
	return smtp.SendMail(addr, auth, cfg.EmailSender, []string{cfg.EmailReceiver}, msg)
}

func buildMessage(from, to, subject, body string) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return []byte(sb.String())
}

// Summary formats the completion notice body: apex, record count, and
// the output file location.
func Summary(apex string, count int, outputPath string) string {
	return fmt.Sprintf("enumeration of %s complete: %d hosts found, written to %s", apex, count, outputPath)
}
