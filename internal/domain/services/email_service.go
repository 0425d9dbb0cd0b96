package services

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"

	"esweb-http-service/internal/infrastructure/config"
)

// InterfaceEmailService defines the outbound mail sender
type InterfaceEmailService interface {
	SendReply(to, subject, plainBody, htmlBody string) error
}

// EmailService delivers reply mails through the configured SMTP relay
type EmailService struct {
	Config *config.Config
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config) InterfaceEmailService {
	return &EmailService{Config: cfg}
}

// SendReply sends a multipart/alternative mail carrying both the plain text
// and the HTML body. The send is synchronous; a rejected send returns the
// relay's error so the caller can refuse to mark the inquiry solved.
func (s *EmailService) SendReply(to, subject, plainBody, htmlBody string) error {
	cfg := s.Config
	if cfg.MailServer == "" || cfg.MailFrom == "" {
		return errors.New("mail relay not configured")
	}

	from := cfg.MailFrom
	if cfg.MailFromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.MailFromName, cfg.MailFrom)
	}

	boundary := "----=_NextPart_esweb_reply"

	message := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary) +
		"\r\n" +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		plainBody + "\r\n"

	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", cfg.MailServer, cfg.MailPort)
	if err := s.send(addr, to, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// send runs the SMTP dialog. With MAIL_STARTTLS=true the connection must be
// upgraded before any credentials or mail content go over the wire; a relay
// that cannot upgrade fails the send.
func (s *EmailService) send(addr, to string, message []byte) error {
	cfg := s.Config

	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if cfg.MailStartTLS {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return errors.New("relay does not support STARTTLS")
		}
		if err := client.StartTLS(&tls.Config{ServerName: cfg.MailServer}); err != nil {
			return err
		}
	}

	if cfg.MailUsername != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", cfg.MailUsername, cfg.MailPassword, cfg.MailServer)
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	if err := client.Mail(cfg.MailFrom); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}
