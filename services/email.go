package services

import (
	"flora_cargo_app_go/config"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	TextBody string
}

// BuildWelcomeEmail builds the notification sent when an account is created
func BuildWelcomeEmail(toEmail, username, appURL string) *Email {
	body := fmt.Sprintf(
		"Hola %s,\n\nTu cuenta en FloraCargo ha sido creada.\n\nIngresa en %s con tu correo %s.\n\nEquipo FloraCargo",
		username, appURL, toEmail,
	)
	return &Email{
		To:       []string{toEmail},
		Subject:  "Bienvenido a FloraCargo",
		TextBody: body,
	}
}

// SendEmail sends an email using the Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		log.Printf("EMAIL (test mode, not sent) To: %v Subject: %s\n%s", email.To, email.Subject, email.TextBody)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Text:    email.TextBody,
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// SendEmailAsync sends an email in a goroutine so handlers never block on it
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		TextBody: email.TextBody,
	}

	go func() {
		if err := SendEmail(cfg, emailCopy); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}()
}
