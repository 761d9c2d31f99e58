package service

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"keeso-backend/internal/config"
	"keeso-backend/internal/domain"
	"keeso-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	cfg config.EmailConfig
}

func NewEmailService(cfg config.EmailConfig) EmailService {
	return &emailService{cfg: cfg}
}

func (s *emailService) SendMembershipApplicationNotification(ctx context.Context, app *domain.MembershipApplication) error {
	subject := fmt.Sprintf("Üyelik Başvurusu - %s", app.Name)

	var note string
	if app.Note != "" {
		note = fmt.Sprintf("<p><strong>Not:</strong> %s</p>", app.Note)
	}
	html := fmt.Sprintf(`<html><body>
<h2>Yeni Üyelik Başvurusu</h2>
<p><strong>Ad Soyad:</strong> %s</p>
<p><strong>E-posta:</strong> %s</p>
<p><strong>Telefon:</strong> %s</p>
<p><strong>Adres:</strong> %s</p>
<p><strong>Vergi No:</strong> %s</p>
%s<p><strong>Ek Dosya Sayısı:</strong> %d</p>
</body></html>`,
		app.Name, app.Email, app.Phone, app.Address, app.TaxNumber, note, len(app.Files))

	return s.send(ctx, s.cfg.AdminEmail, subject, html)
}

func (s *emailService) SendContactFormNotification(ctx context.Context, c *domain.Contact) error {
	subject := fmt.Sprintf("İletişim Formu - %s", c.Name)

	html := fmt.Sprintf(`<html><body>
<h2>Yeni İletişim Formu Mesajı</h2>
<p><strong>Ad Soyad:</strong> %s</p>
<p><strong>E-posta:</strong> %s</p>
<p><strong>Telefon:</strong> %s</p>
<p><strong>Mesaj:</strong></p>
<p>%s</p>
</body></html>`,
		c.Name, c.Email, c.Phone, c.Message)

	return s.send(ctx, s.cfg.AdminEmail, subject, html)
}

func (s *emailService) SendPendingApplicationsDigest(ctx context.Context, apps []domain.MembershipApplication) error {
	subject := fmt.Sprintf("Bekleyen Üyelik Başvuruları (%d)", len(apps))

	var rows strings.Builder
	for _, app := range apps {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>",
			app.Name, app.Email, app.CreatedAt.Format("2006-01-02"))
	}
	html := fmt.Sprintf(`<html><body>
<h2>Bekleyen Üyelik Başvuruları</h2>
<table border="1" cellpadding="4">
<tr><th>Ad Soyad</th><th>E-posta</th><th>Başvuru Tarihi</th></tr>
%s
</table>
</body></html>`, rows.String())

	return s.send(ctx, s.cfg.AdminEmail, subject, html)
}

func (s *emailService) send(ctx context.Context, to, subject, html string) error {
	if s.cfg.Provider == "sendgrid" && s.cfg.SendGridAPIKey != "" {
		return s.sendViaSendGrid(ctx, to, subject, html)
	}
	return s.sendViaSMTP(to, subject, html)
}

func (s *emailService) sendViaSendGrid(ctx context.Context, to, subject, html string) error {
	logger.ExternalServiceCall("sendgrid", "send", "to", to)

	from := mail.NewEmail(s.cfg.FromName, s.cfg.From)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, "", html)

	client := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "send", nil, "to", to)
	return nil
}

func (s *emailService) sendViaSMTP(to, subject, html string) error {
	if s.cfg.SMTPHost == "" {
		// No mail transport configured; log and move on, as the site must
		// keep accepting submissions without one.
		logger.Warn("Email not configured, skipping send", "to", to, "subject", subject)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
		"",
		html,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email via smtp: %w", err)
	}
	return nil
}
