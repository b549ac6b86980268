package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/infinithree/absensi-backend-go/internal/config"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService sends transactional mail. When SMTP is not configured every
// send is skipped with a warning so local development works without a relay.
type EmailService interface {
	SendLeaveDecision(to, staffName, requestType, startDate, endDate, status, decidedBy string) error
	SendWelcome(to, staffName, companyName string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type leaveDecisionEmailData struct {
	StaffName   string
	RequestType string
	StartDate   string
	EndDate     string
	Status      string
	DecidedBy   string
}

// SendLeaveDecision notifies a staff member that their leave request was
// approved or rejected.
func (s *emailServiceImpl) SendLeaveDecision(to, staffName, requestType, startDate, endDate, status, decidedBy string) error {
	data := leaveDecisionEmailData{
		StaffName:   staffName,
		RequestType: requestType,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      status,
		DecidedBy:   decidedBy,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Pengajuan %s: %s", requestType, status), body.String())
}

type welcomeEmailData struct {
	StaffName   string
	CompanyName string
}

// SendWelcome greets a newly registered staff member.
func (s *emailServiceImpl) SendWelcome(to, staffName, companyName string) error {
	data := welcomeEmailData{
		StaffName:   staffName,
		CompanyName: companyName,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "welcome.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Selamat Bergabung di %s", companyName), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	if !s.cfg.Enabled {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := dialer.DialAndSend(msg)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Exponential backoff: 1s, 2s, 4s
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
