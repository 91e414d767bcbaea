package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"time"
)

type EmailService struct {
	apiKey    string
	from      string
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type WelcomeEmailData struct {
	Name string
}

type ContactNotificationData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type ContactDigestData struct {
	Count int64
	Date  time.Time
}

func NewEmailService(apiKey string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "Sajjad Rasool <noreply@sajjadrasool.com>"
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      from,
		templates: templates,
	}, nil
}

func (s *EmailService) render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("could not render template %s: %v", name, err)
	}
	return buf.String(), nil
}

func (s *EmailService) send(to, subject, html string) error {
	payload, err := json.Marshal(EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, string(body))
	}

	return nil
}

func (s *EmailService) SendWelcomeEmail(to, name string) error {
	html, err := s.render("welcome.html", WelcomeEmailData{Name: name})
	if err != nil {
		return err
	}
	return s.send(to, "Welcome!", html)
}

// SendContactNotificationEmail tells the site owner about a new contact form
// submission.
func (s *EmailService) SendContactNotificationEmail(to string, data ContactNotificationData) error {
	subject := fmt.Sprintf("New contact message: %s", data.Subject)
	html, err := s.render("contact_notification.html", data)
	if err != nil {
		return err
	}
	return s.send(to, subject, html)
}

func (s *EmailService) SendContactDigestEmail(to string, data ContactDigestData) error {
	subject := fmt.Sprintf("Contact form digest for %s", data.Date.Format("2006-01-02"))
	html, err := s.render("contact_digest.html", data)
	if err != nil {
		return err
	}
	return s.send(to, subject, html)
}
