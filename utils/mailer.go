package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nutrify/config"

	"go.uber.org/zap"
)

const sendGridBaseURL = "https://api.sendgrid.com"

// Mailer sends transactional email through the SendGrid v3 mail send API.
// A Mailer with an empty API key is a logged no-op so that a missing
// credential degrades email delivery instead of failing requests.
type Mailer struct {
	apiKey     string
	fromEmail  string
	fromName   string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewMailer builds a Mailer from the loaded configuration.
func NewMailer(logger *zap.Logger) *Mailer {
	return &Mailer{
		apiKey:     strings.TrimSpace(config.AppConfig.SendGridAPIKey),
		fromEmail:  strings.TrimSpace(config.AppConfig.SendGridFromEmail),
		fromName:   strings.TrimSpace(config.AppConfig.SendGridFromName),
		baseURL:    sendGridBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// Enabled reports whether an API key is configured.
func (m *Mailer) Enabled() bool {
	return m != nil && m.apiKey != ""
}

type sgEmailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgPersonalization struct {
	To []sgEmailAddress `json:"to"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgMailSendRequest struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgEmailAddress      `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

// Send delivers a single HTML email to one recipient.
func (m *Mailer) Send(ctx context.Context, toEmail, toName, subject, html string) error {
	if !m.Enabled() {
		m.logger.Info("mailer: no SendGrid API key configured, skipping email",
			zap.String("to", toEmail), zap.String("subject", subject))
		return nil
	}
	if strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("mailer: recipient address required")
	}

	wire := sgMailSendRequest{
		Personalizations: []sgPersonalization{{To: []sgEmailAddress{{Email: toEmail, Name: toName}}}},
		From:             sgEmailAddress{Email: m.fromEmail, Name: m.fromName},
		Subject:          subject,
		Content:          []sgContent{{Type: "text/html", Value: html}},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(wire); err != nil {
		return fmt.Errorf("mailer: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/v3/mail/send", &buf)
	if err != nil {
		return fmt.Errorf("mailer: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mailer: sendgrid returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
