package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"nifinova/pkg/logger"
)

// Notifier defines the interface for a WhatsApp notifier. Send reports a
// success indicator and never an error: delivery is best-effort and failures
// are logged and swallowed.
type Notifier interface {
	Send(ctx context.Context, phoneNumber, message string) bool
}

// Config holds WhatsApp Cloud API credentials. When either field is empty the
// client runs in mock mode and logs messages instead of sending them.
type Config struct {
	AccessToken   string
	PhoneNumberID string
	BaseURL       string
}

type client struct {
	cfg        Config
	log        *logger.Logger
	httpClient *http.Client
}

// NewClient creates a new WhatsApp notifier client.
func NewClient(cfg Config, log *logger.Logger) Notifier {
	return &client{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type textPayload struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// Send delivers a text message through the WhatsApp Cloud API.
func (c *client) Send(ctx context.Context, phoneNumber, message string) bool {
	if c.cfg.AccessToken == "" || c.cfg.PhoneNumberID == "" {
		c.log.InfoContext(ctx, "WhatsApp mock send",
			logger.StringField("phone_number", phoneNumber),
			logger.StringField("message", message),
		)
		return true
	}

	payload := textPayload{
		MessagingProduct: "whatsapp",
		To:               strings.TrimPrefix(phoneNumber, "+"),
		Type:             "text",
	}
	payload.Text.Body = message

	body, err := json.Marshal(payload)
	if err != nil {
		c.log.ErrorContext(ctx, "Failed to marshal WhatsApp payload", logger.ErrorField(err))
		return false
	}

	url := fmt.Sprintf("%s/%s/messages", c.cfg.BaseURL, c.cfg.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.ErrorContext(ctx, "Failed to create WhatsApp request", logger.ErrorField(err))
		return false
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "Failed to send WhatsApp message",
			logger.ErrorField(err),
			logger.StringField("phone_number", phoneNumber),
		)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "WhatsApp API returned non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("phone_number", phoneNumber),
		)
		return false
	}

	return true
}
