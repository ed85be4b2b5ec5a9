package infrastructures

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// MailClient sends transactional mail (OTP verification) through the hosted
// mail provider.
type MailClient struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	From       string
}

func NewMailClient() *MailClient {
	return &MailClient{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL: Config.MAIL_BASE_URL,
		APIKey:  Config.MAIL_API_KEY,
		From:    Config.MAIL_FROM,
	}
}

type mailSendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Send delivers a plain-text mail to a single recipient.
func (c *MailClient) Send(to, subject, text string) error {
	payload, err := json.Marshal(mailSendRequest{
		From:    c.From,
		To:      to,
		Subject: subject,
		Text:    text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("mail send failed with status %d", resp.StatusCode)
	}

	return nil
}
