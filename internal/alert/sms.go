package alert

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"io"
	"net/http"
	"net/url"
	"strings"
	"uptime-warden/internal/config"
)

const (
	phoneLength   = 10
	maxBodyLength = 1600
)

var (
	ErrInvalidMessage = errors.New("invalid sms message")
	ErrDelivery       = errors.New("sms gateway rejected message")
)

// TwilioNotifier sends messages through the Twilio messages API.
type TwilioNotifier struct {
	client *http.Client
	config config.Sms
}

func NewTwilioNotifier(client *http.Client, cfg config.Sms) *TwilioNotifier {
	return &TwilioNotifier{client: client, config: cfg}
}

// NewNotifier returns the SMS notifier when it is enabled, otherwise alerts are only logged.
func NewNotifier(cfg config.Sms) Notifier {
	if !cfg.Enabled {
		log.Warn().Msg("SMS delivery is disabled, alerts will only be logged")
		return LogNotifier{}
	}

	return NewTwilioNotifier(&http.Client{Timeout: cfg.Timeout}, cfg)
}

func (n *TwilioNotifier) Send(ctx context.Context, phone string, body string) error {
	phone = strings.TrimSpace(phone)
	body = strings.TrimSpace(body)

	if len(phone) != phoneLength {
		return fmt.Errorf("%w: phone number must have %d digits", ErrInvalidMessage, phoneLength)
	}
	if body == "" || len(body) > maxBodyLength {
		return fmt.Errorf("%w: body must have between 1 and %d characters", ErrInvalidMessage, maxBodyLength)
	}

	form := url.Values{}
	form.Set("From", n.config.FromPhone)
	form.Set("To", n.config.CountryCode+phone)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", strings.TrimSuffix(n.config.BaseUrl, "/"), n.config.AccountSid)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create sms request: %w", err)
	}
	request.SetBasicAuth(n.config.AccountSid, n.config.AuthToken)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := n.client.Do(request)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer response.Body.Close()
	_, _ = io.Copy(io.Discard, response.Body)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrDelivery, response.StatusCode)
	}

	return nil
}

// LogNotifier writes alerts to the log instead of delivering them.
type LogNotifier struct{}

func (LogNotifier) Send(ctx context.Context, phone string, body string) error {
	log.Info().Str("phone", phone).Msg(body)
	return nil
}
