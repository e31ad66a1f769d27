package alert

import (
	"context"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"net/http"
	"strings"
	"testing"
	"uptime-warden/internal/test"
)

const messagesUrl = "https://sms.local/2010-04-01/Accounts/AC0123456789/Messages.json"

func newMockedNotifier() *TwilioNotifier {
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	return NewTwilioNotifier(client, test.BuildTestConfig().Alert.Sms)
}

func TestTwilioNotifier_Send(t *testing.T) {
	notifier := newMockedNotifier()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", messagesUrl, func(request *http.Request) (*http.Response, error) {
		user, password, ok := request.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC0123456789", user)
		assert.Equal(t, "secret", password)

		assert.NoError(t, request.ParseForm())
		assert.Equal(t, "+15551234567", request.PostForm.Get("To"))
		assert.Equal(t, "+15550000000", request.PostForm.Get("From"))
		assert.Equal(t, "checks are down", request.PostForm.Get("Body"))

		return httpmock.NewStringResponse(201, `{"sid":"SM1"}`), nil
	})

	err := notifier.Send(context.Background(), test.TestOwnerPhone, "checks are down")

	assert.NoError(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestTwilioNotifier_GatewayRejects(t *testing.T) {
	notifier := newMockedNotifier()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", messagesUrl, httpmock.NewStringResponder(400, `{"code":21211}`))

	err := notifier.Send(context.Background(), test.TestOwnerPhone, "checks are down")

	assert.ErrorIs(t, err, ErrDelivery)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestTwilioNotifier_InvalidMessage(t *testing.T) {
	notifier := newMockedNotifier()
	defer httpmock.DeactivateAndReset()

	var tests = []struct {
		name  string
		phone string
		body  string
	}{
		{"short phone", "555123", "hello"},
		{"empty body", test.TestOwnerPhone, "   "},
		{"long body", test.TestOwnerPhone, strings.Repeat("x", 1601)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := notifier.Send(context.Background(), tt.phone, tt.body)
			assert.ErrorIs(t, err, ErrInvalidMessage)
		})
	}

	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestNewNotifier_Disabled(t *testing.T) {
	cfg := test.BuildTestConfig().Alert.Sms
	cfg.Enabled = false

	notifier := NewNotifier(cfg)

	assert.IsType(t, LogNotifier{}, notifier)
	assert.NoError(t, notifier.Send(context.Background(), test.TestOwnerPhone, "hello"))
}
