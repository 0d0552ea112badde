package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/pathfinder/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) DialAndSend(msgs ...*gomail.Message) error {
	args := m.Called(msgs)
	return args.Error(0)
}

var testConfig = config.Mail{
	Host:   "smtp.example.com",
	Port:   587,
	From:   "noreply@example.com",
	AppURL: "https://a.io/",
}

func TestVerificationMessage(t *testing.T) {
	m := NewWithSender(testConfig, nil)

	assert.Equal(t, "https://a.io/verify-email?token=abc123", m.VerificationURL("abc123"))

	msg, err := m.VerificationMessage("ada@example.com", "abc123")
	require.NoError(t, err)
	assert.Equal(t, []string{"ada@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"noreply@example.com"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"Verify your email"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "verify-email?token=3Dabc123")
	assert.Contains(t, buf.String(), "expire in 24 hours")
}

func TestSendVerification(t *testing.T) {
	sender := new(MockSender)
	m := NewWithSender(testConfig, sender)

	sender.On("DialAndSend", mock.Anything).Return(nil).Once()
	require.NoError(t, m.SendVerification(context.Background(), "ada@example.com", "abc"))

	sender.On("DialAndSend", mock.Anything).Return(errors.New("connection refused")).Once()
	err := m.SendVerification(context.Background(), "ada@example.com", "abc")
	assert.ErrorContains(t, err, "connection refused")

	sender.AssertExpectations(t)
}

func TestSendVerification_CanceledContext(t *testing.T) {
	sender := new(MockSender)
	m := NewWithSender(testConfig, sender)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.SendVerification(ctx, "ada@example.com", "abc"), context.Canceled)
	sender.AssertNotCalled(t, "DialAndSend", mock.Anything)
}

func TestNewMailer_Validates(t *testing.T) {
	_, err := NewMailer(config.Mail{})
	assert.Error(t, err)

	m, err := NewMailer(testConfig)
	require.NoError(t, err)
	assert.NotNil(t, m)
}
