package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/pathfinder/pkg/config"
	"github.com/pathfinder/pkg/constant"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gopkg.in/gomail.v2"
)

var emailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "pathfinder",
	Name:      "verification_emails_total",
	Help:      "Verification emails handed to the SMTP server, by result.",
}, []string{"result"})

// Sender is the part of gomail.Dialer the mailer uses.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends verification emails over SMTP.
type Mailer struct {
	config config.Mail
	sender Sender
}

var verificationTemplate = template.Must(template.New("verification").Parse(`
<h1>Welcome to our platform!</h1>
<p>Click the link below to verify your email:</p>
<a href="{{.URL}}">Verify Email</a>
<p>This link will expire in 24 hours.</p>
`))

func NewMailer(cfg config.Mail) (*Mailer, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return &Mailer{
		config: cfg,
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}, nil
}

// NewWithSender is NewMailer with a caller supplied transport.
func NewWithSender(cfg config.Mail, sender Sender) *Mailer {
	return &Mailer{config: cfg, sender: sender}
}

// SendVerification mails the verification link for token to address.
// gomail has no context support, so ctx is only checked before dialing.
func (m *Mailer) SendVerification(ctx context.Context, address string, token string) error {
	if err := ctx.Err(); err != nil {
		emailsTotal.WithLabelValues("canceled").Inc()
		return err
	}

	msg, err := m.VerificationMessage(address, token)
	if err != nil {
		emailsTotal.WithLabelValues("error").Inc()
		return err
	}

	if err := m.sender.DialAndSend(msg); err != nil {
		emailsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("send verification email: %w", err)
	}
	emailsTotal.WithLabelValues("sent").Inc()
	return nil
}

func (m *Mailer) VerificationMessage(address string, token string) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := verificationTemplate.Execute(&body, struct{ URL string }{m.VerificationURL(token)}); err != nil {
		return nil, err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", address)
	msg.SetHeader("Subject", constant.VERIFICATION_SUBJECT)
	msg.SetBody("text/html", body.String())
	return msg, nil
}

func (m *Mailer) VerificationURL(token string) string {
	return strings.TrimRight(m.config.AppURL, "/") + "/verify-email?token=" + url.QueryEscape(token)
}

func validate(c config.Mail) error {
	if c.Host == "" {
		return fmt.Errorf("missing SMTP_HOST")
	}
	if c.Port == 0 {
		return fmt.Errorf("missing SMTP_PORT")
	}
	if c.From == "" {
		return fmt.Errorf("missing SMTP_FROM")
	}
	if c.AppURL == "" {
		return fmt.Errorf("missing APP_URL")
	}
	return nil
}
