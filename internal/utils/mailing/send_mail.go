package mailing

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"sigkihan-server/internal/utils"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// Mailer adapts the package senders to the service-side mailer interfaces.
type Mailer struct{}

func NewMailer() Mailer {
	return Mailer{}
}

func (Mailer) SendInvitationMail(toEmail, inviterName, refrigeratorName, code string) error {
	return SendInvitationMail(toEmail, inviterName, refrigeratorName, code)
}

// SendInvitationMail delivers a refrigerator invitation with the shareable code.
func SendInvitationMail(toEmail, inviterName, refrigeratorName, code string) error {
	appURL := utils.GetConfig("APP_URL")
	subject := fmt.Sprintf("%s invited you to share a refrigerator", inviterName)
	body := fmt.Sprintf(
		`<p>%s invited you to the refrigerator <b>%s</b>.</p>
<p>Open <a href="%s/invitations/%s">%s/invitations/%s</a> to accept or decline.</p>
<p>Invitation code: <b>%s</b></p>`,
		inviterName, refrigeratorName, appURL, code, appURL, code, code,
	)
	return SendMail(toEmail, subject, body)
}
