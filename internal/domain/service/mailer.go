package service

import "context"

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// MailTemplate selects a transactional email body.
type MailTemplate string

const (
	MailTemplateVerify MailTemplate = "verify"
	MailTemplateReset  MailTemplate = "reset"
	MailTemplateRedeem MailTemplate = "redeem"
)

// MailMessage is the data rendered into a template.
type MailMessage struct {
	To          string
	Template    MailTemplate
	Username    string
	ActionURL   string
	RedeemCode  string
	QRImageURL  string
	ProductName string
}

// MailDispatcher renders and sends mail in the background. Failures are logged, never returned.
type MailDispatcher interface {
	Dispatch(msg MailMessage)
}
