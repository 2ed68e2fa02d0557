package mail

import (
	"bytes"
	"embed"
	"html/template"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var subjects = map[service.MailTemplate]string{
	service.MailTemplateVerify: "Verify your email",
	service.MailTemplateReset:  "Reset your password",
	service.MailTemplateRedeem: "Your redeem code",
}

// renderer executes the embedded templates.
type renderer struct {
	templates *template.Template
}

func newRenderer() (*renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse mail templates")
	}

	return &renderer{templates: templates}, nil
}

// Render returns the subject and html body for msg.
func (r *renderer) Render(msg service.MailMessage) (string, string, error) {
	subject, ok := subjects[msg.Template]
	if !ok {
		return "", "", errors.Errorf("unknown mail template %q", msg.Template)
	}

	var body bytes.Buffer
	if err := r.templates.ExecuteTemplate(&body, string(msg.Template)+".html", msg); err != nil {
		return "", "", errors.Wrapf(err, "failed to render %s mail", msg.Template)
	}

	return subject, body.String(), nil
}
