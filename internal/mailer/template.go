package mailer

import (
	"bytes"
	"html/template"
)

// Every mail template defines a "subject" block and an HTML "body" block.
func renderEmail(tmpl *template.Template, data any) (subject, body string, err error) {
	subjBuf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subjBuf, "subject", data); err != nil {
		return "", "", err
	}

	bodyBuf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(bodyBuf, "body", data); err != nil {
		return "", "", err
	}

	return subjBuf.String(), bodyBuf.String(), nil
}
