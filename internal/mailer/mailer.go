package mailer

import "embed"

const (
	FromName  = "VinReport"
	FromEmail = "reports@vinreport.app"

	PurchaseConfirmationTemplate = "purchase_confirmation.tmpl"
	AdminOrderAlertTemplate      = "admin_order_alert.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, email string, data any) error
}
