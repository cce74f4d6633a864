package orders

import (
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"golang.org/x/sync/errgroup"

	"vinreport/internal/mailer"
)

// AdminEmail receives a copy of every paid order.
const AdminEmail = "orders@vinreport.app"

const notProvided = "Not provided"

// Notifier dispatches the post-payment email pair. Sends are not tracked
// anywhere, so observing the same paid session twice dispatches the pair
// twice.
type Notifier struct {
	mailer mailer.Client
}

func NewNotifier(client mailer.Client) *Notifier {
	return &Notifier{mailer: client}
}

// ConfirmationVars feeds the customer-facing confirmation template.
type ConfirmationVars struct {
	FullName string
}

// AdminAlertVars feeds the internal order-alert template.
type AdminAlertVars struct {
	VIN       string
	FullName  string
	Email     string
	Phone     string
	Country   string
	State     string
	Amount    string
	SessionID string
}

// NotifyPaid sends the customer confirmation and the admin alert for a paid
// session. Both sends run concurrently and are awaited jointly; the first
// failure fails the whole call even if the other send went through.
func (n *Notifier) NotifyPaid(session *stripe.CheckoutSession) error {
	meta := session.Metadata

	confirmation := ConfirmationVars{
		FullName: meta["fullName"],
	}

	alert := AdminAlertVars{
		VIN:       meta["vin"],
		FullName:  meta["fullName"],
		Email:     session.CustomerEmail,
		Phone:     orDefault(meta["phone"], notProvided),
		Country:   meta["country"],
		State:     orDefault(meta["state"], notProvided),
		Amount:    FormatAmount(session.AmountTotal),
		SessionID: session.ID,
	}

	var g errgroup.Group
	g.Go(func() error {
		return n.mailer.Send(mailer.PurchaseConfirmationTemplate, session.CustomerEmail, confirmation)
	})
	g.Go(func() error {
		return n.mailer.Send(mailer.AdminOrderAlertTemplate, AdminEmail, alert)
	})

	return g.Wait()
}

// FormatAmount renders a minor-unit amount as dollars: 2000 -> "$20.00".
func FormatAmount(minorUnits int64) string {
	return fmt.Sprintf("$%.2f", float64(minorUnits)/100)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
