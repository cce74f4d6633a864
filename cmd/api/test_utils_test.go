package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"

	"vinreport/internal/orders"
	"vinreport/internal/payments"
	"vinreport/internal/ratelimiter"
)

type stubGateway struct {
	createFn   func(ctx context.Context, p payments.CheckoutParams) (*stripe.CheckoutSession, error)
	retrieveFn func(ctx context.Context, id string) (*stripe.CheckoutSession, error)
}

func (g *stubGateway) CreateCheckoutSession(ctx context.Context, p payments.CheckoutParams) (*stripe.CheckoutSession, error) {
	return g.createFn(ctx, p)
}

func (g *stubGateway) RetrieveCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	return g.retrieveFn(ctx, id)
}

type sentEmail struct {
	templateFile string
	to           string
	data         any
}

// recordingMailer captures sends instead of talking to SMTP. Setting
// failTemplate makes sends of that template fail while others succeed.
type recordingMailer struct {
	mu           sync.Mutex
	sent         []sentEmail
	failTemplate string
}

func (m *recordingMailer) Send(templateFile, email string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failTemplate != "" && m.failTemplate == templateFile {
		return errors.New("smtp: connection refused")
	}

	m.sent = append(m.sent, sentEmail{templateFile: templateFile, to: email, data: data})
	return nil
}

func (m *recordingMailer) sentEmails() []sentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]sentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}

func newTestApplication(t *testing.T, gateway payments.Gateway, mail *recordingMailer) *application {
	t.Helper()

	return &application{
		config: config{
			addr:        ":3000",
			frontendURL: "https://reports.example.com",
			stripe: stripeConfig{
				secretKey:      "sk_test_secret",
				publishableKey: "pk_test_123",
			},
			rateLimiter: ratelimiter.Config{
				RequestsPerTimeFrame: 100,
				TimeFrame:            5 * time.Second,
				Enabled:              false,
			},
		},
		logger:      zap.NewNop().Sugar(),
		gateway:     gateway,
		mailer:      mail,
		notifier:    orders.NewNotifier(mail),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(100, 5*time.Second),
	}
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	return rr
}
