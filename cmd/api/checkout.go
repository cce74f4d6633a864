package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/stripe/stripe-go/v80"

	"vinreport/internal/payments"
)

// One vehicle history report costs 2000 minor units, charged as a single
// one-time payment.
const reportUnitAmount = 2000

// Stripe substitutes the real session id into the redirect URL after payment.
const sessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"

type CheckoutRequestPayload struct {
	VIN      string `json:"vin" validate:"required"`
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone"`
	Country  string `json:"country" validate:"required"`
	State    string `json:"state"`
}

// createCheckoutSessionHandler godoc
//
//	@Summary		Create a checkout session
//	@Description	Opens a hosted checkout session for one vehicle history report.
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CheckoutRequestPayload	true	"Order details"
//	@Success		200		{object}	map[string]string		"Session id"
//	@Failure		400		{object}	ErrorResponse			"Missing required fields / invalid redirect URL"
//	@Failure		500		{object}	ErrorResponse			"Gateway failure"
//	@Router			/api/create-checkout-session [post]
func (app *application) createCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	var payload CheckoutRequestPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	origin := strings.TrimSuffix(app.config.frontendURL, "/")
	successURL := origin + "/success?session_id=" + sessionIDPlaceholder
	cancelURL := origin + "/cancel"
	if !validRedirectURL(successURL) || !validRedirectURL(cancelURL) {
		writeJSONError(w, http.StatusBadRequest, "Invalid redirect URL")
		return
	}

	params := payments.CheckoutParams{
		ProductName:   fmt.Sprintf("Vehicle History Report - %s", payload.VIN),
		UnitAmount:    reportUnitAmount,
		Quantity:      1,
		CustomerEmail: payload.Email,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
		// Optional fields ride along as empty strings so the status poll
		// can always read every key back.
		Metadata: map[string]string{
			"vin":      payload.VIN,
			"fullName": payload.FullName,
			"email":    payload.Email,
			"phone":    payload.Phone,
			"country":  payload.Country,
			"state":    payload.State,
		},
	}

	session, err := app.gateway.CreateCheckoutSession(r.Context(), params)
	if err != nil {
		app.internalServerError(w, r, fmt.Errorf("failed to create checkout session: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": session.ID})
}

// checkoutSessionHandler godoc
//
//	@Summary		Poll a checkout session
//	@Description	Returns the raw gateway session. A session observed paid triggers the confirmation email pair before the response; polling a paid session again re-sends both emails.
//	@Produce		json
//	@Param			sessionId	query		string			true	"Checkout session id"
//	@Success		200			{object}	stripe.CheckoutSession
//	@Failure		400			{object}	ErrorResponse	"Missing sessionId"
//	@Failure		500			{object}	ErrorResponse	"Gateway or mail failure"
//	@Router			/api/checkout-session [get]
func (app *application) checkoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		writeJSONError(w, http.StatusBadRequest, "Missing sessionId query parameter")
		return
	}

	session, err := app.gateway.RetrieveCheckoutSession(r.Context(), sessionID)
	if err != nil {
		app.internalServerError(w, r, fmt.Errorf("failed to retrieve checkout session %s: %w", sessionID, err))
		return
	}

	// Any status other than paid (unpaid, expired, ...) returns the session
	// as-is with no side effects.
	if session.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
		if err := app.notifier.NotifyPaid(session); err != nil {
			app.mailErrorResponse(w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, session)
}

func validRedirectURL(raw string) bool {
	parsed, err := url.ParseRequestURI(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}
