package main

import "net/http"

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Liveness probe; always returns OK once the process is serving.
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// configHandler exposes the publishable key the frontend needs to mount the
// hosted checkout. The secret key never leaves the process.
func (app *application) configHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"publishableKey": app.config.stripe.publishableKey,
	})
}
