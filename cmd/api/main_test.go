package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_secret")
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_test_123")
	t.Setenv("EMAIL_PASSWORD", "app-password")
	t.Setenv("FRONTEND_URL", "https://reports.example.com")
	t.Setenv("ADDR", "")
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := loadConfig()
	require.NoError(t, err)

	require.Equal(t, ":3000", cfg.addr) // default port
	require.Equal(t, "https://reports.example.com", cfg.frontendURL)
	require.Equal(t, "sk_test_secret", cfg.stripe.secretKey)
	require.Equal(t, "pk_test_123", cfg.stripe.publishableKey)
	require.Equal(t, "app-password", cfg.mail.password)
}

func TestLoadConfig_MissingRequiredVars(t *testing.T) {
	for _, name := range []string{
		"STRIPE_SECRET_KEY",
		"STRIPE_PUBLISHABLE_KEY",
		"EMAIL_PASSWORD",
		"FRONTEND_URL",
	} {
		t.Run("missing "+name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(name, "")

			_, err := loadConfig()
			require.Error(t, err)
			require.Contains(t, err.Error(), name)
		})
	}
}

func TestLoadConfig_MalformedFrontendURL(t *testing.T) {
	for _, raw := range []string{"not a url", "reports.example.com", "/relative/path"} {
		t.Run(raw, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("FRONTEND_URL", raw)

			_, err := loadConfig()
			require.Error(t, err)
			require.Contains(t, err.Error(), "FRONTEND_URL")
		})
	}
}

func TestLoadConfig_CustomAddr(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADDR", ":8080")

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.addr)
}
