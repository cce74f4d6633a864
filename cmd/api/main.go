package main

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vinreport/internal/mailer"
	"vinreport/internal/orders"
	"vinreport/internal/payments"
	"vinreport/internal/ratelimiter"
)

var version = "1.0.0"

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 200
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel
	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

// loadConfig builds the immutable configuration from the process
// environment. Every required value missing or malformed is an error; the
// caller aborts before the listener binds.
func loadConfig() (config, error) {
	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return config{}, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}

	publishableKey := os.Getenv("STRIPE_PUBLISHABLE_KEY")
	if publishableKey == "" {
		return config{}, fmt.Errorf("STRIPE_PUBLISHABLE_KEY is required")
	}

	emailPassword := os.Getenv("EMAIL_PASSWORD")
	if emailPassword == "" {
		return config{}, fmt.Errorf("EMAIL_PASSWORD is required")
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	parsed, err := url.ParseRequestURI(frontendURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return config{}, fmt.Errorf("FRONTEND_URL must be a well-formed absolute URL, got %q", frontendURL)
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":3000"
	}

	return config{
		addr:        addr,
		env:         os.Getenv("ENV"),
		frontendURL: frontendURL,
		stripe: stripeConfig{
			secretKey:      secretKey,
			publishableKey: publishableKey,
		},
		mail: mailConfig{
			password: emailPassword,
		},
		rateLimiter: LoadRateLimiterConfig(),
	}, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from the environment")
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := NewLogger()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	gateway := payments.NewStripeGateway(cfg.stripe.secretKey)

	smtp, err := mailer.NewSMTPClient(mailer.FromEmail, cfg.mail.password)
	if err != nil {
		logger.Fatal(err)
	}

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		gateway:     gateway,
		mailer:      smtp,
		notifier:    orders.NewNotifier(smtp),
		rateLimiter: rateLimiter,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
