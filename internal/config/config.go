package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingDSN = errors.New("missing DB_DSN")

const (
	defaultServerPort    = 8080
	defaultSweepSchedule = "@hourly"
	defaultPhoneRegion   = "US"
	defaultConnectWait   = 30 * time.Second
)

// DynamoConfig holds the DynamoDB connection settings. Local DynamoDB does not
// validate credentials, but the AWS SDK requires them.
type DynamoConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
}

type Config struct {
	ServerPort  int
	GinMode     string
	DBDSN       string
	DBMaxWait   time.Duration
	PhoneRegion string
	// SweepSchedule is a cron expression; empty disables the sweeper.
	SweepSchedule string

	MercadoPagoAccessToken string
	PaymentMock            bool
	SandboxPayerEmail      string

	Dynamo DynamoConfig
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		GinMode:                os.Getenv("GIN_MODE"),
		DBDSN:                  strings.TrimSpace(os.Getenv("DB_DSN")),
		PhoneRegion:            strings.ToUpper(getenvDefault("PHONE_DEFAULT_REGION", defaultPhoneRegion)),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentMock:            isEnabled("PAYMENT_GATEWAY_MOCK") || isEnabled("MERCADOPAGO_MOCK"),
		SandboxPayerEmail:      os.Getenv("MERCADOPAGO_SANDBOX_PAYER_EMAIL"),
		Dynamo: DynamoConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
		},
	}
	if cfg.DBDSN == "" {
		return Config{}, ErrMissingDSN
	}

	port, err := intFromEnv("SERVER_PORT", defaultServerPort)
	if err != nil {
		return Config{}, err
	}
	cfg.ServerPort = port

	cfg.DBMaxWait = defaultConnectWait
	if raw := os.Getenv("DB_CONNECT_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("DB_CONNECT_TIMEOUT: %w", err)
		}
		cfg.DBMaxWait = d
	}

	// set but empty means disabled
	if v, ok := os.LookupEnv("FLOW_SWEEP_SCHEDULE"); ok {
		cfg.SweepSchedule = strings.TrimSpace(v)
	} else {
		cfg.SweepSchedule = defaultSweepSchedule
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.ServerPort)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intFromEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: invalid value %q", key, raw)
	}
	return n, nil
}

func isEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
