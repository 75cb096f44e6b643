package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir  string        `yaml:"data_dir"`
	Watch    WatchConfig   `yaml:"watch"`
	Gateway  GatewayConfig `yaml:"gateway"`
	Account  AccountConfig `yaml:"account"`
	Events   EventsConfig  `yaml:"events"`
	LogLevel string        `yaml:"log_level"`
}

// WatchConfig controls what is polled and how often.
type WatchConfig struct {
	// Handles is a comma-separated list of account handles to watch.
	Handles string `yaml:"handles"`

	FetchCount    int `yaml:"fetch_count"`
	TimelineCount int `yaml:"timeline_count"`

	// StrawProbability gates the opportunistic home-timeline poll.
	StrawProbability float64 `yaml:"straw_probability"`

	// Sleep bounds in seconds: per-handle spacing and the inter-cycle wait.
	HandleSleepLow  float64 `yaml:"handle_sleep_low"`
	HandleSleepHigh float64 `yaml:"handle_sleep_high"`
	CycleSleepLow   float64 `yaml:"cycle_sleep_low"`
	CycleSleepHigh  float64 `yaml:"cycle_sleep_high"`

	// QuotaRetentionDays bounds the fetch-quota counter to the most
	// recent N day-buckets.
	QuotaRetentionDays int `yaml:"quota_retention_days"`
}

func (w WatchConfig) HandleList() []string {
	var handles []string
	for _, h := range strings.Split(w.Handles, ",") {
		if h = strings.TrimSpace(h); h != "" {
			handles = append(handles, h)
		}
	}
	return handles
}

// GatewayConfig points at the messaging gateway.
type GatewayConfig struct {
	BaseURL string `yaml:"base_url"`

	// BasicAuth is the raw "user:password" secret for the gateway.
	BasicAuth string `yaml:"basic_auth"`

	// Phone is the target channel identifier messages are sent to.
	Phone string `yaml:"phone"`

	Timeout time.Duration `yaml:"timeout"`
}

// AccountConfig configures the account-polling collaborator.
type AccountConfig struct {
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	Retry     RetryConfig   `yaml:"retry"`

	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`

	// Cookies is an optional base64-encoded JSON session cookie map,
	// taking precedence over credential login.
	Cookies string `yaml:"cookies"`

	// ForcePush clears a persisted auth failure for the same credentials
	// when its value changes.
	ForcePush string `yaml:"force_push"`

	Challenge ChallengeConfig `yaml:"challenge"`
}

// ChallengeConfig configures the email-log resolver for login
// verification challenges. An empty URL disables resolution.
type ChallengeConfig struct {
	MailLogURL    string        `yaml:"mail_log_url"`
	MailLogAPIKey string        `yaml:"mail_log_api_key"`
	PollInterval  time.Duration `yaml:"poll_interval"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

// EventsConfig configures the optional relay-event publisher. An empty
// URL disables it.
type EventsConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.DataDir == "" {
		c.DataDir = "./data"
	}
	if c.Watch.FetchCount == 0 {
		c.Watch.FetchCount = 40
	}
	if c.Watch.TimelineCount == 0 {
		c.Watch.TimelineCount = 20
	}
	if c.Watch.StrawProbability == 0 {
		c.Watch.StrawProbability = 0.3
	}
	if c.Watch.HandleSleepLow == 0 {
		c.Watch.HandleSleepLow = 3
	}
	if c.Watch.HandleSleepHigh == 0 {
		c.Watch.HandleSleepHigh = 19
	}
	if c.Watch.CycleSleepLow == 0 {
		c.Watch.CycleSleepLow = 4 * 60
	}
	if c.Watch.CycleSleepHigh == 0 {
		c.Watch.CycleSleepHigh = 40 * 60
	}
	if c.Watch.QuotaRetentionDays == 0 {
		c.Watch.QuotaRetentionDays = 30
	}
	if c.Gateway.BaseURL == "" {
		c.Gateway.BaseURL = "http://localhost:3000"
	}
	if c.Gateway.Timeout == 0 {
		c.Gateway.Timeout = 2 * time.Minute
	}
	if c.Account.Timeout == 0 {
		c.Account.Timeout = 30 * time.Second
	}
	if c.Account.Retry.MaxAttempts == 0 {
		c.Account.Retry.MaxAttempts = 3
	}
	if c.Account.Retry.InitialBackoff == 0 {
		c.Account.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Account.Retry.MaxBackoff == 0 {
		c.Account.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Account.Challenge.PollInterval == 0 {
		c.Account.Challenge.PollInterval = 2 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if len(c.Watch.HandleList()) == 0 {
		return fmt.Errorf("watch.handles must list at least one handle")
	}
	if c.Gateway.Phone == "" {
		return fmt.Errorf("gateway.phone must be set")
	}
	if c.Account.Cookies == "" &&
		(c.Account.Username == "" || c.Account.Email == "" || c.Account.Password == "") {
		return fmt.Errorf("either account.cookies or account.username+email+password must be set")
	}
	if c.Watch.HandleSleepLow >= c.Watch.HandleSleepHigh {
		return fmt.Errorf("watch.handle_sleep_low must be below watch.handle_sleep_high")
	}
	if c.Watch.CycleSleepLow >= c.Watch.CycleSleepHigh {
		return fmt.Errorf("watch.cycle_sleep_low must be below watch.cycle_sleep_high")
	}
	return nil
}
