package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"time"
)

// ChallengeKind identifies what the login flow is asking for.
type ChallengeKind string

const (
	// ChallengeEmail asks for the account's email address.
	ChallengeEmail ChallengeKind = "email"

	// ChallengeEmailCode asks for a confirmation code sent by email.
	ChallengeEmailCode ChallengeKind = "email_code"
)

// ChallengeResolver answers an identity-verification challenge raised
// during login.
type ChallengeResolver interface {
	Resolve(ctx context.Context, kind ChallengeKind) (string, error)
}

// Waiter provides jittered pauses so challenge answers don't arrive at
// machine speed.
type Waiter interface {
	Sleep(ctx context.Context, low, high float64) error
}

var codePattern = regexp.MustCompile(`(?i)confirmation code is ([a-z0-9]+)`)

// MailLogConfig configures the email-log resolver.
type MailLogConfig struct {
	BaseURL      string
	APIKey       string
	Email        string
	PollInterval time.Duration
	Timeout      time.Duration
}

// MailLogResolver answers challenges by polling an email-log HTTP API
// for the confirmation-code message delivered to the account's address.
type MailLogResolver struct {
	httpClient   *http.Client
	baseURL      string
	authHeader   string
	email        string
	pollInterval time.Duration
	waiter       Waiter
	logger       *slog.Logger
}

type mailLogResponse struct {
	Logs []mailLogEntry `json:"logs"`
}

type mailLogEntry struct {
	Created int64  `json:"created"`
	Subject string `json:"subject"`
}

func NewMailLogResolver(cfg MailLogConfig, waiter Waiter, logger *slog.Logger) *MailLogResolver {
	return &MailLogResolver{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:      cfg.BaseURL,
		authHeader:   "Basic " + base64.StdEncoding.EncodeToString([]byte("api:"+cfg.APIKey)),
		email:        cfg.Email,
		pollInterval: cfg.PollInterval,
		waiter:       waiter,
		logger:       logger.With("component", "challenge_resolver"),
	}
}

// Resolve answers the challenge. Email challenges return the configured
// address after a short human-paced pause; code challenges poll the mail
// log until a confirmation-code message newer than the challenge
// appears.
func (r *MailLogResolver) Resolve(ctx context.Context, kind ChallengeKind) (string, error) {
	switch kind {
	case ChallengeEmail:
		if err := r.pause(ctx); err != nil {
			return "", err
		}
		return r.email, nil

	case ChallengeEmailCode:
		return r.resolveCode(ctx)

	default:
		return "", fmt.Errorf("unsupported challenge kind %q", kind)
	}
}

func (r *MailLogResolver) resolveCode(ctx context.Context) (string, error) {
	since := time.Now().UnixMilli()

	for {
		code, found, err := r.fetchCode(ctx, since)
		if err != nil {
			return "", err
		}
		if found {
			r.logger.Info("confirmation code found in mail log")
			if err := r.pause(ctx); err != nil {
				return "", err
			}
			return code, nil
		}

		r.logger.Debug("no confirmation code email yet")

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.pollInterval):
		}
	}
}

func (r *MailLogResolver) fetchCode(ctx context.Context, since int64) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL, nil)
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", r.authHeader)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("fetch mail log: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("mail log returned status %d", resp.StatusCode)
	}

	var log mailLogResponse
	if err := json.NewDecoder(resp.Body).Decode(&log); err != nil {
		return "", false, fmt.Errorf("decode mail log: %w", err)
	}

	for _, entry := range log.Logs {
		if entry.Created <= since {
			continue
		}
		if match := codePattern.FindStringSubmatch(entry.Subject); match != nil {
			return match[1], true, nil
		}
	}
	return "", false, nil
}

func (r *MailLogResolver) pause(ctx context.Context) error {
	if r.waiter == nil {
		return nil
	}
	return r.waiter.Sleep(ctx, 2, 6)
}
