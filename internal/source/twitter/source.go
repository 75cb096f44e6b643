package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tweet_relay/internal/auth"
	"tweet_relay/internal/domain"
)

const SourceID = "twitter"

// Config holds account source configuration.
type Config struct {
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source talks to the account-polling sidecar API.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	cookies        map[string]string
	resolver       auth.ChallengeResolver
	logger         *slog.Logger
}

// New creates an account source. The resolver may be nil when login with
// challenge handling is not needed (cookie-only sessions).
func New(cfg Config, resolver auth.ChallengeResolver, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:      cfg.UserAgent,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		resolver:       resolver,
		logger:         logger.With("source", SourceID),
	}
}

// SetCookies installs the session cookies sent with every request.
func (s *Source) SetCookies(cookies map[string]string) {
	s.cookies = cookies
}

// Cookies returns the current session cookies.
func (s *Source) Cookies() map[string]string {
	return s.cookies
}

// Login authenticates with credentials and stores the resulting session
// cookies on the source. Challenges raised by the remote end are answered
// through the challenge resolver.
func (s *Source) Login(ctx context.Context, username, email, password string) error {
	reqBody := loginRequest{
		Username: username,
		Email:    email,
		Password: password,
	}

	for {
		resp, err := s.postLogin(ctx, reqBody)
		if err != nil {
			return err
		}

		switch resp.Status {
		case "success":
			s.cookies = resp.Cookies
			s.logger.Info("logged in", "username", username)
			return nil
		case "challenge":
			if s.resolver == nil {
				return fmt.Errorf("login challenge %q: no resolver configured", resp.Challenge)
			}
			answer, err := s.resolver.Resolve(ctx, auth.ChallengeKind(resp.Challenge))
			if err != nil {
				return fmt.Errorf("resolve challenge %q: %w", resp.Challenge, err)
			}
			s.logger.Info("answering login challenge", "kind", resp.Challenge)
			reqBody.ChallengeAnswer = answer
		default:
			return fmt.Errorf("login failed: %w", domain.ErrUnauthorized)
		}
	}
}

func (s *Source) postLogin(ctx context.Context, body loginRequest) (*loginResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode login: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/login", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.setHeaders(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, domain.ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var loginResp loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &loginResp, nil
}

// ResolveUser looks a user up by handle.
func (s *Source) ResolveUser(ctx context.Context, handle string) (*domain.User, error) {
	endpoint := s.baseURL + "/users/by/handle/" + url.PathEscape(handle)

	var apiResp apiUser
	if err := s.getJSON(ctx, endpoint, &apiResp); err != nil {
		return nil, fmt.Errorf("resolve %s: %w", handle, err)
	}

	return &domain.User{
		ID:         apiResp.ID,
		Handle:     apiResp.ScreenName,
		IsVerified: apiResp.IsBlueVerified,
	}, nil
}

// UserTweets fetches the most recent tweets of a user, oldest first.
func (s *Source) UserTweets(ctx context.Context, user *domain.User, count int) ([]domain.Tweet, error) {
	endpoint := fmt.Sprintf("%s/users/%s/tweets?count=%d", s.baseURL, url.PathEscape(user.ID), count)

	var apiResp tweetsResponse
	if err := s.getJSON(ctx, endpoint, &apiResp); err != nil {
		return nil, fmt.Errorf("user tweets %s: %w", user.Handle, err)
	}

	tweets := s.transform(apiResp.Tweets)
	reverse(tweets)
	return tweets, nil
}

// HomeTimeline fetches a page of the home timeline. An empty cursor requests
// the first page; the returned cursor addresses the next one.
func (s *Source) HomeTimeline(ctx context.Context, count int, cursor string) ([]domain.Tweet, string, error) {
	endpoint := fmt.Sprintf("%s/timeline?count=%d", s.baseURL, count)
	if cursor != "" {
		endpoint += "&cursor=" + url.QueryEscape(cursor)
	}

	var apiResp tweetsResponse
	if err := s.getJSON(ctx, endpoint, &apiResp); err != nil {
		return nil, "", fmt.Errorf("home timeline: %w", err)
	}

	return s.transform(apiResp.Tweets), apiResp.NextCursor, nil
}

func (s *Source) getJSON(ctx context.Context, endpoint string, out any) error {
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err = s.doRequest(ctx, endpoint, out)
		if err == nil {
			return nil
		}

		// Auth failures never recover on retry.
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	s.setHeaders(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("status %d: %w", resp.StatusCode, domain.ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (s *Source) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}
	for name, value := range s.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(items []apiTweet) []domain.Tweet {
	tweets := make([]domain.Tweet, 0, len(items))

	for _, item := range items {
		createdAt, err := time.Parse(time.RubyDate, item.CreatedAt)
		if err != nil {
			s.logger.Warn("failed to parse created_at",
				"tweet_id", item.ID,
				"created_at", item.CreatedAt,
			)
			continue
		}

		tweet := domain.Tweet{
			ID: item.ID,
			User: domain.User{
				ID:         item.User.ID,
				Handle:     item.User.ScreenName,
				IsVerified: item.User.IsBlueVerified,
			},
			Text:      item.FullText,
			CreatedAt: createdAt,
		}

		for _, m := range item.Media {
			tweet.Media = append(tweet.Media, transformMedia(m))
		}

		tweets = append(tweets, tweet)
	}

	return tweets
}

func transformMedia(m apiMedia) domain.Media {
	media := domain.Media{
		Kind:     mediaKind(m.Type),
		URL:      m.URL,
		MediaURL: m.MediaURL,
	}

	if size, ok := m.Sizes["large"]; ok {
		media.Width = size.W
		media.Height = size.H
	}

	if m.VideoInfo != nil {
		media.DurationMillis = m.VideoInfo.DurationMillis
		for _, v := range m.VideoInfo.Variants {
			media.Variants = append(media.Variants, domain.MediaVariant{
				ContentType: v.ContentType,
				Bitrate:     v.Bitrate,
				URL:         v.URL,
			})
		}
	}

	return media
}

// mediaKind coerces the wire type to a known kind. Anything that is not
// a photo or a plain video behaves like an animated attachment
// downstream.
func mediaKind(t string) domain.MediaKind {
	switch t {
	case string(domain.MediaPhoto):
		return domain.MediaPhoto
	case string(domain.MediaVideo):
		return domain.MediaVideo
	default:
		return domain.MediaAnimated
	}
}

func reverse(tweets []domain.Tweet) {
	for i, j := 0, len(tweets)-1; i < j; i, j = i+1, j-1 {
		tweets[i], tweets[j] = tweets[j], tweets[i]
	}
}
