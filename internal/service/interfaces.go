package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"tweet_relay/internal/domain"
)

// Source is the account-polling collaborator. Errors wrapping
// domain.ErrUnauthorized are account-wide and fatal; anything else is a
// transient upstream condition scoped to the call.
type Source interface {
	ResolveUser(ctx context.Context, handle string) (*domain.User, error)

	// UserTweets returns the user's most recent tweets, oldest first.
	UserTweets(ctx context.Context, user *domain.User, count int) ([]domain.Tweet, error)

	// HomeTimeline returns one page of the aggregated feed and the
	// cursor for the next page ("" when exhausted).
	HomeTimeline(ctx context.Context, count int, cursor string) ([]domain.Tweet, string, error)
}

// Ledger is one persisted set of processed tweet ids; Add must flush to
// durable storage before returning.
type Ledger interface {
	Contains(id string) bool
	Add(id string) error
}

// Quota tracks fetch volume per day-bucket.
type Quota interface {
	Roll(now time.Time) (start time.Time, count int, err error)
	Add(n int) error
}

// Deliverer sends one composed caption and its normalized media to the
// messaging gateway.
type Deliverer interface {
	Deliver(ctx context.Context, caption string, medias []domain.NormalizedMedia) error
}

// AuthRecorder persists an account-wide authorization failure snapshot.
type AuthRecorder interface {
	RecordFailure(message string) error
}

// Jitter provides the randomized pacing between operations.
type Jitter interface {
	Sleep(ctx context.Context, low, high float64) error
	Straw(probability float64) (bool, error)
}

// Publisher emits relay events to an external stream; optional and
// best-effort.
type Publisher interface {
	Publish(ctx context.Context, tweet domain.Tweet, delivered bool) error
	Close() error
}
