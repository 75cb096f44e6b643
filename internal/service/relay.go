package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tweet_relay/internal/compose"
	"tweet_relay/internal/config"
	"tweet_relay/internal/domain"
	"tweet_relay/internal/media"
)

// RelayService runs one full polling cycle: roll the fetch-quota bucket,
// opportunistically poll the aggregated timeline, then for each watched
// handle fetch recent tweets, filter through the dedup ledgers and relay
// whatever is new. Processing is strictly sequential; check-then-act on
// the ledgers is safe only because no two tweets are ever in flight at
// once.
type RelayService struct {
	source      Source
	delivered   Ledger
	quarantined Ledger
	quota       Quota
	deliverer   Deliverer
	auth        AuthRecorder
	jitter      Jitter
	publisher   Publisher
	logger      *slog.Logger
	cfg         config.WatchConfig
}

func NewRelayService(
	source Source,
	delivered Ledger,
	quarantined Ledger,
	quota Quota,
	deliverer Deliverer,
	auth AuthRecorder,
	jitter Jitter,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.WatchConfig,
) *RelayService {
	return &RelayService{
		source:      source,
		delivered:   delivered,
		quarantined: quarantined,
		quota:       quota,
		deliverer:   deliverer,
		auth:        auth,
		jitter:      jitter,
		publisher:   publisher,
		logger:      logger.With("component", "relay"),
		cfg:         cfg,
	}
}

// Cycle runs one full pass over the timeline straw and all watched
// handles. A returned error wrapping domain.ErrUnauthorized is fatal to
// the process; any other returned error is a cycle-level failure the
// scheduler logs and retries next cycle.
func (s *RelayService) Cycle(ctx context.Context) (*domain.CycleStats, error) {
	startTime := time.Now()
	handles := s.cfg.HandleList()

	stats := &domain.CycleStats{Handles: len(handles)}

	bucketStart, count, err := s.quota.Roll(time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("roll quota bucket: %w", err)
	}
	s.logger.Info("fetch quota",
		"bucket_age", time.Since(bucketStart).Round(time.Second).String(),
		"fetched", count,
	)

	if err := s.pollTimeline(ctx, stats); err != nil {
		return stats, err
	}

	for _, handle := range handles {
		err := s.pollHandle(ctx, handle, stats)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrUnauthorized):
			s.recordAuthFailure(err)
			return stats, err
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			return stats, err
		default:
			// Handle-level isolation: one account's transient error does
			// not stop the others.
			s.logger.Error("handle cycle failed", "handle", handle, "error", err)
			stats.Errors++
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("cycle completed",
		"handles", stats.Handles,
		"fetched", stats.Fetched,
		"new", stats.New,
		"delivered", stats.Delivered,
		"quarantined", stats.Quarantined,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

// pollTimeline pulls a straw each iteration and, while it comes up true,
// pages through the aggregated feed. The tweets only feed the fetch
// counter; relaying stays per-handle. Failures here inherit the same
// isolation rule as the handle path.
func (s *RelayService) pollTimeline(ctx context.Context, stats *domain.CycleStats) error {
	cursor := ""

	for {
		pulled, err := s.jitter.Straw(s.cfg.StrawProbability)
		if err != nil {
			return fmt.Errorf("pull straw: %w", err)
		}
		if !pulled {
			return nil
		}

		s.logger.Debug("straw pulled, fetching home timeline")

		tweets, next, err := s.source.HomeTimeline(ctx, s.cfg.TimelineCount, cursor)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				s.recordAuthFailure(err)
				return err
			}
			s.logger.Error("timeline fetch failed", "error", err)
			stats.Errors++
			return nil
		}

		s.countFetched(len(tweets), stats)
		s.logger.Debug("fetched timeline page", "tweets", len(tweets))

		if next == "" {
			return nil
		}
		cursor = next
	}
}

func (s *RelayService) pollHandle(ctx context.Context, handle string, stats *domain.CycleStats) error {
	user, err := s.source.ResolveUser(ctx, handle)
	if err != nil {
		return fmt.Errorf("resolve user %s: %w", handle, err)
	}

	tweets, err := s.source.UserTweets(ctx, user, s.cfg.FetchCount)
	if err != nil {
		return fmt.Errorf("fetch tweets for %s: %w", handle, err)
	}

	s.countFetched(len(tweets), stats)
	s.logger.Info("fetched tweets", "handle", user.Handle, "count", len(tweets))

	for _, tweet := range tweets {
		if s.delivered.Contains(tweet.ID) || s.quarantined.Contains(tweet.ID) {
			stats.Skipped++
			continue
		}
		stats.New++
		s.recordAttempt(ctx, tweet, stats)
	}

	// Spacing between handles to avoid a fixed polling signature.
	if err := s.jitter.Sleep(ctx, s.cfg.HandleSleepLow, s.cfg.HandleSleepHigh); err != nil {
		return err
	}

	return nil
}

// recordAttempt delivers one tweet at most once. Success appends the id
// to the delivered ledger; any failure quarantines it instead, and
// quarantined ids are never retried without external reset. The error is
// swallowed so one tweet's failure never interrupts the loop.
func (s *RelayService) recordAttempt(ctx context.Context, tweet domain.Tweet, stats *domain.CycleStats) {
	if s.delivered.Contains(tweet.ID) || s.quarantined.Contains(tweet.ID) {
		return
	}

	if err := s.deliverTweet(ctx, tweet); err != nil {
		s.logger.Error("delivery failed, quarantining",
			"tweet_id", tweet.ID,
			"handle", tweet.User.Handle,
			"error", err,
		)
		if qErr := s.quarantined.Add(tweet.ID); qErr != nil {
			s.logger.Error("failed to persist quarantine", "tweet_id", tweet.ID, "error", qErr)
		}
		s.publish(ctx, tweet, false)
		stats.Quarantined++
		return
	}

	if err := s.delivered.Add(tweet.ID); err != nil {
		s.logger.Error("failed to persist delivery record", "tweet_id", tweet.ID, "error", err)
	}
	s.publish(ctx, tweet, true)
	stats.Delivered++

	s.logger.Info("relayed tweet", "tweet_id", tweet.ID, "handle", tweet.User.Handle)
}

func (s *RelayService) deliverTweet(ctx context.Context, tweet domain.Tweet) error {
	medias, err := media.NormalizeAll(tweet.Media)
	if err != nil {
		return fmt.Errorf("normalize media: %w", err)
	}

	caption := compose.Text(tweet)

	if err := s.deliverer.Deliver(ctx, caption, medias); err != nil {
		return fmt.Errorf("deliver: %w", err)
	}
	return nil
}

func (s *RelayService) countFetched(n int, stats *domain.CycleStats) {
	stats.Fetched += n
	if err := s.quota.Add(n); err != nil {
		s.logger.Warn("failed to persist fetch quota", "error", err)
	}
}

func (s *RelayService) publish(ctx context.Context, tweet domain.Tweet, delivered bool) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, tweet, delivered); err != nil {
		s.logger.Warn("failed to publish relay event", "tweet_id", tweet.ID, "error", err)
	}
}

func (s *RelayService) recordAuthFailure(err error) {
	if recErr := s.auth.RecordFailure(err.Error()); recErr != nil {
		s.logger.Error("failed to persist auth failure", "error", recErr)
	}
}
