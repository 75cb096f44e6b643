package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tweet_relay/internal/auth"
	"tweet_relay/internal/config"
	"tweet_relay/internal/events"
	"tweet_relay/internal/gateway"
	"tweet_relay/internal/interval"
	"tweet_relay/internal/scheduler"
	"tweet_relay/internal/service"
	"tweet_relay/internal/source/twitter"
	"tweet_relay/internal/storage/jsonfile"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	if err := jsonfile.EnsureDir(cfg.DataDir); err != nil {
		logger.Error("failed to create data dir", "error", err)
		os.Exit(1)
	}

	// Initialize stores
	delivered, err := jsonfile.NewIDSet(cfg.DataDir, "delivered.json", logger)
	if err != nil {
		logger.Error("failed to open delivered ledger", "error", err)
		os.Exit(1)
	}
	quarantined, err := jsonfile.NewIDSet(cfg.DataDir, "quarantined.json", logger)
	if err != nil {
		logger.Error("failed to open quarantined ledger", "error", err)
		os.Exit(1)
	}
	quota, err := jsonfile.NewQuotaCounter(cfg.DataDir, "fetch_quota.json", cfg.Watch.QuotaRetentionDays)
	if err != nil {
		logger.Error("failed to open quota counter", "error", err)
		os.Exit(1)
	}
	authState, err := jsonfile.NewAuthState(cfg.DataDir, "auth_failure.json")
	if err != nil {
		logger.Error("failed to open auth state", "error", err)
		os.Exit(1)
	}
	cookieStore := jsonfile.NewCookieStore(cfg.DataDir, "cookies.json")

	creds := auth.Credentials{
		Username:  cfg.Account.Username,
		Email:     cfg.Account.Email,
		Password:  cfg.Account.Password,
		Cookies:   cfg.Account.Cookies,
		ForcePush: cfg.Account.ForcePush,
	}

	if err := auth.Guard(authState, cookieStore, creds, logger); err != nil {
		logger.Error("refusing to start", "error", err)
		os.Exit(1)
	}

	jitter := interval.New()

	var resolver auth.ChallengeResolver
	if cfg.Account.Challenge.MailLogURL != "" {
		resolver = auth.NewMailLogResolver(auth.MailLogConfig{
			BaseURL:      cfg.Account.Challenge.MailLogURL,
			APIKey:       cfg.Account.Challenge.MailLogAPIKey,
			Email:        cfg.Account.Email,
			PollInterval: cfg.Account.Challenge.PollInterval,
			Timeout:      cfg.Account.Timeout,
		}, jitter, logger)
	}

	source := twitter.New(twitter.Config{
		BaseURL:        cfg.Account.BaseURL,
		UserAgent:      cfg.Account.UserAgent,
		Timeout:        cfg.Account.Timeout,
		MaxAttempts:    cfg.Account.Retry.MaxAttempts,
		InitialBackoff: cfg.Account.Retry.InitialBackoff,
		MaxBackoff:     cfg.Account.Retry.MaxBackoff,
	}, resolver, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	recorder := auth.NewRecorder(authState, creds)

	if err := openSession(ctx, source, cookieStore, cfg.Account, logger); err != nil {
		logger.Error("failed to open session", "error", err)
		if recErr := recorder.RecordFailure(err.Error()); recErr != nil {
			logger.Error("failed to record auth failure", "error", recErr)
		}
		os.Exit(1)
	}

	gatewayClient := gateway.New(gateway.Config{
		BaseURL:   cfg.Gateway.BaseURL,
		BasicAuth: cfg.Gateway.BasicAuth,
		Phone:     cfg.Gateway.Phone,
		Timeout:   cfg.Gateway.Timeout,
	}, logger)

	// The event publisher is optional; no URL means no events.
	var publisher service.Publisher
	if cfg.Events.URL != "" {
		rabbitMQ, err := events.NewRabbitMQ(events.Config{
			URL:        cfg.Events.URL,
			Exchange:   cfg.Events.Exchange,
			RoutingKey: cfg.Events.RoutingKey,
			QueueName:  cfg.Events.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		publisher = rabbitMQ
	}

	relayService := service.NewRelayService(
		source,
		delivered,
		quarantined,
		quota,
		gatewayClient,
		recorder,
		jitter,
		publisher,
		logger,
		cfg.Watch,
	)

	sched := scheduler.NewScheduler(
		relayService,
		jitter,
		cfg.Watch.CycleSleepLow,
		cfg.Watch.CycleSleepHigh,
		logger,
	)

	logger.Info("starting tweet relay",
		"handles", cfg.Watch.HandleList(),
		"data_dir", cfg.DataDir,
		"gateway", cfg.Gateway.BaseURL,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

// openSession puts a usable session on the source: explicit cookies from
// config win, then the cached cookie file, then a credential login whose
// cookies are cached for next time.
func openSession(ctx context.Context, source *twitter.Source, store *jsonfile.CookieStore, cfg config.AccountConfig, logger *slog.Logger) error {
	if cfg.Cookies != "" {
		cookies, err := jsonfile.DecodeCookies(cfg.Cookies)
		if err != nil {
			return err
		}
		source.SetCookies(cookies)
		logger.Info("session from configured cookies")
		return nil
	}

	cookies, ok, err := store.Load()
	if err != nil {
		return err
	}
	if ok {
		source.SetCookies(cookies)
		logger.Info("session from cached cookies")
		return nil
	}

	if err := source.Login(ctx, cfg.Username, cfg.Email, cfg.Password); err != nil {
		return err
	}
	if err := store.Save(source.Cookies()); err != nil {
		logger.Warn("failed to cache session cookies", "error", err)
	}
	if encoded, err := jsonfile.EncodeCookies(source.Cookies()); err == nil {
		logger.Debug("session cookie export", "cookies", encoded)
	}
	return nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
