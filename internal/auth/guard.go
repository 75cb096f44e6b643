// Package auth owns the account-wide authorization state: the persisted
// failure snapshot consulted at startup, and the pluggable resolver for
// interactive login challenges.
package auth

import (
	"fmt"
	"log/slog"

	"tweet_relay/internal/domain"
	"tweet_relay/internal/storage/jsonfile"
)

// Credentials is the set of account secrets in use, compared against the
// persisted failure snapshot to detect whether the operator has rotated
// anything since the last failure.
type Credentials struct {
	Username  string
	Email     string
	Password  string
	Cookies   string
	ForcePush string
}

// Guard decides at startup whether the process may attempt login again.
// A persisted failure with unchanged credentials fails fast so the
// process does not silently hammer the account; a credential rotation or
// a changed force-push token clears the block.
func Guard(state *jsonfile.AuthState, cookies *jsonfile.CookieStore, creds Credentials, logger *slog.Logger) error {
	record := state.Get()
	if !record.Errored {
		return nil
	}

	if creds.Cookies != "" && creds.Cookies == record.Cookies {
		return fmt.Errorf("authorization failed on a previous run with these session cookies (%s); rotate them and restart", record.Message)
	}

	if cookies.Exists() {
		if err := cookies.Wipe(); err != nil {
			return fmt.Errorf("wipe cached session: %w", err)
		}
		return fmt.Errorf("authorization failed on a previous run; wiped the cached session, restart to retry a fresh login")
	}

	sameCredentials := creds.Username == record.Username &&
		creds.Password == record.Password &&
		creds.Email == record.Email

	if sameCredentials {
		if creds.ForcePush == record.ForcePush {
			return fmt.Errorf("authorization failed on a previous run with these credentials (%s); rotate them, set session cookies, or change the force-push token after signing in manually", record.Message)
		}

		logger.Info("force-push token changed, clearing auth block and continuing")
		record.ForcePush = creds.ForcePush
		return state.Record(record)
	}

	logger.Info("credentials changed, clearing auth failure and continuing")
	return state.Clear()
}

// Recorder persists failure snapshots stamped with the credentials that
// were in use, so Guard can later tell rotation from repetition.
type Recorder struct {
	state *jsonfile.AuthState
	creds Credentials
}

func NewRecorder(state *jsonfile.AuthState, creds Credentials) *Recorder {
	return &Recorder{state: state, creds: creds}
}

// RecordFailure overwrites the snapshot with the given failure message.
func (r *Recorder) RecordFailure(message string) error {
	return r.state.Record(domain.AuthFailure{
		Errored:   true,
		Message:   message,
		Cookies:   r.creds.Cookies,
		Username:  r.creds.Username,
		Email:     r.creds.Email,
		Password:  r.creds.Password,
		ForcePush: r.creds.ForcePush,
	})
}
