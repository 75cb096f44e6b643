package jsonfile

import (
	"tweet_relay/internal/domain"
)

// AuthState persists the most recent account authorization failure. The
// snapshot is overwritten wholesale on each failure or resolution, never
// merged, so a stale partial record can't mask a credential change.
type AuthState struct {
	path   string
	record domain.AuthFailure
}

// NewAuthState opens (or initializes) the snapshot stored at dir/name.
func NewAuthState(dir, name string) (*AuthState, error) {
	s := &AuthState{path: join(dir, name)}

	if _, err := load(s.path, &s.record); err != nil {
		return nil, err
	}
	return s, nil
}

// Record overwrites the snapshot with the given failure.
func (s *AuthState) Record(failure domain.AuthFailure) error {
	s.record = failure
	return save(s.path, s.record)
}

// Clear resets the snapshot to its resolved (non-errored) state.
func (s *AuthState) Clear() error {
	s.record = domain.AuthFailure{}
	return save(s.path, s.record)
}

// Get returns the current snapshot.
func (s *AuthState) Get() domain.AuthFailure {
	return s.record
}
