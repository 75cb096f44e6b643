package domain

import "errors"

// ErrUnauthorized marks an account-wide authorization failure. It is
// fatal to the whole process, not just the handle that surfaced it.
var ErrUnauthorized = errors.New("account unauthorized")

// ErrNoCompatibleEncoding is returned when a video-like attachment
// carries no variant the gateway can play.
var ErrNoCompatibleEncoding = errors.New("no compatible media encoding")
