package domain

import "time"

// User is a resolved account identity for a watched handle.
type User struct {
	ID         string
	Handle     string
	IsVerified bool
}

// Tweet is one unit of content from a watched account.
type Tweet struct {
	ID        string
	User      User
	Text      string
	CreatedAt time.Time
	Media     []Media
}

// MediaKind tags the variant payload carried by a Media value.
type MediaKind string

const (
	MediaPhoto    MediaKind = "photo"
	MediaVideo    MediaKind = "video"
	MediaAnimated MediaKind = "animated_gif"
)

// Media is a single attachment, validated at the source boundary so the
// rest of the pipeline never sees an untyped shape.
type Media struct {
	Kind MediaKind

	// URL is the shortened link embedded in the tweet body text.
	URL string

	// MediaURL is the direct still-image URL: the photo itself, or the
	// poster frame for video and animated attachments.
	MediaURL string

	Width  int
	Height int

	// Variants is populated for video and animated attachments only.
	Variants []MediaVariant

	// DurationMillis is the declared playback length for videos.
	DurationMillis int
}

// MediaVariant is one encoding option for a video-like attachment.
type MediaVariant struct {
	ContentType string
	Bitrate     int
	URL         string
}

// NormalizedMedia is the single deliverable shape every attachment is
// reduced to before delivery.
type NormalizedMedia struct {
	Kind      MediaKind
	URL       string
	PosterURL string
	Width     int
	Height    int

	// Bitrate and DurationMillis are set for video-like media only.
	Bitrate        int
	DurationMillis int
}

// IsVideo reports whether the media is delivered through the video
// endpoint (video and animated attachments both are).
func (m NormalizedMedia) IsVideo() bool {
	return m.Kind != MediaPhoto
}
