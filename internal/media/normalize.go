// Package media reduces heterogeneous attachment shapes to the single
// deliverable form the gateway understands.
package media

import (
	"fmt"

	"tweet_relay/internal/domain"
)

const mp4ContentType = "video/mp4"

// Animated attachments report no real length; the gateway still wants one.
const animatedDurationMillis = 6000

// Normalize converts one attachment into its canonical deliverable
// descriptor. Videos select the highest-bitrate mp4 variant; animated
// attachments take the first variant as provided. A video-like
// attachment with no usable variant fails with
// domain.ErrNoCompatibleEncoding.
func Normalize(m domain.Media) (domain.NormalizedMedia, error) {
	switch m.Kind {
	case domain.MediaPhoto:
		return domain.NormalizedMedia{
			Kind:   domain.MediaPhoto,
			URL:    m.MediaURL,
			Width:  m.Width,
			Height: m.Height,
		}, nil

	case domain.MediaVideo:
		best, ok := bestMP4Variant(m.Variants)
		if !ok {
			return domain.NormalizedMedia{}, fmt.Errorf("video %q: %w", m.MediaURL, domain.ErrNoCompatibleEncoding)
		}
		return domain.NormalizedMedia{
			Kind:           domain.MediaVideo,
			URL:            best.URL,
			PosterURL:      m.MediaURL,
			Width:          m.Width,
			Height:         m.Height,
			Bitrate:        best.Bitrate,
			DurationMillis: m.DurationMillis,
		}, nil

	case domain.MediaAnimated:
		if len(m.Variants) == 0 {
			return domain.NormalizedMedia{}, fmt.Errorf("animated %q: %w", m.MediaURL, domain.ErrNoCompatibleEncoding)
		}
		first := m.Variants[0]
		return domain.NormalizedMedia{
			Kind:           domain.MediaAnimated,
			URL:            first.URL,
			PosterURL:      m.MediaURL,
			Width:          m.Width,
			Height:         m.Height,
			Bitrate:        first.Bitrate,
			DurationMillis: animatedDurationMillis,
		}, nil

	default:
		return domain.NormalizedMedia{}, fmt.Errorf("unknown media kind %q", m.Kind)
	}
}

// NormalizeAll normalizes every attachment in order, one descriptor per
// attachment, failing on the first incompatible one.
func NormalizeAll(medias []domain.Media) ([]domain.NormalizedMedia, error) {
	if len(medias) == 0 {
		return nil, nil
	}

	out := make([]domain.NormalizedMedia, 0, len(medias))
	for _, m := range medias {
		n, err := Normalize(m)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// bestMP4Variant picks the mp4 variant with the highest bitrate; ties go
// to the first such variant in source order.
func bestMP4Variant(variants []domain.MediaVariant) (domain.MediaVariant, bool) {
	var best domain.MediaVariant
	found := false
	for _, v := range variants {
		if v.ContentType != mp4ContentType {
			continue
		}
		if !found || v.Bitrate > best.Bitrate {
			best = v
			found = true
		}
	}
	return best, found
}
