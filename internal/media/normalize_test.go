package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweet_relay/internal/domain"
)

func TestNormalize_Photo(t *testing.T) {
	m := domain.Media{
		Kind:     domain.MediaPhoto,
		MediaURL: "https://pbs.example.com/photo.jpg",
		Width:    1920,
		Height:   1080,
	}

	got, err := Normalize(m)
	require.NoError(t, err)

	assert.Equal(t, domain.MediaPhoto, got.Kind)
	assert.Equal(t, "https://pbs.example.com/photo.jpg", got.URL)
	assert.Equal(t, 1920, got.Width)
	assert.Equal(t, 1080, got.Height)
	assert.False(t, got.IsVideo())
}

func TestNormalize_VideoPicksHighestBitrateMP4(t *testing.T) {
	m := domain.Media{
		Kind:           domain.MediaVideo,
		MediaURL:       "https://pbs.example.com/poster.jpg",
		Width:          1280,
		Height:         720,
		DurationMillis: 21333,
		Variants: []domain.MediaVariant{
			{ContentType: "application/x-mpegURL", Bitrate: 0, URL: "https://v.example.com/pl.m3u8"},
			{ContentType: "video/mp4", Bitrate: 632000, URL: "https://v.example.com/632.mp4"},
			{ContentType: "video/mp4", Bitrate: 2176000, URL: "https://v.example.com/2176.mp4"},
			{ContentType: "video/mp4", Bitrate: 950000, URL: "https://v.example.com/950.mp4"},
		},
	}

	got, err := Normalize(m)
	require.NoError(t, err)

	assert.Equal(t, "https://v.example.com/2176.mp4", got.URL)
	assert.Equal(t, 2176000, got.Bitrate)
	assert.Equal(t, "https://pbs.example.com/poster.jpg", got.PosterURL)
	assert.Equal(t, 21333, got.DurationMillis)
	assert.True(t, got.IsVideo())
}

func TestNormalize_VideoBitrateTieKeepsFirst(t *testing.T) {
	m := domain.Media{
		Kind: domain.MediaVideo,
		Variants: []domain.MediaVariant{
			{ContentType: "video/mp4", Bitrate: 832000, URL: "https://v.example.com/a.mp4"},
			{ContentType: "video/mp4", Bitrate: 832000, URL: "https://v.example.com/b.mp4"},
		},
	}

	got, err := Normalize(m)
	require.NoError(t, err)
	assert.Equal(t, "https://v.example.com/a.mp4", got.URL)
}

func TestNormalize_VideoWithoutMP4Fails(t *testing.T) {
	m := domain.Media{
		Kind: domain.MediaVideo,
		Variants: []domain.MediaVariant{
			{ContentType: "application/x-mpegURL", URL: "https://v.example.com/pl.m3u8"},
		},
	}

	_, err := Normalize(m)
	assert.ErrorIs(t, err, domain.ErrNoCompatibleEncoding)
}

func TestNormalize_VideoWithoutVariantsFails(t *testing.T) {
	_, err := Normalize(domain.Media{Kind: domain.MediaVideo})
	assert.ErrorIs(t, err, domain.ErrNoCompatibleEncoding)
}

func TestNormalize_AnimatedTakesFirstVariant(t *testing.T) {
	m := domain.Media{
		Kind:     domain.MediaAnimated,
		MediaURL: "https://pbs.example.com/gif-poster.jpg",
		Width:    480,
		Height:   270,
		Variants: []domain.MediaVariant{
			{ContentType: "video/mp4", Bitrate: 0, URL: "https://v.example.com/gif.mp4"},
			{ContentType: "video/mp4", Bitrate: 999999, URL: "https://v.example.com/never.mp4"},
		},
	}

	got, err := Normalize(m)
	require.NoError(t, err)

	// No bitrate comparison for animated media, and the duration is fixed.
	assert.Equal(t, "https://v.example.com/gif.mp4", got.URL)
	assert.Equal(t, 6000, got.DurationMillis)
	assert.True(t, got.IsVideo())
}

func TestNormalize_AnimatedWithoutVariantsFails(t *testing.T) {
	_, err := Normalize(domain.Media{Kind: domain.MediaAnimated})
	assert.ErrorIs(t, err, domain.ErrNoCompatibleEncoding)
}

func TestNormalize_UnknownKindFails(t *testing.T) {
	_, err := Normalize(domain.Media{Kind: "sticker"})
	assert.Error(t, err)
}

func TestNormalizeAll_OnePerAttachment(t *testing.T) {
	medias := []domain.Media{
		{Kind: domain.MediaPhoto, MediaURL: "https://pbs.example.com/1.jpg"},
		{Kind: domain.MediaVideo, Variants: []domain.MediaVariant{
			{ContentType: "video/mp4", Bitrate: 100, URL: "https://v.example.com/1.mp4"},
		}},
	}

	got, err := NormalizeAll(medias)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "https://pbs.example.com/1.jpg", got[0].URL)
	assert.Equal(t, "https://v.example.com/1.mp4", got[1].URL)
}

func TestNormalizeAll_FailsOnFirstIncompatible(t *testing.T) {
	medias := []domain.Media{
		{Kind: domain.MediaPhoto, MediaURL: "https://pbs.example.com/1.jpg"},
		{Kind: domain.MediaVideo},
	}

	got, err := NormalizeAll(medias)
	assert.ErrorIs(t, err, domain.ErrNoCompatibleEncoding)
	assert.Nil(t, got)
}

func TestNormalizeAll_Empty(t *testing.T) {
	got, err := NormalizeAll(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
