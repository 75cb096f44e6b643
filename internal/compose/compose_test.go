package compose

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tweet_relay/internal/domain"
)

func sampleTweet() domain.Tweet {
	created, _ := time.Parse(time.RubyDate, "Mon Jun 02 19:05:00 +0000 2025")
	return domain.Tweet{
		ID:        "1929624607641649288",
		User:      domain.User{Handle: "DropSiteNews", IsVerified: true},
		Text:      "Breaking: something happened https://t.co/abc123",
		CreatedAt: created,
		Media: []domain.Media{
			{Kind: domain.MediaPhoto, URL: "https://t.co/abc123", MediaURL: "https://pbs.example.com/1.jpg"},
		},
	}
}

func TestText_StripsAttachmentURLs(t *testing.T) {
	got := Text(sampleTweet())

	assert.NotContains(t, got, "https://t.co/abc123")
	assert.Contains(t, got, "Breaking: something happened")
}

func TestText_AppendsPermalink(t *testing.T) {
	got := Text(sampleTweet())

	assert.Contains(t, got, "\n\nhttps://x.com/DropSiteNews/status/1929624607641649288")
}

func TestText_AppendsDisplayTime(t *testing.T) {
	got := Text(sampleTweet())

	// 12-hour clock, month name and day, no year.
	assert.Contains(t, got, "07:05PM UTC, June 02")
	assert.NotContains(t, got, "2025")
}

func TestText_VerifiedHeader(t *testing.T) {
	got := Text(sampleTweet())

	assert.True(t, strings.HasPrefix(got, "_*@DropSiteNews ✓:*_\n\n"), got)
}

func TestText_UnverifiedHeaderOmitsGlyph(t *testing.T) {
	tw := sampleTweet()
	tw.User.IsVerified = false

	got := Text(tw)

	assert.True(t, strings.HasPrefix(got, "_*@DropSiteNews :*_\n\n"), got)
	assert.NotContains(t, got, "✓")
}

func TestText_TrimsBodyWhitespace(t *testing.T) {
	tw := sampleTweet()
	tw.Text = "   just text https://t.co/abc123  "

	got := Text(tw)

	assert.Contains(t, got, ":*_\n\njust text\n\nhttps://x.com/")
}

func TestText_NoMedia(t *testing.T) {
	tw := sampleTweet()
	tw.Media = nil
	tw.Text = "plain tweet"

	got := Text(tw)

	assert.Contains(t, got, "plain tweet\n\nhttps://x.com/DropSiteNews/status/")
}

func TestPermalink(t *testing.T) {
	assert.Equal(t,
		"https://x.com/DropSiteNews/status/1929624607641649288",
		Permalink(sampleTweet()),
	)
}
