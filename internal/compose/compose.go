// Package compose renders a tweet into the gateway's text payload.
package compose

import (
	"fmt"
	"strings"

	"tweet_relay/internal/domain"
)

const (
	permalinkBase = "https://x.com"

	// 12-hour clock, month name and day, no year.
	displayTimeLayout = "03:04PM MST, January 02"

	verifiedGlyph = "✓"
)

// Permalink builds the canonical URL for a tweet.
func Permalink(t domain.Tweet) string {
	return fmt.Sprintf("%s/%s/status/%s", permalinkBase, t.User.Handle, t.ID)
}

// Text renders the tweet caption. Attachment links are stripped from the
// body (attachments are delivered separately), then the permalink and a
// display timestamp are appended and an author header is prepended. The
// `_*...*_` markers are formatting conventions interpreted by the
// messaging surface, emitted literally.
func Text(t domain.Tweet) string {
	body := t.Text
	for _, m := range t.Media {
		if m.URL != "" {
			body = strings.ReplaceAll(body, m.URL, "")
		}
	}

	body = strings.TrimSpace(body)
	body += "\n\n" + Permalink(t)
	body += "\n\n" + t.CreatedAt.Format(displayTimeLayout)

	glyph := ""
	if t.User.IsVerified {
		glyph = verifiedGlyph
	}

	return fmt.Sprintf("_*@%s %s:*_\n\n%s", t.User.Handle, glyph, body)
}
