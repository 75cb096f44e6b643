// Package gateway is the client for the messaging gateway's send
// endpoints. It dispatches one tweet's normalized media to the correct
// endpoint by attachment cardinality and kind.
package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"tweet_relay/internal/domain"
)

const moreMediaNote = "\n\n*More photos/videos from tweet below...*"

const successCode = "SUCCESS"

// Config holds gateway client configuration.
type Config struct {
	BaseURL string

	// BasicAuth is the raw "user:password" secret; it is sent
	// base64-encoded in the Authorization header.
	BasicAuth string

	// Phone is the target channel identifier.
	Phone string

	Timeout time.Duration
}

// Client sends normalized tweets to the gateway.
type Client struct {
	httpClient *http.Client
	baseURL    string
	authHeader string
	phone      string
	logger     *slog.Logger
}

// APIError is a gateway response with a non-success code.
type APIError struct {
	Endpoint string
	Code     string
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway %s returned code %q: %s", e.Endpoint, e.Code, e.Message)
}

type apiResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// New creates a gateway client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:    cfg.BaseURL,
		authHeader: "Basic " + base64.StdEncoding.EncodeToString([]byte(cfg.BasicAuth)),
		phone:      cfg.Phone,
		logger:     logger.With("component", "gateway"),
	}
}

// Deliver sends one tweet's caption and media. With no media the caption
// goes out as a plain message; with one it captions that media; with
// several the first media carries the caption plus a trailing note and
// the rest follow uncaptioned. The first non-success response aborts the
// remaining sends.
func (c *Client) Deliver(ctx context.Context, caption string, medias []domain.NormalizedMedia) error {
	switch len(medias) {
	case 0:
		c.logger.Debug("no media, sending text message")
		return c.SendMessage(ctx, caption)

	case 1:
		return c.sendMedia(ctx, medias[0], caption)

	default:
		if err := c.sendMedia(ctx, medias[0], caption+moreMediaNote); err != nil {
			return err
		}
		for _, m := range medias[1:] {
			if err := c.sendMedia(ctx, m, ""); err != nil {
				return err
			}
		}
		return nil
	}
}

func (c *Client) sendMedia(ctx context.Context, m domain.NormalizedMedia, caption string) error {
	if m.IsVideo() {
		return c.SendVideo(ctx, m.URL, caption)
	}
	return c.SendImage(ctx, m.URL, caption)
}

// SendMessage posts a plain text message.
func (c *Client) SendMessage(ctx context.Context, message string) error {
	return c.postJSON(ctx, "/send/message", map[string]string{
		"message": message,
		"phone":   c.phone,
	})
}

// SendImage posts an image by URL with an optional caption.
func (c *Client) SendImage(ctx context.Context, imageURL, caption string) error {
	return c.postJSON(ctx, "/send/image", map[string]string{
		"image_url": imageURL,
		"phone":     c.phone,
		"caption":   caption,
	})
}

// SendVideo streams the video bytes from their source URL into a
// multipart upload; the gateway's video endpoint requires uploaded
// bytes, not a URL reference.
func (c *Client) SendVideo(ctx context.Context, videoURL, caption string) error {
	videoReq, err := http.NewRequestWithContext(ctx, http.MethodGet, videoURL, nil)
	if err != nil {
		return fmt.Errorf("create video request: %w", err)
	}

	videoResp, err := c.httpClient.Do(videoReq)
	if err != nil {
		return fmt.Errorf("fetch video: %w", err)
	}
	defer videoResp.Body.Close()

	if videoResp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch video: unexpected status %d", videoResp.StatusCode)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writeVideoForm(mw, videoResp.Body, c.phone, caption)
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send/video", pr)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req, "/send/video")
}

func writeVideoForm(mw *multipart.Writer, video io.Reader, phone, caption string) error {
	if err := mw.WriteField("phone", phone); err != nil {
		return err
	}
	if err := mw.WriteField("compress", "true"); err != nil {
		return err
	}
	if caption != "" {
		if err := mw.WriteField("caption", caption); err != nil {
			return err
		}
	}

	part, err := createVideoPart(mw)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, video)
	return err
}

func createVideoPart(mw *multipart.Writer) (io.Writer, error) {
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="video"; filename="video.mp4"`)
	header.Set("Content-Type", "video/mp4")
	return mw.CreatePart(header)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, endpoint)
}

func (c *Client) do(req *http.Request, endpoint string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if apiResp.Code != successCode {
		return &APIError{
			Endpoint: endpoint,
			Code:     apiResp.Code,
			Message:  apiResp.Message,
		}
	}

	c.logger.Debug("sent", "endpoint", endpoint)
	return nil
}
