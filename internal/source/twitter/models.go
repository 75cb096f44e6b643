package twitter

// Wire shapes of the account-polling API.

type apiUser struct {
	ID             string `json:"id"`
	ScreenName     string `json:"screen_name"`
	IsBlueVerified bool   `json:"is_blue_verified"`
}

type apiTweet struct {
	ID        string     `json:"id"`
	FullText  string     `json:"full_text"`
	CreatedAt string     `json:"created_at"`
	User      apiUser    `json:"user"`
	Media     []apiMedia `json:"media"`
}

type apiMedia struct {
	Type      string             `json:"type"`
	URL       string             `json:"url"`
	MediaURL  string             `json:"media_url_https"`
	Sizes     map[string]apiSize `json:"sizes"`
	VideoInfo *apiVideoInfo      `json:"video_info"`
}

type apiSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type apiVideoInfo struct {
	DurationMillis int          `json:"duration_millis"`
	Variants       []apiVariant `json:"variants"`
}

type apiVariant struct {
	Bitrate     int    `json:"bitrate"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}

type tweetsResponse struct {
	Tweets     []apiTweet `json:"tweets"`
	NextCursor string     `json:"next_cursor"`
}

type loginRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ChallengeAnswer string `json:"challenge_answer,omitempty"`
}

type loginResponse struct {
	Status    string            `json:"status"`
	Challenge string            `json:"challenge"`
	Cookies   map[string]string `json:"cookies"`
}
