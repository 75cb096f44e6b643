package jsonfile

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
)

// CookieStore caches the account session cookies between restarts.
type CookieStore struct {
	path string
}

// NewCookieStore points at the cookie cache at dir/name without reading
// it; the session may legitimately not exist yet.
func NewCookieStore(dir, name string) *CookieStore {
	return &CookieStore{path: join(dir, name)}
}

// Load returns the cached cookies, or ok=false when no cache exists.
func (s *CookieStore) Load() (map[string]string, bool, error) {
	cookies := make(map[string]string)
	ok, err := load(s.path, &cookies)
	if err != nil {
		return nil, false, err
	}
	return cookies, ok, nil
}

// Save overwrites the cookie cache.
func (s *CookieStore) Save(cookies map[string]string) error {
	return save(s.path, cookies)
}

// Exists reports whether a cookie cache file is present.
func (s *CookieStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Wipe removes the cookie cache file if present.
func (s *CookieStore) Wipe() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// DecodeCookies decodes a base64-encoded JSON cookie map, the format
// used to pass a pre-encoded session through configuration.
func DecodeCookies(encoded string) (map[string]string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode cookies: %w", err)
	}

	cookies := make(map[string]string)
	if err := json.Unmarshal(raw, &cookies); err != nil {
		return nil, fmt.Errorf("parse cookies: %w", err)
	}
	return cookies, nil
}

// EncodeCookies is the inverse of DecodeCookies; the encoded value is
// logged once after a fresh login so it can be captured into config.
func EncodeCookies(cookies map[string]string) (string, error) {
	raw, err := json.Marshal(cookies)
	if err != nil {
		return "", fmt.Errorf("marshal cookies: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
