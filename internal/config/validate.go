package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store.Token) == "" {
		return fmt.Errorf("store.token is required")
	}
	if strings.TrimSpace(c.Store.BaseID) == "" {
		return fmt.Errorf("store.base_id is required")
	}
	for name, raw := range map[string]string{
		"store.api_url":          c.Store.APIURL,
		"store.content_url":      c.Store.ContentURL,
		"links.public_base_url":  c.Links.PublicBaseURL,
		"links.booking_base_url": c.Links.BookingBaseURL,
	} {
		if err := validateURL(raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if err := c.Tables.validate(); err != nil {
		return fmt.Errorf("tables: %w", err)
	}
	if err := c.Retry.validate(); err != nil {
		return fmt.Errorf("retry: %w", err)
	}
	if err := c.Upload.validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	if err := c.Booking.validate(); err != nil {
		return fmt.Errorf("booking: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.Security.HashPasswords && (c.Security.BcryptCost < bcrypt.MinCost || c.Security.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("security.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Security.BcryptCost)
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

func (t TablesConfig) validate() error {
	for name, v := range map[string]string{
		"clients":  t.Clients,
		"repairs":  t.Repairs,
		"support":  t.Support,
		"bookings": t.Bookings,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s table name is required", name)
		}
	}
	return nil
}

func (r RetryConfig) validate() error {
	if r.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", r.MaxAttempts)
	}
	if r.RateLimitBackoff < 0 || r.TransientBackoff < 0 {
		return fmt.Errorf("backoff durations must be >= 0")
	}
	return nil
}

func (u UploadConfig) validate() error {
	if u.EncodeTimeout <= 0 {
		return fmt.Errorf("encode_timeout must be > 0 (got %v)", u.EncodeTimeout)
	}
	if u.DesktopMaxBytes <= 0 || u.MobileMaxBytes <= 0 {
		return fmt.Errorf("max bytes must be > 0")
	}
	if u.DesktopMaxEdge <= 0 || u.MobileMaxEdge <= 0 {
		return fmt.Errorf("max edge must be > 0")
	}
	for _, q := range []int{u.DesktopQuality, u.MobileQuality} {
		if q < 1 || q > 100 {
			return fmt.Errorf("jpeg quality must be in [1, 100] (got %d)", q)
		}
	}
	if u.MaxParallel < 0 {
		return fmt.Errorf("max_parallel must be >= 0 (got %d)", u.MaxParallel)
	}
	if u.MaxRequestBytes < u.DesktopMaxBytes {
		return fmt.Errorf("max_request_bytes must be >= desktop_max_bytes")
	}
	if u.MaxPixels <= 0 {
		return fmt.Errorf("max_pixels must be > 0 (got %d)", u.MaxPixels)
	}
	return nil
}

func (r RateLimitConfig) validate() error {
	if r.PerMinute < 0 {
		return fmt.Errorf("per_minute must be >= 0 (got %d)", r.PerMinute)
	}
	if r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 (got %v)", r.CleanupInterval)
	}
	return nil
}

func (b *BookingConfig) validate() error {
	if _, err := time.LoadLocation(b.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", b.Timezone, err)
	}
	if b.SlotMinutes <= 0 || b.SlotMinutes > 24*60 {
		return fmt.Errorf("slot_minutes must be in (0, 1440] (got %d)", b.SlotMinutes)
	}

	windows, err := ParseWindows(b.WindowsRaw)
	if err != nil {
		return fmt.Errorf("windows: %w", err)
	}
	if len(windows) == 0 {
		return fmt.Errorf("windows: at least one window is required")
	}
	b.Windows = windows

	return nil
}

// ParseWindows parses a comma-separated list of "HH:MM-HH:MM" ranges
// (e.g. "08:00-10:00,12:00-14:00"). An empty string returns a nil slice.
func ParseWindows(raw string) ([]Window, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	windows := make([]Window, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		from, to, ok := strings.Cut(p, "-")
		if !ok {
			return nil, fmt.Errorf("invalid window %q: want HH:MM-HH:MM", p)
		}
		start, err := parseClock(from)
		if err != nil {
			return nil, fmt.Errorf("invalid window %q: %w", p, err)
		}
		end, err := parseClock(to)
		if err != nil {
			return nil, fmt.Errorf("invalid window %q: %w", p, err)
		}
		if end <= start {
			return nil, fmt.Errorf("invalid window %q: end must be after start", p)
		}
		windows = append(windows, Window{Start: start, End: end})
	}

	return windows, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
