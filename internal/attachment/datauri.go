package attachment

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

const dataPrefix = "data:"

// FormatDataURI renders data as a base64 data URI.
func FormatDataURI(contentType string, data []byte) string {
	return dataPrefix + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURI splits a base64 data URI into its content type and base64
// payload. The payload is checked to decode but returned still encoded.
func ParseDataURI(s string) (contentType, payload string, err error) {
	rest, ok := strings.CutPrefix(s, dataPrefix)
	if !ok {
		return "", "", fmt.Errorf("%w: missing data: prefix", domain.ErrMalformedAttachment)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", fmt.Errorf("%w: missing payload separator", domain.ErrMalformedAttachment)
	}
	contentType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", "", fmt.Errorf("%w: payload is not base64", domain.ErrMalformedAttachment)
	}
	if !strings.Contains(contentType, "/") {
		return "", "", fmt.Errorf("%w: invalid content type %q", domain.ErrMalformedAttachment, contentType)
	}
	if payload == "" {
		return "", "", fmt.Errorf("%w: empty payload", domain.ErrMalformedAttachment)
	}
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return "", "", fmt.Errorf("%w: decode payload: %v", domain.ErrMalformedAttachment, err)
	}
	return contentType, payload, nil
}

// Validate checks that an attachment is either a well-formed data URI or
// an absolute http(s) URL, and that it carries a filename.
func Validate(a domain.Attachment) error {
	if strings.TrimSpace(a.Filename) == "" {
		return fmt.Errorf("%w: filename is required", domain.ErrMalformedAttachment)
	}
	switch {
	case a.IsDataURI():
		_, _, err := ParseDataURI(a.URL)
		return err
	case a.IsHosted():
		u, err := url.Parse(a.URL)
		if err != nil || u.Host == "" {
			return fmt.Errorf("%w: invalid url", domain.ErrMalformedAttachment)
		}
		return nil
	default:
		return fmt.Errorf("%w: url must be a data URI or an http(s) URL", domain.ErrMalformedAttachment)
	}
}
