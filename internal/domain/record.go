package domain

import (
	"strings"
	"time"
)

// Record is a row in the external store.
type Record struct {
	ID          string    `json:"id"`
	CreatedTime time.Time `json:"createdTime"`
	Fields      Fields    `json:"fields"`
}

// Fields maps store column names to values. A key holding Unset is treated
// as absent and stripped before sending; a key holding nil is sent as JSON
// null, which clears the column.
type Fields map[string]any

type undefined struct{}

// Unset marks a field as undefined.
var Unset = undefined{}

// Compact returns a copy of f without Unset values.
func (f Fields) Compact() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if _, skip := v.(undefined); skip {
			continue
		}
		out[k] = v
	}
	return out
}

// String returns the value of a text column, or "" when absent or not a string.
func (f Fields) String(name string) string {
	s, _ := f[name].(string)
	return s
}

// Attachments returns the attachments stored in a column. It accepts both
// typed slices and the generic JSON shape returned by the store.
func (f Fields) Attachments(name string) []Attachment {
	switch v := f[name].(type) {
	case []Attachment:
		return v
	case []any:
		out := make([]Attachment, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			a := Attachment{}
			a.ID, _ = m["id"].(string)
			a.URL, _ = m["url"].(string)
			a.Filename, _ = m["filename"].(string)
			a.Type, _ = m["type"].(string)
			if size, ok := m["size"].(float64); ok {
				a.Size = int64(size)
			}
			out = append(out, a)
		}
		return out
	}
	return nil
}

// Attachment is a file reference. URL holds either a data URI produced by
// the encoder or an http(s) URL already hosted by the store.
type Attachment struct {
	ID       string `json:"id,omitempty"       airtable:"id,omitempty"`
	URL      string `json:"url"                airtable:"url"`
	Filename string `json:"filename"           airtable:"filename"`
	Type     string `json:"type,omitempty"     airtable:"type,omitempty"`
	Size     int64  `json:"size,omitempty"     airtable:"size,omitempty"`
}

// IsDataURI reports whether the attachment carries its content inline.
func (a Attachment) IsDataURI() bool {
	return strings.HasPrefix(a.URL, "data:")
}

// IsHosted reports whether the attachment points at an http(s) URL.
func (a Attachment) IsHosted() bool {
	return strings.HasPrefix(a.URL, "https://") || strings.HasPrefix(a.URL, "http://")
}

// AttachmentRef keeps an attachment the store already holds. An update that
// lists it by id leaves the file in place.
type AttachmentRef struct {
	ID string `json:"id"`
}

// Hosted returns the hosted subset of attachments, reduced to url and filename.
func Hosted(atts []Attachment) []Attachment {
	out := make([]Attachment, 0, len(atts))
	for _, a := range atts {
		if a.IsHosted() {
			out = append(out, Attachment{URL: a.URL, Filename: a.Filename})
		}
	}
	return out
}
