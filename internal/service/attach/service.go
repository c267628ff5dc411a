package attach

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/fieldforms-backend/internal/config"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

type recordStore interface {
	Update(ctx context.Context, table, id string, fields domain.Fields) (string, error)
	UploadAttachment(ctx context.Context, recordID, field string, att domain.Attachment) error
}

// Service writes attachment descriptors onto store records.
type Service struct {
	store       recordStore
	maxParallel int
	log         *slog.Logger
}

// NewService creates a new attachment writer.
func NewService(logger *slog.Logger, store recordStore, cfg config.UploadConfig) *Service {
	return &Service{
		store:       store,
		maxParallel: cfg.MaxParallel,
		log:         logger.With("service", "attach"),
	}
}

// Options controls how existing attachments are treated.
type Options struct {
	// Replace clears each field named in the request before uploading, so
	// the record ends up with exactly the given files.
	Replace bool

	// Existing holds the record's current columns. Without Replace, hosted
	// URLs are written after the attachments listed here, so the record
	// keeps them. Leave nil for a record created in the same request.
	Existing domain.Fields
}

// Item identifies one file of a request.
type Item struct {
	Field    string `json:"field"`
	Filename string `json:"filename"`
}

// Failure is a file that could not be written.
type Failure struct {
	Item
	Error string `json:"error"`

	err error
}

// Err returns the underlying error.
func (f Failure) Err() error { return f.err }

// Report lists the outcome of every file of an Apply call.
type Report struct {
	Uploaded []Item    `json:"uploaded"`
	Failed   []Failure `json:"failed"`
}

// OK reports whether every file was written.
func (r Report) OK() bool { return len(r.Failed) == 0 }
