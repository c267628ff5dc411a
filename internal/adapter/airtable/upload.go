package airtable

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/fieldforms-backend/internal/attachment"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

type uploadBody struct {
	ContentType string `json:"contentType"`
	File        string `json:"file"`
	Filename    string `json:"filename"`
}

// UploadAttachment appends one file to an attachment column of a record.
// Only data URI attachments are accepted; hosted URLs are written inline
// through Update instead.
func (c *Client) UploadAttachment(ctx context.Context, recordID, field string, att domain.Attachment) error {
	if att.IsHosted() {
		return fmt.Errorf("upload %q: %w: hosted attachments are set by update", field, domain.ErrMalformedAttachment)
	}
	if err := attachment.Validate(att); err != nil {
		return fmt.Errorf("upload %q: %w", field, err)
	}
	contentType, payload, err := attachment.ParseDataURI(att.URL)
	if err != nil {
		return fmt.Errorf("upload %q: %w", field, err)
	}

	err = c.do(ctx, call{
		table:  field,
		op:     "upload",
		method: http.MethodPost,
		url:    c.uploadURL(recordID, field),
		body: uploadBody{
			ContentType: contentType,
			File:        payload,
			Filename:    att.Filename,
		},
		retryTransient: true,
	}, nil)
	if err != nil {
		return err
	}

	c.log.InfoContext(ctx, "attachment uploaded",
		"record_id", recordID,
		"field", field,
		"filename", att.Filename,
		"content_type", contentType,
	)
	return nil
}
