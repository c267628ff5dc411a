package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"slices"

	"github.com/heartmarshall/fieldforms-backend/internal/attachment"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
	"github.com/heartmarshall/fieldforms-backend/pkg/ctxutil"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 32 << 20

// fileEncoder defines the minimal interface needed by AttachmentHandler.
type fileEncoder interface {
	EncodeAll(ctx context.Context, blobs []attachment.Blob, device domain.Device) []attachment.Result
}

// AttachmentHandler turns uploaded files into attachment descriptors that
// the form endpoints accept.
type AttachmentHandler struct {
	enc fileEncoder
	log *slog.Logger
}

// NewAttachmentHandler creates an AttachmentHandler.
func NewAttachmentHandler(enc fileEncoder, logger *slog.Logger) *AttachmentHandler {
	return &AttachmentHandler{enc: enc, log: logger.With("handler", "attachment")}
}

type encodedFile struct {
	Field string `json:"field"`
	domain.Attachment
}

type failedFile struct {
	Field    string `json:"field"`
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

type encodeResponse struct {
	Attachments []encodedFile `json:"attachments"`
	Failed      []failedFile  `json:"failed"`
}

// Encode handles POST /api/attachments. Every multipart file part is
// encoded under the device class of the caller. When no file could be
// encoded the first failure decides the status.
func (h *AttachmentHandler) Encode(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			handleError(h.log, w, r, err)
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("body", "expected multipart/form-data"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	fields, blobs, err := readParts(r.MultipartForm)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if len(blobs) == 0 {
		handleError(h.log, w, r, domain.NewValidationError("files", "at least one file is required"))
		return
	}

	device := requestDevice(r)
	results := h.enc.EncodeAll(r.Context(), blobs, device)

	resp := encodeResponse{Attachments: []encodedFile{}, Failed: []failedFile{}}
	var firstErr error
	for i, res := range results {
		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			resp.Failed = append(resp.Failed, failedFile{Field: fields[i], Filename: blobs[i].Filename, Error: res.Err.Error()})
			continue
		}
		resp.Attachments = append(resp.Attachments, encodedFile{Field: fields[i], Attachment: res.Attachment})
	}

	if len(resp.Attachments) == 0 {
		handleError(h.log, w, r, firstErr)
		return
	}
	if len(resp.Failed) > 0 {
		h.log.WarnContext(r.Context(), "some attachments failed to encode",
			slog.Int("encoded", len(resp.Attachments)),
			slog.Int("failed", len(resp.Failed)),
			slog.String("device", device.String()),
		)
	}
	writeJSON(w, http.StatusOK, resp)
}

// readParts loads every file part in field-name order. fields[i] is the
// form field blobs[i] was sent under.
func readParts(form *multipart.Form) (fields []string, blobs []attachment.Blob, err error) {
	names := make([]string, 0, len(form.File))
	for name := range form.File {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		for _, fh := range form.File[name] {
			data, err := readPart(fh)
			if err != nil {
				return nil, nil, err
			}
			fields = append(fields, name)
			blobs = append(blobs, attachment.Blob{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}
	return fields, blobs, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// requestDevice returns the device class the Device middleware stored, or
// classifies the User-Agent directly when the middleware did not run.
func requestDevice(r *http.Request) domain.Device {
	if d, ok := ctxutil.DeviceFromCtx(r.Context()); ok {
		if device := domain.Device(d); device.IsValid() {
			return device
		}
	}
	return attachment.DetectDevice(r.UserAgent())
}
