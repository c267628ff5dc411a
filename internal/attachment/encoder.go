package attachment

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"
	"time"

	// Registered image decoders.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/fieldforms-backend/internal/config"
	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

// defaultMaxPixels applies when the configured pixel cap is not positive.
const defaultMaxPixels = 40_000_000

const (
	mimePDF    = "application/pdf"
	mimeJPEG   = "image/jpeg"
	mimeBinary = "application/octet-stream"
)

// decodable lists the image types a registered decoder can read.
var decodable = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
	"image/tiff": true,
}

// Blob is a raw file received from a client.
type Blob struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Limits bounds the input size and output geometry for one device class.
type Limits struct {
	MaxBytes int64
	MaxEdge  int
	Quality  int
}

// Result is the outcome of encoding one blob in a batch.
type Result struct {
	Attachment domain.Attachment
	Err        error
}

// Encoder turns uploaded files into attachment descriptors. PDFs pass through
// unchanged; images are downscaled and re-encoded as JPEG.
type Encoder struct {
	desktop     Limits
	mobile      Limits
	timeout     time.Duration
	maxParallel int
	maxPixels   int64
	decode      func(r io.Reader) (image.Image, string, error)
	log         *slog.Logger
}

// NewEncoder creates an Encoder with per-device limits from cfg.
func NewEncoder(cfg config.UploadConfig, logger *slog.Logger) *Encoder {
	return &Encoder{
		desktop: Limits{
			MaxBytes: cfg.DesktopMaxBytes,
			MaxEdge:  cfg.DesktopMaxEdge,
			Quality:  cfg.DesktopQuality,
		},
		mobile: Limits{
			MaxBytes: cfg.MobileMaxBytes,
			MaxEdge:  cfg.MobileMaxEdge,
			Quality:  cfg.MobileQuality,
		},
		timeout:     cfg.EncodeTimeout,
		maxParallel: cfg.MaxParallel,
		maxPixels:   cmp.Or(max(cfg.MaxPixels, 0), defaultMaxPixels),
		decode:      image.Decode,
		log:         logger.With("service", "attachment"),
	}
}

// Limits returns the limits applied to the given device class.
func (e *Encoder) Limits(device domain.Device) Limits {
	if device.IsMobile() {
		return e.mobile
	}
	return e.desktop
}

// Encode converts one blob into an attachment descriptor. All failures are
// returned as *domain.EncodingError before any output is produced.
func (e *Encoder) Encode(ctx context.Context, blob Blob, device domain.Device) (domain.Attachment, error) {
	limits := e.Limits(device)

	if int64(len(blob.Data)) > limits.MaxBytes {
		e.log.InfoContext(ctx, "attachment rejected: too large",
			slog.String("filename", blob.Filename),
			slog.Int("bytes", len(blob.Data)),
			slog.Int64("limit", limits.MaxBytes),
			slog.String("device", device.String()),
		)
		return domain.Attachment{}, &domain.EncodingError{
			Filename: blob.Filename,
			Err:      fmt.Errorf("%w: %d bytes exceeds %d MB limit", domain.ErrFileTooLarge, len(blob.Data), limits.MaxBytes>>20),
		}
	}

	contentType := detectContentType(blob)

	switch {
	case contentType == mimePDF:
		return domain.Attachment{
			URL:      FormatDataURI(mimePDF, blob.Data),
			Filename: blob.Filename,
		}, nil

	case strings.HasPrefix(contentType, "image/"):
		if !decodable[contentType] {
			return domain.Attachment{}, &domain.EncodingError{
				Filename: blob.Filename,
				Err:      fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, contentType),
			}
		}
		if err := e.checkPixels(blob.Data); err != nil {
			e.log.InfoContext(ctx, "attachment rejected: too many pixels",
				slog.String("filename", blob.Filename),
				slog.String("error", err.Error()),
				slog.String("device", device.String()),
			)
			return domain.Attachment{}, &domain.EncodingError{Filename: blob.Filename, Err: err}
		}
		out, err := e.compressWithTimeout(ctx, blob.Data, limits)
		if err != nil {
			e.log.WarnContext(ctx, "image encoding failed",
				slog.String("filename", blob.Filename),
				slog.String("error", err.Error()),
			)
			return domain.Attachment{}, &domain.EncodingError{Filename: blob.Filename, Err: err}
		}
		e.log.DebugContext(ctx, "image encoded",
			slog.String("filename", blob.Filename),
			slog.Int("in_bytes", len(blob.Data)),
			slog.Int("out_bytes", len(out)),
			slog.String("device", device.String()),
		)
		return domain.Attachment{
			URL:      FormatDataURI(mimeJPEG, out),
			Filename: jpegName(blob.Filename),
		}, nil

	default:
		return domain.Attachment{}, &domain.EncodingError{
			Filename: blob.Filename,
			Err:      fmt.Errorf("%w: %s", domain.ErrUnsupportedMedia, contentType),
		}
	}
}

// EncodeAll encodes a batch. A failing file does not stop its siblings.
// Mobile batches run one file at a time; desktop batches run in parallel.
// Results keep the order of blobs.
func (e *Encoder) EncodeAll(ctx context.Context, blobs []Blob, device domain.Device) []Result {
	results := make([]Result, len(blobs))

	var g errgroup.Group
	g.SetLimit(e.parallelism(device))

	for i, blob := range blobs {
		g.Go(func() error {
			att, err := e.Encode(ctx, blob, device)
			results[i] = Result{Attachment: att, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (e *Encoder) parallelism(device domain.Device) int {
	if device.IsMobile() {
		return 1
	}
	if e.maxParallel > 0 {
		return e.maxParallel
	}
	return -1
}

// checkPixels reads only the image header, so a small file that expands to a
// huge bitmap is refused before any pixel buffer is allocated.
func (e *Encoder) checkPixels(data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCorruptImage, err)
	}
	if px := int64(cfg.Width) * int64(cfg.Height); px > e.maxPixels {
		return fmt.Errorf("%w: %dx%d exceeds %d pixel limit", domain.ErrFileTooLarge, cfg.Width, cfg.Height, e.maxPixels)
	}
	return nil
}

func (e *Encoder) compressWithTimeout(ctx context.Context, data []byte, limits Limits) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)

	go func() {
		out, err := e.compress(data, limits)
		done <- result{data: out, err: err}
	}()

	select {
	case r := <-done:
		return r.data, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %v", domain.ErrEncodeTimeout, e.timeout)
		}
		return nil, ctx.Err()
	}
}

func (e *Encoder) compress(data []byte, limits Limits) ([]byte, error) {
	src, _, err := e.decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptImage, err)
	}

	bounds := src.Bounds()
	w, h := fitBox(bounds.Dx(), bounds.Dy(), limits.MaxEdge)
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: empty image", domain.ErrCorruptImage)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// JPEG has no alpha channel; transparent pixels become white.
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: limits.Quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// fitBox scales w x h to fit inside a maxEdge square, preserving aspect
// ratio. Images already inside the box keep their size.
func fitBox(w, h, maxEdge int) (int, int) {
	if w <= maxEdge && h <= maxEdge {
		return w, h
	}
	if w >= h {
		nh := (h*maxEdge + w/2) / w
		return maxEdge, max(nh, 1)
	}
	nw := (w*maxEdge + h/2) / h
	return max(nw, 1), maxEdge
}

func detectContentType(blob Blob) string {
	ct := blob.ContentType
	if mt, _, err := mime.ParseMediaType(ct); err == nil {
		ct = mt
	}
	ct = strings.ToLower(strings.TrimSpace(ct))
	if ct == "" || ct == mimeBinary {
		ct = mimetype.Detect(blob.Data).String()
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			ct = mt
		}
	}
	if ct == "image/jpg" || ct == "image/pjpeg" {
		ct = mimeJPEG
	}
	return ct
}

func jpegName(filename string) string {
	if strings.TrimSpace(filename) == "" {
		return "image.jpg"
	}
	return strings.TrimSuffix(filename, path.Ext(filename)) + ".jpg"
}
