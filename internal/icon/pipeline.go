// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package icon implements the category icon pipeline: an uploaded
// raster icon is stored as-is, traced into an SVG approximation, the
// SVG is stored next to it, and all three derived values (inline
// markup, SVG URL, PNG URL) are written to the category in one update.
//
// The pipeline is strictly sequential with no retries and no rollback.
// A failure after the raster upload leaves the raster object in storage
// unreferenced by the category; a later successful run writes a fresh
// timestamped pair and the category points at that. Old pairs are never
// deleted — storage growth across re-uploads is accepted.
package icon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // register WebP decoder

	"kursportal/internal/trace"
)

// MaxIconSize is the upload size cap for icon rasters (10 MiB).
const MaxIconSize = 10 << 20

// Validation errors, surfaced to the admin as inline notifications.
var (
	ErrFileTooLarge = errors.New("file too large: max 10 MB")
	ErrNotImage     = errors.New("only image files are allowed")
)

// ObjectStore is the slice of the storage client the pipeline needs.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	FileURL(key string) string
}

// CategoryIcons persists derived icon references on a category record.
type CategoryIcons interface {
	SetIcon(id uuid.UUID, svgMarkup, svgURL, pngURL string) error
}

// Tracer converts a decoded raster into SVG markup.
type Tracer func(img image.Image, opts trace.Options) (string, error)

// Upload describes the incoming file.
type Upload struct {
	ContentType string
	Size        int64
	Data        io.Reader
}

// Result reports where the derived assets ended up.
type Result struct {
	PNGPath string
	PNGURL  string
	SVGPath string
	SVGURL  string
	SVG     string
}

// Pipeline converts and stores category icons.
type Pipeline struct {
	storage    ObjectStore
	categories CategoryIcons
	tracer     Tracer
	now        func() time.Time
}

// NewPipeline creates a pipeline using the real tracer and clock.
func NewPipeline(storage ObjectStore, categories CategoryIcons) *Pipeline {
	return &Pipeline{
		storage:    storage,
		categories: categories,
		tracer:     trace.Trace,
		now:        time.Now,
	}
}

// ConvertAndStore runs the full pipeline for an existing category.
// Validation happens before any storage or compute work; any later
// failure aborts the remaining steps without compensation.
func (p *Pipeline) ConvertAndStore(ctx context.Context, categoryID uuid.UUID, slug string, up Upload) (*Result, error) {
	// Step 1: validate before touching storage.
	if !strings.HasPrefix(up.ContentType, "image/") {
		return nil, ErrNotImage
	}
	if up.Size > MaxIconSize {
		return nil, ErrFileTooLarge
	}

	// The declared size is client-supplied; cap the actual read too.
	raw, err := io.ReadAll(io.LimitReader(up.Data, MaxIconSize+1))
	if err != nil {
		return nil, fmt.Errorf("read icon upload: %w", err)
	}
	if int64(len(raw)) > MaxIconSize {
		return nil, ErrFileTooLarge
	}

	ts := p.now().UnixMilli()
	res := &Result{
		PNGPath: fmt.Sprintf("icons/categories/%s/icon-%d.png", slug, ts),
		SVGPath: fmt.Sprintf("icons/categories/%s/icon-%d.svg", slug, ts),
	}

	// Step 2+3: store the original raster and resolve its URL.
	if err := p.storage.Upload(ctx, res.PNGPath, up.ContentType, bytes.NewReader(raw), int64(len(raw))); err != nil {
		return nil, fmt.Errorf("upload raster: %w", err)
	}
	res.PNGURL = p.storage.FileURL(res.PNGPath)

	// Step 4: trace the raster with the fixed icon profile.
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}
	svg, err := p.tracer(img, trace.IconProfile())
	if err != nil {
		return nil, fmt.Errorf("trace icon: %w", err)
	}
	res.SVG = svg

	// Step 5+6: store the vector document and resolve its URL.
	if err := p.storage.Upload(ctx, res.SVGPath, "image/svg+xml", strings.NewReader(svg), int64(len(svg))); err != nil {
		return nil, fmt.Errorf("upload vector: %w", err)
	}
	res.SVGURL = p.storage.FileURL(res.SVGPath)

	// Step 7: persist all three derived values in a single update.
	if err := p.categories.SetIcon(categoryID, res.SVG, res.SVGURL, res.PNGURL); err != nil {
		return nil, fmt.Errorf("update category icon: %w", err)
	}

	return res, nil
}
