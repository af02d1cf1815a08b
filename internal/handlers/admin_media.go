package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder

	"kursportal/internal/slug"
)

const (
	// maxUploadSize is the maximum allowed file upload size (10 MiB).
	maxUploadSize = 10 << 20

	// maxImageWidth is the widest raster stored; wider uploads are
	// downscaled before upload.
	maxImageWidth = 1920

	// imageQuality is the JPEG quality for downscaled images.
	imageQuality = 85

	// maxImagePixels caps the number of pixels to prevent memory bombs.
	// 10000x10000 = 100 million pixels, ~400 MB decoded in RGBA.
	maxImagePixels = 100_000_000
)

// allowedImageTypes defines MIME types accepted for upload.
var allowedImageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// scalableTypes are raster types that support downscaling. GIF is
// excluded to preserve animation; SVG is vector.
var scalableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// folderPattern restricts upload folders to lowercase path segments
// (letters, digits, dashes), e.g. "site/home-hero/3f2a...".
var folderPattern = regexp.MustCompile(`^[a-z0-9-]+(/[a-z0-9-]+)*$`)

// MediaUpload handles multipart image upload to object storage. It backs
// the image URL fields on courses, runs, hero slides, instructors, and
// team members: the response URL is pasted into the form field. Keys
// follow {folder}/{prefix}-{ts}.{ext}.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeMediaError(w, "Objektlagring er ikke konfigurert.", http.StatusServiceUnavailable)
		return
	}

	// Limit request body to maxUploadSize + some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeMediaError(w, "Filen er for stor. Maks størrelse er 10 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMediaError(w, "Ingen fil mottatt.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeMediaError(w, "Filen er for stor. Maks størrelse er 10 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeMediaError(w, "Kunne ikke lese filen.", http.StatusInternalServerError)
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// SVG detection: DetectContentType returns text/xml or application/xml for SVGs.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedImageTypes[contentType] {
		writeMediaError(w, "Kun bildefiler kan lastes opp.", http.StatusBadRequest)
		return
	}

	// Seek back to start after sniffing.
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeMediaError(w, "Kunne ikke behandle filen.", http.StatusInternalServerError)
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeMediaError(w, "Kunne ikke lese filen.", http.StatusInternalServerError)
		return
	}

	// Downscale oversized rasters so hero and photo uploads don't ship
	// multi-megabyte originals to every visitor.
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	if scalableTypes[contentType] {
		scaled, err := scaleDownImage(fileBytes, maxImageWidth)
		if err != nil {
			writeMediaError(w, "Ugyldig bildefil.", http.StatusBadRequest)
			return
		}
		if scaled != nil {
			fileBytes = scaled
			contentType = "image/jpeg"
			ext = ".jpg"
		}
	}

	folder := r.FormValue("folder")
	if folder == "" || !folderPattern.MatchString(folder) {
		folder = "media"
	}
	prefix := slug.Generate(r.FormValue("prefix"))
	if prefix == "" {
		prefix = "upload"
	}
	key := fmt.Sprintf("%s/%s-%d%s", folder, prefix, time.Now().UnixMilli(), ext)

	ctx := r.Context()
	if err := a.storageClient.Upload(ctx, key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", key)
		writeMediaError(w, "Opplasting feilet.", http.StatusInternalServerError)
		return
	}

	slog.Info("media uploaded", "key", key, "type", contentType, "size", len(fileBytes))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"url":  a.storageClient.FileURL(key),
		"key":  key,
		"type": contentType,
		"size": len(fileBytes),
	})
}

// scaleDownImage resizes a raster wider than maxWidth to maxWidth,
// preserving aspect ratio, and re-encodes it as JPEG. Returns nil when
// the image is already narrow enough.
func scaleDownImage(data []byte, maxWidth int) ([]byte, error) {
	// Decode config first to check dimensions without a full decode.
	imgCfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Check for image bombs.
	if int64(imgCfg.Width)*int64(imgCfg.Height) > maxImagePixels {
		return nil, fmt.Errorf("image too large: %dx%d exceeds %d pixels", imgCfg.Width, imgCfg.Height, maxImagePixels)
	}

	if imgCfg.Width <= maxWidth {
		return nil, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	ratio := float64(maxWidth) / float64(bounds.Dx())
	newHeight := int(float64(bounds.Dy()) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: imageQuality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}

// writeMediaError writes a JSON error response for media operations.
func writeMediaError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
