package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"aidjourney_backend/internals/configs"
)

const maxImageDim = 1920

// SaveImage decodes an uploaded image, downscales it when oversized,
// re-encodes to webp and writes it under MEDIA_ROOT/<folder>/. Returns the
// stored path relative to the media root ("banners/<uuid>.webp").
func SaveImage(folder string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > maxImageDim || b.Dy() > maxImageDim {
		img = imaging.Fit(img, maxImageDim, maxImageDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	rel := filepath.Join(folder, uuid.New().String()+".webp")
	abs := filepath.Join(configs.MediaRoot, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// PublicImageURL resolves a stored path to an absolute, fetchable URL.
// Empty in → empty out; never leaks a bare storage path. Values that are
// already absolute pass through.
func PublicImageURL(stored string) string {
	if stored == "" {
		return ""
	}
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored
	}
	return strings.TrimRight(configs.MediaBaseURL, "/") + "/" + strings.TrimLeft(stored, "/")
}

// RemoveImage deletes a stored media file; missing files are not an error.
func RemoveImage(stored string) {
	if stored == "" || strings.HasPrefix(stored, "http") {
		return
	}
	_ = os.Remove(filepath.Join(configs.MediaRoot, filepath.FromSlash(stored)))
}
