package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// gallery photos are stored as webp, resized down to this width
const maxGalleryWidth = 1600

// SaveImageAsWebp decodes an uploaded image, shrinks it to at most
// maxGalleryWidth wide and stores it as "<base>.webp" in the slot folder.
// MIME validation is the same as SaveUpload.
func SaveImageAsWebp(root string, slot Slot, base string, fh *multipart.FileHeader) (string, error) {
	contentType := fh.Header.Get("Content-Type")
	if !slot.Allows(contentType) {
		return "", fmt.Errorf("%w: %s", ErrMimeNotAllowed, contentType)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("storage: open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("storage: decode image: %w", err)
	}
	if img.Bounds().Dx() > maxGalleryWidth {
		img = imaging.Resize(img, maxGalleryWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("storage: encode webp: %w", err)
	}

	name, dst, err := Allocate(filepath.Join(root, slot.Folder), base, "webp")
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.Write(buf.Bytes()); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", name, err)
	}
	return filepath.ToSlash(filepath.Join(slot.Folder, name)), nil
}
