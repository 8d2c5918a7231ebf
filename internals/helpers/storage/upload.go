package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// Slot describes one named upload target: its folder under the upload root
// and the declared Content-Types it accepts.
type Slot struct {
	Folder    string
	MimeTypes []string
}

func (s Slot) Allows(mime string) bool {
	mime = strings.ToLower(strings.TrimSpace(mime))
	// strip parameters ("image/png; charset=...")
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	for _, m := range s.MimeTypes {
		if mime == m {
			return true
		}
	}
	return false
}

// SaveUpload validates the part's declared Content-Type against the slot
// allow-list, allocates a collision-free name "<base>.<original ext>" inside
// the slot folder and streams the bytes there. It returns the relative path
// ("folder/name") to store on the owning record.
func SaveUpload(root string, slot Slot, base string, fh *multipart.FileHeader) (string, error) {
	contentType := fh.Header.Get("Content-Type")
	if !slot.Allows(contentType) {
		return "", fmt.Errorf("%w: %s", ErrMimeNotAllowed, contentType)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("storage: open upload: %w", err)
	}
	defer src.Close()

	ext := strings.TrimPrefix(filepath.Ext(fh.Filename), ".")
	name, dst, err := Allocate(filepath.Join(root, slot.Folder), base, ext)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// best effort: don't leave a truncated file behind
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("storage: write %s: %w", name, err)
	}
	return filepath.ToSlash(filepath.Join(slot.Folder, name)), nil
}

// Remove deletes a previously stored relative path. Used by the
// compensating cleanup when a later step of a workflow fails.
func Remove(root, relPath string) error {
	if strings.TrimSpace(relPath) == "" {
		return nil
	}
	return os.Remove(filepath.Join(root, filepath.FromSlash(relPath)))
}
