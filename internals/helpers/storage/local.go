// Local upload store. Relative paths stored on records are always
// "<folder>/<filename>" under the configured upload root.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrMimeNotAllowed marks a rejected upload (declared Content-Type outside
// the slot allow-list). Everything else out of this package is a storage
// failure.
var ErrMimeNotAllowed = errors.New("file type not allowed")

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeBase strips anything outside [a-zA-Z0-9.-_] from a base name.
func SanitizeBase(base string) string {
	safe := reUnsafe.ReplaceAllString(strings.TrimSpace(base), "_")
	safe = strings.Trim(safe, "._")
	if safe == "" {
		safe = "file"
	}
	return safe
}

// EnsureDir creates dir (and parents) when absent.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir %s: %w", dir, err)
	}
	return nil
}

// Allocate opens a file in dir that did not exist before the call, trying
// "base.ext" first and then "base-1.ext", "base-2.ext", ... The open uses
// O_CREATE|O_EXCL so allocation and creation are a single atomic step even
// with concurrent allocators on the same directory. Callers must close the
// returned file.
func Allocate(dir, base, ext string) (string, *os.File, error) {
	if err := EnsureDir(dir); err != nil {
		return "", nil, err
	}
	base = SanitizeBase(base)
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	name := base
	if ext != "" {
		name = base + "." + ext
	}
	for i := 0; ; i++ {
		if i > 0 {
			name = fmt.Sprintf("%s-%d", base, i)
			if ext != "" {
				name += "." + ext
			}
		}
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return name, f, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", nil, fmt.Errorf("storage: create %s: %w", name, err)
		}
		if i >= 10000 {
			return "", nil, fmt.Errorf("storage: no free name for %s in %s", base, dir)
		}
	}
}
