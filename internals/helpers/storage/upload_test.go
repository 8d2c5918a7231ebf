package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

var imageSlot = Slot{Folder: "vouchers", MimeTypes: []string{"image/jpeg", "image/jpg", "image/png"}}

func TestSaveUpload_WritesFileAndReturnsRelPath(t *testing.T) {
	root := t.TempDir()
	fh := fileHeader(t, "payment.png", "image/png", []byte("png-bytes"))

	rel, err := SaveUpload(root, imageSlot, "rec-1", fh)
	require.NoError(t, err)
	assert.Equal(t, "vouchers/rec-1.png", rel)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSaveUpload_RejectsDisallowedMime(t *testing.T) {
	root := t.TempDir()
	fh := fileHeader(t, "payment.zip", "application/zip", []byte("zip-bytes"))

	_, err := SaveUpload(root, imageSlot, "rec-1", fh)
	require.ErrorIs(t, err, ErrMimeNotAllowed)

	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "nothing may be written for a rejected upload")
}

func TestSaveUpload_MimeParamsAndCaseIgnored(t *testing.T) {
	root := t.TempDir()
	fh := fileHeader(t, "payment.png", "IMAGE/PNG; charset=binary", []byte("x"))

	rel, err := SaveUpload(root, imageSlot, "rec-2", fh)
	require.NoError(t, err)
	assert.Equal(t, "vouchers/rec-2.png", rel)
}

func TestSaveUpload_SameBaseGetsSuffix(t *testing.T) {
	root := t.TempDir()

	rel1, err := SaveUpload(root, imageSlot, "rec-3", fileHeader(t, "a.png", "image/png", []byte("a")))
	require.NoError(t, err)
	rel2, err := SaveUpload(root, imageSlot, "rec-3", fileHeader(t, "b.png", "image/png", []byte("b")))
	require.NoError(t, err)

	assert.Equal(t, "vouchers/rec-3.png", rel1)
	assert.Equal(t, "vouchers/rec-3-1.png", rel2)
}

func TestSaveImageAsWebp(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	root := t.TempDir()
	slot := Slot{Folder: "gallery", MimeTypes: []string{"image/png"}}
	rel, err := SaveImageAsWebp(root, slot, "photo-1", fileHeader(t, "p.png", "image/png", buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "gallery/photo-1.webp", rel)

	info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRemove(t *testing.T) {
	root := t.TempDir()
	rel, err := SaveUpload(root, imageSlot, "rec-9", fileHeader(t, "v.png", "image/png", []byte("v")))
	require.NoError(t, err)

	require.NoError(t, Remove(root, rel))
	_, statErr := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(statErr))

	assert.NoError(t, Remove(root, ""))
}
