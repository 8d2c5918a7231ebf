package helper

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Hello World", 0, "hello-world"},
		{"  Trimmed   Spaces  ", 0, "trimmed-spaces"},
		{"Café Résumé", 0, "cafe-resume"},
		{"a--b---c", 0, "a-b-c"},
		{"!!!", 0, "item"},
		{"", 0, "item"},
		{"School Notice 2082/05", 0, "school-notice-2082-05"},
		{"abcdefghij", 5, "abcde"},
		{"UPPER case", 0, "upper-case"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in, tc.max), "input %q", tc.in)
	}
}

type slugRow struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"column:slug;uniqueIndex"`
}

func (slugRow) TableName() string { return "slug_rows" }

func openSlugDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "slug.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&slugRow{}))
	return db
}

func TestEnsureUniqueSlug(t *testing.T) {
	db := openSlugDB(t)
	ctx := context.Background()

	got, err := EnsureUniqueSlug(ctx, db, "slug_rows", "slug", "Annual Meeting", 100)
	require.NoError(t, err)
	assert.Equal(t, "annual-meeting", got)
	require.NoError(t, db.Create(&slugRow{Slug: got}).Error)

	got, err = EnsureUniqueSlug(ctx, db, "slug_rows", "slug", "Annual Meeting", 100)
	require.NoError(t, err)
	assert.Equal(t, "annual-meeting-2", got)
	require.NoError(t, db.Create(&slugRow{Slug: got}).Error)

	got, err = EnsureUniqueSlug(ctx, db, "slug_rows", "slug", "Annual Meeting", 100)
	require.NoError(t, err)
	assert.Equal(t, "annual-meeting-3", got)
}

func TestEnsureUniqueSlug_CaseInsensitive(t *testing.T) {
	db := openSlugDB(t)
	require.NoError(t, db.Create(&slugRow{Slug: "board-notice"}).Error)

	got, err := EnsureUniqueSlug(context.Background(), db, "slug_rows", "slug", "BOARD Notice", 100)
	require.NoError(t, err)
	assert.Equal(t, "board-notice-2", got)
}

func TestEnsureUniqueSlug_SuffixRespectsMaxLen(t *testing.T) {
	db := openSlugDB(t)
	require.NoError(t, db.Create(&slugRow{Slug: "abcdefgh"}).Error)

	got, err := EnsureUniqueSlug(context.Background(), db, "slug_rows", "slug", "abcdefgh", 8)
	require.NoError(t, err)
	assert.Equal(t, "abcdef-2", got)
	assert.LessOrEqual(t, len(got), 8)
}
