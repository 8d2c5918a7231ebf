package helper

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify turns free text into a [a-z0-9-] slug: strips diacritics,
// collapses "-", trims the ends, enforces maxLen (default 100), falls
// back to "item" when nothing survives.
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) { // nonspacing marks
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "item"
	}
	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = string(rs[:maxLen])
		s = strings.Trim(s, "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// EnsureUniqueSlug returns base if it is free in table.column
// (case-insensitive), otherwise base-2, base-3, ... Suffixed candidates are
// cut so the total stays within maxLen.
func EnsureUniqueSlug(
	ctx context.Context,
	db *gorm.DB,
	table string,
	column string,
	base string,
	maxLen int,
) (string, error) {
	if maxLen <= 0 {
		maxLen = 100
	}
	base = Slugify(base, maxLen)

	candidate := base
	for i := 1; i < 10000; i++ {
		var cnt int64
		if err := db.WithContext(ctx).Table(table).
			Where(fmt.Sprintf("lower(%s) = lower(?)", column), candidate).
			Count(&cnt).Error; err != nil {
			return "", err
		}
		if cnt == 0 {
			return candidate, nil
		}

		suf := fmt.Sprintf("-%d", i+1)
		cut := base
		if len(cut)+len(suf) > maxLen {
			cut = strings.Trim(cut[:maxLen-len(suf)], "-")
			if cut == "" {
				cut = "item"
			}
		}
		candidate = cut + suf
	}
	return "", fmt.Errorf("failed to generate unique slug for %q", base)
}
