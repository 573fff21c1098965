package helper

import (
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

// Slugify turns free text into a [a-z0-9-] slug: strip diacritics,
// collapse "-", trim the ends, enforce maxLen (default 100), fallback "item".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip diacritics (é → e)
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
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
		s = strings.Trim(string(rs[:maxLen]), "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// SlugTaken reports whether a slug already exists (case-insensitive) in
// table/column. excludeID > 0 skips that row so updates don't collide with
// themselves. A taken slug is a conflict for the caller — slugs are never
// auto-suffixed here.
func SlugTaken(db *gorm.DB, table, column, slug string, excludeID uint) (bool, error) {
	q := db.Table(table).Where(fmt.Sprintf("LOWER(%s) = LOWER(?)", column), slug)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
