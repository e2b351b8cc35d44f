package service

import (
	"strings"
	"unicode/utf8"
)

// Display limits for compressed text.
const (
	GuidanceMaxLength = 180
	ActionMaxLength   = 140
)

// ellipsis marks text cut by Compress.
const ellipsis = "…"

// Normalize lowercases text, collapses whitespace runs to a single space and
// trims both ends.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Compress normalizes text and, when it is longer than maxLength characters,
// cuts it to exactly maxLength characters followed by an ellipsis.
func Compress(text string, maxLength int) string {
	clean := Normalize(text)
	if utf8.RuneCountInString(clean) <= maxLength {
		return clean
	}
	if maxLength < 0 {
		maxLength = 0
	}
	runes := []rune(clean)
	return string(runes[:maxLength]) + ellipsis
}
