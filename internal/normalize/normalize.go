// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize standardizes contact fields synthesized or imported by
// the enrichment stages.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// phoneCleanRe strips every character that is neither a digit nor a plus.
var phoneCleanRe = regexp.MustCompile(`[^\d+]`)

// frenchPhoneRe matches the normalized French format: five space-separated
// two-digit groups starting 01-09.
var frenchPhoneRe = regexp.MustCompile(`^0[1-9]\s\d{2}\s\d{2}\s\d{2}\s\d{2}$`)

// Phone normalizes a raw phone string. Non-digit, non-plus characters are
// stripped, a leading "033" or "+33" prefix is rewritten to a single leading
// "0", and strings whose digit count falls outside [9,13] are rejected. A
// 10-digit number starting with "0" is reformatted as five space-separated
// two-digit groups; anything else valid is returned as cleaned. The
// normalization is idempotent on already-normalized 10-digit numbers once
// their spaces are stripped again.
func Phone(raw string) (string, bool) {
	clean := phoneCleanRe.ReplaceAllString(strings.TrimSpace(raw), "")

	if strings.HasPrefix(clean, "033") {
		clean = "0" + clean[3:]
	} else if strings.HasPrefix(clean, "+33") {
		clean = "0" + clean[3:]
	}

	if len(clean) < 9 || len(clean) > 13 {
		return "", false
	}

	if len(clean) == 10 && strings.HasPrefix(clean, "0") {
		return clean[0:2] + " " + clean[2:4] + " " + clean[4:6] + " " + clean[6:8] + " " + clean[8:10], true
	}
	return clean, true
}

// ValidPhone reports whether phone is in the normalized French format.
func ValidPhone(phone string) bool {
	return frenchPhoneRe.MatchString(phone)
}

// foldTransformer decomposes characters and drops combining marks, turning
// "é" into "e" and "ç" into "c".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s, strips accents, and removes everything outside
// [a-z0-9]. Used to build email local parts from candidate names.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
