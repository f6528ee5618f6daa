package ingest

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Spreadsheet exports are unreliable, so normalization never fails: a
// missing or unparseable field becomes "" or 0 and the batch keeps going.

var hoursPattern = regexp.MustCompile(`(?i)\(\s*([0-9]+(?:\.[0-9]+)?)\s*hrs?\s*\)`)

// Field returns the first candidate header that is present with a non-empty
// value. Exports alternate between "Title Case With Spaces" and camelCase
// spellings, so every caller passes both.
func (r Row) Field(candidates ...string) string {
	for _, name := range candidates {
		if value, ok := r[name]; ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// Float coerces the first matching field to a number. Parse failures,
// missing fields, NaN and infinities all collapse to 0.
func (r Row) Float(candidates ...string) float64 {
	return ParseFloat(r.Field(candidates...))
}

// ParseFloat is the shared numeric coercion: currency symbols and thousands
// separators are stripped first, anything unparseable is 0.
func ParseFloat(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ParsePercent reads a percent-suffixed string such as "92%".
func ParsePercent(raw string) float64 {
	return ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
}

// HoursFromText extracts a parenthesized hour count like "(37.50 hrs)" from
// free-text duration fields. First match wins; no match means 0 — the other
// fields are never used to guess.
func HoursFromText(raw string) float64 {
	match := hoursPattern.FindStringSubmatch(raw)
	if match == nil {
		return 0
	}
	return ParseFloat(match[1])
}
