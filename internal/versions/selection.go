package versions

import (
	"regexp"
	"strings"
)

var commaRuns = regexp.MustCompile(`,,+`)

// Sanitize collapses runs of two or more commas into one.
func Sanitize(value string) string {
	return commaRuns.ReplaceAllString(value, ",")
}

// ApplySelection returns the field value after picking chosen, and whether
// the dropdown should close. Picking the key the value already ends with is
// a no-op in multi mode.
func ApplySelection(current, chosen string, multi bool) (string, bool) {
	if !multi {
		return chosen, true
	}
	if strings.TrimSpace(current) == "" {
		return Sanitize(chosen), true
	}
	if strings.HasSuffix(strings.ToLower(current), strings.ToLower(chosen)) {
		return current, true
	}
	return Sanitize(current + "," + chosen), true
}

// ParseSelection splits a field value into keys. Blank entries are dropped
// and a key repeating the one before it is suppressed.
func ParseSelection(value string) []string {
	var keys []string
	for _, part := range strings.Split(value, ",") {
		k := strings.TrimSpace(part)
		if k == "" {
			continue
		}
		if n := len(keys); n > 0 && strings.EqualFold(keys[n-1], k) {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// JoinSelection is the inverse of ParseSelection.
func JoinSelection(keys []string) string {
	return Sanitize(strings.Join(keys, ","))
}
