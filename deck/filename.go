package deck

import (
	"fmt"
	"strings"
)

const maxTopicSlug = 60

// OutputName derives a descriptive filename stem from topic, style and slide
// count, sanitized to filesystem-safe characters. No extension is attached;
// renderers append their own.
func OutputName(topic string, style Style, slideCount int) string {
	return fmt.Sprintf("%s_%s_%dslides", slugify(topic), style.DisplayName(), slideCount)
}

// UniqueOutputName appends an incrementing suffix until exists reports the
// candidate free, so repeated generations never silently overwrite.
func UniqueOutputName(base string, exists func(string) bool) string {
	if !exists(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if !exists(candidate) {
			return candidate
		}
	}
}

func slugify(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
		if b.Len() >= maxTopicSlug {
			break
		}
	}
	slug := strings.Trim(b.String(), "_")
	if slug == "" {
		return "presentation"
	}
	return slug
}
