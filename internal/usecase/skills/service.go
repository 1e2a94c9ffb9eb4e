// Package skills extracts known skill keywords from raw resume text.
package skills

import (
	"regexp"
	"sort"
	"strings"
)

// matcher pairs a taxonomy keyword with its compiled pattern.
type matcher struct {
	display string // title-cased form for output
	pattern *regexp.Regexp
}

// Service matches resume text against the fixed skill taxonomy.
// All patterns are compiled once at construction; the service is immutable
// and safe for concurrent use.
type Service struct {
	matchers []matcher
}

// New creates a skill extraction service over the built-in taxonomy.
func New() *Service {
	s := &Service{}
	for _, cat := range taxonomy {
		for _, kw := range cat.Keywords {
			s.matchers = append(s.matchers, matcher{
				display: titleCase(kw),
				pattern: compileKeyword(kw),
			})
		}
	}
	return s
}

// Extract returns the skills found in text, deduplicated, title-cased and
// alphabetically sorted. Matching is case-insensitive on whole tokens, so
// "r" never matches inside "for". Empty input yields an empty slice.
func (s *Service) Extract(text string) []string {
	if text == "" {
		return []string{}
	}
	lower := strings.ToLower(text)

	seen := make(map[string]struct{})
	found := make([]string, 0, 8)
	for _, m := range s.matchers {
		if _, dup := seen[m.display]; dup {
			continue
		}
		if m.pattern.MatchString(lower) {
			seen[m.display] = struct{}{}
			found = append(found, m.display)
		}
	}
	sort.Strings(found)
	return found
}

// ByCategory groups extracted skills by taxonomy category, preserving
// category declaration order. Categories without matches are omitted.
func (s *Service) ByCategory(found []string) []Category {
	set := make(map[string]struct{}, len(found))
	for _, f := range found {
		set[f] = struct{}{}
	}

	grouped := make([]Category, 0, len(taxonomy))
	for _, cat := range taxonomy {
		var matched []string
		for _, kw := range cat.Keywords {
			display := titleCase(kw)
			if _, ok := set[display]; ok {
				matched = append(matched, display)
			}
		}
		if len(matched) > 0 {
			grouped = append(grouped, Category{Name: cat.Name, Keywords: matched})
		}
	}
	return grouped
}

// compileKeyword builds a literal whole-token pattern for a keyword.
// RE2's \b misbehaves next to non-word characters ("c++", "ci/cd"), so
// explicit alphanumeric boundaries are used instead.
func compileKeyword(kw string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^a-z0-9])` + regexp.QuoteMeta(strings.ToLower(kw)) + `(?:[^a-z0-9]|$)`)
}

// titleCase uppercases the first letter of every letter run, matching the
// display form of taxonomy entries like "power bi" -> "Power Bi" and
// "ci/cd" -> "Ci/Cd".
func titleCase(s string) string {
	b := []byte(strings.ToLower(s))
	prevLetter := false
	for i, c := range b {
		isLetter := c >= 'a' && c <= 'z'
		if isLetter && !prevLetter {
			b[i] = c - 'a' + 'A'
		}
		prevLetter = isLetter || (c >= 'A' && c <= 'Z')
	}
	return string(b)
}
