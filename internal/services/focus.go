package services

import "strings"

// NormalizeFocusAreas trims caller-supplied focus-area labels, drops empties,
// and removes exact duplicates while preserving first-seen order. Matching is
// case-sensitive; "Leadership" and "leadership" stay distinct.
func NormalizeFocusAreas(areas []string) []string {
	if len(areas) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(areas))
	var normalized []string

	for _, area := range areas {
		area = strings.TrimSpace(area)
		if area == "" {
			continue
		}
		if _, ok := seen[area]; ok {
			continue
		}
		seen[area] = struct{}{}
		normalized = append(normalized, area)
	}

	return normalized
}
