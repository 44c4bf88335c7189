package valueobjects

import "strings"

// NormalizeTags trims each submitted tag, drops empty ones, and removes
// duplicates (case-sensitive exact match) while preserving first-seen order.
// This mirrors the tag input contract of the idea form, where adding an
// empty or duplicate tag is a silent no-op.
func NormalizeTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		tags = AppendTag(tags, t)
	}
	return tags
}

// AppendTag appends a single submitted tag to an existing tag list.
// Empty (after trimming) and duplicate submissions return the list unchanged.
func AppendTag(tags []string, raw string) []string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return tags
	}
	for _, existing := range tags {
		if existing == t {
			return tags
		}
	}
	return append(tags, t)
}
