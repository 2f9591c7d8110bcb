package rebalance

import "strings"

// ExtractPatternKey derives a short grouping key from a free-text memo. Memos
// are assumed to follow a "label_detail" or "label rest..." convention: the
// key is the text before the first underscore when one appears past the start,
// otherwise the first whitespace-delimited token. Returns nil for empty memos.
func ExtractPatternKey(memo *string, maxLen int) *string {
	if memo == nil {
		return nil
	}
	fields := strings.Fields(*memo)
	if len(fields) == 0 {
		return nil
	}
	normalized := strings.Join(fields, " ")

	if i := strings.Index(normalized, "_"); i > 0 {
		key := truncateRunes(normalized[:i], maxLen)
		return &key
	}
	key := truncateRunes(fields[0], maxLen)
	return &key
}

func truncateRunes(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
