package scoring

import "strings"

// Match returns the keywords that occur in text as case-insensitive substrings,
// including occurrences inside longer words. The result keeps the keyword order.
func Match(keywords KeywordSet, text string) []string {
	if keywords.Len() == 0 {
		return []string{}
	}

	return matchLower(keywords, strings.ToLower(text))
}

func matchLower(keywords KeywordSet, lower string) []string {
	matched := make([]string, 0)
	for _, keyword := range keywords.items {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		}
	}
	return matched
}
