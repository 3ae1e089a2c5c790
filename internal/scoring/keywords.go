// Package scoring computes the relevance of a resume to a job description:
// keyword extraction and matching, category sub-scores and the combined score.
package scoring

import (
	"strings"
)

const (
	minWordLength   = 3
	minBigramLength = 6
)

// KeywordSet is a deduplicated set of keywords. Items are kept in the order
// they were first emitted so that repeated runs over the same text agree, but
// the order carries no meaning.
type KeywordSet struct {
	items []string
	index map[string]struct{}
}

func newKeywordSet(capacity int) KeywordSet {
	return KeywordSet{
		items: make([]string, 0, capacity),
		index: make(map[string]struct{}, capacity),
	}
}

func (s *KeywordSet) add(keyword string) {
	if _, ok := s.index[keyword]; ok {
		return
	}
	s.index[keyword] = struct{}{}
	s.items = append(s.items, keyword)
}

// Len returns the number of keywords in the set.
func (s KeywordSet) Len() int {
	return len(s.items)
}

// Items returns a copy of the keywords.
func (s KeywordSet) Items() []string {
	return append([]string(nil), s.items...)
}

// Contains reports whether keyword is a member of the set.
func (s KeywordSet) Contains(keyword string) bool {
	_, ok := s.index[keyword]
	return ok
}

// ExtractKeywords turns a job description into a set of unigrams and adjacent
// bigrams. Words shorter than three characters and stop words are skipped; a
// bigram starts at every kept word and is emitted only when longer than five
// characters.
func ExtractKeywords(text string) KeywordSet {
	words := Tokenize(text)
	set := newKeywordSet(len(words) * 2)

	for i, word := range words {
		if len(word) < minWordLength || IsStopWord(word) {
			continue
		}

		set.add(word)

		if i == len(words)-1 {
			continue
		}

		if bigram := word + " " + words[i+1]; len(bigram) >= minBigramLength {
			set.add(bigram)
		}
	}

	return set
}

// Tokenize lowercases text, replaces every character other than a-z, 0-9, '+',
// '#' and '.' with a space and splits the result on whitespace.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '#', r == '.':
			return r
		default:
			return ' '
		}
	}, strings.ToLower(text))

	return strings.Fields(cleaned)
}
