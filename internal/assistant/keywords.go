package assistant

import "github.com/cloudflare/ahocorasick"

// keywordScanner finds every rule keyword present in an utterance in a
// single pass. The matcher pre-computes a trie over all keywords, so the
// scan cost is independent of how many rules carry keywords; rules then
// consult the hit set in priority order.
type keywordScanner struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

func newKeywordScanner(keywords []string) *keywordScanner {
	return &keywordScanner{
		matcher:  ahocorasick.NewStringMatcher(keywords),
		keywords: keywords,
	}
}

// scan returns the set of keywords contained in the lowercased input.
// Containment is plain substring containment, so a keyword inside a
// larger word still counts.
func (s *keywordScanner) scan(input string) map[string]bool {
	hits := s.matcher.Match([]byte(input))
	if len(hits) == 0 {
		return nil
	}

	found := make(map[string]bool, len(hits))
	for _, idx := range hits {
		if idx >= 0 && idx < len(s.keywords) {
			found[s.keywords[idx]] = true
		}
	}
	return found
}
