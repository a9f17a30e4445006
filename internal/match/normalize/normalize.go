// internal/match/normalize/normalize.go
package normalize

import (
	"sort"
	"strings"

	"skillmatch/internal/match/catalog"
)

// delimiters recognized when splitting a free-text skill list.
const delimiters = ",;/|\n"

// catalogTokens is the accumulated role-skill catalog in canonical form,
// built once at startup.
var catalogTokens []string

func init() {
	seen := make(map[string]struct{})
	for _, raw := range catalog.AllSkillTokens() {
		tok := Token(raw)
		if len(tok) < 3 {
			continue
		}
		if _, ok := seen[tok]; !ok {
			seen[tok] = struct{}{}
			catalogTokens = append(catalogTokens, tok)
		}
	}
	sort.Strings(catalogTokens)
}

// Token canonicalizes a single skill token: lowercase, underscores and
// hyphens folded to spaces, internal whitespace collapsed, then the alias
// table applied. Unmapped tokens pass through unchanged.
func Token(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	if canonical, ok := catalog.Aliases[s]; ok {
		return canonical
	}
	return s
}

// ExtractSkills turns free text into a deduplicated, lexicographically sorted
// set of canonical skill tokens. Delimiter splitting alone undercounts skills
// written in prose, so three whole-text scans supplement it: known aliases as
// whole words, the specificity keyword set as whole words, and the full
// role-skill catalog as boundary-checked substrings.
func ExtractSkills(freeText string) []string {
	seen := make(map[string]struct{})
	add := func(tok string) {
		if tok == "" {
			return
		}
		seen[tok] = struct{}{}
	}

	for _, frag := range strings.FieldsFunc(freeText, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	}) {
		add(Token(frag))
	}

	scans := scanTexts(freeText)

	for alias, canonical := range catalog.Aliases {
		if containsWord(scans, alias) {
			add(canonical)
		}
	}
	for _, kw := range catalog.SpecificityKeywords {
		if containsWord(scans, Token(kw)) {
			add(Token(kw))
		}
	}
	for _, tok := range catalogTokens {
		if containsWord(scans, tok) {
			add(tok)
		}
	}

	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// scanTexts prepares the lowercased text for whole-word scanning. Two
// variants are produced: one keeping intra-token punctuation (so "a/b
// testing" still matches) and one with it folded to spaces (so "back-end"
// matches the canonical "back end").
func scanTexts(freeText string) []string {
	s := strings.ToLower(freeText)
	replacer := strings.NewReplacer(",", " ", ";", " ", "|", " ", "\n", " ", "(", " ", ")", " ", ":", " ")
	kept := " " + strings.Join(strings.Fields(replacer.Replace(s)), " ") + " "
	folded := strings.NewReplacer("-", " ", "_", " ", "/", " ", ".", " ").Replace(kept)
	folded = " " + strings.Join(strings.Fields(folded), " ") + " "
	return []string{kept, folded}
}

func containsWord(scans []string, phrase string) bool {
	if phrase == "" {
		return false
	}
	needle := " " + phrase + " "
	for _, text := range scans {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

// ListedItems returns the normalized delimiter-split fragments in listing
// order, duplicates preserved. Volume and duplicate statistics are computed
// from this view rather than the deduplicated skill set.
func ListedItems(freeText string) []string {
	var out []string
	for _, frag := range strings.FieldsFunc(freeText, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	}) {
		if tok := Token(frag); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Tokenize splits free text into canonical words with stopwords removed.
// Used when mining role/industry text for adaptive profiles.
func Tokenize(freeText string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(freeText)) {
		w = strings.Trim(w, ".,;:()[]{}\"'")
		if w == "" {
			continue
		}
		if _, stop := catalog.Stopwords[w]; stop {
			continue
		}
		out = append(out, w)
	}
	return out
}
