// Package skills provides skill-name normalization and synonym-aware matching.
package skills

import (
	"sort"
	"strings"
)

// Normalizer resolves skill names to canonical forms using a bidirectional
// synonym table. It is built once and read-only afterwards, so a single
// instance is safe to share across concurrent scoring calls.
type Normalizer struct {
	aliasToCanonical   map[string]string
	canonicalToAliases map[string][]string
}

// NewNormalizer builds a Normalizer from the built-in synonym table.
func NewNormalizer() *Normalizer {
	return NewNormalizerFromTable(defaultSynonyms)
}

// NewNormalizerFromTable builds a Normalizer from a canonical -> aliases table.
// Keys and aliases are lower-cased and trimmed while building the lookups.
func NewNormalizerFromTable(table map[string][]string) *Normalizer {
	n := &Normalizer{
		aliasToCanonical:   make(map[string]string),
		canonicalToAliases: make(map[string][]string),
	}

	for canonical, aliases := range table {
		canonicalLower := strings.ToLower(strings.TrimSpace(canonical))
		if canonicalLower == "" {
			continue
		}
		cleaned := make([]string, 0, len(aliases))
		for _, alias := range aliases {
			aliasLower := strings.ToLower(strings.TrimSpace(alias))
			if aliasLower == "" {
				continue
			}
			cleaned = append(cleaned, aliasLower)
			n.aliasToCanonical[aliasLower] = canonicalLower
		}
		n.canonicalToAliases[canonicalLower] = cleaned
	}

	return n
}

// Normalize returns the canonical form of a skill name: lower-cased, trimmed,
// and alias-resolved. Skills not present in the table normalize to their own
// lower-cased trimmed form; unknown skills are never rejected.
func (n *Normalizer) Normalize(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := n.aliasToCanonical[lower]; ok {
		return canonical
	}
	return lower
}

// Match reports whether two skill names refer to the same skill.
func (n *Normalizer) Match(a, b string) bool {
	return n.Normalize(a) == n.Normalize(b)
}

// FindMatch returns the first candidate whose normalized form equals the
// normalized target, preserving the candidate's original spelling.
func (n *Normalizer) FindMatch(target string, candidates []string) (string, bool) {
	targetNorm := n.Normalize(target)
	for _, candidate := range candidates {
		if n.Normalize(candidate) == targetNorm {
			return candidate, true
		}
	}
	return "", false
}

// AllForms returns every known spelling of a skill: the canonical form plus
// all registered aliases, sorted. For unknown skills it returns just the
// normalized form.
func (n *Normalizer) AllForms(skill string) []string {
	canonical := n.Normalize(skill)
	forms := []string{canonical}
	forms = append(forms, n.canonicalToAliases[canonical]...)
	sort.Strings(forms)
	return forms
}
