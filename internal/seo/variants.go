package seo

import "strings"

// variantTemplates are the fixed textual expansions applied to a seed keyword.
var variantTemplates = []string{
	"%s guide",
	"%s tips",
	"best %s",
	"how to %s",
	"%s tutorial",
	"%s review",
	"%s comparison",
	"top %s",
	"%s benefits",
	"%s cost",
}

// ExpandVariants expands a seed keyword into a deduplicated candidate list.
// The seed is always first; order is stable so research results are returned
// in generation order.
func ExpandVariants(seed string, includeRelated bool) []string {
	if !includeRelated {
		return []string{seed}
	}

	candidates := make([]string, 0, len(variantTemplates)+3)
	candidates = append(candidates, seed)
	for _, tmpl := range variantTemplates {
		candidates = append(candidates, strings.Replace(tmpl, "%s", seed, 1))
	}

	if words := strings.Fields(seed); len(words) > 1 {
		reversed := make([]string, len(words))
		for i, w := range words {
			reversed[len(words)-1-i] = w
		}
		candidates = append(candidates, strings.Join(reversed, " "))
		candidates = append(candidates, strings.Join(words[:len(words)-1], " "))
	}

	seen := make(map[string]struct{}, len(candidates))
	unique := candidates[:0]
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}
