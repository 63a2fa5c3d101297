package main

import (
	"github.com/sahilm/fuzzy"
)

// fuzzyFilter narrows names to those fuzzy-matching query, best match
// first. An empty query returns names unchanged.
func fuzzyFilter(query string, names []string) []string {
	if query == "" {
		return names
	}
	matches := fuzzy.Find(query, names)
	filtered := make([]string, len(matches))
	for i, m := range matches {
		filtered[i] = m.Str
	}
	return filtered
}
