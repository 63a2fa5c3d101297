package main

import "strings"

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func shellQuote(s string) string {
	// Single quotes preserve everything literally except single quotes themselves.
	// To include a single quote, we end the quoted string, add an escaped quote, and restart.
	// e.g., "it's" becomes 'it'\''s'
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// workonScript assembles the snippet gen-workon prints for eval.
// afterWorkon is the resolved post-workon command, already carrying its
// " && " prefix when non-empty.
func workonScript(path, afterWorkon string) string {
	return "cd " + shellQuote(path) + afterWorkon
}
