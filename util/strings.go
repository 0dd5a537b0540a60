package util

import "strings"

// CleanSplit splits s by sep and returns the substrings with surrounding
// whitespace removed.
func CleanSplit(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// MultiSplit splits s by every separator in seps, in order, returning the
// resulting substrings trimmed of surrounding whitespace.
func MultiSplit(s string, seps ...string) []string {
	tokens := []string{s}
	for _, sep := range seps {
		next := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			next = append(next, strings.Split(tok, sep)...)
		}
		tokens = next
	}
	for i, tok := range tokens {
		tokens[i] = strings.TrimSpace(tok)
	}
	return tokens
}

// SplitAtN splits s in two around the n-th (zero-based) occurrence of sep.
// Both halves are trimmed of surrounding whitespace. If sep occurs n times or
// fewer, the second half is empty.
func SplitAtN(s, sep string, n int) (before, after string) {
	parts := strings.Split(s, sep)
	left, right := Cut(parts, n+1)
	return strings.TrimSpace(strings.Join(left, sep)),
		strings.TrimSpace(strings.Join(right, sep))
}

// MaskSecret hides sensitive parts of a string for safe display in logs.
// If the string is shorter than visiblePrefix, it is fully masked.
func MaskSecret(s string, visiblePrefix int) string {
	if len(s) <= visiblePrefix {
		return "***"
	}
	return s[:visiblePrefix] + "***"
}
