package utils

import "unicode"

// IsAlphabetic reports whether s is non-empty and made of letters only.
// The dictionary loader uses this to drop malformed lines before they
// reach the index.
func IsAlphabetic(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsRepetitive checks if a string is the same character repeated 3+ times
// (e.g. "aaa", "wwww"), which never produces useful completions.
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}

// IsValidInput checks if input should be processed for queries.
// Returns false for empty, all-numeric or repetitive strings. The index
// itself accepts anything; this filter only guards interactive input so
// junk prefixes do not flood the display.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}
