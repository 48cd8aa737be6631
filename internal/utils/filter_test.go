package utils

import "testing"

func TestIsAlphabetic(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"apple", true},
		{"Apple", true},
		{"café", true},
		{"", false},
		{"word2vec", false},
		{"user-name", false},
		{"a b", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsAlphabetic(tc.input); got != tc.expected {
				t.Errorf("IsAlphabetic(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"hello", true},
		{"he", true},
		{"word2vec", true},
		{"", false},
		{"12345", false},
		{"aaaa", false},
		{"www", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsValidInput(tc.input); got != tc.expected {
				t.Errorf("IsValidInput(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSuggestionFilter(t *testing.T) {
	f := NewSuggestionFilter("Apple")

	if f.ShouldInclude("apple") {
		t.Error("filter should drop the input word itself")
	}
	if !f.ShouldInclude("apply") {
		t.Error("first sighting of a word should pass")
	}
	if f.ShouldInclude("Apply") {
		t.Error("repeats should be dropped case-insensitively")
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, tc := range testCases {
		if got := FormatWithCommas(tc.input); got != tc.expected {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
