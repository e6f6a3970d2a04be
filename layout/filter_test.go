package layout

import (
	"strings"
	"testing"
)

func TestNonHeadingFilterStopWords(t *testing.T) {
	filter := NewNonHeadingFilter()

	rejected := []string{
		"abstract",
		"Abstract",
		"ABSTRACT",
		"Project Abstract",
		"1. Introduction",
		"Table of Contents",
		"References",
		"Bibliography and Sources",
		"Zusammenfassung",
		"Inhaltsverzeichnis",
		"Résumé des travaux",
		"Índice general",
		"参考文献",
		"目次",
		"مقدمة",
	}
	for _, text := range rejected {
		if !filter.Reject(text) {
			t.Errorf("Reject(%q) = false, want true", text)
		}
	}

	accepted := []string{
		"Heading Text",
		"Chapter 3",
		"1.1 Background",
		"System Architecture Overview",
	}
	for _, text := range accepted {
		if filter.Reject(text) {
			t.Errorf("Reject(%q) = true, want false", text)
		}
	}
}

func TestNonHeadingFilterLengthBounds(t *testing.T) {
	filter := NewNonHeadingFilter()

	tests := []struct {
		name   string
		text   string
		reject bool
	}{
		{"two chars", "Hi", true},
		{"three chars", "Sky", false},
		{"two hundred chars", strings.Repeat("ab", 100), false},
		{"two hundred one chars", strings.Repeat("ab", 100) + "c", true},
		{"empty", "", true},
		// Bounds count characters, not bytes.
		{"three multibyte chars", "日本語", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Reject(tt.text); got != tt.reject {
				t.Errorf("Reject(%q) = %v, want %v", tt.text, got, tt.reject)
			}
		})
	}
}

func TestNonHeadingFilterNumericStrings(t *testing.T) {
	filter := NewNonHeadingFilter()

	rejected := []string{
		"12345",
		"2024-01-15",
		"12/31/2023",
		"1.2.3",
		"10 - 20",
	}
	for _, text := range rejected {
		if !filter.Reject(text) {
			t.Errorf("Reject(%q) = false, want true", text)
		}
	}

	// A single letter is enough to escape the numeric rule (though other
	// rules may still apply).
	if filter.Reject("2024 Report") {
		t.Error(`Reject("2024 Report") = true, want false`)
	}
}
