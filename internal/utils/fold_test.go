// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "testing"

func TestFoldSearchTerm(t *testing.T) {
	tests := map[string]string{
		"":                  "",
		"   ":               "",
		"Popescu":           "popescu",
		"  Ștefan   Mureș ": "stefan mures",
		"ĂÂÎȘȚ ăâîșț":       "aaist aaist",
		"Şerban Ţuţea":      "serban tutea",
		"Cardiologie 2":     "cardiologie 2",
	}

	for in, want := range tests {
		if got := FoldSearchTerm(in); got != want {
			t.Errorf("FoldSearchTerm(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"abc":    "abc",
		"50%":    `50\%`,
		"a_b":    `a\_b`,
		`c:\tmp`: `c:\\tmp`,
	}

	for in, want := range tests {
		if got := EscapeLike(in); got != want {
			t.Errorf("EscapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
