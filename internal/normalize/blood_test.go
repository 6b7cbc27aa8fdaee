package normalize_test

import (
	"testing"

	"github.com/thalaconnect/bloodbot/internal/normalize"
)

func TestBloodTypeCanonicalTokens(t *testing.T) {
	for _, bt := range normalize.BloodTypes {
		if got := normalize.BloodType(bt); got != bt {
			t.Errorf("BloodType(%q) = %q, want %q", bt, got, bt)
		}
	}
}

func TestBloodTypeVariants(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a+", "A+"},
		{" A + ", "A+"},
		{"A POSITIVE", "A+"},
		{"a positive", "A+"},
		{"A PLUS", "A+"},
		{"A NEG", "A-"},
		{"a negative", "A-"},
		{"B POS", "B+"},
		{"b neg", "B-"},
		{"AB POS", "AB+"},
		{"ab negative", "AB-"},
		{"O POS", "O+"},
		{"o pos", "O+"},
		{"O NEG", "O-"},
		{"o negative", "O-"},
		{"APOS", "A+"},
		{"BPOS", "B+"},
		{"ABNEG", "AB-"},
		{"ONEG", "O-"},
		{"o+!", "O+"},
		{"(ab-)", "AB-"},
		{"ab +", "AB+"},
	}
	for _, tc := range cases {
		if got := normalize.BloodType(tc.in); got != tc.want {
			t.Errorf("BloodType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBloodTypeGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "xyz", "12345", "C+", "ABO", "positive", "blood"} {
		if got := normalize.BloodType(in); got != "" {
			t.Errorf("BloodType(%q) = %q, want empty", in, got)
		}
	}
}
