package normalize_test

import (
	"testing"

	"github.com/thalaconnect/bloodbot/internal/normalize"
)

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+91 98765-43210", "9876543210"},
		{"whatsapp:+919876543210", "9876543210"},
		{"9876543210", "9876543210"},
		{"00919876543210", "9876543210"},
		{"123", "123"},
		{"(1) 2-3", "123"},
		{"", ""},
		{"no digits here", ""},
	}
	for _, tc := range cases {
		if got := normalize.Phone(tc.in); got != tc.want {
			t.Errorf("Phone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
